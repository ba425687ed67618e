package models

// EventEnvelope is the top-level payload of one Slack webhook delivery.
// Slack sends either a one-time url_verification handshake or an
// event_callback wrapping the actual event.
type EventEnvelope struct {
	Type      string        `json:"type"`
	Challenge string        `json:"challenge,omitempty"`
	Event     *MessageEvent `json:"event,omitempty"`
}

// MessageEvent is the inner event of an event_callback delivery. Slack reuses
// the same shape for new messages, edits, deletions and unfurl updates, so
// most fields are optional and which ones are populated depends on the
// subtype. Edits carry the edited message nested under "message"; deletions
// carry the removed message under "previous_message".
type MessageEvent struct {
	Type            string         `json:"type"`
	Subtype         string         `json:"subtype,omitempty"`
	Hidden          bool           `json:"hidden,omitempty"`
	User            string         `json:"user,omitempty"`
	BotID           string         `json:"bot_id,omitempty"`
	Channel         string         `json:"channel,omitempty"`
	Text            string         `json:"text,omitempty"`
	TS              string         `json:"ts,omitempty"`
	ClientMsgID     string         `json:"client_msg_id,omitempty"`
	Files           []File         `json:"files,omitempty"`
	Attachments     []Attachment   `json:"attachments,omitempty"`
	Message         *NestedMessage `json:"message,omitempty"`
	PreviousMessage *NestedMessage `json:"previous_message,omitempty"`
}

// NestedMessage is the message object nested inside edit and delete events.
type NestedMessage struct {
	User        string       `json:"user,omitempty"`
	BotID       string       `json:"bot_id,omitempty"`
	Text        string       `json:"text,omitempty"`
	ClientMsgID string       `json:"client_msg_id,omitempty"`
	Files       []File       `json:"files,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// File is an uploaded file referenced by a message event.
type File struct {
	ID         string `json:"id"`
	Filetype   string `json:"filetype"`
	URLPrivate string `json:"url_private"`
}

// Attachment is a rich link-preview card attached to a message, usually
// produced by Slack's server-side unfurling.
type Attachment struct {
	Title       string `json:"title,omitempty"`
	Text        string `json:"text,omitempty"`
	ServiceName string `json:"service_name,omitempty"`
	AuthorName  string `json:"author_name,omitempty"`
	ThumbURL    string `json:"thumb_url,omitempty"`
	ServiceIcon string `json:"service_icon,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}
