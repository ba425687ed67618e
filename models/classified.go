package models

// EventKind is the closed set of categories an inbound message event can be
// classified into.
type EventKind string

const (
	EventKindUserMessage       EventKind = "user_message"
	EventKindBotMessage        EventKind = "bot_message"
	EventKindEditedUserMessage EventKind = "edited_user_message"
	EventKindEditedBotMessage  EventKind = "edited_bot_message"
	EventKindDeletedMessage    EventKind = "deleted_message"
	EventKindUnfurledLink      EventKind = "unfurled_link"
	// EventKindIgnored marks deliveries that are understood but must produce
	// no output at all, e.g. a deletion for a message that was never rendered.
	EventKindIgnored      EventKind = "ignored"
	EventKindUnrecognized EventKind = "unrecognized"
)

// ClassifiedEvent is the normalized view of a message event after
// classification. It carries only the fields relevant to its kind, already
// lifted out of the nested message/previous_message objects, so the rendering
// pipeline never has to re-inspect the raw payload shape.
type ClassifiedEvent struct {
	Kind        EventKind
	UserID      string
	BotID       string
	Channel     string
	Text        string
	ClientMsgID string
	Edited      bool
	Removed     bool
	Files       []File
	Attachments []Attachment
}
