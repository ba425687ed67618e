package feed

import (
	"teamwatch/models"
)

// classifyEvent assigns one inbound delivery to exactly one event category
// and lifts the relevant fields out of Slack's nested payload shapes, so the
// rendering path never re-inspects the raw envelope. First match wins; the
// rule order is load-bearing.
func classifyEvent(envelope *models.EventEnvelope) models.ClassifiedEvent {
	event := envelope.Event
	if envelope.Type != "event_callback" || event == nil || event.Type != "message" {
		return models.ClassifiedEvent{Kind: models.EventKindUnrecognized}
	}

	// A bot may mark itself three ways: subtype, a top-level bot_id, or a
	// bot_id nested one level down in the edit case.
	botID := event.BotID
	if botID == "" && event.Message != nil {
		botID = event.Message.BotID
	}
	postedByBot := event.Subtype == "bot_message" || botID != ""

	switch {
	case !event.Hidden && postedByBot:
		return models.ClassifiedEvent{
			Kind:        models.EventKindBotMessage,
			BotID:       botID,
			Channel:     event.Channel,
			Text:        event.Text,
			ClientMsgID: event.ClientMsgID,
			Files:       event.Files,
			Attachments: event.Attachments,
		}

	case !event.Hidden:
		return models.ClassifiedEvent{
			Kind:        models.EventKindUserMessage,
			UserID:      event.User,
			Channel:     event.Channel,
			Text:        event.Text,
			ClientMsgID: event.ClientMsgID,
			Files:       event.Files,
			Attachments: event.Attachments,
		}

	case event.Subtype == "message_changed" && event.Message != nil:
		edited := models.ClassifiedEvent{
			Kind:        models.EventKindEditedUserMessage,
			UserID:      event.Message.User,
			Channel:     event.Channel,
			Text:        event.Message.Text,
			ClientMsgID: event.Message.ClientMsgID,
			Edited:      true,
			Files:       event.Message.Files,
			Attachments: event.Message.Attachments,
		}
		if postedByBot {
			edited.Kind = models.EventKindEditedBotMessage
			edited.UserID = ""
			edited.BotID = botID
		}
		return edited

	case event.Subtype == "message_deleted":
		// Nothing was ever rendered for a deletion without a previous
		// message, so there is nothing to mark as removed.
		if event.PreviousMessage == nil {
			return models.ClassifiedEvent{Kind: models.EventKindIgnored}
		}
		return models.ClassifiedEvent{
			Kind:    models.EventKindDeletedMessage,
			UserID:  event.PreviousMessage.User,
			Channel: event.Channel,
			Text:    event.PreviousMessage.Text,
			Removed: true,
		}

	case event.Message != nil && len(event.Message.Attachments) > 0:
		// Slack's own link-preview enrichment arriving as a phantom edit.
		return models.ClassifiedEvent{
			Kind:        models.EventKindUnfurledLink,
			Channel:     event.Channel,
			Attachments: event.Message.Attachments,
		}

	default:
		return models.ClassifiedEvent{Kind: models.EventKindUnrecognized}
	}
}
