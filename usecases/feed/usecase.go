package feed

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"teamwatch/models"
	"teamwatch/mrkdwn"
	"teamwatch/services"
	"teamwatch/terminal"
)

// FeedUseCase turns inbound Slack webhook deliveries into styled terminal
// feed lines: it classifies each delivery, resolves referenced users, bots
// and channels, formats the message markup, and suppresses Slack's
// redundant edit re-deliveries.
type FeedUseCase struct {
	resolverService services.ResolverService
	recencyService  services.RecencyService
	formatter       *mrkdwn.Formatter
	printer         *terminal.Printer
	ignoreChannels  []string
}

// NewFeedUseCase creates the rendering pipeline. ignoreChannels is the list
// of channel names to suppress entirely, case-insensitive, leading '#'
// optional.
func NewFeedUseCase(
	resolverService services.ResolverService,
	recencyService services.RecencyService,
	printer *terminal.Printer,
	ignoreChannels []string,
) *FeedUseCase {
	useCase := &FeedUseCase{
		resolverService: resolverService,
		recencyService:  recencyService,
		printer:         printer,
		ignoreChannels:  ignoreChannels,
	}
	useCase.formatter = mrkdwn.NewFormatter(func(ctx context.Context, userID string) (string, error) {
		actor, err := resolverService.ResolveUser(ctx, userID)
		if err != nil {
			return "", err
		}
		return actor.DisplayName, nil
	})
	return useCase
}

// ProcessEvent classifies one webhook delivery and renders it. The HTTP
// response to Slack has already been sent by the time this runs, so errors
// here only surface in the operator-facing log.
func (u *FeedUseCase) ProcessEvent(ctx context.Context, envelope *models.EventEnvelope) error {
	event := classifyEvent(envelope)

	switch event.Kind {
	case models.EventKindUserMessage, models.EventKindEditedUserMessage:
		return u.renderUserMessage(ctx, event)
	case models.EventKindBotMessage, models.EventKindEditedBotMessage:
		return u.renderBotMessage(ctx, event)
	case models.EventKindDeletedMessage:
		return u.renderRemovedMessage(ctx, event)
	case models.EventKindUnfurledLink:
		return u.renderAttachments(ctx, event.Attachments)
	case models.EventKindIgnored:
		return nil
	default:
		payload, _ := json.Marshal(envelope)
		log.Printf("⚠️ Did not understand Slack event: %s", payload)
		return nil
	}
}

func (u *FeedUseCase) isIgnoredChannel(name string) bool {
	for _, ignored := range u.ignoreChannels {
		ignored = strings.TrimPrefix(strings.TrimSpace(ignored), "#")
		if strings.EqualFold(ignored, name) {
			return true
		}
	}
	return false
}
