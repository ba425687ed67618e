package feed

import (
	"context"
	"fmt"

	"teamwatch/models"
	"teamwatch/mrkdwn"
	"teamwatch/services/recency"
)

func (u *FeedUseCase) renderUserMessage(ctx context.Context, event models.ClassifiedEvent) error {
	actor, err := u.resolverService.ResolveUser(ctx, event.UserID)
	if err != nil {
		return fmt.Errorf("failed to resolve message author: %w", err)
	}
	return u.renderMessage(ctx, actor, event)
}

func (u *FeedUseCase) renderBotMessage(ctx context.Context, event models.ClassifiedEvent) error {
	actor, err := u.resolverService.ResolveBot(ctx, event.BotID)
	if err != nil {
		return fmt.Errorf("failed to resolve message bot: %w", err)
	}
	return u.renderMessage(ctx, actor, event)
}

func (u *FeedUseCase) renderRemovedMessage(ctx context.Context, event models.ClassifiedEvent) error {
	actor, err := u.resolverService.ResolveUser(ctx, event.UserID)
	if err != nil {
		return fmt.Errorf("failed to resolve removed message author: %w", err)
	}
	return u.renderMessage(ctx, actor, event)
}

func (u *FeedUseCase) renderMessage(ctx context.Context, actor *models.Actor, event models.ClassifiedEvent) error {
	channel, err := u.resolverService.ResolveChannel(ctx, event.Channel)
	if err != nil {
		return fmt.Errorf("failed to resolve channel %s: %w", event.Channel, err)
	}
	if u.isIgnoredChannel(channel.Name) {
		return nil
	}

	renderLine := true
	renderImages := true
	if !event.Removed {
		// Deletions are terminal, not updates - they never touch the cache.
		outcome := u.recencyService.Observe(event.ClientMsgID, event.Text)
		textChanged := outcome == recency.OutcomeTextChanged
		// An unchanged resend (usually unfurl-triggered) suppresses the
		// name/text line but still processes attachments, which may carry
		// newly enriched link previews.
		renderLine = outcome != recency.OutcomeUnchanged
		renderImages = !event.Edited || textChanged
	}

	if renderLine {
		if err := u.renderMessageLine(ctx, actor, channel, event); err != nil {
			return err
		}
	}
	if len(event.Attachments) > 0 {
		if err := u.renderAttachments(ctx, event.Attachments); err != nil {
			return err
		}
	}
	if renderImages {
		if err := u.renderInlineFiles(ctx, event.Files); err != nil {
			return err
		}
	}
	return nil
}

func (u *FeedUseCase) renderMessageLine(
	ctx context.Context,
	actor *models.Actor,
	channel *models.Channel,
	event models.ClassifiedEvent,
) error {
	formatted, err := u.formatter.Format(ctx, event.Text)
	if err != nil {
		return fmt.Errorf("failed to format message text: %w", err)
	}

	avatar := ""
	if actor.AvatarURL != "" {
		data, err := u.resolverService.PublicImage(ctx, actor.AvatarURL)
		if err != nil {
			return fmt.Errorf("failed to fetch avatar for %s: %w", actor.ID, err)
		}
		avatar = u.printer.Avatar(data)
	}

	name := mrkdwn.User(actor.DisplayName)
	if actor.Kind == models.ActorKindBot {
		name = mrkdwn.Bot(actor.DisplayName)
	}

	line := fmt.Sprintf("%s[%s %s] %s", avatar, mrkdwn.Channel(channel.Name), name, formatted)
	if event.Edited && event.Text != "" {
		line += " " + mrkdwn.Marker("(edited)")
	}
	if event.Removed {
		line += " " + mrkdwn.Marker("(removed)")
	}
	u.printer.Line(line)
	return nil
}

func (u *FeedUseCase) renderInlineFiles(ctx context.Context, files []models.File) error {
	for _, file := range files {
		if !isInlineImageType(file.Filetype) {
			continue
		}
		data, err := u.resolverService.PrivateImage(ctx, file.URLPrivate)
		if err != nil {
			return fmt.Errorf("failed to fetch inline file %s: %w", file.ID, err)
		}
		u.printer.Image(data)
	}
	return nil
}

func isInlineImageType(filetype string) bool {
	switch filetype {
	case "png", "gif", "jpg":
		return true
	}
	return false
}
