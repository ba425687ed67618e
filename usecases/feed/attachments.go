package feed

import (
	"context"
	"fmt"
	"strings"

	"teamwatch/models"
	"teamwatch/mrkdwn"
)

func (u *FeedUseCase) renderAttachments(ctx context.Context, attachments []models.Attachment) error {
	for _, attachment := range attachments {
		if err := u.renderAttachment(ctx, attachment); err != nil {
			return err
		}
	}
	return nil
}

// renderAttachment prints one link-preview card: an optional thumbnail (or a
// colored gutter bar), a title line, an optional body line, and an optional
// full image. Attachments carrying only an image render as a bare inline
// image.
func (u *FeedUseCase) renderAttachment(ctx context.Context, attachment models.Attachment) error {
	text := strings.TrimSpace(attachment.Text)

	author := attachment.ServiceName
	if author == "" {
		author = attachment.AuthorName
	}

	var image []byte
	if attachment.ImageURL != "" {
		data, err := u.resolverService.PublicImage(ctx, attachment.ImageURL)
		if err != nil {
			return fmt.Errorf("failed to fetch attachment image: %w", err)
		}
		image = data
	}

	if attachment.Title == "" && text == "" && author == "" {
		if image != nil {
			u.printer.Image(image)
		}
		return nil
	}

	title := attachment.Title
	if author != "" && title != "" {
		title = author + " - " + title
	} else if author != "" {
		title = author
	}

	thumbURL := attachment.ThumbURL
	if thumbURL == "" {
		thumbURL = attachment.ServiceIcon
	}

	prefix := mrkdwn.Bar()
	hasThumb := thumbURL != ""
	if hasThumb {
		thumb, err := u.resolverService.PublicImage(ctx, thumbURL)
		if err != nil {
			return fmt.Errorf("failed to fetch attachment thumbnail: %w", err)
		}
		prefix = u.printer.Avatar(thumb)
	}
	u.printer.Line(prefix + mrkdwn.Title(title))

	if text != "" {
		formatted, err := u.formatter.Format(ctx, text)
		if err != nil {
			return fmt.Errorf("failed to format attachment text: %w", err)
		}
		if hasThumb {
			u.printer.Line("     " + formatted)
		} else {
			u.printer.Line(mrkdwn.Bar() + formatted)
		}
	}

	if image != nil {
		u.printer.Image(image)
	}
	return nil
}
