package mrkdwn

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/fatih/color"
	"github.com/kyokomi/emoji/v2"
)

// Precompiled patterns for Slack mrkdwn tokens.
var (
	// User mentions: <@U123456>.
	reUser = regexp.MustCompile(`<@U[A-Z0-9]*>`)
	// Channel references: <#C123|channel-name>.
	reChannel = regexp.MustCompile(`<#C[^\s]*>`)
	// Angle-bracket wrapped URLs: <http...>.
	reURL = regexp.MustCompile(`(?i)<http.*?>`)
	// Bold spans: *like this* (non-greedy so unrelated asterisks stay apart).
	reBold = regexp.MustCompile(`\*.*?\*`)
)

// Terminal styles, one per token kind.
var (
	channelStyle = color.New(color.FgRed)
	userStyle    = color.New(color.FgGreen, color.Bold)
	urlStyle     = color.New(color.FgCyan, color.Underline)
	boldStyle    = color.New(color.Bold)
	markerStyle  = color.New(color.BgWhite, color.FgBlack)
	titleStyle   = color.New(color.FgBlue, color.Bold)
	barStyle     = color.New(color.BgBlue)
)

// Channel renders a channel name as a colored #tag
func Channel(name string) string {
	return channelStyle.Sprintf("#%s", name)
}

// User renders a user display name as a colored @mention
func User(name string) string {
	return userStyle.Sprintf("@%s", name)
}

// Bot renders a bot display name as a colored @mention with an APP badge
func Bot(name string) string {
	return User(name) + " " + Marker("APP")
}

// URL renders a link underlined
func URL(url string) string {
	return urlStyle.Sprint(url)
}

// Bold renders a bold span
func Bold(text string) string {
	return boldStyle.Sprint(text)
}

// Marker renders an inverted status badge such as (edited) or (removed)
func Marker(text string) string {
	return markerStyle.Sprint(text)
}

// Title renders an attachment title line
func Title(text string) string {
	return titleStyle.Sprint(text)
}

// Bar renders the vertical gutter used for attachments without a thumbnail
func Bar() string {
	return barStyle.Sprint(" ") + " "
}

// UserResolver maps a Slack user ID to a display name. Mention rewriting is
// the only stage that needs a network lookup, so it is injected.
type UserResolver func(ctx context.Context, userID string) (string, error)

// Formatter converts raw Slack message markup into terminal-displayable text.
type Formatter struct {
	resolveUser UserResolver
}

// NewFormatter creates a formatter that resolves user mentions through the
// given callback
func NewFormatter(resolveUser UserResolver) *Formatter {
	return &Formatter{resolveUser: resolveUser}
}

// Format runs the full transform pipeline over raw message text. Stage order
// matters: emoji expansion and bold rewriting run before URL and mention
// rewriting so token characters are not misread as bold delimiters.
func (f *Formatter) Format(ctx context.Context, text string) (string, error) {
	out := emoji.Sprint(text)
	out = replaceBold(out)
	out = replaceURLs(out)
	out = replaceChannels(out)
	return f.replaceUserMentions(ctx, out)
}

// replaceBold strips *...* delimiters and re-emits the span bold
func replaceBold(text string) string {
	return reBold.ReplaceAllStringFunc(text, func(match string) string {
		return Bold(match[1 : len(match)-1])
	})
}

// replaceURLs unwraps <http...> tokens
func replaceURLs(text string) string {
	return reURL.ReplaceAllStringFunc(text, func(match string) string {
		return URL(match[1 : len(match)-1])
	})
}

// replaceChannels rewrites <#C123|name> tokens to a colored #name. The raw
// channel ID is discarded; only the pipe-delimited label is shown.
func replaceChannels(text string) string {
	return reChannel.ReplaceAllStringFunc(text, func(match string) string {
		inner := match[1 : len(match)-1]
		if idx := strings.Index(inner, "|"); idx >= 0 {
			inner = inner[idx+1:]
		} else {
			inner = strings.TrimPrefix(inner, "#")
		}
		return Channel(inner)
	})
}

// replaceUserMentions rewrites <@U123> tokens to colored @names. The text is
// scanned into literal and mention spans, each mention is resolved, and the
// spans are reassembled in their original order with all non-matched text
// preserved verbatim.
func (f *Formatter) replaceUserMentions(ctx context.Context, text string) (string, error) {
	locations := reUser.FindAllStringIndex(text, -1)
	if len(locations) == 0 {
		return text, nil
	}

	var builder strings.Builder
	last := 0
	for _, loc := range locations {
		builder.WriteString(text[last:loc[0]])

		userID := text[loc[0]+2 : loc[1]-1]
		name, err := f.resolveUser(ctx, userID)
		if err != nil {
			return "", fmt.Errorf("failed to resolve user mention %s: %w", userID, err)
		}
		builder.WriteString(User(name))

		last = loc[1]
	}
	builder.WriteString(text[last:])

	return builder.String(), nil
}
