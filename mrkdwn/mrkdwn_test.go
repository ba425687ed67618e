package mrkdwn

import (
	"context"
	"fmt"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// Tests assert on plain text, not escape codes
	color.NoColor = true
}

func staticResolver(names map[string]string) UserResolver {
	return func(ctx context.Context, userID string) (string, error) {
		name, ok := names[userID]
		if !ok {
			return "", fmt.Errorf("unknown user %s", userID)
		}
		return name, nil
	}
}

func TestFormat(t *testing.T) {
	formatter := NewFormatter(staticResolver(map[string]string{"U1": "alice", "U2": "bob"}))

	t.Run("Success_UserMention", func(t *testing.T) {
		out, err := formatter.Format(context.Background(), "hello <@U1>")
		require.NoError(t, err)
		assert.Equal(t, "hello @alice", out)
	})

	t.Run("Success_MultipleMentionsKeepOrder", func(t *testing.T) {
		out, err := formatter.Format(context.Background(), "<@U1> pinged <@U2>, then <@U1> again")
		require.NoError(t, err)
		assert.Equal(t, "@alice pinged @bob, then @alice again", out)
	})

	t.Run("Success_ChannelMention", func(t *testing.T) {
		out, err := formatter.Format(context.Background(), "see <#C042ABC|random>")
		require.NoError(t, err)
		assert.Equal(t, "see #random", out)
	})

	t.Run("Success_URL", func(t *testing.T) {
		out, err := formatter.Format(context.Background(), "docs at <https://example.com/a?b=1>")
		require.NoError(t, err)
		assert.Equal(t, "docs at https://example.com/a?b=1", out)
	})

	t.Run("Success_BoldIsNonGreedy", func(t *testing.T) {
		out, err := formatter.Format(context.Background(), "*one* and *two*")
		require.NoError(t, err)
		assert.Equal(t, "one and two", out)
	})

	t.Run("Success_AllFourTokensRoundTrip", func(t *testing.T) {
		input := "ping <@U1> in <#C042ABC|general> about <https://example.com> being *down*"
		out, err := formatter.Format(context.Background(), input)
		require.NoError(t, err)
		assert.Equal(t, "ping @alice in #general about https://example.com being down", out)
	})

	t.Run("Success_EmojiShortcodeExpanded", func(t *testing.T) {
		out, err := formatter.Format(context.Background(), "ship it :beer:")
		require.NoError(t, err)
		assert.Contains(t, out, "🍺")
		assert.NotContains(t, out, ":beer:")
	})

	t.Run("Success_PlainTextUntouched", func(t *testing.T) {
		out, err := formatter.Format(context.Background(), "nothing special here")
		require.NoError(t, err)
		assert.Equal(t, "nothing special here", out)
	})

	t.Run("Error_ResolverFailurePropagates", func(t *testing.T) {
		out, err := formatter.Format(context.Background(), "hello <@U999>")
		require.Error(t, err)
		assert.Empty(t, out)
	})
}

func TestStyles(t *testing.T) {
	t.Run("Success_PlainWithColorDisabled", func(t *testing.T) {
		assert.Equal(t, "#general", Channel("general"))
		assert.Equal(t, "@alice", User("alice"))
		assert.Equal(t, "@deploybot APP", Bot("deploybot"))
		assert.Equal(t, "(edited)", Marker("(edited)"))
	})
}
