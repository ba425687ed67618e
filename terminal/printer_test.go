package terminal

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinter(t *testing.T) {
	t.Run("Success_LineEndsWithNewline", func(t *testing.T) {
		var buf bytes.Buffer
		printer := NewPrinter(&buf)

		printer.Line("hello")

		assert.Equal(t, "hello\n", buf.String())
	})

	t.Run("Success_AvatarUsesInlineImageProtocol", func(t *testing.T) {
		printer := NewPrinter(&bytes.Buffer{})

		escape := printer.Avatar([]byte("png-bytes"))

		assert.True(t, strings.HasPrefix(escape, "\x1b]1337;File=inline=1;height=2;preserveAspectRatio=1:"))
		assert.Contains(t, escape, base64.StdEncoding.EncodeToString([]byte("png-bytes")))
		assert.True(t, strings.HasSuffix(escape, "\a"))
	})

	t.Run("Success_ImageWritesOwnLine", func(t *testing.T) {
		var buf bytes.Buffer
		printer := NewPrinter(&buf)

		printer.Image([]byte("png-bytes"))

		assert.Contains(t, buf.String(), "width=50%;height=50%")
		assert.True(t, strings.HasSuffix(buf.String(), "\n"))
	})
}
