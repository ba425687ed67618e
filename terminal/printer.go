package terminal

import (
	"encoding/base64"
	"fmt"
	"io"
	"sync"
)

// Printer writes feed lines and inline images to a terminal stream. Multiple
// deliveries can be rendered by overlapping goroutines, so writes are
// serialized to keep lines intact.
type Printer struct {
	mu  sync.Mutex
	out io.Writer
}

// NewPrinter creates a printer writing to the given stream, normally stdout
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Line writes one feed line
func (p *Printer) Line(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, text)
}

// Avatar returns the escape sequence for a small (two row high) inline image
// that can be embedded at the start of a feed line. Uses the iTerm2 inline
// image protocol (OSC 1337), the same wire format the imgcat tool emits.
func (p *Printer) Avatar(data []byte) string {
	return fmt.Sprintf(
		"\x1b]1337;File=inline=1;height=2;preserveAspectRatio=1:%s\a",
		base64.StdEncoding.EncodeToString(data),
	)
}

// Image writes a half-size inline image on its own line
func (p *Printer) Image(data []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(
		p.out,
		"\x1b]1337;File=inline=1;width=50%%;height=50%%:%s\a\n",
		base64.StdEncoding.EncodeToString(data),
	)
}

// HideCursor hides the terminal cursor while the feed is running
func (p *Printer) HideCursor() {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprint(p.out, "\x1b[?25l")
}

// ShowCursor restores the terminal cursor, called on shutdown
func (p *Printer) ShowCursor() {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprint(p.out, "\x1b[?25h")
}
