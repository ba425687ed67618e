package recency

import (
	"sync"
	"time"

	"github.com/samber/mo"
)

// Outcome describes how a message/edit delivery relates to what was last
// rendered for the same client message ID.
type Outcome int

const (
	// OutcomeNew means the message was never seen before.
	OutcomeNew Outcome = iota
	// OutcomeTextChanged means the message was seen before and its text
	// actually changed.
	OutcomeTextChanged
	// OutcomeUnchanged means the text is identical to the last delivery -
	// a platform-internal resend, e.g. triggered by a link unfurl.
	OutcomeUnchanged
)

// Record is the last rendered state for one client message ID.
type Record struct {
	Text     string
	LastSeen time.Time
}

// Cache maps a message's stable client ID to its last-seen text, so edit
// notifications with unchanged text can be suppressed. Entries live for the
// whole process and are never evicted; a long session grows the map by one
// small record per distinct message, which is accepted for a terminal tool.
type Cache struct {
	mu      sync.Mutex
	records map[string]Record
	now     func() time.Time
}

// NewCache creates a new empty recency cache
func NewCache() *Cache {
	return &Cache{
		records: make(map[string]Record),
		now:     time.Now,
	}
}

// Observe records a message/edit delivery and reports how it relates to the
// previous delivery for the same client message ID.
func (c *Cache) Observe(clientMsgID, text string) Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()

	previous, seen := c.records[clientMsgID]
	c.records[clientMsgID] = Record{Text: text, LastSeen: c.now()}

	switch {
	case !seen:
		return OutcomeNew
	case previous.Text != text:
		return OutcomeTextChanged
	default:
		return OutcomeUnchanged
	}
}

// Get returns the last recorded state for a client message ID, if any
func (c *Cache) Get(clientMsgID string) mo.Option[Record] {
	c.mu.Lock()
	defer c.mu.Unlock()

	record, ok := c.records[clientMsgID]
	if !ok {
		return mo.None[Record]()
	}
	return mo.Some(record)
}
