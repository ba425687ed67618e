package core

import (
	"crypto/rand"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"teamwatch/utils"
)

// NewID generates a new ULID with the given prefix.
// The format is: prefix-ULID, lowercased so the result is a valid DNS label
// (tunnel forwarder names become public subdomains).
// Example: core.NewID("stw") returns "stw-01g0ez1xtm37c5x11sqtdnctm1"
func NewID(prefix string) string {
	utils.AssertInvariant(strings.TrimSpace(prefix) != "", "prefix cannot be empty")

	// Generate a new ULID with current timestamp and crypto/rand entropy
	entropy := ulid.Monotonic(rand.Reader, 0)
	id := ulid.MustNew(ulid.Timestamp(time.Now()), entropy)

	return strings.ToLower(strings.TrimSpace(prefix) + "-" + id.String())
}
