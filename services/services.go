package services

import (
	"context"

	"github.com/samber/mo"

	"teamwatch/models"
	"teamwatch/services/recency"
)

// ResolverService defines the interface for memoized reference lookups.
// Every operation is cached by its full argument for the lifetime of the
// process; concurrent callers for the same key share one upstream fetch, and
// failures are never cached.
type ResolverService interface {
	ResolveUser(ctx context.Context, userID string) (*models.Actor, error)
	ResolveBot(ctx context.Context, botID string) (*models.Actor, error)
	ResolveChannel(ctx context.Context, channelID string) (*models.Channel, error)
	PublicImage(ctx context.Context, url string) ([]byte, error)
	PrivateImage(ctx context.Context, url string) ([]byte, error)
}

// RecencyService defines the interface for the dedup/recency cache that
// suppresses Slack's redundant edit re-deliveries.
type RecencyService interface {
	Observe(clientMsgID, text string) recency.Outcome
	Get(clientMsgID string) mo.Option[recency.Record]
}
