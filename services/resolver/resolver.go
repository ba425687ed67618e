package resolver

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"teamwatch/clients"
	"teamwatch/models"
)

// Service memoizes reference lookups (users, bots, channels, images) for the
// lifetime of the process. The first call for a key performs the upstream
// fetch; concurrent callers for the same key share that single in-flight
// fetch and its result or failure. Failures are not cached, so the next call
// retries. Resolved values are never evicted - display names may drift from
// upstream truth over very long runs, which is acceptable for a display-only
// tool.
type Service struct {
	slackClient clients.SlackClient
	imageClient clients.ImageClient

	group singleflight.Group
	mu    sync.Mutex
	cache map[string]any
}

// NewService creates a new resolver service backed by the given clients
func NewService(slackClient clients.SlackClient, imageClient clients.ImageClient) *Service {
	return &Service{
		slackClient: slackClient,
		imageClient: imageClient,
		cache:       make(map[string]any),
	}
}

// ResolveUser translates a Slack user ID into a displayable actor
func (s *Service) ResolveUser(ctx context.Context, userID string) (*models.Actor, error) {
	value, err := s.lookup("user:"+userID, func() (any, error) {
		user, err := s.slackClient.GetUserInfoContext(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve user %s: %w", userID, err)
		}
		return &models.Actor{
			Kind:        models.ActorKindUser,
			ID:          user.ID,
			DisplayName: userDisplayName(user),
			AvatarURL:   userAvatarURL(user),
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return value.(*models.Actor), nil
}

// ResolveBot translates a Slack bot ID into a displayable actor
func (s *Service) ResolveBot(ctx context.Context, botID string) (*models.Actor, error) {
	value, err := s.lookup("bot:"+botID, func() (any, error) {
		bot, err := s.slackClient.GetBotInfoContext(ctx, botID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve bot %s: %w", botID, err)
		}
		return &models.Actor{
			Kind:        models.ActorKindBot,
			ID:          bot.ID,
			DisplayName: bot.Name,
			AvatarURL:   botAvatarURL(bot),
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return value.(*models.Actor), nil
}

// ResolveChannel translates a Slack channel ID into its display name
func (s *Service) ResolveChannel(ctx context.Context, channelID string) (*models.Channel, error) {
	value, err := s.lookup("channel:"+channelID, func() (any, error) {
		channel, err := s.slackClient.GetConversationInfoContext(ctx, channelID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve channel %s: %w", channelID, err)
		}
		return &models.Channel{ID: channel.ID, Name: channel.Name}, nil
	})
	if err != nil {
		return nil, err
	}
	return value.(*models.Channel), nil
}

// PublicImage fetches a publicly reachable image, once per URL
func (s *Service) PublicImage(ctx context.Context, url string) ([]byte, error) {
	value, err := s.lookup("image:"+url, func() (any, error) {
		data, err := s.imageClient.FetchImage(ctx, url)
		if err != nil {
			return nil, err
		}
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return value.([]byte), nil
}

// PrivateImage fetches a Slack private file URL, once per URL
func (s *Service) PrivateImage(ctx context.Context, url string) ([]byte, error) {
	value, err := s.lookup("private-image:"+url, func() (any, error) {
		data, err := s.imageClient.FetchProtectedImage(ctx, url)
		if err != nil {
			return nil, err
		}
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return value.([]byte), nil
}

// lookup returns the cached value for key, or runs fetch exactly once across
// all concurrent callers and caches its result on success.
func (s *Service) lookup(key string, fetch func() (any, error)) (any, error) {
	s.mu.Lock()
	if value, ok := s.cache[key]; ok {
		s.mu.Unlock()
		return value, nil
	}
	s.mu.Unlock()

	value, err, _ := s.group.Do(key, func() (any, error) {
		value, err := fetch()
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.cache[key] = value
		s.mu.Unlock()
		return value, nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

// userDisplayName extracts the best available display name from a Slack user.
// Priority: DisplayName > RealName > Name > ID
func userDisplayName(user *clients.SlackUser) string {
	if user.Profile.DisplayName != "" {
		return user.Profile.DisplayName
	}
	if user.Profile.RealName != "" {
		return user.Profile.RealName
	}
	if user.Name != "" {
		return user.Name
	}
	return user.ID
}

// userAvatarURL picks the smallest published profile image
func userAvatarURL(user *clients.SlackUser) string {
	for _, url := range []string{
		user.Profile.Image24,
		user.Profile.Image32,
		user.Profile.Image48,
		user.Profile.Image72,
	} {
		if url != "" {
			return url
		}
	}
	return ""
}

// botAvatarURL picks the smallest published bot icon
func botAvatarURL(bot *clients.SlackBot) string {
	for _, url := range []string{
		bot.Icons.Image36,
		bot.Icons.Image48,
		bot.Icons.Image72,
	} {
		if url != "" {
			return url
		}
	}
	return ""
}
