package resolver

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamwatch/clients"
	"teamwatch/clients/images"
	"teamwatch/clients/slack"
)

func TestResolveUser(t *testing.T) {
	t.Run("Success_MemoizesByID", func(t *testing.T) {
		// Setup
		var calls int32
		mockSlack := slack.NewMockSlackClient()
		mockSlack.MockGetUserInfoContext = func(ctx context.Context, userID string) (*clients.SlackUser, error) {
			atomic.AddInt32(&calls, 1)
			return &clients.SlackUser{
				ID:      userID,
				Name:    "alice",
				Profile: clients.SlackUserProfile{Image24: "https://example.com/a24.png"},
			}, nil
		}
		service := NewService(mockSlack, images.NewMockImageClient())

		// Execute
		first, err := service.ResolveUser(context.Background(), "U1")
		require.NoError(t, err)
		second, err := service.ResolveUser(context.Background(), "U1")
		require.NoError(t, err)

		// Assert
		assert.Equal(t, "alice", first.DisplayName)
		assert.Equal(t, first, second)
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})

	t.Run("Success_ConcurrentCallersShareOneFetch", func(t *testing.T) {
		// Setup
		var calls int32
		release := make(chan struct{})
		mockSlack := slack.NewMockSlackClient()
		mockSlack.MockGetUserInfoContext = func(ctx context.Context, userID string) (*clients.SlackUser, error) {
			atomic.AddInt32(&calls, 1)
			<-release
			return &clients.SlackUser{ID: userID, Name: "alice"}, nil
		}
		service := NewService(mockSlack, images.NewMockImageClient())

		// Execute
		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				actor, err := service.ResolveUser(context.Background(), "U1")
				assert.NoError(t, err)
				assert.Equal(t, "alice", actor.DisplayName)
			}()
		}
		close(release)
		wg.Wait()

		// Assert
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})

	t.Run("Error_FailureNotCached", func(t *testing.T) {
		// Setup
		var calls int32
		mockSlack := slack.NewMockSlackClient()
		mockSlack.MockGetUserInfoContext = func(ctx context.Context, userID string) (*clients.SlackUser, error) {
			if atomic.AddInt32(&calls, 1) == 1 {
				return nil, fmt.Errorf("upstream down")
			}
			return &clients.SlackUser{ID: userID, Name: "alice"}, nil
		}
		service := NewService(mockSlack, images.NewMockImageClient())

		// Execute
		_, err := service.ResolveUser(context.Background(), "U1")
		require.Error(t, err)
		actor, err := service.ResolveUser(context.Background(), "U1")

		// Assert - the second call retried and succeeded
		require.NoError(t, err)
		assert.Equal(t, "alice", actor.DisplayName)
		assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	})

	t.Run("Success_DisplayNamePriority", func(t *testing.T) {
		mockSlack := slack.NewMockSlackClient()
		mockSlack.MockGetUserInfoContext = func(ctx context.Context, userID string) (*clients.SlackUser, error) {
			return &clients.SlackUser{
				ID:   userID,
				Name: "handle",
				Profile: clients.SlackUserProfile{
					RealName: "Alice Example",
				},
			}, nil
		}
		service := NewService(mockSlack, images.NewMockImageClient())

		actor, err := service.ResolveUser(context.Background(), "U1")
		require.NoError(t, err)
		assert.Equal(t, "Alice Example", actor.DisplayName)
	})
}

func TestResolveBot(t *testing.T) {
	t.Run("Success_UsesSmallestIcon", func(t *testing.T) {
		mockSlack := slack.NewMockSlackClient()
		mockSlack.MockGetBotInfoContext = func(ctx context.Context, botID string) (*clients.SlackBot, error) {
			return &clients.SlackBot{
				ID:   botID,
				Name: "deploybot",
				Icons: clients.SlackBotIcons{
					Image48: "https://example.com/b48.png",
					Image72: "https://example.com/b72.png",
				},
			}, nil
		}
		service := NewService(mockSlack, images.NewMockImageClient())

		actor, err := service.ResolveBot(context.Background(), "B1")
		require.NoError(t, err)
		assert.Equal(t, "deploybot", actor.DisplayName)
		assert.Equal(t, "https://example.com/b48.png", actor.AvatarURL)
	})
}

func TestImageLookups(t *testing.T) {
	t.Run("Success_PublicAndPrivateAreSeparateKeys", func(t *testing.T) {
		// Setup
		var publicCalls, privateCalls int32
		mockImages := images.NewMockImageClient()
		mockImages.MockFetchImage = func(ctx context.Context, url string) ([]byte, error) {
			atomic.AddInt32(&publicCalls, 1)
			return []byte("public"), nil
		}
		mockImages.MockFetchProtectedImage = func(ctx context.Context, url string) ([]byte, error) {
			atomic.AddInt32(&privateCalls, 1)
			return []byte("private"), nil
		}
		service := NewService(slack.NewMockSlackClient(), mockImages)

		// Execute - same URL through both paths, twice each
		url := "https://example.com/pic.png"
		for i := 0; i < 2; i++ {
			data, err := service.PublicImage(context.Background(), url)
			require.NoError(t, err)
			assert.Equal(t, []byte("public"), data)

			data, err = service.PrivateImage(context.Background(), url)
			require.NoError(t, err)
			assert.Equal(t, []byte("private"), data)
		}

		// Assert - one fetch per distinct key
		assert.Equal(t, int32(1), atomic.LoadInt32(&publicCalls))
		assert.Equal(t, int32(1), atomic.LoadInt32(&privateCalls))
	})
}
