package clients

import "context"

// SlackClient is the read-only surface of the Slack Web API this tool
// consumes: lookup-by-ID for users, bots and channels.
type SlackClient interface {
	GetUserInfoContext(ctx context.Context, userID string) (*SlackUser, error)
	GetBotInfoContext(ctx context.Context, botID string) (*SlackBot, error)
	GetConversationInfoContext(ctx context.Context, channelID string) (*SlackChannel, error)
}

// ImageClient fetches raw image bytes for terminal rendering. Protected
// fetches are authorized with the user OAuth token, which is distinct from
// the bot token used for Web API calls.
type ImageClient interface {
	FetchImage(ctx context.Context, url string) ([]byte, error)
	FetchProtectedImage(ctx context.Context, url string) ([]byte, error)
}
