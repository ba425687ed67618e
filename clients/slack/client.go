package slack

import (
	"context"

	"github.com/slack-go/slack"

	"teamwatch/clients"
)

// SlackClient implements the clients.SlackClient interface using the
// slack-go/slack SDK
type SlackClient struct {
	*slack.Client
}

// NewSlackClient creates a new Slack client with the provided bot token
func NewSlackClient(authToken string) clients.SlackClient {
	return &SlackClient{
		Client: slack.New(authToken),
	}
}

// GetUserInfoContext gets information about a Slack user
func (c *SlackClient) GetUserInfoContext(ctx context.Context, userID string) (*clients.SlackUser, error) {
	user, err := c.Client.GetUserInfoContext(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &clients.SlackUser{
		ID:   user.ID,
		Name: user.Name,
		Profile: clients.SlackUserProfile{
			DisplayName: user.Profile.DisplayName,
			RealName:    user.Profile.RealName,
			Image24:     user.Profile.Image24,
			Image32:     user.Profile.Image32,
			Image48:     user.Profile.Image48,
			Image72:     user.Profile.Image72,
		},
	}, nil
}

// GetBotInfoContext gets information about a Slack bot/app account
func (c *SlackClient) GetBotInfoContext(ctx context.Context, botID string) (*clients.SlackBot, error) {
	bot, err := c.Client.GetBotInfoContext(ctx, slack.GetBotInfoParameters{Bot: botID})
	if err != nil {
		return nil, err
	}

	return &clients.SlackBot{
		ID:   bot.ID,
		Name: bot.Name,
		Icons: clients.SlackBotIcons{
			Image36: bot.Icons.Image36,
			Image48: bot.Icons.Image48,
			Image72: bot.Icons.Image72,
		},
	}, nil
}

// GetConversationInfoContext gets information about a Slack conversation
func (c *SlackClient) GetConversationInfoContext(
	ctx context.Context,
	channelID string,
) (*clients.SlackChannel, error) {
	channel, err := c.Client.GetConversationInfoContext(ctx, &slack.GetConversationInfoInput{
		ChannelID: channelID,
	})
	if err != nil {
		return nil, err
	}

	return &clients.SlackChannel{
		ID:   channel.ID,
		Name: channel.Name,
	}, nil
}
