package slack

import (
	"context"

	"teamwatch/clients"
)

// MockSlackClient implements SlackClient interface for testing
type MockSlackClient struct {
	// User operations
	MockGetUserInfoContext func(ctx context.Context, userID string) (*clients.SlackUser, error)

	// Bot operations
	MockGetBotInfoContext func(ctx context.Context, botID string) (*clients.SlackBot, error)

	// Conversation operations
	MockGetConversationInfoContext func(ctx context.Context, channelID string) (*clients.SlackChannel, error)
}

// NewMockSlackClient creates a new mock Slack client
func NewMockSlackClient() *MockSlackClient {
	return &MockSlackClient{}
}

// GetUserInfoContext implements SlackClient interface for testing
func (m *MockSlackClient) GetUserInfoContext(ctx context.Context, userID string) (*clients.SlackUser, error) {
	if m.MockGetUserInfoContext != nil {
		return m.MockGetUserInfoContext(ctx, userID)
	}

	// Default mock response for testing
	return &clients.SlackUser{
		ID:   userID,
		Name: "testuser",
		Profile: clients.SlackUserProfile{
			DisplayName: "testuser",
			Image24:     "https://example.com/avatar_24.png",
		},
	}, nil
}

// GetBotInfoContext implements SlackClient interface for testing
func (m *MockSlackClient) GetBotInfoContext(ctx context.Context, botID string) (*clients.SlackBot, error) {
	if m.MockGetBotInfoContext != nil {
		return m.MockGetBotInfoContext(ctx, botID)
	}

	// Default mock response
	return &clients.SlackBot{
		ID:   botID,
		Name: "testbot",
		Icons: clients.SlackBotIcons{
			Image36: "https://example.com/bot_36.png",
		},
	}, nil
}

// GetConversationInfoContext implements SlackClient interface for testing
func (m *MockSlackClient) GetConversationInfoContext(
	ctx context.Context,
	channelID string,
) (*clients.SlackChannel, error) {
	if m.MockGetConversationInfoContext != nil {
		return m.MockGetConversationInfoContext(ctx, channelID)
	}

	// Default mock response
	return &clients.SlackChannel{
		ID:   channelID,
		Name: "general",
	}, nil
}
