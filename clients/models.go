package clients

// SlackUser represents a Slack user
type SlackUser struct {
	ID      string
	Name    string
	Profile SlackUserProfile
}

// SlackUserProfile represents a Slack user's profile information
type SlackUserProfile struct {
	DisplayName string
	RealName    string
	Image24     string
	Image32     string
	Image48     string
	Image72     string
}

// SlackBot represents a Slack bot/app account
type SlackBot struct {
	ID    string
	Name  string
	Icons SlackBotIcons
}

// SlackBotIcons holds the avatar URLs published for a bot, by size
type SlackBotIcons struct {
	Image36 string
	Image48 string
	Image72 string
}

// SlackChannel represents a Slack conversation
type SlackChannel struct {
	ID   string
	Name string
}
