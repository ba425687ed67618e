package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type SlackConfig struct {
	// BotToken (xoxb-) authorizes Web API lookups.
	BotToken string
	// UserToken (xoxp-) authorizes private file downloads; optional.
	UserToken string
	// SigningSecret enables webhook signature verification; optional.
	SigningSecret string
}

// IsConfigured returns true if all required Slack configuration is present
func (c SlackConfig) IsConfigured() bool {
	return c.BotToken != ""
	// Note: UserToken and SigningSecret are optional
}

type TunnelConfig struct {
	// ForwarderName is the serveo subdomain forwarding to the local port.
	ForwarderName string
}

// IsConfigured returns true if the tunnel should be started
func (c TunnelConfig) IsConfigured() bool {
	return c.ForwarderName != ""
}

type AppConfig struct {
	Port string // Optional with default "3030"

	// IgnoreChannels lists channel names suppressed entirely from the feed,
	// case-insensitive, leading '#' optional.
	IgnoreChannels []string

	SlackConfig  SlackConfig
	TunnelConfig TunnelConfig
}

func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("⚠️ Could not load .env file, continuing with system env vars")
	}

	botToken, err := getEnvRequired("SLACK_BOT_USER_OAUTH_ACCESS_TOKEN")
	if err != nil {
		return nil, err
	}

	config := &AppConfig{
		Port:           getEnvWithDefault("PORT", "3030"),
		IgnoreChannels: parseIgnoreChannels(os.Getenv("IGNORE_CHANNELS")),

		SlackConfig: SlackConfig{
			BotToken:      botToken,
			UserToken:     os.Getenv("SLACK_OAUTH_ACCESS_TOKEN"),
			SigningSecret: os.Getenv("SLACK_SIGNING_SECRET"),
		},

		TunnelConfig: TunnelConfig{
			ForwarderName: os.Getenv("FORWARDER_NAME"),
		},
	}

	if config.SlackConfig.UserToken == "" {
		log.Printf("⚠️ No user OAuth token configured - private file images will not render")
	}
	if config.SlackConfig.SigningSecret == "" {
		log.Printf("⚠️ No signing secret configured - webhook signatures will not be verified")
	}
	if !config.TunnelConfig.IsConfigured() {
		log.Printf("⚠️ No forwarder name configured - tunnel disabled, expecting external ingress")
	}

	return config, nil
}

// parseIgnoreChannels splits the comma-separated IGNORE_CHANNELS value
func parseIgnoreChannels(value string) []string {
	if value == "" {
		return nil
	}

	var channels []string
	for _, name := range strings.Split(value, ",") {
		if name = strings.TrimSpace(name); name != "" {
			channels = append(channels, name)
		}
	}
	return channels
}

func getEnvRequired(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set", key)
	}
	return value, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
