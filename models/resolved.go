package models

// ActorKind distinguishes human users from bot/app accounts.
type ActorKind string

const (
	ActorKindUser ActorKind = "user"
	ActorKindBot  ActorKind = "bot"
)

// Actor is a resolved message author: a Slack user or bot ID translated into
// something displayable.
type Actor struct {
	Kind        ActorKind
	ID          string
	DisplayName string
	AvatarURL   string
}

// Channel is a resolved Slack conversation.
type Channel struct {
	ID   string
	Name string
}
