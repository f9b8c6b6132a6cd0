package discord

import "context"

// IDiscord posts operational messages to a Discord channel webhook.
type IDiscord interface {
	SendEmbed(ctx context.Context, options MessageOptions) error
	SendError(ctx context.Context, title, description string, err error) error
	SendWarning(ctx context.Context, title, description string) error
	ReportBug(ctx context.Context, message string) error
	Close() error
}
