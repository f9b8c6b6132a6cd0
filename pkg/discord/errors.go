package discord

import "errors"

var (
	ErrWebhookRequired = errors.New("discord: webhook id and token are required")
	ErrEmbedTooLong    = errors.New("discord: embed exceeds maximum length")
)
