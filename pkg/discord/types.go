package discord

import (
	"net/http"
	"time"

	"ttiring-notification-srv/pkg/log"
)

type MessageType string

const (
	MessageTypeInfo    MessageType = "info"
	MessageTypeSuccess MessageType = "success"
	MessageTypeWarning MessageType = "warning"
	MessageTypeError   MessageType = "error"
)

type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

type EmbedFooter struct {
	Text string `json:"text"`
}

type Embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	URL         string       `json:"url,omitempty"`
	Color       int          `json:"color,omitempty"`
	Timestamp   string       `json:"timestamp,omitempty"`
	Footer      *EmbedFooter `json:"footer,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"`
}

// WebhookPayload is the JSON body accepted by the Discord webhook endpoint.
type WebhookPayload struct {
	Content  string  `json:"content,omitempty"`
	Username string  `json:"username,omitempty"`
	Embeds   []Embed `json:"embeds,omitempty"`
}

// MessageOptions describes a single embed message.
type MessageOptions struct {
	Type        MessageType
	Title       string
	Description string
	URL         string
	Fields      []EmbedField
	Footer      *EmbedFooter
	Timestamp   time.Time
}

// Config tunes the webhook client. Zero values fall back to the defaults.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	RetryCount uint
	RetryDelay time.Duration
	Username   string
}

// Webhook identifies a Discord channel webhook.
type Webhook struct {
	ID    string
	Token string
}

type discordImpl struct {
	l       log.Logger
	webhook Webhook
	cfg     Config
	client  *http.Client
}
