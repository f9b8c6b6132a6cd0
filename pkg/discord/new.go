package discord

import (
	"net/http"
	"time"

	"ttiring-notification-srv/pkg/log"
)

// DefaultConfig returns the production webhook settings.
func DefaultConfig() Config {
	return Config{
		BaseURL:    defaultBaseURL,
		Timeout:    DefaultTimeout,
		RetryCount: DefaultRetryCount,
		RetryDelay: DefaultRetryDelay,
		Username:   DefaultUsername,
	}
}

// New builds a Discord client for the given webhook.
func New(l log.Logger, webhook Webhook, cfg Config) (IDiscord, error) {
	if webhook.ID == "" || webhook.Token == "" {
		return nil, ErrWebhookRequired
	}

	def := DefaultConfig()
	if cfg.BaseURL == "" {
		cfg.BaseURL = def.BaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.RetryCount == 0 {
		cfg.RetryCount = def.RetryCount
	}
	if cfg.RetryDelay == 0 {
		cfg.RetryDelay = def.RetryDelay
	}
	if cfg.Username == "" {
		cfg.Username = def.Username
	}

	return &discordImpl{
		l:       l,
		webhook: webhook,
		cfg:     cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     30 * time.Second,
			},
		},
	}, nil
}

func (d *discordImpl) Close() error {
	d.client.CloseIdleConnections()
	return nil
}
