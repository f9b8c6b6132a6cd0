package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/codeGROOVE-dev/retry"
)

func (d *discordImpl) url() string {
	return fmt.Sprintf("%s/%s/%s", d.cfg.BaseURL, d.webhook.ID, d.webhook.Token)
}

// post delivers payload, retrying network errors, 429 and 5xx responses.
func (d *discordImpl) post(ctx context.Context, payload WebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("discord: marshal payload: %w", err)
	}

	var lastErr error
	err = retry.Do(
		func() error {
			lastErr = d.send(ctx, body)
			return lastErr
		},
		retry.Attempts(d.cfg.RetryCount),
		retry.Delay(d.cfg.RetryDelay),
		retry.Context(ctx),
		retry.OnRetry(func(n uint, err error) {
			d.l.Warnf(ctx, "pkg.discord.post: attempt %d failed: %v", n+1, err)
		}),
	)
	if err != nil {
		if lastErr != nil {
			return lastErr
		}
		return err
	}
	return nil
}

func (d *discordImpl) send(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url(), bytes.NewReader(body))
	if err != nil {
		return retry.Unrecoverable(fmt.Errorf("discord: build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", UserAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("discord: send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
	statusErr := fmt.Errorf("discord: webhook returned status %d: %s", resp.StatusCode, msg)
	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
		return statusErr
	}
	return retry.Unrecoverable(statusErr)
}

func colorFor(t MessageType) int {
	switch t {
	case MessageTypeSuccess:
		return ColorSuccess
	case MessageTypeWarning:
		return ColorWarning
	case MessageTypeError:
		return ColorError
	default:
		return ColorInfo
	}
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

func embedLength(e Embed) int {
	n := len([]rune(e.Title)) + len([]rune(e.Description))
	for _, f := range e.Fields {
		n += len([]rune(f.Name)) + len([]rune(f.Value))
	}
	return n
}

func (d *discordImpl) SendEmbed(ctx context.Context, opts MessageOptions) error {
	fields := make([]EmbedField, 0, len(opts.Fields))
	for _, f := range opts.Fields {
		fields = append(fields, EmbedField{
			Name:   truncate(f.Name, MaxFieldNameLen),
			Value:  truncate(f.Value, MaxFieldValueLen),
			Inline: f.Inline,
		})
	}

	embed := Embed{
		Title:       truncate(opts.Title, MaxTitleLen),
		Description: truncate(opts.Description, MaxDescriptionLen),
		URL:         opts.URL,
		Color:       colorFor(opts.Type),
		Footer:      opts.Footer,
		Fields:      fields,
	}
	if !opts.Timestamp.IsZero() {
		embed.Timestamp = opts.Timestamp.Format(time.RFC3339)
	}
	if embedLength(embed) > MaxEmbedLength {
		return ErrEmbedTooLong
	}

	return d.post(ctx, WebhookPayload{Username: d.cfg.Username, Embeds: []Embed{embed}})
}

func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	var fields []EmbedField
	if err != nil {
		fields = append(fields, EmbedField{Name: "Error", Value: err.Error()})
	}
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeError,
		Title:       title,
		Description: description,
		Fields:      fields,
		Timestamp:   time.Now(),
	})
}

func (d *discordImpl) SendWarning(ctx context.Context, title, description string) error {
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeWarning,
		Title:       title,
		Description: description,
		Timestamp:   time.Now(),
	})
}

// ReportBug posts a preformatted crash report.
func (d *discordImpl) ReportBug(ctx context.Context, message string) error {
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeError,
		Title:       ReportBugTitle,
		Description: "```" + truncate(message, MaxDescriptionLen-6) + "```",
		Timestamp:   time.Now(),
	})
}
