package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	colorGreen = 0x2ECC71 // value rose
	colorRed   = 0xE74C3C // value dropped
	colorGray  = 0x95A5A6 // run summaries

	summaryDurationUnit = time.Second
)

// DiscordNotifier implements Notifier via Discord webhook.
type DiscordNotifier struct {
	webhookURL string
	client     *http.Client
}

// NewDiscordNotifier creates a new DiscordNotifier.
func NewDiscordNotifier(webhookURL string, opts ...DiscordOption) *DiscordNotifier {
	d := &DiscordNotifier{
		webhookURL: webhookURL,
		client:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DiscordOption configures a DiscordNotifier.
type DiscordOption func(*DiscordNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) DiscordOption {
	return func(d *DiscordNotifier) {
		d.client = c
	}
}

// discordWebhookPayload is the Discord webhook JSON structure.
type discordWebhookPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string              `json:"title"`
	Color       int                 `json:"color"`
	Description string              `json:"description,omitempty"`
	Fields      []discordEmbedField `json:"fields,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// SendValueChange sends a value-change alert as a Discord embed.
func (d *DiscordNotifier) SendValueChange(ctx context.Context, change *ValueChange) error {
	payload := discordWebhookPayload{
		Embeds: []discordEmbed{buildValueChangeEmbed(change)},
	}
	return d.post(ctx, payload)
}

// SendRunSummary sends a refresh run summary as a Discord embed.
func (d *DiscordNotifier) SendRunSummary(ctx context.Context, summary *RunSummary) error {
	payload := discordWebhookPayload{
		Embeds: []discordEmbed{
			{
				Title: fmt.Sprintf("Refresh complete: %s", summary.JobName),
				Color: colorGray,
				Fields: []discordEmbedField{
					{Name: "Items refreshed", Value: fmt.Sprintf("%d", summary.Refreshed), Inline: true},
					{Name: "Errors", Value: fmt.Sprintf("%d", summary.Errors), Inline: true},
					{Name: "Duration", Value: summary.Duration.Round(summaryDurationUnit).String(), Inline: true},
				},
			},
		},
	}
	return d.post(ctx, payload)
}

func buildValueChangeEmbed(change *ValueChange) discordEmbed {
	title := change.ItemTitle
	if change.Platform != "" {
		title = fmt.Sprintf("%s (%s)", change.ItemTitle, change.Platform)
	}

	direction := "up"
	color := colorGreen
	if change.ChangePct < 0 {
		direction = "down"
		color = colorRed
	}

	return discordEmbed{
		Title: fmt.Sprintf("Value %s %.1f%%: %s", direction, abs(change.ChangePct), title),
		Color: color,
		Fields: []discordEmbedField{
			{Name: "Was", Value: fmt.Sprintf("$%.2f", change.OldValue), Inline: true},
			{Name: "Now", Value: fmt.Sprintf("$%.2f", change.NewValue), Inline: true},
			{Name: "Confidence", Value: change.Confidence, Inline: true},
			{Name: "Sample size", Value: fmt.Sprintf("%d", change.SampleSize), Inline: true},
		},
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func (d *DiscordNotifier) post(ctx context.Context, payload discordWebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		d.webhookURL,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending discord webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("discord rate limited (429)")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("discord returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("discord returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}
