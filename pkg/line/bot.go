package line

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Bot is the LINE Messaging API client.
type Bot struct {
	accessToken string
	apiURL      string
	httpClient  *http.Client
}

// NewBot creates a new LINE Messaging API client with the given channel access token.
func NewBot(accessToken string) *Bot {
	return &Bot{
		accessToken: accessToken,
		apiURL:      "https://api.line.me/v2/bot",
		httpClient:  &http.Client{},
	}
}

// SetAPIURL overrides the default LINE API URL for testing purposes.
func (b *Bot) SetAPIURL(url string) {
	b.apiURL = url
}

// Reply sends a text message in response to a webhook event's reply token.
func (b *Bot) Reply(replyToken, text string) error {
	payload := replyRequest{
		ReplyToken: replyToken,
		Messages:   []replyMessage{{Type: "text", Text: text}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal reply: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, b.apiURL+"/message/reply", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create reply request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+b.accessToken)

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send reply: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("line reply API error %d: %s", resp.StatusCode, string(raw))
	}

	return nil
}
