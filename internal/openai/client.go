// Package openai implements the language-model chat client used for
// summarization.
package openai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/guerrerocarlos/rescuetime-reporter/internal/contract"
)

// Client calls the chat-completion endpoint with a fixed model and sampling
// temperature.
type Client struct {
	client      *resty.Client
	model       string
	temperature float64
}

// NewClient creates an OpenAI chat client from the validated config.
func NewClient(cfg *contract.Config, key string) *Client {
	c := resty.New().
		SetBaseURL(cfg.OpenAIBaseURL).
		SetAuthToken(key).
		SetHeader("Content-Type", "application/json").
		SetTimeout(2 * time.Minute)

	return &Client{
		client:      c,
		model:       cfg.Model,
		temperature: cfg.Temperature,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

// Complete sends the system and user messages and returns the trimmed text of
// the first choice. An empty system message is omitted so summarization can
// proceed without instructions.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	var messages []chatMessage
	if system != "" {
		messages = append(messages, chatMessage{Role: "system", Content: system})
	}
	messages = append(messages, chatMessage{Role: "user", Content: user})

	var out chatResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(&chatRequest{
			Model:       c.model,
			Messages:    messages,
			Temperature: c.temperature,
		}).
		SetResult(&out).
		SetError(&out).
		Post("/v1/chat/completions")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		if out.Error != nil {
			return "", fmt.Errorf("chat completion: %s (%s)", out.Error.Message, out.Error.Type)
		}
		return "", fmt.Errorf("chat completion returned %s", resp.Status())
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}
