// Package llm wraps the chat-completion client used when no automation
// command matched. Failures are returned as displayable strings, never as
// errors: callers render whatever comes back.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	historyWindow = 10 // turns sent with each request
	historyCap    = 50 // turns kept in memory
)

// Turn is one side of a conversation exchange.
type Turn struct {
	Role    string
	Content string
}

// Client talks to an OpenAI-compatible chat endpoint and keeps the
// rolling conversation history.
type Client struct {
	client     *openai.Client
	model      openai.ChatModel
	system     string
	maxRetries int
	timeout    time.Duration
	backoff    time.Duration
	logger     *log.Logger

	mu      sync.Mutex
	history []Turn
}

// New returns a client. With an empty apiKey the client stays unconfigured
// and Query answers with a setup hint instead of calling out.
func New(apiKey, baseURL, model, assistantName string, maxRetries int, timeout time.Duration, logger *log.Logger) *Client {
	c := &Client{
		model:      openai.ChatModel(model),
		system:     systemPrompt(assistantName),
		maxRetries: maxRetries,
		timeout:    timeout,
		backoff:    time.Second,
		logger:     logger,
	}
	if apiKey == "" {
		return c
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0), // retry policy lives here, not in the SDK
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	client := openai.NewClient(opts...)
	c.client = &client
	return c
}

func systemPrompt(name string) string {
	return fmt.Sprintf("You are %s, a friendly and helpful AI assistant. "+
		"You are cute, cheerful, and always eager to help. Keep responses concise and friendly. "+
		"Be supportive and encouraging.", name)
}

// Query sends prompt with the recent history and returns displayable text.
// Rate limits are retried with exponential backoff up to the retry
// ceiling; every terminal failure becomes a friendly message.
func (c *Client) Query(ctx context.Context, prompt string) string {
	if c.client == nil {
		return "Language model is not configured. Set OPENAI_API_KEY in your .env file."
	}

	params := openai.ChatCompletionNewParams{
		Model:    c.model,
		Messages: c.buildMessages(prompt),
	}

	var timedOut bool
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
		resp, err := c.client.Chat.Completions.New(reqCtx, params)
		cancel()

		if err == nil {
			if len(resp.Choices) == 0 {
				return "I'm sorry, I couldn't generate a response. Please try again."
			}
			text := strings.TrimSpace(resp.Choices[0].Message.Content)
			c.remember(prompt, text)
			return text
		}

		var apiErr *openai.Error
		switch {
		case errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests:
			if attempt == c.maxRetries {
				continue
			}
			wait := c.backoff << attempt
			c.logger.Printf("llm: rate limited, waiting %s before retry %d", wait, attempt+1)
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return "Request canceled."
			}
		case errors.As(err, &apiErr) && (apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden):
			return "API key error. Please check your language model configuration."
		case errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusBadRequest:
			return "The language model rejected that request. Please rephrase and try again."
		case errors.Is(err, context.DeadlineExceeded):
			c.logger.Printf("llm: request timeout on attempt %d", attempt+1)
			timedOut = true
		case errors.Is(err, context.Canceled):
			return "Request canceled."
		default:
			c.logger.Printf("llm: query: %v", err)
			return "Cannot reach the language model. Please check your internet connection."
		}
	}

	if timedOut {
		return "Request timed out. Please check your internet connection."
	}
	return "API rate limit exceeded. Please wait a moment and try again."
}

func (c *Client) buildMessages(prompt string) []openai.ChatCompletionMessageParamUnion {
	c.mu.Lock()
	defer c.mu.Unlock()

	messages := []openai.ChatCompletionMessageParamUnion{openai.SystemMessage(c.system)}

	start := len(c.history) - historyWindow
	if start < 0 {
		start = 0
	}
	for _, turn := range c.history[start:] {
		if turn.Role == "assistant" {
			messages = append(messages, openai.AssistantMessage(turn.Content))
		} else {
			messages = append(messages, openai.UserMessage(turn.Content))
		}
	}

	return append(messages, openai.UserMessage(prompt))
}

func (c *Client) remember(prompt, reply string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.history = append(c.history, Turn{Role: "user", Content: prompt}, Turn{Role: "assistant", Content: reply})
	if len(c.history) > historyCap {
		c.history = c.history[len(c.history)-historyCap:]
	}
}

// History returns a copy of the conversation so far.
func (c *Client) History() []Turn {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Turn(nil), c.history...)
}

// ClearHistory forgets the conversation.
func (c *Client) ClearHistory() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.history = nil
}
