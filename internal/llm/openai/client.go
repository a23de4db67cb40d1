package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"jobhunt-backend/internal/llm"
)

const defaultAPIURL = "https://api.openai.com/v1/chat/completions"

// Client implements llm.Client using OpenAI Chat Completions. One request per
// generation, no internal retry.
type Client struct {
	apiKey     string
	model      string
	apiURL     string
	httpClient *http.Client
}

// NewClient constructs a new OpenAI client. A blank API key is a
// precondition failure, reported before any call is attempted.
func NewClient(apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, llm.ErrMissingAPIKey
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("LLM_MODEL is required for OpenAI")
	}
	timeout := 120 * time.Second
	if raw := strings.TrimSpace(os.Getenv("OPENAI_TIMEOUT_SECONDS")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			timeout = time.Duration(parsed) * time.Second
		}
	}
	return &Client{
		apiKey: apiKey,
		model:  model,
		apiURL: defaultAPIURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage *struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage,omitempty"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// GenerateLetter sends the messages and returns the complete letter text.
func (c *Client) GenerateLetter(ctx context.Context, messages []llm.Message) (string, error) {
	reqMessages := make([]chatMessage, 0, len(messages))
	for _, m := range messages {
		reqMessages = append(reqMessages, chatMessage{Role: m.Role, Content: m.Content})
	}
	payload, err := json.Marshal(chatRequest{
		Model:    c.model,
		Messages: reqMessages,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
			return "", fmt.Errorf("%w: request timeout: %v", llm.ErrGeneration, err)
		}
		return "", fmt.Errorf("%w: %v", llm.ErrGeneration, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", llm.ErrGeneration, err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		if resp.StatusCode >= 400 {
			return "", fmt.Errorf("%w: http status %d: %s", llm.ErrGeneration, resp.StatusCode, strings.TrimSpace(string(body)))
		}
		return "", fmt.Errorf("%w: response parse: %v", llm.ErrGeneration, err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("%w: %s (%s)", llm.ErrGeneration, parsed.Error.Message, parsed.Error.Type)
	}
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("%w: http status %d: %s", llm.ErrGeneration, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("%w: response missing choices", llm.ErrGeneration)
	}

	content := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("%w: response empty content", llm.ErrGeneration)
	}

	logUsage(c.model, parsed.Usage)
	return content, nil
}

func logUsage(model string, usage *struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}) {
	if usage == nil {
		log.Printf("llm response model=%s", model)
		return
	}
	log.Printf("llm response model=%s prompt_tokens=%d completion_tokens=%d total_tokens=%d",
		model, usage.PromptTokens, usage.CompletionTokens, usage.TotalTokens)
}

var _ llm.Client = (*Client)(nil)
