package openai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"resty.dev/v3"

	"github.com/wordleglobal/glossary/internal/inference"
)

const (
	DefaultBaseURL = "https://api.openai.com/v1"
	DefaultModel   = "gpt-4o-mini"
	DefaultTimeout = 10 * time.Second

	defineWordMaxTokens = 80
)

type Config struct {
	APIKey           string
	Model            string
	BaseURL          string
	Timeout          time.Duration
	MaxRetryAttempts uint
}

type Client struct {
	httpClient       *resty.Client
	model            string
	maxRetryAttempts uint
}

var _ inference.Client = (*Client)(nil)

func NewClient(config Config) *Client {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := config.Model
	if model == "" {
		model = DefaultModel
	}
	timeout := config.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(timeout)
	client.SetHeader("Authorization", "Bearer "+config.APIKey)
	client.SetHeader("Content-Type", "application/json")

	return &Client{
		httpClient:       client,
		model:            model,
		maxRetryAttempts: config.MaxRetryAttempts,
	}
}

func (client Client) Close() error {
	return client.httpClient.Close()
}

// GetModel returns the model name configured for this client
func (client Client) GetModel() string {
	return client.model
}

type ChatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float32   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Role string

const RoleUser Role = "user"

type ChatCompletionResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

type Choice struct {
	Index        int           `json:"index"`
	Message      ChoiceMessage `json:"message"`
	FinishReason string        `json:"finish_reason"`
}

type ChoiceMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// DefineWord implements the inference.Client interface
func (client *Client) DefineWord(
	ctx context.Context,
	params inference.DefineWordRequest,
) (inference.DefineWordResponse, error) {
	var result inference.DefineWordResponse
	if err := withRetry(ctx, client.maxRetryAttempts, func() error {
		response, err := client.defineWord(ctx, params)
		if err != nil {
			return err
		}
		result = response
		return nil
	}); err != nil {
		return inference.DefineWordResponse{}, err
	}
	return result, nil
}

func defineWordPrompt(params inference.DefineWordRequest) string {
	return fmt.Sprintf(
		"Define the %s word '%s' in one short sentence in English. "+
			"If it has a clear part of speech, prefix with it (e.g. 'noun: ...'). "+
			"If you're not confident about this word, respond with just 'UNKNOWN'.",
		params.LanguageName, params.Word,
	)
}

func (client *Client) defineWord(
	ctx context.Context,
	params inference.DefineWordRequest,
) (inference.DefineWordResponse, error) {
	requestBody := ChatCompletionRequest{
		Model:       client.model,
		Temperature: 0,
		MaxTokens:   defineWordMaxTokens,
		Messages: []Message{
			{Role: RoleUser, Content: defineWordPrompt(params)},
		},
	}

	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(requestBody).
		SetResult(&ChatCompletionResponse{}).
		Post("/chat/completions")
	if err != nil {
		return inference.DefineWordResponse{}, fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return inference.DefineWordResponse{}, fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	responseBody := response.Result().(*ChatCompletionResponse)
	if responseBody == nil || len(responseBody.Choices) == 0 {
		return inference.DefineWordResponse{}, fmt.Errorf("empty response body or choices: %s", response.String())
	}

	content := strings.TrimSpace(responseBody.Choices[0].Message.Content)
	slog.Default().Debug("openai response content",
		"word", params.Word,
		"language", params.LanguageName,
		"response", content,
		"total_tokens", responseBody.Usage.TotalTokens,
	)
	return inference.DefineWordResponse{Text: content}, nil
}
