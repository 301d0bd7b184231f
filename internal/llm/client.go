package llm

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

const streamNotProcessedSentinel = "[streaming response not fully processed]"

// Client is a rate-limited TextGenerator backed by an OpenAI-compatible
// chat-completion endpoint. It holds no per-call state and is safe for
// concurrent use.
type Client struct {
	api      openai.Client
	model    string
	limiter  *rate.Limiter
	inFlight *semaphore.Weighted
	logger   *slog.Logger
}

type Option func(*clientConfig)

type clientConfig struct {
	model       string
	baseURL     string
	rpm         int
	burst       int
	maxInFlight int64
	logger      *slog.Logger
}

func WithModel(model string) Option {
	return func(c *clientConfig) {
		if model != "" {
			c.model = model
		}
	}
}

func WithBaseURL(baseURL string) Option {
	return func(c *clientConfig) {
		c.baseURL = baseURL
	}
}

func WithRateLimit(requestsPerMinute, burst int) Option {
	return func(c *clientConfig) {
		if requestsPerMinute > 0 {
			c.rpm = requestsPerMinute
		}
		if burst > 0 {
			c.burst = burst
		}
	}
}

// WithMaxInFlight bounds the number of concurrent requests to the provider.
func WithMaxInFlight(n int) Option {
	return func(c *clientConfig) {
		if n > 0 {
			c.maxInFlight = int64(n)
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// NewClient builds a client for the given credential. An empty credential is
// rejected here so a misconfigured process fails before any work is queued.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, &ConfigError{
			Msg: "找不到 OpenAI API key。請在 .env 檔案中設定 OPENAI_API_KEY 或直接傳入參數。",
		}
	}

	cfg := clientConfig{
		model:       "gpt-4.1",
		rpm:         60,
		burst:       1,
		maxInFlight: 4,
		logger:      slog.Default().With("component", "llm_client"),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	reqOpts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if cfg.baseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(cfg.baseURL))
	}

	c := &Client{
		api:      openai.NewClient(reqOpts...),
		model:    cfg.model,
		limiter:  rate.NewLimiter(rate.Limit(float64(cfg.rpm)/60.0), cfg.burst),
		inFlight: semaphore.NewWeighted(cfg.maxInFlight),
		logger:   cfg.logger,
	}

	c.logger.Debug("text generation client initialized",
		"model", c.model,
		"base_url", cfg.baseURL,
		"rate_limit_per_second", float64(c.limiter.Limit()),
		"burst_capacity", c.limiter.Burst(),
		"max_in_flight", cfg.maxInFlight)

	return c, nil
}

// GenerateText issues one chat completion for the prompt. Every failure is
// terminal for the call; there are no retries.
func (c *Client) GenerateText(ctx context.Context, prompt string, opts ...GenerateOption) (string, error) {
	settings := defaultGenerateSettings()
	for _, opt := range opts {
		opt(&settings)
	}

	requestID := uuid.NewString()
	startTime := time.Now()

	c.logger.Debug("waiting for rate limit",
		"request_id", requestID)

	if err := c.limiter.Wait(ctx); err != nil {
		c.logger.Error("rate limit wait failed",
			"request_id", requestID,
			"error", err)
		return "", NewConfigError("rate limit wait failed", err)
	}

	if err := c.inFlight.Acquire(ctx, 1); err != nil {
		c.logger.Error("in-flight slot acquisition failed",
			"request_id", requestID,
			"error", err)
		return "", NewConfigError("acquiring request slot", err)
	}
	defer c.inFlight.Release(1)

	c.logger.Debug("sending completion request",
		"request_id", requestID,
		"model", c.model,
		"prompt_length", len(prompt),
		"max_tokens", settings.maxTokens,
		"temperature", settings.temperature,
		"stream", settings.stream,
		"wait_duration_ms", time.Since(startTime).Milliseconds())

	resp, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(c.model),
		Messages:    []openai.ChatCompletionMessageParamUnion{openai.UserMessage(prompt)},
		MaxTokens:   openai.Int(int64(settings.maxTokens)),
		Temperature: openai.Float(settings.temperature),
	})
	if err != nil {
		c.logger.Error("completion request failed",
			"request_id", requestID,
			"duration_ms", time.Since(startTime).Milliseconds(),
			"error", err)
		return "", NewConfigError("OpenAI API 呼叫失敗", err)
	}

	if settings.stream {
		// Streamed delivery is not implemented; the request above ran
		// synchronously and the full text is returned when present.
		c.logger.Warn("streaming requested but not fully implemented, returning whole response",
			"request_id", requestID)
		if len(resp.Choices) == 0 {
			return streamNotProcessedSentinel, nil
		}
		return resp.Choices[0].Message.Content, nil
	}

	if len(resp.Choices) == 0 {
		c.logger.Error("no choices in completion response",
			"request_id", requestID)
		return "", NewConfigError("OpenAI API 呼叫失敗", errNoChoices)
	}

	content := resp.Choices[0].Message.Content

	c.logger.Info("completion request successful",
		"request_id", requestID,
		"duration_ms", time.Since(startTime).Milliseconds(),
		"response_length", len(content))

	return content, nil
}
