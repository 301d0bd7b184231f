// Package llm wraps an OpenAI-compatible chat-completion API behind a
// single text-generation call with per-call limits.
package llm

import "context"

// TextGenerator produces text from a single prompt. Implementations must be
// safe for concurrent use.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string, opts ...GenerateOption) (string, error)
}

// GenerateOption tunes a single GenerateText call.
type GenerateOption func(*generateSettings)

type generateSettings struct {
	maxTokens   int
	temperature float64
	stream      bool
}

func defaultGenerateSettings() generateSettings {
	return generateSettings{
		maxTokens:   1024,
		temperature: 0.7,
	}
}

// WithMaxTokens caps the completion length for this call.
func WithMaxTokens(n int) GenerateOption {
	return func(s *generateSettings) {
		if n > 0 {
			s.maxTokens = n
		}
	}
}

// WithTemperature sets the sampling temperature, clamped to [0, 2].
func WithTemperature(t float64) GenerateOption {
	return func(s *generateSettings) {
		s.temperature = clampTemperature(t)
	}
}

// WithStreaming requests streamed delivery. Streaming is not fully
// implemented: the call is issued synchronously and the whole text is
// returned when available.
func WithStreaming() GenerateOption {
	return func(s *generateSettings) {
		s.stream = true
	}
}

func clampTemperature(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 2 {
		return 2
	}
	return t
}
