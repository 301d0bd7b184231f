package llm

import (
	"context"
	"strings"
	"sync"
)

// MockGenerator provides scripted responses for testing. Responses are
// matched by substring against the prompt, in the order they were added;
// unmatched prompts return the default response.
type MockGenerator struct {
	mu       sync.Mutex
	rules    []mockRule
	fallback string
	err      error
	Prompts  []string
	Settings []GenerateSettingsSnapshot
}

type mockRule struct {
	substring string
	response  string
}

// GenerateSettingsSnapshot records the effective per-call settings a mock
// received, for assertions on token budgets and temperatures.
type GenerateSettingsSnapshot struct {
	MaxTokens   int
	Temperature float64
	Stream      bool
}

// NewMockGenerator creates a mock that returns response for every prompt.
func NewMockGenerator(response string) *MockGenerator {
	return &MockGenerator{fallback: response}
}

// Respond adds a scripted response for prompts containing substring.
func (m *MockGenerator) Respond(substring, response string) *MockGenerator {
	m.rules = append(m.rules, mockRule{substring: substring, response: response})
	return m
}

// Fail makes every call return err.
func (m *MockGenerator) Fail(err error) *MockGenerator {
	m.err = err
	return m
}

func (m *MockGenerator) GenerateText(ctx context.Context, prompt string, opts ...GenerateOption) (string, error) {
	settings := defaultGenerateSettings()
	for _, opt := range opts {
		opt(&settings)
	}

	m.mu.Lock()
	m.Prompts = append(m.Prompts, prompt)
	m.Settings = append(m.Settings, GenerateSettingsSnapshot{
		MaxTokens:   settings.maxTokens,
		Temperature: settings.temperature,
		Stream:      settings.stream,
	})
	m.mu.Unlock()

	if m.err != nil {
		return "", m.err
	}

	for _, rule := range m.rules {
		if strings.Contains(prompt, rule.substring) {
			return rule.response, nil
		}
	}
	return m.fallback, nil
}

// CallCount reports how many prompts the mock has seen.
func (m *MockGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Prompts)
}
