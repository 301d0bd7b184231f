package llm

import (
	"errors"
	"fmt"
)

var errNoChoices = errors.New("no choices in response")

// ConfigError covers every way the provider can fail: a missing credential
// at construction, and transport or API failures at call time.
type ConfigError struct {
	Msg string
	Err error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError wraps a provider failure with context.
func NewConfigError(msg string, err error) *ConfigError {
	return &ConfigError{Msg: msg, Err: err}
}
