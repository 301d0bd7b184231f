// Package prompt holds the stage prompt templates and renders them with
// named parameters. Rendering fails on unknown stages and on missing
// placeholders so a template drift never reaches the model silently.
package prompt

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
)

// Store renders the stage templates. Built-in templates are compiled at
// construction; a stage may be overridden by a <stage>.tmpl file in the
// override directory.
type Store struct {
	templates map[Stage]*template.Template
}

type StoreOption func(*storeConfig)

type storeConfig struct {
	overrideDir string
}

// WithOverrideDir points the store at a directory of <stage>.tmpl files.
// Stages without an override file keep their built-in template.
func WithOverrideDir(dir string) StoreOption {
	return func(c *storeConfig) {
		c.overrideDir = dir
	}
}

// NewStore compiles every stage template. A malformed built-in or override
// template is a construction error, not a render-time surprise.
func NewStore(opts ...StoreOption) (*Store, error) {
	var cfg storeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Store{templates: make(map[Stage]*template.Template, len(builtinSources))}

	for stage, source := range builtinSources {
		if cfg.overrideDir != "" {
			path := filepath.Join(cfg.overrideDir, string(stage)+".tmpl")
			data, err := os.ReadFile(path)
			if err == nil {
				source = string(data)
			} else if !os.IsNotExist(err) {
				return nil, fmt.Errorf("reading prompt override %s: %w", path, err)
			}
		}

		tmpl, err := template.New(string(stage)).
			Option("missingkey=error").
			Parse(source)
		if err != nil {
			return nil, fmt.Errorf("parsing %s template: %w", stage, err)
		}
		s.templates[stage] = tmpl
	}

	return s, nil
}

// Render executes the stage template with the given parameters. Every
// placeholder the template names must be present in params.
func (s *Store) Render(stage Stage, params map[string]string) (string, error) {
	tmpl, ok := s.templates[stage]
	if !ok {
		return "", fmt.Errorf("unknown prompt stage %q", stage)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, params); err != nil {
		return "", fmt.Errorf("executing %s template: %w", stage, err)
	}
	return buf.String(), nil
}
