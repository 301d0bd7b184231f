// Package pokedex holds a small embedded Pokémon name table and formats
// user-supplied names into the bilingual form used in prompts.
package pokedex

import (
	"bytes"
	"embed"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

//go:embed data/pokemon.csv
var dataFS embed.FS

// Entry is one row of the knowledge base, keyed by its Traditional Chinese name.
type Entry struct {
	ID     string
	ZhName string
	EnName string
	JaName string
}

// Pokedex resolves Traditional Chinese Pokémon names to their bilingual
// display form. A Pokedex with an empty table is valid: every lookup
// misses and names pass through unchanged.
type Pokedex struct {
	byZhName map[string]Entry
	logger   *slog.Logger
}

type Option func(*Pokedex)

func WithLogger(logger *slog.Logger) Option {
	return func(p *Pokedex) {
		p.logger = logger
	}
}

// New loads the embedded CSV table. A load or parse failure degrades to an
// empty table rather than an error; formatting then passes names through.
func New(opts ...Option) *Pokedex {
	p := &Pokedex{
		byZhName: make(map[string]Entry),
		logger:   slog.Default().With("component", "pokedex"),
	}
	for _, opt := range opts {
		opt(p)
	}

	data, err := dataFS.ReadFile("data/pokemon.csv")
	if err != nil {
		p.logger.Warn("knowledge base unavailable, names will pass through",
			"error", err)
		return p
	}

	entries, err := parseCSV(data)
	if err != nil {
		p.logger.Warn("knowledge base parse failed, names will pass through",
			"error", err)
		return p
	}

	for _, e := range entries {
		p.byZhName[e.ZhName] = e
	}

	p.logger.Debug("knowledge base loaded",
		"entries", len(p.byZhName))

	return p
}

func parseCSV(data []byte) ([]Entry, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = 4

	// Header row.
	if _, err := r.Read(); err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	var entries []Entry
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading record: %w", err)
		}
		entries = append(entries, Entry{
			ID:     record[0],
			ZhName: record[1],
			EnName: record[2],
			JaName: record[3],
		})
	}
	return entries, nil
}

// Lookup returns the entry for a Traditional Chinese name.
func (p *Pokedex) Lookup(zhName string) (Entry, bool) {
	e, ok := p.byZhName[zhName]
	return e, ok
}

// FormatNames rewrites a comma-separated list of Pokémon names into
// "中文名 (EnglishName)" form. Unknown names pass through unchanged; tokens
// are trimmed and rejoined with ", ". Empty tokens are dropped.
func (p *Pokedex) FormatNames(userInput string) string {
	var formatted []string
	for _, raw := range strings.Split(userInput, ",") {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		if e, ok := p.byZhName[name]; ok {
			formatted = append(formatted, fmt.Sprintf("%s (%s)", e.ZhName, e.EnName))
		} else {
			formatted = append(formatted, name)
		}
	}
	return strings.Join(formatted, ", ")
}
