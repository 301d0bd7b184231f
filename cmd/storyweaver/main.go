package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vampirenirmal/storyweaver/internal/config"
	"github.com/vampirenirmal/storyweaver/internal/engine"
	"github.com/vampirenirmal/storyweaver/internal/llm"
	"github.com/vampirenirmal/storyweaver/internal/pokedex"
	"github.com/vampirenirmal/storyweaver/internal/prompt"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "storyweaver",
	Short: "Generate short Pokémon stories through a plan, write, review pipeline",
	Long: `storyweaver drives an OpenAI-compatible chat-completion API through a
multi-stage pipeline: plan the story, write it from the plan, and run a
review/revise pass over each artifact. It also offers single-shot writing
aids: input suggestions, synopsis elaborations, character profiles, setting
details, plot twists, style tuning, and story branching.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	},
}

// buildEngine wires config, client, prompt store, and knowledge base into
// one engine. Everything is injected explicitly; nothing global.
func buildEngine() (*engine.Engine, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	clientOpts := []llm.Option{
		llm.WithModel(cfg.AI.Model),
		llm.WithRateLimit(cfg.Limits.RateLimit.RequestsPerMinute, cfg.Limits.RateLimit.BurstSize),
		llm.WithMaxInFlight(cfg.Limits.MaxInFlight),
	}
	if cfg.AI.BaseURL != "" {
		clientOpts = append(clientOpts, llm.WithBaseURL(cfg.AI.BaseURL))
	}

	client, err := llm.NewClient(cfg.AI.APIKey, clientOpts...)
	if err != nil {
		return nil, err
	}

	var storeOpts []prompt.StoreOption
	if cfg.Prompts.OverrideDir != "" {
		storeOpts = append(storeOpts, prompt.WithOverrideDir(cfg.Prompts.OverrideDir))
	}
	store, err := prompt.NewStore(storeOpts...)
	if err != nil {
		return nil, fmt.Errorf("loading prompt templates: %w", err)
	}

	return engine.New(client, store, pokedex.New()), nil
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		planCmd,
		storyCmd,
		completeCmd,
		suggestCmd,
		elaborateCmd,
		charactersCmd,
		settingCmd,
		twistsCmd,
		tuneCmd,
		branchCmd,
		examplesCmd,
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
