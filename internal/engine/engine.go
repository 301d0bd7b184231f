// Package engine orchestrates the plan → write → review/revise story
// pipeline and the single-shot writing-assist operations around it.
package engine

import (
	"context"
	"log/slog"
	"strings"

	"github.com/vampirenirmal/storyweaver/internal/llm"
	"github.com/vampirenirmal/storyweaver/internal/prompt"
)

const noSuggestionsDefault = "No specific suggestions at this time, your input looks quite comprehensive!"

// StoryRequest carries the user's inputs for one generation run. It is
// read-only to the engine; callers own it.
type StoryRequest struct {
	Theme            string
	Genre            string
	PokemonNames     string
	Synopsis         string
	IncludeAbilities bool
}

// NameFormatter rewrites a comma-separated Pokémon name list into the
// bilingual display form used in prompts.
type NameFormatter interface {
	FormatNames(userInput string) string
}

// Engine drives the story pipeline. It holds only shared read-only
// references and is safe for concurrent use.
type Engine struct {
	gen    llm.TextGenerator
	store  *prompt.Store
	names  NameFormatter
	logger *slog.Logger
}

type Option func(*Engine)

func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

func New(gen llm.TextGenerator, store *prompt.Store, names NameFormatter, opts ...Option) *Engine {
	e := &Engine{
		gen:    gen,
		store:  store,
		names:  names,
		logger: slog.Default().With("component", "engine"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// baseParams builds the parameter set shared by most stage prompts, with
// Pokémon names rewritten to their bilingual form.
func (e *Engine) baseParams(req StoryRequest) map[string]string {
	return map[string]string{
		"theme":             req.Theme,
		"genre":             req.Genre,
		"pokemon_names":     e.names.FormatNames(req.PokemonNames),
		"synopsis":          req.Synopsis,
		"include_abilities": yesNo(req.IncludeAbilities),
	}
}

// generate renders one stage prompt and runs it through the generator.
// Empty output is rejected when emptyMsg is non-empty.
func (e *Engine) generate(ctx context.Context, stage string, promptStage prompt.Stage, params map[string]string, emptyMsg string, opts ...llm.GenerateOption) (string, error) {
	rendered, err := e.store.Render(promptStage, params)
	if err != nil {
		return "", newGenerationError(stage, "prompt formatting error", err)
	}

	out, err := e.gen.GenerateText(ctx, rendered, opts...)
	if err != nil {
		return "", newGenerationError(stage, "text generation failed", err)
	}

	if emptyMsg != "" && strings.TrimSpace(out) == "" {
		return "", newGenerationError(stage, emptyMsg, nil)
	}

	return out, nil
}

func (e *Engine) generateInitialPlan(ctx context.Context, req StoryRequest) (string, error) {
	e.logger.Info("generating initial story plan",
		"theme", req.Theme,
		"genre", req.Genre,
		"include_abilities", req.IncludeAbilities)

	return e.generate(ctx, StageInitialPlan, prompt.StagePlan, e.baseParams(req),
		"LLM failed to generate an initial story plan, the response was empty",
		llm.WithMaxTokens(1536))
}

func (e *Engine) reviewStoryPlan(ctx context.Context, req StoryRequest, plan string) (ReviewerOutput, error) {
	params := e.baseParams(req)
	params["story_plan_to_review"] = plan

	raw, err := e.generate(ctx, StagePlanReview, prompt.StagePlanReview, params,
		"reviewer LLM failed to provide feedback or revision for the story plan",
		llm.WithMaxTokens(2048))
	if err != nil {
		return ReviewerOutput{}, err
	}

	parsed := parseReviewerOutput(raw, plan)
	e.logger.Info("story plan reviewed",
		"feedback", parsed.Feedback,
		"revised", parsed.RevisedContent != plan)
	return parsed, nil
}

// GenerateStoryPlan produces a reviewed story plan: an initial plan pass
// followed by one review/revise pass. The revised plan is returned; the
// caller may edit it before generating the story.
func (e *Engine) GenerateStoryPlan(ctx context.Context, req StoryRequest) (string, error) {
	initial, err := e.generateInitialPlan(ctx, req)
	if err != nil {
		return "", err
	}

	reviewed, err := e.reviewStoryPlan(ctx, req, initial)
	if err != nil {
		return "", err
	}
	return reviewed.RevisedContent, nil
}

func (e *Engine) generateInitialStory(ctx context.Context, req StoryRequest, plan string) (string, error) {
	e.logger.Info("generating initial full story",
		"theme", req.Theme,
		"genre", req.Genre,
		"plan_length", len(plan))

	params := e.baseParams(req)
	params["story_plan"] = plan

	return e.generate(ctx, StageInitialStory, prompt.StageStory, params,
		"LLM failed to generate the initial full story, the response was empty",
		llm.WithMaxTokens(4096), llm.WithTemperature(0.75))
}

func (e *Engine) reviewFullStory(ctx context.Context, req StoryRequest, plan, story string) (ReviewerOutput, error) {
	params := e.baseParams(req)
	params["story_plan"] = plan
	params["full_story_to_review"] = story

	raw, err := e.generate(ctx, StageStoryReview, prompt.StageStoryReview, params,
		"reviewer LLM failed to provide feedback or revision for the full story",
		llm.WithMaxTokens(4096))
	if err != nil {
		return ReviewerOutput{}, err
	}

	parsed := parseReviewerOutput(raw, story)
	e.logger.Info("full story reviewed",
		"feedback", parsed.Feedback,
		"revised", parsed.RevisedContent != story)
	return parsed, nil
}

// GenerateStoryFromPlan writes the full story guided by plan, then runs one
// review/revise pass with the same plan threaded into the review prompt.
func (e *Engine) GenerateStoryFromPlan(ctx context.Context, req StoryRequest, plan string) (string, error) {
	initial, err := e.generateInitialStory(ctx, req, plan)
	if err != nil {
		return "", err
	}

	reviewed, err := e.reviewFullStory(ctx, req, plan, initial)
	if err != nil {
		return "", err
	}
	return reviewed.RevisedContent, nil
}

// GenerateCompleteStory runs the plan and story stages back to back without
// review passes and returns both artifacts. The plan stage must succeed
// before the story stage is attempted.
func (e *Engine) GenerateCompleteStory(ctx context.Context, req StoryRequest) (plan, story string, err error) {
	plan, err = e.generateInitialPlan(ctx, req)
	if err != nil {
		return "", "", err
	}

	story, err = e.generateInitialStory(ctx, req, plan)
	if err != nil {
		return "", "", err
	}
	return plan, story, nil
}

// InputRefinementSuggestions asks for 1-2 prompts that help the user enrich
// their inputs. It tolerates missing fields and an empty model reply; it
// only fails on generation errors.
func (e *Engine) InputRefinementSuggestions(ctx context.Context, req StoryRequest) (string, error) {
	suggestionContext := "the Pokémon"
	if req.PokemonNames != "" {
		if first := strings.TrimSpace(strings.Split(req.PokemonNames, ",")[0]); first != "" {
			suggestionContext = first
		}
	}

	params := map[string]string{
		"theme":             orDefault(req.Theme, "Not specified"),
		"genre":             orDefault(req.Genre, "Any"),
		"pokemon_names":     orDefault(req.PokemonNames, "None specified"),
		"synopsis":          orDefault(req.Synopsis, "Not specified"),
		"include_abilities": yesNo(req.IncludeAbilities),
		"pokemon_names_for_suggestion_context": suggestionContext,
	}

	out, err := e.generate(ctx, StageRefinement, prompt.StageRefinement, params, "",
		llm.WithMaxTokens(200), llm.WithTemperature(0.5))
	if err != nil {
		return "", err
	}

	// An empty reply can mean the input is already comprehensive.
	if strings.TrimSpace(out) == "" {
		return noSuggestionsDefault, nil
	}
	return out, nil
}

// SynopsisElaborations proposes 3-4 alternative directions for the synopsis.
func (e *Engine) SynopsisElaborations(ctx context.Context, req StoryRequest) (string, error) {
	params := map[string]string{
		"theme":         req.Theme,
		"genre":         req.Genre,
		"pokemon_names": e.names.FormatNames(req.PokemonNames),
		"synopsis":      req.Synopsis,
	}

	return e.generate(ctx, StageElaboration, prompt.StageElaboration, params,
		"LLM failed to generate synopsis elaborations",
		llm.WithMaxTokens(1024), llm.WithTemperature(0.7))
}

// CharacterProfiles builds richer profiles for the key Pokémon. An existing
// plan is optional context.
func (e *Engine) CharacterProfiles(ctx context.Context, req StoryRequest, plan string) (string, error) {
	params := map[string]string{
		"theme":         req.Theme,
		"genre":         req.Genre,
		"pokemon_names": e.names.FormatNames(req.PokemonNames),
		"synopsis":      req.Synopsis,
		"story_plan":    orDefault(plan, "N/A"),
	}

	return e.generate(ctx, StageCharacters, prompt.StageCharacters, params,
		"LLM failed to generate character profiles",
		llm.WithMaxTokens(1536), llm.WithTemperature(0.6))
}

// SettingDetails describes one key setting for the story in rich detail.
func (e *Engine) SettingDetails(ctx context.Context, req StoryRequest, plan string) (string, error) {
	params := map[string]string{
		"theme":      req.Theme,
		"genre":      req.Genre,
		"synopsis":   req.Synopsis,
		"story_plan": orDefault(plan, "N/A"),
	}

	return e.generate(ctx, StageSetting, prompt.StageSetting, params,
		"LLM failed to generate setting details",
		llm.WithMaxTokens(1024), llm.WithTemperature(0.7))
}

// PlotTwistSuggestions proposes 2-3 twists for a plan, optionally focused on
// one section of it.
func (e *Engine) PlotTwistSuggestions(ctx context.Context, plan, section string) (string, error) {
	params := map[string]string{
		"story_plan":       plan,
		"section_to_twist": orDefault(section, "(Overall Plan or Climax)"),
	}

	return e.generate(ctx, StageTwists, prompt.StageTwists, params,
		"LLM failed to generate plot twist suggestions",
		llm.WithMaxTokens(768), llm.WithTemperature(0.75))
}

// TuneStoryStyleTone rewrites story text in a new style or tone. The token
// budget scales with the input so a rewrite is never truncated below the
// original's length.
func (e *Engine) TuneStoryStyleTone(ctx context.Context, text, theme, genre, style string) (string, error) {
	params := map[string]string{
		"story_text_to_tune": text,
		"theme":              theme,
		"genre":              genre,
		"desired_style_tone": style,
	}

	budget := 2*len(strings.Fields(text)) + 512

	return e.generate(ctx, StageTuning, prompt.StageTuning, params,
		"LLM failed to tune story style or tone",
		llm.WithMaxTokens(budget), llm.WithTemperature(0.7))
}

// StoryBranchingSuggestions proposes 2-3 distinct continuations for the
// current story segment.
func (e *Engine) StoryBranchingSuggestions(ctx context.Context, segment, theme, genre, plan string) (string, error) {
	params := map[string]string{
		"current_story_segment": segment,
		"theme":                 theme,
		"genre":                 genre,
		"story_plan":            orDefault(plan, "N/A"),
	}

	return e.generate(ctx, StageBranching, prompt.StageBranching, params,
		"LLM failed to generate story branching suggestions",
		llm.WithMaxTokens(1024), llm.WithTemperature(0.7))
}
