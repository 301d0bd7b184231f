package engine

import "fmt"

// Pipeline stages, used to tag GenerationError.
const (
	StageInitialPlan  = "initial_plan"
	StagePlanReview   = "plan_review"
	StageInitialStory = "initial_story"
	StageStoryReview  = "story_review"
	StageRefinement   = "refinement_suggestions"
	StageElaboration  = "synopsis_elaboration"
	StageCharacters   = "character_profiles"
	StageSetting      = "setting_details"
	StageTwists       = "plot_twist_suggestions"
	StageTuning       = "style_tone_tuning"
	StageBranching    = "story_branching"
)

// GenerationError reports a failed pipeline stage. It wraps prompt
// formatting errors, provider errors, and empty-output failures alike.
type GenerationError struct {
	Stage string
	Msg   string
	Err   error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("stage %s failed: %s: %v", e.Stage, e.Msg, e.Err)
	}
	return fmt.Sprintf("stage %s failed: %s", e.Stage, e.Msg)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

func newGenerationError(stage, msg string, err error) *GenerationError {
	return &GenerationError{Stage: stage, Msg: msg, Err: err}
}
