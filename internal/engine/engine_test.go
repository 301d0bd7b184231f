package engine

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vampirenirmal/storyweaver/internal/llm"
	"github.com/vampirenirmal/storyweaver/internal/pokedex"
	"github.com/vampirenirmal/storyweaver/internal/prompt"
)

func testRequest() StoryRequest {
	return StoryRequest{
		Theme:            "意外的友誼",
		Genre:            "冒險 (Adventure)",
		PokemonNames:     "皮卡丘, 伊布",
		Synopsis:         "兩隻敵對的寶可夢一起迷路了。",
		IncludeAbilities: true,
	}
}

func newTestEngine(t *testing.T, gen llm.TextGenerator) *Engine {
	t.Helper()
	store, err := prompt.NewStore()
	require.NoError(t, err)
	return New(gen, store, pokedex.New())
}

func TestGenerateStoryPlanTwoCallOrdering(t *testing.T) {
	mock := llm.NewMockGenerator("").
		Respond("Output the story plan ONLY", "初版大綱").
		Respond("Story Plan Editor", "評估回饋：結構完整\n修訂後故事大綱：修訂後大綱")

	eng := newTestEngine(t, mock)

	plan, err := eng.GenerateStoryPlan(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, "修訂後大綱", plan)

	require.Equal(t, 2, mock.CallCount())
	// Call 1 carries the synopsis; call 2 carries call 1's output.
	assert.Contains(t, mock.Prompts[0], "兩隻敵對的寶可夢一起迷路了。")
	assert.Contains(t, mock.Prompts[1], "初版大綱")

	assert.Equal(t, 1536, mock.Settings[0].MaxTokens)
	assert.Equal(t, 2048, mock.Settings[1].MaxTokens)
}

func TestGenerateStoryPlanFormatsNames(t *testing.T) {
	mock := llm.NewMockGenerator("評估回饋：好\n修訂後故事大綱：大綱")
	eng := newTestEngine(t, mock)

	_, err := eng.GenerateStoryPlan(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Contains(t, mock.Prompts[0], "皮卡丘 (Pikachu), 伊布 (Eevee)")
}

func TestGenerateStoryPlanEmptyFirstCallFailsFast(t *testing.T) {
	mock := llm.NewMockGenerator("").
		Respond("Output the story plan ONLY", "   ")

	eng := newTestEngine(t, mock)

	_, err := eng.GenerateStoryPlan(context.Background(), testRequest())
	require.Error(t, err)

	var genErr *GenerationError
	require.True(t, errors.As(err, &genErr))
	assert.Equal(t, StageInitialPlan, genErr.Stage)

	// The review call must never be issued.
	assert.Equal(t, 1, mock.CallCount())
}

func TestGenerateStoryPlanSentinelKeepsInitial(t *testing.T) {
	mock := llm.NewMockGenerator("").
		Respond("Output the story plan ONLY", "初版大綱").
		Respond("Story Plan Editor", "評估回饋：很好\n修訂後故事大綱：原故事大綱已達標，無需修訂。")

	eng := newTestEngine(t, mock)

	plan, err := eng.GenerateStoryPlan(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, "初版大綱", plan)
}

func TestGenerateStoryFromPlanThreadsPlanIntoReview(t *testing.T) {
	mock := llm.NewMockGenerator("").
		Respond("Write the full story now", "初版故事").
		Respond("Pokémon Story Editor", "評估回饋：很棒\n修訂後完整故事：修訂後故事")

	eng := newTestEngine(t, mock)

	story, err := eng.GenerateStoryFromPlan(context.Background(), testRequest(), "使用者編輯過的大綱")
	require.NoError(t, err)
	assert.Equal(t, "修訂後故事", story)

	require.Equal(t, 2, mock.CallCount())
	assert.Contains(t, mock.Prompts[0], "使用者編輯過的大綱")
	// The guiding plan and the draft both appear in the review prompt.
	assert.Contains(t, mock.Prompts[1], "使用者編輯過的大綱")
	assert.Contains(t, mock.Prompts[1], "初版故事")

	assert.Equal(t, 4096, mock.Settings[0].MaxTokens)
	assert.InDelta(t, 0.75, mock.Settings[0].Temperature, 0.001)
	assert.Equal(t, 4096, mock.Settings[1].MaxTokens)
}

func TestGenerateCompleteStorySkipsReview(t *testing.T) {
	mock := llm.NewMockGenerator("").
		Respond("Output the story plan ONLY", "大綱").
		Respond("Write the full story now", "故事")

	eng := newTestEngine(t, mock)

	plan, story, err := eng.GenerateCompleteStory(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, "大綱", plan)
	assert.Equal(t, "故事", story)

	// Exactly two calls: plan then story, no review passes.
	require.Equal(t, 2, mock.CallCount())
	assert.Contains(t, mock.Prompts[1], "大綱")
}

func TestGenerateCompleteStoryPlanFailureStopsPipeline(t *testing.T) {
	mock := llm.NewMockGenerator("").Fail(llm.NewConfigError("OpenAI API 呼叫失敗", errors.New("boom")))
	eng := newTestEngine(t, mock)

	_, _, err := eng.GenerateCompleteStory(context.Background(), testRequest())
	require.Error(t, err)

	var genErr *GenerationError
	require.True(t, errors.As(err, &genErr))
	assert.Equal(t, StageInitialPlan, genErr.Stage)

	var cfgErr *llm.ConfigError
	assert.True(t, errors.As(err, &cfgErr))

	assert.Equal(t, 1, mock.CallCount())
}

func TestInputRefinementSuggestionsDefaults(t *testing.T) {
	mock := llm.NewMockGenerator("建議多描述寶可夢的個性。")
	eng := newTestEngine(t, mock)

	out, err := eng.InputRefinementSuggestions(context.Background(), StoryRequest{})
	require.NoError(t, err)
	assert.Equal(t, "建議多描述寶可夢的個性。", out)

	p := mock.Prompts[0]
	assert.Contains(t, p, "Story Theme: Not specified")
	assert.Contains(t, p, "Story Genre: Any")
	assert.Contains(t, p, "Pokémon Involved: None specified")
	assert.Contains(t, p, "the Pokémon")

	assert.Equal(t, 200, mock.Settings[0].MaxTokens)
	assert.InDelta(t, 0.5, mock.Settings[0].Temperature, 0.001)
}

func TestInputRefinementSuggestionsFirstNameAsContext(t *testing.T) {
	mock := llm.NewMockGenerator("建議")
	eng := newTestEngine(t, mock)

	req := testRequest()
	req.PokemonNames = " 路卡利歐 , 伊布"

	_, err := eng.InputRefinementSuggestions(context.Background(), req)
	require.NoError(t, err)
	assert.Contains(t, mock.Prompts[0], "mentioned (路卡利歐)")
}

func TestInputRefinementSuggestionsEmptyReplyIsFriendly(t *testing.T) {
	mock := llm.NewMockGenerator("  ")
	eng := newTestEngine(t, mock)

	out, err := eng.InputRefinementSuggestions(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, noSuggestionsDefault, out)
}

func TestSynopsisElaborationsEmptyFails(t *testing.T) {
	mock := llm.NewMockGenerator("")
	eng := newTestEngine(t, mock)

	_, err := eng.SynopsisElaborations(context.Background(), testRequest())
	require.Error(t, err)

	var genErr *GenerationError
	require.True(t, errors.As(err, &genErr))
	assert.Equal(t, StageElaboration, genErr.Stage)
}

func TestCharacterProfilesPlanDefaults(t *testing.T) {
	mock := llm.NewMockGenerator("角色側寫")
	eng := newTestEngine(t, mock)

	_, err := eng.CharacterProfiles(context.Background(), testRequest(), "")
	require.NoError(t, err)
	assert.Contains(t, mock.Prompts[0], "Optional Existing Story Plan (for context): N/A")

	assert.Equal(t, 1536, mock.Settings[0].MaxTokens)
	assert.InDelta(t, 0.6, mock.Settings[0].Temperature, 0.001)
}

func TestSettingDetailsParameters(t *testing.T) {
	mock := llm.NewMockGenerator("場景描述")
	eng := newTestEngine(t, mock)

	_, err := eng.SettingDetails(context.Background(), testRequest(), "某個大綱")
	require.NoError(t, err)
	assert.Contains(t, mock.Prompts[0], "某個大綱")

	assert.Equal(t, 1024, mock.Settings[0].MaxTokens)
	assert.InDelta(t, 0.7, mock.Settings[0].Temperature, 0.001)
}

func TestPlotTwistSuggestionsSectionDefault(t *testing.T) {
	mock := llm.NewMockGenerator("轉折建議")
	eng := newTestEngine(t, mock)

	_, err := eng.PlotTwistSuggestions(context.Background(), "大綱", "")
	require.NoError(t, err)
	assert.Contains(t, mock.Prompts[0], "(Overall Plan or Climax)")

	assert.Equal(t, 768, mock.Settings[0].MaxTokens)
	assert.InDelta(t, 0.75, mock.Settings[0].Temperature, 0.001)
}

func TestTuneStoryStyleToneBudgetScalesWithInput(t *testing.T) {
	mock := llm.NewMockGenerator("改寫後的文字")
	eng := newTestEngine(t, mock)

	text := strings.Repeat("word ", 100)
	_, err := eng.TuneStoryStyleTone(context.Background(), text, "主題", "冒險 (Adventure)", "更加懸疑緊張")
	require.NoError(t, err)

	assert.Equal(t, 2*100+512, mock.Settings[0].MaxTokens)
	assert.Contains(t, mock.Prompts[0], "更加懸疑緊張")
}

func TestStoryBranchingSuggestions(t *testing.T) {
	mock := llm.NewMockGenerator("分支建議")
	eng := newTestEngine(t, mock)

	_, err := eng.StoryBranchingSuggestions(context.Background(), "目前的故事段落", "主題", "冒險 (Adventure)", "")
	require.NoError(t, err)

	p := mock.Prompts[0]
	assert.Contains(t, p, "目前的故事段落")
	assert.Contains(t, p, "Optional Guiding Story Plan: N/A")

	assert.Equal(t, 1024, mock.Settings[0].MaxTokens)
}

func TestGenerationErrorWrapsProviderError(t *testing.T) {
	cause := llm.NewConfigError("OpenAI API 呼叫失敗", errors.New("status 500"))
	mock := llm.NewMockGenerator("").Fail(cause)
	eng := newTestEngine(t, mock)

	_, err := eng.SettingDetails(context.Background(), testRequest(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
}
