package prompt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func planParams() map[string]string {
	return map[string]string{
		"theme":             "意外的友誼",
		"genre":             "冒險 (Adventure)",
		"pokemon_names":     "皮卡丘 (Pikachu), 伊布 (Eevee)",
		"synopsis":          "兩隻敵對的寶可夢一起迷路了。",
		"include_abilities": "Yes",
	}
}

func TestRenderSubstitutesParams(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)

	out, err := store.Render(StagePlan, planParams())
	require.NoError(t, err)

	assert.Contains(t, out, "Story Theme: 意外的友誼")
	assert.Contains(t, out, "Story Genre: 冒險 (Adventure)")
	assert.Contains(t, out, "皮卡丘 (Pikachu), 伊布 (Eevee)")
	assert.Contains(t, out, "Include Pokémon Abilities: Yes")
	assert.NotContains(t, out, "{{")
}

func TestRenderMissingParamFails(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)

	params := planParams()
	delete(params, "synopsis")

	_, err = store.Render(StagePlan, params)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "plan template")
}

func TestRenderUnknownStage(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)

	_, err = store.Render(Stage("nope"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown prompt stage")
}

func TestEveryStageHasTemplate(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)

	for _, stage := range Stages() {
		assert.Contains(t, store.templates, stage, "stage %s", stage)
	}
}

func TestReviewTemplatesCarryMarkers(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)

	params := planParams()
	params["story_plan_to_review"] = "大綱內容"
	out, err := store.Render(StagePlanReview, params)
	require.NoError(t, err)
	assert.Contains(t, out, "評估回饋:")
	assert.Contains(t, out, "修訂後故事大綱:")

	params = planParams()
	params["story_plan"] = "大綱內容"
	params["full_story_to_review"] = "故事內容"
	out, err = store.Render(StageStoryReview, params)
	require.NoError(t, err)
	assert.Contains(t, out, "修訂後完整故事:")
}

func TestOverrideDir(t *testing.T) {
	dir := t.TempDir()
	override := "custom twist prompt: {{.story_plan}} / {{.section_to_twist}}"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "twists.tmpl"), []byte(override), 0644))

	store, err := NewStore(WithOverrideDir(dir))
	require.NoError(t, err)

	out, err := store.Render(StageTwists, map[string]string{
		"story_plan":       "P",
		"section_to_twist": "(Overall Plan or Climax)",
	})
	require.NoError(t, err)
	assert.Equal(t, "custom twist prompt: P / (Overall Plan or Climax)", out)

	// Other stages keep the built-in template.
	out, err = store.Render(StagePlan, planParams())
	require.NoError(t, err)
	assert.Contains(t, out, "master storyteller")
}

func TestOverrideParseError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "plan.tmpl"), []byte("{{.unclosed"), 0644))

	_, err := NewStore(WithOverrideDir(dir))
	require.Error(t, err)
}
