package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vampirenirmal/storyweaver/internal/engine"
)

var (
	flagTheme       string
	flagGenre       string
	flagPokemon     string
	flagSynopsis    string
	flagNoAbilities bool

	flagPlan    string
	flagSection string
	flagText    string
	flagStyle   string
	flagSegment string
)

func storyRequestFromFlags() engine.StoryRequest {
	return engine.StoryRequest{
		Theme:            flagTheme,
		Genre:            flagGenre,
		PokemonNames:     flagPokemon,
		Synopsis:         flagSynopsis,
		IncludeAbilities: !flagNoAbilities,
	}
}

func addRequestFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagTheme, "theme", "", "story theme")
	cmd.Flags().StringVar(&flagGenre, "genre", storyGenres[0], "story genre (see 'storyweaver examples')")
	cmd.Flags().StringVar(&flagPokemon, "pokemon", "", "comma-separated Pokémon names (Traditional Chinese)")
	cmd.Flags().StringVar(&flagSynopsis, "synopsis", "", "story synopsis or idea")
	cmd.Flags().BoolVar(&flagNoAbilities, "no-abilities", false, "do not weave Pokémon abilities into the story")
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a reviewed story plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateGenre(flagGenre); err != nil {
			return err
		}
		eng, err := buildEngine()
		if err != nil {
			return err
		}
		plan, err := eng.GenerateStoryPlan(cmd.Context(), storyRequestFromFlags())
		if err != nil {
			return err
		}
		fmt.Println(plan)
		return nil
	},
}

var storyCmd = &cobra.Command{
	Use:   "story",
	Short: "Write a reviewed full story from an existing plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateGenre(flagGenre); err != nil {
			return err
		}
		eng, err := buildEngine()
		if err != nil {
			return err
		}
		story, err := eng.GenerateStoryFromPlan(cmd.Context(), storyRequestFromFlags(), flagPlan)
		if err != nil {
			return err
		}
		fmt.Println(story)
		return nil
	},
}

var completeCmd = &cobra.Command{
	Use:   "complete",
	Short: "Generate plan and story in one run, without review passes",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateGenre(flagGenre); err != nil {
			return err
		}
		eng, err := buildEngine()
		if err != nil {
			return err
		}
		plan, story, err := eng.GenerateCompleteStory(cmd.Context(), storyRequestFromFlags())
		if err != nil {
			return err
		}
		fmt.Println("--- 故事大綱 ---")
		fmt.Println(plan)
		fmt.Println("\n--- 完整故事 ---")
		fmt.Println(story)
		return nil
	},
}

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest how to enrich your story inputs",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := buildEngine()
		if err != nil {
			return err
		}
		out, err := eng.InputRefinementSuggestions(cmd.Context(), storyRequestFromFlags())
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

var elaborateCmd = &cobra.Command{
	Use:   "elaborate",
	Short: "Propose alternative directions for the synopsis",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateGenre(flagGenre); err != nil {
			return err
		}
		eng, err := buildEngine()
		if err != nil {
			return err
		}
		out, err := eng.SynopsisElaborations(cmd.Context(), storyRequestFromFlags())
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

var charactersCmd = &cobra.Command{
	Use:   "characters",
	Short: "Build richer profiles for the key Pokémon",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateGenre(flagGenre); err != nil {
			return err
		}
		eng, err := buildEngine()
		if err != nil {
			return err
		}
		out, err := eng.CharacterProfiles(cmd.Context(), storyRequestFromFlags(), flagPlan)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

var settingCmd = &cobra.Command{
	Use:   "setting",
	Short: "Describe a key setting for the story in rich detail",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateGenre(flagGenre); err != nil {
			return err
		}
		eng, err := buildEngine()
		if err != nil {
			return err
		}
		out, err := eng.SettingDetails(cmd.Context(), storyRequestFromFlags(), flagPlan)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

var twistsCmd = &cobra.Command{
	Use:   "twists",
	Short: "Suggest plot twists for a story plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := buildEngine()
		if err != nil {
			return err
		}
		out, err := eng.PlotTwistSuggestions(cmd.Context(), flagPlan, flagSection)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

var tuneCmd = &cobra.Command{
	Use:   "tune",
	Short: "Rewrite story text in a new style or tone",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := buildEngine()
		if err != nil {
			return err
		}
		out, err := eng.TuneStoryStyleTone(cmd.Context(), flagText, flagTheme, flagGenre, flagStyle)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

var branchCmd = &cobra.Command{
	Use:   "branch",
	Short: "Propose distinct continuations for a story segment",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := buildEngine()
		if err != nil {
			return err
		}
		out, err := eng.StoryBranchingSuggestions(cmd.Context(), flagSegment, flagTheme, flagGenre, flagPlan)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

var examplesCmd = &cobra.Command{
	Use:   "examples",
	Short: "List the supported genres and some ready-made synopsis ideas",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("支援的故事類型：")
		for _, g := range storyGenres {
			fmt.Printf("  %s\n", g)
		}

		fmt.Println("\n故事概要範例：")
		titles := make([]string, 0, len(synopsisExamples))
		for title := range synopsisExamples {
			titles = append(titles, title)
		}
		sort.Strings(titles)
		for _, title := range titles {
			fmt.Printf("\n%s\n  %s\n", title, synopsisExamples[title])
		}
	},
}

func init() {
	addRequestFlags(planCmd)
	addRequestFlags(completeCmd)
	addRequestFlags(suggestCmd)
	addRequestFlags(elaborateCmd)

	addRequestFlags(storyCmd)
	storyCmd.Flags().StringVar(&flagPlan, "plan", "", "guiding story plan")
	_ = storyCmd.MarkFlagRequired("plan")

	addRequestFlags(charactersCmd)
	charactersCmd.Flags().StringVar(&flagPlan, "plan", "", "existing story plan for context")

	addRequestFlags(settingCmd)
	settingCmd.Flags().StringVar(&flagPlan, "plan", "", "existing story plan for context")

	twistsCmd.Flags().StringVar(&flagPlan, "plan", "", "guiding story plan")
	twistsCmd.Flags().StringVar(&flagSection, "section", "", "plan section to focus twists on")
	_ = twistsCmd.MarkFlagRequired("plan")

	tuneCmd.Flags().StringVar(&flagText, "text", "", "story text to rewrite")
	tuneCmd.Flags().StringVar(&flagTheme, "theme", "", "original story theme for context")
	tuneCmd.Flags().StringVar(&flagGenre, "genre", storyGenres[0], "original story genre for context")
	tuneCmd.Flags().StringVar(&flagStyle, "style", "", "desired new style or tone, e.g. 更加懸疑緊張")
	_ = tuneCmd.MarkFlagRequired("text")
	_ = tuneCmd.MarkFlagRequired("style")

	branchCmd.Flags().StringVar(&flagSegment, "segment", "", "current story segment")
	branchCmd.Flags().StringVar(&flagTheme, "theme", "", "original story theme for context")
	branchCmd.Flags().StringVar(&flagGenre, "genre", storyGenres[0], "original story genre for context")
	branchCmd.Flags().StringVar(&flagPlan, "plan", "", "guiding story plan for context")
	_ = branchCmd.MarkFlagRequired("segment")
}
