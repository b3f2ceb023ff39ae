// cmd/emotions.go
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/julienpequegnot/emolex/internal/ui"
)

var emotionsCmd = &cobra.Command{
	Use:   "emotions",
	Short: "List the emotions the lexicon knows",
	Long: `Lists every emotion with its valence and term counts. With --stem,
shows which lexicon terms share a stem with the given word instead.`,
	RunE: runEmotions,
}

var emotionsStem string

func init() {
	rootCmd.AddCommand(emotionsCmd)
	emotionsCmd.Flags().StringVar(&emotionsStem, "stem", "", "Show lexicon terms related to this word")
}

func runEmotions(cmd *cobra.Command, args []string) error {
	_, _, engine, err := loadEngine(cmd.Context())
	if err != nil {
		return err
	}

	if emotionsStem != "" {
		refs := engine.Related(emotionsStem)
		if len(refs) == 0 {
			fmt.Printf("No lexicon terms share a stem with %q\n", emotionsStem)
			return nil
		}
		for _, r := range refs {
			fmt.Printf("  %-12s %-8s %s\n", ui.EmotionStyle(string(r.Emotion)).Render(string(r.Emotion)), r.Kind, r.Term)
		}
		return nil
	}

	lex := engine.Lexicon()
	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("Emotions (%d)", lex.Len())))
	fmt.Println()

	for _, e := range lex.Entries() {
		sample := make([]string, 0, 4)
		for i, k := range e.Keywords {
			if i == 4 {
				break
			}
			sample = append(sample, k.Text)
		}
		fmt.Printf("  %-12s %+d  %2d phrases  %2d keywords  %s\n",
			ui.EmotionStyle(string(e.Emotion)).Render(string(e.Emotion)),
			e.Valence, len(e.Phrases), len(e.Keywords),
			ui.MutedStyle.Render(strings.Join(sample, ", ")))
	}

	return nil
}
