package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/julienpequegnot/emolex/internal/config"
	"github.com/julienpequegnot/emolex/internal/database"
	"github.com/julienpequegnot/emolex/internal/emotion"
	"github.com/julienpequegnot/emolex/internal/history"
	"github.com/julienpequegnot/emolex/internal/ui"
	"github.com/julienpequegnot/emolex/internal/verse"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [text...]",
	Short: "Classify the emotion of a text",
	Long: `Analyzes the given text (or standard input when no arguments are given)
and prints the top emotion, confidence, candidate distribution and evidence.`,
	RunE: runAnalyze,
}

var (
	analyzeJSON     bool
	analyzeSave     bool
	analyzeTop      int
	analyzeEvidence bool
)

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the full verdict as JSON")
	analyzeCmd.Flags().BoolVar(&analyzeSave, "save", false, "Record the analysis in history")
	analyzeCmd.Flags().IntVarP(&analyzeTop, "top", "n", 5, "Number of candidates to show")
	analyzeCmd.Flags().BoolVarP(&analyzeEvidence, "evidence", "e", false, "List the evidence behind each score")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		text = strings.TrimSpace(string(data))
	}

	_, _, engine, err := loadEngine(cmd.Context())
	if err != nil {
		return err
	}

	v := engine.Analyze(text)

	var saved *history.Record
	if analyzeSave {
		db, err := database.New(config.DBPath())
		if err != nil {
			return err
		}
		defer db.Close()

		saved, err = history.NewRepository(db).Add(history.FromVerdict(text, v))
		if err != nil {
			return fmt.Errorf("failed to save analysis: %w", err)
		}
	}

	if analyzeJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	printVerdict(v, analyzeTop, analyzeEvidence)
	if saved != nil {
		fmt.Printf("\n%s %s\n", ui.MutedStyle.Render("Saved as"), saved.ID)
	}
	return nil
}

func printVerdict(v emotion.Verdict, top int, evidence bool) {
	anim := ui.AnimationFor(string(v.TopEmotion))

	fmt.Printf("\n%s  %s  %s\n",
		ui.EmotionStyle(string(v.TopEmotion)).Render(strings.ToUpper(string(v.TopEmotion))),
		ui.ScoreStyle.Render(fmt.Sprintf("%.0f%% confidence", v.Confidence*100)),
		ui.MutedStyle.Render(fmt.Sprintf("(%s, %s)", v.Reason, anim.Name)))

	fmt.Printf("%s %s (compound %.2f, polarity %.2f)\n",
		ui.MutedStyle.Render("Sentiment:"), v.Sentiment.Label(), v.Sentiment.Compound, v.Sentiment.Polarity)

	if len(v.Candidates) > 0 {
		fmt.Println()
		for _, c := range v.Top(top) {
			fmt.Printf("  %-12s %s %.3f\n", c.Emotion, ui.EmotionStyle(string(c.Emotion)).Render(ui.Bar(c.Score, 20)), c.Score)
		}
	}

	if evidence && len(v.Evidence) > 0 {
		fmt.Printf("\n%s\n", ui.HeaderStyle.Render("Evidence"))
		for _, ev := range v.Evidence {
			fmt.Printf("  %-20s %-12s +%.3f  %s\n", ev.Kind(), ev.Target(), ev.Amount(), describeEvidence(ev))
		}
	}

	vs := verse.Default().For(string(v.TopEmotion), 0)
	fmt.Printf("\n%s\n", ui.MutedStyle.Render(fmt.Sprintf("%d.%d  %s", vs.Chapter, vs.Verse, vs.Translation)))
}

func describeEvidence(ev emotion.Evidence) string {
	switch e := ev.(type) {
	case emotion.PhraseEvidence:
		return fmt.Sprintf("%q", e.Phrase)
	case emotion.KeywordEvidence:
		return fmt.Sprintf("%q x%d", e.Keyword, e.Count)
	case emotion.FuzzyEvidence:
		return fmt.Sprintf("%q ~ %q", e.Token, e.Keyword)
	case emotion.FallbackEvidence:
		if e.Marker != "" {
			return fmt.Sprintf("marker %q", e.Marker)
		}
	}
	return ""
}
