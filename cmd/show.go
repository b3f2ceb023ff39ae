// cmd/show.go
package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/julienpequegnot/emolex/internal/config"
	"github.com/julienpequegnot/emolex/internal/database"
	"github.com/julienpequegnot/emolex/internal/history"
	"github.com/julienpequegnot/emolex/internal/ui"
	"github.com/julienpequegnot/emolex/internal/verse"
)

var showCmd = &cobra.Command{
	Use:   "show <analysis-id>",
	Short: "Show details of a recorded analysis",
	Long:  `Display a stored analysis with its text, sentiment and suggested verse.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	db, err := database.New(config.DBPath())
	if err != nil {
		return err
	}
	defer db.Close()

	r, err := history.NewRepository(db).Get(args[0])
	if errors.Is(err, history.ErrNotFound) {
		return fmt.Errorf("no analysis with ID %s", args[0])
	}
	if err != nil {
		return err
	}

	fmt.Println(ui.TitleStyle.Render(r.ID))
	fmt.Printf("%s %s\n", ui.MutedStyle.Render("Recorded:"), ui.DateStyle.Render(r.CreatedAt.Local().Format("2006-01-02 15:04:05")))
	fmt.Printf("%s %s  %s\n", ui.MutedStyle.Render("Emotion: "),
		ui.EmotionStyle(r.Emotion).Render(r.Emotion),
		ui.ScoreStyle.Render(fmt.Sprintf("%.0f%%", r.Confidence*100)))
	fmt.Printf("%s %s (compound %.2f, polarity %.2f)\n", ui.MutedStyle.Render("Sentiment:"), r.Sentiment, r.Compound, r.Polarity)
	fmt.Printf("%s %s\n", ui.MutedStyle.Render("Reason:  "), r.Reason)

	fmt.Println()
	fmt.Println(r.InputText)

	vs := verse.Default().For(r.Emotion, 0)
	fmt.Println()
	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("Verse %d.%d", vs.Chapter, vs.Verse)))
	fmt.Println(vs.Translation)
	if vs.Advice != "" {
		fmt.Println(ui.MutedStyle.Render(vs.Advice))
	}

	return nil
}
