// cmd/progress.go
package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/julienpequegnot/emolex/internal/config"
	"github.com/julienpequegnot/emolex/internal/database"
	"github.com/julienpequegnot/emolex/internal/history"
	"github.com/julienpequegnot/emolex/internal/ui"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show the emotional journey and 30-day balance",
	Long: `Prints the latest analyses as a journey with mood scores, followed by
the emotion distribution and positive balance of the last 30 days.`,
	RunE: runProgress,
}

func init() {
	rootCmd.AddCommand(progressCmd)
}

func runProgress(cmd *cobra.Command, args []string) error {
	db, err := database.New(config.DBPath())
	if err != nil {
		return err
	}
	defer db.Close()

	repo := history.NewRepository(db)

	journey, err := repo.Journey()
	if err != nil {
		return err
	}
	p, err := repo.Progress(time.Now())
	if err != nil {
		return err
	}

	if len(journey) == 0 {
		fmt.Println("No analyses recorded yet. Try 'emolex analyze --save <text>'")
		return nil
	}

	fmt.Println(ui.HeaderStyle.Render("Journey"))
	for _, j := range journey {
		fmt.Printf("  %s  %-12s %2d/10  %s\n",
			ui.DateStyle.Render(j.CreatedAt.Local().Format("Jan 02 15:04")),
			ui.EmotionStyle(j.Emotion).Render(j.Emotion),
			j.MoodScore,
			ui.MutedStyle.Render(ui.Truncate(j.Preview, 50)))
	}

	fmt.Println()
	fmt.Println(ui.HeaderStyle.Render("Last 30 days"))
	fmt.Printf("  %d analyses: %d positive, %d negative, %d other\n", p.Total, p.Positive, p.Negative, p.Other)
	fmt.Printf("  Balance %s %.1f%%\n", ui.Bar(p.Balance/100, 20), p.Balance)

	if len(p.Distribution) > 0 {
		fmt.Println()
		for _, c := range p.Distribution {
			fmt.Printf("  %-12s %d\n", ui.EmotionStyle(c.Emotion).Render(c.Emotion), c.Count)
		}
	}

	return nil
}
