// cmd/trends.go
package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/julienpequegnot/emolex/internal/config"
	"github.com/julienpequegnot/emolex/internal/database"
	"github.com/julienpequegnot/emolex/internal/history"
	"github.com/julienpequegnot/emolex/internal/trends"
	"github.com/julienpequegnot/emolex/internal/ui"
)

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Show trending emotions",
	Long:  `Ranks the emotions in recent history, favoring the ones that keep coming back.`,
	RunE:  runTrends,
}

var (
	trendsDays  int
	trendsLimit int
	trendsSpan  int
)

func init() {
	rootCmd.AddCommand(trendsCmd)
	trendsCmd.Flags().IntVarP(&trendsDays, "days", "d", 7, "Window counted as recent")
	trendsCmd.Flags().IntVar(&trendsSpan, "span", 90, "Days of history to consider")
	trendsCmd.Flags().IntVarP(&trendsLimit, "limit", "n", 10, "Number of emotions to show")
}

func runTrends(cmd *cobra.Command, args []string) error {
	db, err := database.New(config.DBPath())
	if err != nil {
		return err
	}
	defer db.Close()

	now := time.Now()
	records, err := history.NewRepository(db).Since(now.AddDate(0, 0, -trendsSpan))
	if err != nil {
		return err
	}

	analyzer := trends.NewAnalyzer()
	analyzer.AddRecords(records)
	ranked := analyzer.Trends(now, trendsDays, trendsLimit)

	if len(ranked) == 0 {
		fmt.Println("No trends yet. Record a few analyses first.")
		return nil
	}

	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("Trending emotions (last %d days)", trendsDays)))
	fmt.Println()

	for i, t := range ranked {
		fmt.Printf("%2d. %-12s %s  %d total, %d recent, avg %.0f%%\n",
			i+1,
			ui.EmotionStyle(t.Emotion).Render(t.Emotion),
			ui.ScoreStyle.Render(fmt.Sprintf("%5.1f", t.Score)),
			t.Count, t.Recent, t.AvgConfidence*100)
	}

	return nil
}
