// cmd/history.go
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/julienpequegnot/emolex/internal/config"
	"github.com/julienpequegnot/emolex/internal/database"
	"github.com/julienpequegnot/emolex/internal/history"
	"github.com/julienpequegnot/emolex/internal/ui"
)

var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"list"},
	Short:   "List recorded analyses",
	Long:    `Shows the most recent analyses stored in the local history, newest first.`,
	RunE:    runHistory,
}

var historyLimit int

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of analyses to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := database.New(config.DBPath())
	if err != nil {
		return err
	}
	defer db.Close()

	records, err := history.NewRepository(db).Recent(historyLimit)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("No analyses recorded yet. Try 'emolex analyze --save <text>'")
		return nil
	}

	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("Recent analyses (%d)", len(records))))
	fmt.Println()

	for _, r := range records {
		fmt.Printf("%s  %-12s %s  %s\n",
			ui.DateStyle.Render(r.CreatedAt.Local().Format("2006-01-02 15:04")),
			ui.EmotionStyle(r.Emotion).Render(r.Emotion),
			ui.ScoreStyle.Render(fmt.Sprintf("%3.0f%%", r.Confidence*100)),
			ui.Truncate(r.InputText, 50))
		fmt.Printf("    %s\n", ui.MutedStyle.Render(r.ID))
	}

	return nil
}
