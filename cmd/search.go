// cmd/search.go
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/julienpequegnot/emolex/internal/config"
	"github.com/julienpequegnot/emolex/internal/database"
	"github.com/julienpequegnot/emolex/internal/history"
	"github.com/julienpequegnot/emolex/internal/ui"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search recorded analyses",
	Long:  `Full-text search over the texts and emotions in the analysis history.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

var searchLimit int

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 10, "Maximum results")
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	db, err := database.New(config.DBPath())
	if err != nil {
		return err
	}
	defer db.Close()

	results, err := history.NewRepository(db).Search(query, searchLimit)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if len(results) == 0 {
		fmt.Printf("No results for %q\n", query)
		return nil
	}

	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("Results for %q (%d)", query, len(results))))
	fmt.Println()

	for _, r := range results {
		fmt.Printf("%-12s %s  %s\n",
			ui.EmotionStyle(r.Emotion).Render(r.Emotion),
			ui.DateStyle.Render(r.CreatedAt.Local().Format("2006-01-02")),
			ui.MutedStyle.Render(r.ID))
		snippet := strings.NewReplacer("<b>", "", "</b>", "").Replace(r.Snippet)
		fmt.Printf("  %s\n\n", snippet)
	}

	return nil
}
