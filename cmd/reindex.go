// cmd/reindex.go
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/julienpequegnot/emolex/internal/config"
	"github.com/julienpequegnot/emolex/internal/database"
	"github.com/julienpequegnot/emolex/internal/history"
)

var reindexCmd = &cobra.Command{
	Use:   "reindex",
	Short: "Rebuild search index",
	Long:  `Rebuilds the full-text search index from all recorded analyses.`,
	RunE:  runReindex,
}

func init() {
	rootCmd.AddCommand(reindexCmd)
}

func runReindex(cmd *cobra.Command, args []string) error {
	db, err := database.New(config.DBPath())
	if err != nil {
		return err
	}
	defer db.Close()

	fmt.Println("Rebuilding search index...")

	if err := history.NewRepository(db).RebuildIndex(); err != nil {
		return fmt.Errorf("failed to rebuild index: %w", err)
	}

	fmt.Println("Search index rebuilt successfully.")
	return nil
}
