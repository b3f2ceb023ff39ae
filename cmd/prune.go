// cmd/prune.go
package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/julienpequegnot/emolex/internal/config"
	"github.com/julienpequegnot/emolex/internal/database"
	"github.com/julienpequegnot/emolex/internal/history"
)

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete analyses older than the retention window",
	Long:  `Removes recorded analyses older than history.retention_days (or --days).`,
	RunE:  runPrune,
}

var pruneDays int

func init() {
	rootCmd.AddCommand(pruneCmd)
	pruneCmd.Flags().IntVar(&pruneDays, "days", 0, "Override retention in days (0 = use config)")
}

func runPrune(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	days := cfg.History.RetentionDays
	if pruneDays > 0 {
		days = pruneDays
	}

	db, err := database.New(config.DBPath())
	if err != nil {
		return err
	}
	defer db.Close()

	n, err := history.NewRepository(db).Prune(time.Now().AddDate(0, 0, -days))
	if err != nil {
		return fmt.Errorf("prune failed: %w", err)
	}

	fmt.Printf("Removed %d analyses older than %d days.\n", n, days)
	return nil
}
