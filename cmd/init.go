package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/julienpequegnot/emolex/internal/config"
	"github.com/julienpequegnot/emolex/internal/database"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize emolex configuration and database",
	Long:  `Creates the ~/.emolex directory with config.yaml and the SQLite history database.`,
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := config.Dir()

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to read existing config: %w", err)
	}
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Printf("Created config at %s/config.yaml\n", dir)

	db, err := database.New(config.DBPath())
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	db.Close()
	fmt.Printf("Created database at %s\n", config.DBPath())

	fmt.Println("\nEmolex initialized! Next steps:")
	fmt.Println("  emolex analyze \"I can't sleep tonight\"   Classify a text")
	fmt.Println("  emolex serve                             Start the HTTP API")

	return nil
}
