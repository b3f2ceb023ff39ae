package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/julienpequegnot/emolex/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "emolex",
	Short: "Classify the emotion behind short texts",
	Long: `Emolex scores short personal texts against an emotion lexicon,
blends in sentiment signals, and reports the dominant emotion with a
calibrated confidence and the evidence behind it.

Analyses can be kept in a local history for journeys, trends and progress.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = app.BuildVersion()
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
