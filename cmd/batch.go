// cmd/batch.go
package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/julienpequegnot/emolex/internal/config"
	"github.com/julienpequegnot/emolex/internal/database"
	"github.com/julienpequegnot/emolex/internal/history"
	"github.com/julienpequegnot/emolex/internal/ui"
)

var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Classify every line of a file",
	Long:  `Analyzes one text per non-empty line of the given file ("-" reads standard input).`,
	Args:  cobra.ExactArgs(1),
	RunE:  runBatch,
}

var (
	batchJSON bool
	batchSave bool
)

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().BoolVar(&batchJSON, "json", false, "Print verdicts as JSON lines")
	batchCmd.Flags().BoolVar(&batchSave, "save", false, "Record every analysis in history")
}

func runBatch(cmd *cobra.Command, args []string) error {
	var r io.Reader = cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	texts, err := readLines(r)
	if err != nil {
		return err
	}
	if len(texts) == 0 {
		fmt.Println("Nothing to analyze.")
		return nil
	}

	_, _, engine, err := loadEngine(cmd.Context())
	if err != nil {
		return err
	}

	verdicts := engine.AnalyzeBatch(texts)

	if batchSave {
		db, err := database.New(config.DBPath())
		if err != nil {
			return err
		}
		defer db.Close()

		repo := history.NewRepository(db)
		for i, v := range verdicts {
			if _, err := repo.Add(history.FromVerdict(texts[i], v)); err != nil {
				return fmt.Errorf("failed to save line %d: %w", i+1, err)
			}
		}
	}

	if batchJSON {
		enc := json.NewEncoder(os.Stdout)
		for _, v := range verdicts {
			if err := enc.Encode(v); err != nil {
				return err
			}
		}
		return nil
	}

	for i, v := range verdicts {
		fmt.Printf("%3d  %-12s %s  %s\n",
			i+1,
			ui.EmotionStyle(string(v.TopEmotion)).Render(string(v.TopEmotion)),
			ui.ScoreStyle.Render(fmt.Sprintf("%3.0f%%", v.Confidence*100)),
			ui.MutedStyle.Render(ui.Truncate(texts[i], 60)))
	}
	if batchSave {
		fmt.Printf("\nSaved %d analyses.\n", len(verdicts))
	}
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}
