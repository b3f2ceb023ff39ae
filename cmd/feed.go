// cmd/feed.go
package cmd

import (
	"fmt"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/julienpequegnot/emolex/internal/config"
	"github.com/julienpequegnot/emolex/internal/database"
	"github.com/julienpequegnot/emolex/internal/feed"
	"github.com/julienpequegnot/emolex/internal/history"
	"github.com/julienpequegnot/emolex/internal/ui"
)

var feedCmd = &cobra.Command{
	Use:   "feed [url...]",
	Short: "Classify the items of RSS/Atom feeds",
	Long: `Fetches the given feeds (or the feeds listed in config.yaml) and
classifies the title and text of every item. A site URL without a feed is
resolved through feed discovery.`,
	RunE: runFeed,
}

var (
	feedConcurrency int
	feedTimeout     time.Duration
	feedSave        bool
	feedLimit       int
)

func init() {
	rootCmd.AddCommand(feedCmd)
	feedCmd.Flags().IntVarP(&feedConcurrency, "concurrency", "c", 5, "Number of concurrent fetches")
	feedCmd.Flags().DurationVar(&feedTimeout, "timeout", 30*time.Second, "HTTP timeout per request")
	feedCmd.Flags().BoolVar(&feedSave, "save", false, "Record every item analysis in history")
	feedCmd.Flags().IntVarP(&feedLimit, "limit", "n", 10, "Items shown per feed (0 = all)")
}

func runFeed(cmd *cobra.Command, args []string) error {
	cfg, logger, engine, err := loadEngine(cmd.Context())
	if err != nil {
		return err
	}

	feeds := make([]config.Feed, 0, len(args))
	for _, u := range args {
		feeds = append(feeds, config.Feed{Name: u, URL: u})
	}
	if len(feeds) == 0 {
		feeds = cfg.Feeds
	}
	if len(feeds) == 0 {
		fmt.Println("No feeds given. Pass a URL or list feeds in config.yaml")
		return nil
	}

	var repo *history.Repository
	if feedSave {
		db, err := database.New(config.DBPath())
		if err != nil {
			return err
		}
		defer db.Close()
		repo = history.NewRepository(db)
	}

	ctx := cmd.Context()
	fetcher := feed.NewFetcher(feedTimeout)

	var wg sync.WaitGroup
	sem := make(chan struct{}, max(feedConcurrency, 1))
	var mu sync.Mutex
	totalItems, totalSaved := 0, 0

	for _, f := range feeds {
		wg.Add(1)
		go func(f config.Feed) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			items, err := fetcher.FetchFeed(ctx, f.URL)
			if err != nil {
				found, derr := fetcher.Discover(ctx, f.URL)
				if derr != nil {
					logger.Warn("feed fetch failed", "feed", f.Name, "error", err)
					mu.Lock()
					fmt.Printf("%s: %v\n", f.Name, err)
					mu.Unlock()
					return
				}
				logger.Debug("feed discovered", "site", f.URL, "feed", found)
				if items, err = fetcher.FetchFeed(ctx, found); err != nil {
					logger.Warn("feed fetch failed", "feed", found, "error", err)
					return
				}
			}

			results := feed.Analyze(engine, items)

			saved := 0
			if repo != nil {
				for _, r := range results {
					if _, err := repo.Add(history.FromVerdict(r.Item.Body(), r.Verdict)); err != nil {
						logger.Warn("failed to save item", "url", r.Item.URL, "error", err)
						continue
					}
					saved++
				}
			}

			mu.Lock()
			defer mu.Unlock()
			totalItems += len(results)
			totalSaved += saved

			fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("%s (%d items)", f.Name, len(results))))
			for i, r := range results {
				if feedLimit > 0 && i == feedLimit {
					fmt.Printf("  %s\n", ui.MutedStyle.Render(fmt.Sprintf("... %d more", len(results)-i)))
					break
				}
				fmt.Printf("  %-12s %s  %s\n",
					ui.EmotionStyle(string(r.Verdict.TopEmotion)).Render(string(r.Verdict.TopEmotion)),
					ui.ScoreStyle.Render(fmt.Sprintf("%3.0f%%", r.Verdict.Confidence*100)),
					ui.Truncate(r.Item.Title, 60))
			}
			fmt.Println()
		}(f)
	}

	wg.Wait()

	fmt.Printf("Total: %d items classified", totalItems)
	if feedSave {
		fmt.Printf(", %d saved", totalSaved)
	}
	fmt.Println()
	return nil
}
