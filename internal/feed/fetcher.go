package feed

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"github.com/julienpequegnot/emolex/internal/emotion"
)

// Item is one feed entry reduced to plain text.
type Item struct {
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Author      string    `json:"author,omitempty"`
	PublishedAt time.Time `json:"published_at"`
	Text        string    `json:"text"`
}

// Body is the text that gets analyzed: the title followed by the content.
func (it Item) Body() string {
	if it.Text == "" {
		return it.Title
	}
	return it.Title + ". " + it.Text
}

type Fetcher struct {
	parser *gofeed.Parser
	client *http.Client
}

func NewFetcher(timeout time.Duration) *Fetcher {
	client := &http.Client{Timeout: timeout}
	parser := gofeed.NewParser()
	parser.Client = client
	return &Fetcher{parser: parser, client: client}
}

func (f *Fetcher) FetchFeed(ctx context.Context, feedURL string) ([]Item, error) {
	parsed, err := f.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}
	return itemsFrom(parsed), nil
}

// ParseString reads a feed document already in memory.
func (f *Fetcher) ParseString(doc string) ([]Item, error) {
	parsed, err := f.parser.ParseString(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}
	return itemsFrom(parsed), nil
}

func itemsFrom(parsed *gofeed.Feed) []Item {
	var items []Item
	for _, it := range parsed.Items {
		item := Item{
			URL:   it.Link,
			Title: strings.TrimSpace(it.Title),
		}

		if it.Author != nil {
			item.Author = it.Author.Name
		} else if len(parsed.Authors) > 0 {
			item.Author = parsed.Authors[0].Name
		}

		switch {
		case it.PublishedParsed != nil:
			item.PublishedAt = *it.PublishedParsed
		case it.UpdatedParsed != nil:
			item.PublishedAt = *it.UpdatedParsed
		default:
			item.PublishedAt = time.Now()
		}

		content := it.Content
		if content == "" {
			content = it.Description
		}
		item.Text = ExtractText(content)

		items = append(items, item)
	}
	return items
}

// ExtractText strips markup from an HTML fragment and collapses whitespace.
// Script and style contents are dropped.
func ExtractText(html string) string {
	if strings.TrimSpace(html) == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return strings.Join(strings.Fields(html), " ")
	}
	doc.Find("script, style, noscript").Remove()

	var parts []string
	doc.Find("body").Contents().Each(func(_ int, s *goquery.Selection) {
		if t := strings.TrimSpace(s.Text()); t != "" {
			parts = append(parts, t)
		}
	})
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

// Analyzer classifies many texts at once.
type Analyzer interface {
	AnalyzeBatch(texts []string) []emotion.Verdict
}

// Result pairs an item with its verdict.
type Result struct {
	Item    Item            `json:"item"`
	Verdict emotion.Verdict `json:"verdict"`
}

// Analyze classifies every item's body in one batch.
func Analyze(a Analyzer, items []Item) []Result {
	texts := make([]string, len(items))
	for i, it := range items {
		texts[i] = it.Body()
	}

	verdicts := a.AnalyzeBatch(texts)
	results := make([]Result, len(items))
	for i := range items {
		results[i] = Result{Item: items[i], Verdict: verdicts[i]}
	}
	return results
}
