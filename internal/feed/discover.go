// internal/feed/discover.go
package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var feedPatterns = []string{
	"/feed",
	"/feed.xml",
	"/atom.xml",
	"/rss.xml",
	"/rss",
	"/index.xml",
}

// Discover finds the feed URL for a site: first from an alternate link in
// the page head, then by probing common feed paths.
func (f *Fetcher) Discover(ctx context.Context, siteURL string) (string, error) {
	base, err := url.Parse(siteURL)
	if err != nil {
		return "", fmt.Errorf("invalid site URL: %w", err)
	}

	if href, err := f.alternateLink(ctx, siteURL); err == nil && href != "" {
		ref, err := url.Parse(href)
		if err == nil {
			return base.ResolveReference(ref).String(), nil
		}
	}

	root := strings.TrimSuffix(siteURL, "/")
	for _, pattern := range feedPatterns {
		req, err := http.NewRequestWithContext(ctx, http.MethodHead, root+pattern, nil)
		if err != nil {
			continue
		}
		resp, err := f.client.Do(req)
		if err != nil {
			continue
		}
		resp.Body.Close()
		if resp.StatusCode == http.StatusOK {
			return root + pattern, nil
		}
	}

	return "", fmt.Errorf("could not discover feed for %s", siteURL)
}

func (f *Fetcher) alternateLink(ctx context.Context, siteURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, siteURL, nil)
	if err != nil {
		return "", err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}

	var href string
	doc.Find(`link[rel="alternate"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		typ, _ := s.Attr("type")
		if typ == "application/rss+xml" || typ == "application/atom+xml" {
			href, _ = s.Attr("href")
			return false
		}
		return true
	})
	return href, nil
}
