package crawler

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"golang.org/x/sync/errgroup"

	"go-pagerank/internal/parser"
	"go-pagerank/pkg/logger"
)

// Crawl fetches every seed once, with at most concurrency requests in
// flight, and returns pages keyed by their final URL. Links are resolved
// against that URL with fragments removed. Links are not followed; only
// seeds become pages.
//
// A seed that cannot be fetched or parsed is logged and skipped.
func Crawl(ctx context.Context, client *HTTPClient, p *parser.Parser, seeds []string, concurrency int, l *logger.Logger) (map[string][]string, error) {
	if concurrency < 1 {
		concurrency = 1
	}

	var mu sync.Mutex
	pages := make(map[string][]string, len(seeds))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for _, seed := range seeds {
		g.Go(func() error {
			id, links, err := fetchPage(gctx, client, p, seed)
			if err != nil {
				l.Errorf("crawl %s: %v", seed, err)
				return nil
			}
			l.Debugf("crawled %s (%d links)", id, len(links))
			mu.Lock()
			pages[id] = links
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("crawl of %d seeds: %w", len(seeds), ErrNoPages)
	}
	return pages, nil
}

func fetchPage(ctx context.Context, client *HTTPClient, p *parser.Parser, seed string) (string, []string, error) {
	resp, err := client.Fetch(ctx, seed)
	if err != nil {
		return "", nil, err
	}
	defer resp.Body.Close()

	page, err := p.Extract(resp.Body, resp.ContentType)
	if err != nil {
		return "", nil, err
	}

	base, err := url.Parse(resp.FinalURL)
	if err != nil {
		return "", nil, err
	}
	base.Fragment = ""

	links := make([]string, 0, len(page.Links))
	for _, href := range page.Links {
		ref, err := url.Parse(href)
		if err != nil {
			continue
		}
		abs := base.ResolveReference(ref)
		abs.Fragment = ""
		links = append(links, abs.String())
	}
	return base.String(), links, nil
}
