package crawler

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go-pagerank/internal/parser"
)

// ErrNoPages is returned when a source yields no pages at all.
var ErrNoPages = errors.New("no pages found")

// LoadDir parses every .html file directly inside dir. Pages are keyed by
// file name and map to the raw hrefs found in them.
func LoadDir(dir string, p *parser.Parser) (map[string][]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	pages := map[string][]string{}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".html") {
			continue
		}
		links, err := loadFile(filepath.Join(dir, e.Name()), p)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", e.Name(), err)
		}
		pages[e.Name()] = links
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoPages)
	}
	return pages, nil
}

func loadFile(path string, p *parser.Parser) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // corpus directory is chosen by the user
	if err != nil {
		return nil, err
	}
	defer f.Close()

	page, err := p.Extract(f, "text/html")
	if err != nil {
		return nil, err
	}
	return page.Links, nil
}
