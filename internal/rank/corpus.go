package rank

import (
	"fmt"
	"sort"
)

// Page identifies a document in a corpus.
type Page = string

// Corpus is an immutable link graph. Every link target is a page of the
// corpus and no page links to itself.
type Corpus struct {
	pages   []Page
	index   map[Page]int
	links   [][]int // outbound, sorted by index
	inbound [][]int // inbound, sorted by index
}

// BuildCorpus keeps only links that resolve to other pages of the
// mapping. Duplicates and self references are dropped.
func BuildCorpus(raw map[string][]string) (*Corpus, error) {
	if len(raw) == 0 {
		return nil, ErrInvalidCorpus
	}

	pages := make([]Page, 0, len(raw))
	for p := range raw {
		pages = append(pages, p)
	}
	sort.Strings(pages)

	c := &Corpus{
		pages:   pages,
		index:   make(map[Page]int, len(pages)),
		links:   make([][]int, len(pages)),
		inbound: make([][]int, len(pages)),
	}
	for i, p := range pages {
		c.index[p] = i
	}

	for i, p := range pages {
		seen := map[int]struct{}{}
		for _, l := range raw[p] {
			j, ok := c.index[l]
			if !ok || j == i {
				continue
			}
			if _, dup := seen[j]; dup {
				continue
			}
			seen[j] = struct{}{}
			c.links[i] = append(c.links[i], j)
		}
		sort.Ints(c.links[i])
		for _, j := range c.links[i] {
			c.inbound[j] = append(c.inbound[j], i)
		}
	}
	// inbound lists are filled in ascending source order already.
	return c, nil
}

// Len returns the number of pages.
func (c *Corpus) Len() int { return len(c.pages) }

// Pages returns the page identifiers in sorted order.
func (c *Corpus) Pages() []Page {
	out := make([]Page, len(c.pages))
	copy(out, c.pages)
	return out
}

// Has reports whether p is a page of the corpus.
func (c *Corpus) Has(p Page) bool {
	_, ok := c.index[p]
	return ok
}

// Links returns the sorted outbound links of p.
func (c *Corpus) Links(p Page) []Page {
	return c.names(c.links[c.mustIndex(p)])
}

// Inbound returns the sorted pages linking to p.
func (c *Corpus) Inbound(p Page) []Page {
	return c.names(c.inbound[c.mustIndex(p)])
}

// OutDegree returns the number of outbound links of p.
func (c *Corpus) OutDegree(p Page) int {
	return len(c.links[c.mustIndex(p)])
}

func (c *Corpus) names(idx []int) []Page {
	out := make([]Page, len(idx))
	for k, i := range idx {
		out[k] = c.pages[i]
	}
	return out
}

func (c *Corpus) mustIndex(p Page) int {
	i, ok := c.index[p]
	if !ok {
		panic(fmt.Sprintf("rank: page %q is not in the corpus", p))
	}
	return i
}
