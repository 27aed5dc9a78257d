package rank

import (
	"math"
	"sort"
)

// Distribution maps every page of a corpus to a probability.
type Distribution map[Page]float64

// RankResult is the output of an estimator.
type RankResult = Distribution

// PageRank is a single (page, rank) pair.
type PageRank struct {
	Page Page    `json:"page"`
	Rank float64 `json:"rank"`
}

// Sum returns the total probability mass.
func (d Distribution) Sum() float64 {
	s := 0.0
	for _, p := range d.sortedKeys() {
		s += d[p]
	}
	return s
}

// Sorted returns the entries ordered by page identifier.
func (d Distribution) Sorted() []PageRank {
	keys := d.sortedKeys()
	out := make([]PageRank, len(keys))
	for i, k := range keys {
		out[i] = PageRank{Page: k, Rank: d[k]}
	}
	return out
}

func (d Distribution) sortedKeys() []Page {
	keys := make([]Page, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// MaxAbsDiff returns the largest per-page absolute difference between a
// and b. Pages missing from one side count as zero there.
func MaxAbsDiff(a, b Distribution) float64 {
	m := 0.0
	for k, v := range a {
		m = math.Max(m, math.Abs(v-b[k]))
	}
	for k, v := range b {
		if _, ok := a[k]; !ok {
			m = math.Max(m, math.Abs(v))
		}
	}
	return m
}

func (c *Corpus) distribution(values []float64) Distribution {
	d := make(Distribution, len(c.pages))
	for i, p := range c.pages {
		d[p] = values[i]
	}
	return d
}
