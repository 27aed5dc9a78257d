package rank

import (
	"fmt"

	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/simple"
)

// DefaultReferenceTolerance is the gonum convergence tolerance used when
// none is given.
const DefaultReferenceTolerance = 1e-6

// ReferenceRank computes PageRank with gonum's power iteration over the
// same graph. gonum spreads the rank of pages without links uniformly,
// which matches IterateRank, so the two agree up to their tolerances.
func ReferenceRank(c *Corpus, damping, tol float64) (RankResult, error) {
	if err := checkDamping(damping); err != nil {
		return nil, err
	}
	if tol <= 0 {
		tol = DefaultReferenceTolerance
	}

	g := simple.NewDirectedGraph()
	for i := range c.pages {
		g.AddNode(simple.Node(int64(i)))
	}
	for i, out := range c.links {
		for _, j := range out {
			g.SetEdge(simple.Edge{F: simple.Node(int64(i)), T: simple.Node(int64(j))})
		}
	}

	scores := network.PageRank(g, damping, tol)
	if len(scores) != len(c.pages) {
		return nil, fmt.Errorf("reference pagerank returned %d scores for %d pages", len(scores), len(c.pages))
	}

	ranks := make([]float64, len(c.pages))
	for i := range ranks {
		ranks[i] = scores[int64(i)]
	}
	return c.distribution(ranks), nil
}
