package rank

import "math"

// ConvergenceTolerance is the per-page absolute change below which
// IterateRank stops.
const ConvergenceTolerance = 0.001

// IterateRank computes PageRank by applying the recurrence
//
//	PR(p) = (1-d)/N + d * Σ PR(q)/L(q) + d * Σ PR(z)/N
//
// where q ranges over pages linking to p and z over pages without links,
// until no page moves by ConvergenceTolerance or more. The vector is
// renormalised to sum to 1 after every round.
func IterateRank(c *Corpus, damping float64) (RankResult, error) {
	if err := checkDamping(damping); err != nil {
		return nil, err
	}
	ranks := make([]float64, len(c.pages))
	for i := range ranks {
		ranks[i] = 1 / float64(len(c.pages))
	}
	return c.distribution(c.iterateFrom(ranks, damping)), nil
}

// iterateFrom runs the recurrence starting at ranks and returns the
// converged, normalised vector.
func (c *Corpus) iterateFrom(ranks []float64, damping float64) []float64 {
	n := float64(len(c.pages))
	for {
		dangling := 0.0
		for i, r := range ranks {
			if len(c.links[i]) == 0 {
				dangling += r / n
			}
		}

		next := make([]float64, len(ranks))
		converged := true
		for p := range next {
			total := (1 - damping) / n
			for _, q := range c.inbound[p] {
				total += damping * ranks[q] / float64(len(c.links[q]))
			}
			total += damping * dangling
			next[p] = total
			if math.Abs(total-ranks[p]) >= ConvergenceTolerance {
				converged = false
			}
		}

		sum := 0.0
		for _, v := range next {
			sum += v
		}
		for i := range next {
			next[i] /= sum
		}
		ranks = next

		if converged {
			return ranks
		}
	}
}
