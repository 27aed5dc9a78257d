package rank

// Transition returns the probability of moving from page to each page of
// the corpus. With probability damping the surfer follows one of page's
// links; otherwise it jumps to any page uniformly. A page without links
// behaves as if it linked to every page, itself included.
//
// Transition panics if page is not part of c.
func Transition(c *Corpus, page Page, damping float64) (Distribution, error) {
	if err := checkDamping(damping); err != nil {
		return nil, err
	}
	return c.distribution(c.transition(c.mustIndex(page), damping)), nil
}

// transition fills a probability vector indexed like c.pages.
func (c *Corpus) transition(from int, damping float64) []float64 {
	n := float64(len(c.pages))
	probs := make([]float64, len(c.pages))

	links := c.links[from]
	if len(links) == 0 {
		for i := range probs {
			probs[i] = 1 / n
		}
		return probs
	}

	for _, j := range links {
		probs[j] = damping / float64(len(links))
	}
	for i := range probs {
		probs[i] += (1 - damping) / n
	}
	return probs
}
