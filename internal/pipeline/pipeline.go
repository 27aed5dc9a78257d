// Package pipeline runs the estimators over a corpus and assembles the
// results for the report package and the HTTP API.
package pipeline

import (
	"fmt"
	"time"

	"go-pagerank/internal/config"
	"go-pagerank/internal/models"
	"go-pagerank/internal/rank"
	"go-pagerank/internal/report"
	"go-pagerank/pkg/logger"
)

// Seed returns cfg.Seed, or a time-based seed when it is zero.
func Seed(cfg config.Config) uint64 {
	if cfg.Seed != 0 {
		return cfg.Seed
	}
	return uint64(time.Now().UnixNano())
}

// Run builds the corpus from raw pages and runs sampling, iteration and,
// if cfg.Reference is set, the gonum estimator.
func Run(raw map[string][]string, cfg config.Config, rng rank.Rand, l *logger.Logger) (*models.RankResponse, error) {
	corpus, err := rank.BuildCorpus(raw)
	if err != nil {
		return nil, err
	}
	l.Debugf("corpus: %d pages, damping %.2f", corpus.Len(), cfg.Damping)

	start := time.Now()
	sampled, err := rank.SampleRank(corpus, cfg.Damping, cfg.Samples, rng)
	if err != nil {
		return nil, fmt.Errorf("sampling: %w", err)
	}
	l.Debugf("sampling: %d samples in %s", cfg.Samples, time.Since(start))

	start = time.Now()
	iterated, err := rank.IterateRank(corpus, cfg.Damping)
	if err != nil {
		return nil, fmt.Errorf("iteration: %w", err)
	}
	l.Debugf("iteration: converged in %s, max divergence from sampling %.4f", time.Since(start), rank.MaxAbsDiff(sampled, iterated))

	s := report.NewEstimate(models.MethodSampling, cfg.Samples, sampled)
	it := report.NewEstimate(models.MethodIteration, 0, iterated)
	resp := &models.RankResponse{Pages: corpus.Len(), Sampling: &s, Iteration: &it}

	if cfg.Reference {
		ref, err := rank.ReferenceRank(corpus, cfg.Damping, rank.DefaultReferenceTolerance)
		if err != nil {
			return nil, fmt.Errorf("reference: %w", err)
		}
		l.Debugf("reference: max divergence from iteration %.4f", rank.MaxAbsDiff(ref, iterated))
		r := report.NewEstimate(models.MethodReference, 0, ref)
		resp.Reference = &r
	}
	return resp, nil
}

// Estimates lists the estimates of resp in display order.
func Estimates(resp *models.RankResponse) []models.Estimate {
	var out []models.Estimate
	for _, e := range []*models.Estimate{resp.Sampling, resp.Iteration, resp.Reference} {
		if e != nil {
			out = append(out, *e)
		}
	}
	return out
}
