// Package report renders estimator results for people and machines.
package report

import (
	"fmt"
	"io"

	"go-pagerank/internal/config"
	"go-pagerank/internal/models"
	"go-pagerank/internal/rank"
)

// Writer renders a set of estimates.
type Writer interface {
	Write(w io.Writer, estimates []models.Estimate) error
}

// New returns the writer for one of the config.Format* values.
func New(format string) (Writer, error) {
	switch format {
	case config.FormatText, "":
		return TextWriter{}, nil
	case config.FormatMarkdown:
		return MarkdownWriter{}, nil
	case config.FormatNDJSON:
		return NDJSONWriter{}, nil
	}
	return nil, fmt.Errorf("%w: %q", config.ErrInvalidFormat, format)
}

// NewEstimate converts an estimator result to its presentation form.
// samples is only meaningful for the sampling method.
func NewEstimate(method models.Method, samples int, ranks rank.RankResult) models.Estimate {
	sorted := ranks.Sorted()
	e := models.Estimate{Method: method, Samples: samples, Ranks: make([]models.RankEntry, len(sorted))}
	for i, pr := range sorted {
		e.Ranks[i] = models.RankEntry{Page: pr.Page, Rank: pr.Rank}
	}
	return e
}

func heading(e models.Estimate) string {
	switch e.Method {
	case models.MethodSampling:
		return fmt.Sprintf("PageRank Results from Sampling (n = %d)", e.Samples)
	case models.MethodIteration:
		return "PageRank Results from Iteration"
	case models.MethodReference:
		return "PageRank Results from Reference (gonum)"
	}
	return "PageRank Results from " + string(e.Method)
}

// TextWriter prints each estimate as a heading followed by one
// "page: rank" line per page.
type TextWriter struct{}

func (TextWriter) Write(w io.Writer, estimates []models.Estimate) error {
	for _, e := range estimates {
		if _, err := fmt.Fprintln(w, heading(e)); err != nil {
			return err
		}
		for _, r := range e.Ranks {
			if _, err := fmt.Fprintf(w, "  %s: %.4f\n", r.Page, r.Rank); err != nil {
				return err
			}
		}
	}
	return nil
}
