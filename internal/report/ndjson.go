package report

import (
	"io"

	"go-pagerank/internal/ioformats"
	"go-pagerank/internal/models"
)

// NDJSONWriter emits one record per (method, page) pair.
type NDJSONWriter struct{}

func (NDJSONWriter) Write(w io.Writer, estimates []models.Estimate) error {
	var recs []models.RankRecord
	for _, e := range estimates {
		for _, r := range e.Ranks {
			recs = append(recs, models.RankRecord{Method: e.Method, Page: r.Page, Rank: r.Rank})
		}
	}
	return ioformats.WriteNDJSON(w, recs)
}
