package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"go-pagerank/internal/models"
)

// MarkdownWriter renders one table per estimate.
type MarkdownWriter struct{}

func (MarkdownWriter) Write(w io.Writer, estimates []models.Estimate) error {
	md := markdown.NewMarkdown(w)
	md.H1("PageRank")
	md.PlainText("")
	for _, e := range estimates {
		md.H2(heading(e))
		md.PlainText("")

		rows := make([][]string, 0, len(e.Ranks))
		for _, r := range e.Ranks {
			rows = append(rows, []string{"`" + r.Page + "`", strconv.FormatFloat(r.Rank, 'f', 4, 64)})
		}
		md.Table(markdown.TableSet{
			Header: []string{"Page", "Rank"},
			Rows:   rows,
		})
		md.PlainText("")
	}
	return md.Build()
}
