package ioformats

// ReadCorpus reads a link corpus in the shape rank.BuildCorpus takes.
//
// NDJSON lines look like {"page": "a.html", "links": ["b.html"]}. CSV
// files have "page" and "links" columns, one or more links per cell. A
// page may appear on several rows; its links are merged. Links are
// returned unfiltered.
func ReadCorpus(path string) (map[string][]string, error) {
	recs, err := readRecords(path, "page", "links")
	if err != nil {
		return nil, err
	}
	pages := map[string][]string{}
	for _, r := range recs {
		for _, p := range r["page"] {
			pages[p] = append(pages[p], r["links"]...)
		}
	}
	return pages, nil
}
