package ioformats

// ReadURLs reads crawl seeds: a CSV file with a "url" column, or NDJSON
// lines that are either {"url": "..."} objects or bare URLs.
func ReadURLs(path string) ([]string, error) {
	recs, err := readRecords(path, "url")
	if err != nil {
		return nil, err
	}
	var out []string
	for _, r := range recs {
		out = append(out, r["url"]...)
	}
	return out, nil
}
