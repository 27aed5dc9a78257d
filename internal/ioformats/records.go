// Package ioformats reads crawl seeds and link corpora from CSV or NDJSON
// files and writes NDJSON output.
package ioformats

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoRecords is returned when an input file holds no usable record.
var ErrNoRecords = errors.New("no records found")

// record holds the requested fields of one input row. Every field may
// carry several values.
type record map[string][]string

// readRecords decodes path into records restricted to fields. The
// format follows the extension (.csv, .ndjson, .jsonl); anything else is
// tried as CSV first and NDJSON second.
//
// CSV files need a header naming at least fields[0]; a cell holds
// whitespace separated values. NDJSON lines are objects whose fields are
// strings or string arrays. A line that is not an object is taken as the
// single value of fields[0].
func readRecords(path string, fields ...string) ([]record, error) {
	f, err := os.Open(path) //nolint:gosec // input path is chosen by the user
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var recs []record
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		recs, err = decodeCSV(f, fields)
	case ".ndjson", ".jsonl":
		recs, err = decodeNDJSON(f, fields)
	default:
		recs, err = decodeCSV(f, fields)
		if err != nil {
			if _, serr := f.Seek(0, io.SeekStart); serr != nil {
				return nil, serr
			}
			recs, err = decodeNDJSON(f, fields)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoRecords)
	}
	return recs, nil
}

func decodeCSV(r io.Reader, fields []string) ([]record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err != nil {
		return nil, err
	}
	cols := map[string]int{}
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := cols[fields[0]]; !ok {
		return nil, fmt.Errorf("csv must contain a %q header column", fields[0])
	}

	var recs []record
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return recs, nil
		}
		if err != nil {
			return nil, err
		}
		rec := record{}
		for _, name := range fields {
			if i, ok := cols[name]; ok && i < len(row) {
				rec[name] = strings.Fields(row[i])
			}
		}
		if len(rec[fields[0]]) > 0 {
			recs = append(recs, rec)
		}
	}
}

func decodeNDJSON(r io.Reader, fields []string) ([]record, error) {
	var recs []record
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "{") {
			recs = append(recs, record{fields[0]: {line}})
			continue
		}
		var obj map[string]json.RawMessage
		if err := json.Unmarshal([]byte(line), &obj); err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		rec := record{}
		for _, name := range fields {
			raw, ok := obj[name]
			if !ok {
				continue
			}
			vals, err := decodeValues(raw)
			if err != nil {
				return nil, fmt.Errorf("line %d: field %q: %w", n, name, err)
			}
			rec[name] = vals
		}
		if len(rec[fields[0]]) > 0 {
			recs = append(recs, rec)
		}
	}
	return recs, sc.Err()
}

// decodeValues accepts a JSON string or an array of strings.
func decodeValues(raw json.RawMessage) ([]string, error) {
	var one string
	if err := json.Unmarshal(raw, &one); err == nil {
		if one = strings.TrimSpace(one); one == "" {
			return nil, nil
		}
		return []string{one}, nil
	}
	var many []string
	if err := json.Unmarshal(raw, &many); err != nil {
		return nil, errors.New("want a string or an array of strings")
	}
	out := many[:0]
	for _, v := range many {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out, nil
}

// WriteNDJSON writes items to w, one JSON document per line.
func WriteNDJSON[T any](w io.Writer, items []T) error {
	enc := json.NewEncoder(w)
	for _, it := range items {
		if err := enc.Encode(it); err != nil {
			return err
		}
	}
	return nil
}
