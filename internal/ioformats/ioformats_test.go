package ioformats

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestReadURLs(t *testing.T) {
	cases := []struct {
		name, file, content string
		want                []string
	}{
		{"csv", "seeds.csv", "id,URL\n1,https://a.test/\n2, https://b.test/x \n3,\n", []string{"https://a.test/", "https://b.test/x"}},
		{"ndjson", "seeds.ndjson", "{\"url\":\"https://a.test/\"}\n\nhttps://b.test/\n", []string{"https://a.test/", "https://b.test/"}},
		{"unknown ext", "seeds.txt", "https://a.test/\nhttps://b.test/\n", []string{"https://a.test/", "https://b.test/"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ReadURLs(writeTemp(t, tc.file, tc.content))
			if err != nil {
				t.Fatalf("read: %v", err)
			}
			if strings.Join(got, " ") != strings.Join(tc.want, " ") {
				t.Fatalf("want %v, got %v", tc.want, got)
			}
		})
	}
}

func TestReadURLsErrors(t *testing.T) {
	if _, err := ReadURLs(writeTemp(t, "seeds.csv", "id,name\n1,x\n")); err == nil {
		t.Fatal("expected error for csv without url column")
	}
	if _, err := ReadURLs(writeTemp(t, "seeds.jsonl", "\n\n")); !errors.Is(err, ErrNoRecords) {
		t.Fatalf("want ErrNoRecords, got %v", err)
	}
	if _, err := ReadURLs(writeTemp(t, "seeds.ndjson", "{\"url\": 3}\n")); err == nil {
		t.Fatal("expected error for non-string url")
	}
}

func TestReadCorpusNDJSON(t *testing.T) {
	content := `{"page": "1.html", "links": ["2.html", "3.html"]}
{"page": "2.html", "links": []}
{"page": "1.html", "links": "4.html"}
3.html
`
	pages, err := ReadCorpus(writeTemp(t, "corpus.ndjson", content))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(pages) != 3 {
		t.Fatalf("want 3 pages, got %v", pages)
	}
	if got := strings.Join(pages["1.html"], " "); got != "2.html 3.html 4.html" {
		t.Fatalf("links of 1.html not merged: %q", got)
	}
	if _, ok := pages["3.html"]; !ok || len(pages["2.html"]) != 0 {
		t.Fatalf("pages without links must still be present: %v", pages)
	}
}

func TestReadCorpusCSV(t *testing.T) {
	content := "page,links\na.html,b.html c.html\nb.html,\nc.html,a.html\n"
	pages, err := ReadCorpus(writeTemp(t, "corpus.csv", content))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(pages) != 3 || len(pages["a.html"]) != 2 || len(pages["b.html"]) != 0 {
		t.Fatalf("unexpected corpus %v", pages)
	}
}

func TestReadCorpusErrors(t *testing.T) {
	if _, err := ReadCorpus(writeTemp(t, "corpus.csv", "url\nx\n")); err == nil {
		t.Fatal("expected error for csv without page column")
	}
	if _, err := ReadCorpus(writeTemp(t, "corpus.ndjson", "{\"links\": [\"a\"]}\n")); !errors.Is(err, ErrNoRecords) {
		t.Fatalf("want ErrNoRecords, got %v", err)
	}
	if _, err := ReadCorpus(writeTemp(t, "corpus.ndjson", "{not json\n")); err == nil {
		t.Fatal("expected error for malformed line")
	}
}

func TestWriteNDJSON(t *testing.T) {
	type rec struct {
		Page string  `json:"page"`
		Rank float64 `json:"rank"`
	}
	var buf bytes.Buffer
	if err := WriteNDJSON(&buf, []rec{{"a", 0.5}, {"b", 0.25}}); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := "{\"page\":\"a\",\"rank\":0.5}\n{\"page\":\"b\",\"rank\":0.25}\n"
	if buf.String() != want {
		t.Fatalf("want %q, got %q", want, buf.String())
	}
}
