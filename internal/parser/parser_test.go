package parser

import (
	"strings"
	"testing"
)

const sampleHTML = `<!doctype html><html lang="en"><head>
<title>Test Page</title>
</head><body>
<h1>Hello</h1>
<p>See <a href="2.html">two</a> and <a class="x" href="3.html">three</a>.</p>
<p>Again <a href="2.html">two</a>, <a name="anchor">no href</a>, <a href="">empty</a>.</p>
<a href="https://example.com/">outside</a>
</body></html>`

func TestExtract(t *testing.T) {
	p := New()
	page, err := p.Extract(strings.NewReader(sampleHTML), "text/html; charset=utf-8")
	if err != nil {
		t.Fatalf("extract error: %v", err)
	}
	if page.Title != "Test Page" {
		t.Fatalf("want title Test Page, got %q", page.Title)
	}
	want := []string{"2.html", "3.html", "https://example.com/"}
	if len(page.Links) != len(want) {
		t.Fatalf("want %v, got %v", want, page.Links)
	}
	for i := range want {
		if page.Links[i] != want[i] {
			t.Fatalf("link %d: want %q, got %q", i, want[i], page.Links[i])
		}
	}
}

func TestExtractLatin1(t *testing.T) {
	doc := "<html><head><title>Caf\xe9</title></head><body><a href=\"a.html\">a</a></body></html>"
	page, err := New().Extract(strings.NewReader(doc), "text/html; charset=iso-8859-1")
	if err != nil {
		t.Fatalf("extract error: %v", err)
	}
	if page.Title != "Café" {
		t.Fatalf("want decoded title, got %q", page.Title)
	}
	if len(page.Links) != 1 || page.Links[0] != "a.html" {
		t.Fatalf("unexpected links %v", page.Links)
	}
}

func TestExtractNoLinks(t *testing.T) {
	page, err := New().Extract(strings.NewReader("<html><body><p>plain</p></body></html>"), "")
	if err != nil {
		t.Fatalf("extract error: %v", err)
	}
	if len(page.Links) != 0 {
		t.Fatalf("expected no links, got %v", page.Links)
	}
}
