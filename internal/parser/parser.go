// Package parser extracts titles and anchor targets from HTML documents.
package parser

import (
	"bytes"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"

	"go-pagerank/internal/models"
)

// Parser decodes HTML in any charset x/net/html/charset recognises and
// collects anchor hrefs. It holds no state and is safe for concurrent use.
type Parser struct{}

func New() *Parser { return &Parser{} }

// Extract reads an HTML document and returns its title and the href of
// every anchor. Hrefs are returned verbatim; resolving them is up to the
// caller.
func (p *Parser) Extract(r io.Reader, contentType string) (models.Page, error) {
	// Decode to UTF-8 if needed
	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, r); err != nil {
		return models.Page{}, err
	}
	data := buf.Bytes()

	enc, _, _ := charset.DetermineEncoding(data, contentType)
	utf8data, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		// fallback: if already utf-8, continue
		if !utf8.Valid(data) {
			return models.Page{}, err
		}
		utf8data = data
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(utf8data))
	if err != nil {
		return models.Page{}, err
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	seen := map[string]struct{}{}
	var links []string
	doc.Find("a[href]").Each(func(i int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" {
			return
		}
		if _, ok := seen[href]; ok {
			return
		}
		seen[href] = struct{}{}
		links = append(links, href)
	})

	return models.Page{Title: title, Links: links}, nil
}
