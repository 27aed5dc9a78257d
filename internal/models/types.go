package models

// Page is a parsed HTML document: its title and the raw href values of
// its anchors, in order of first appearance.
type Page struct {
	Title string   `json:"title,omitempty"`
	Links []string `json:"links,omitempty"`
}

// Method names an estimator.
type Method string

const (
	MethodSampling  Method = "sampling"
	MethodIteration Method = "iteration"
	MethodReference Method = "reference"
)

type RankEntry struct {
	Page string  `json:"page"`
	Rank float64 `json:"rank"`
}

// Estimate is the presentation form of one estimator's output, ordered
// by page identifier.
type Estimate struct {
	Method  Method      `json:"method"`
	Samples int         `json:"samples,omitempty"`
	Ranks   []RankEntry `json:"ranks"`
}

// RankRecord is one NDJSON output line.
type RankRecord struct {
	Method Method  `json:"method"`
	Page   string  `json:"page"`
	Rank   float64 `json:"rank"`
}

type RankResponse struct {
	Pages     int       `json:"pages"`
	Sampling  *Estimate `json:"sampling,omitempty"`
	Iteration *Estimate `json:"iteration,omitempty"`
	Reference *Estimate `json:"reference,omitempty"`
}
