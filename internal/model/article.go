package model

// MaxArticleAuthors bounds the author list on a parsed article record
const MaxArticleAuthors = 5

// Article is a bibliographic record returned by a literature search.
// Records are immutable once fetched; the query cache hands out the same
// slice for repeated identical searches.
type Article struct {
	PMID     string   `json:"pmid"`
	Title    string   `json:"title"`
	Authors  []string `json:"authors,omitempty"` // First 5 authors at most
	Journal  string   `json:"journal,omitempty"`
	Year     string   `json:"year,omitempty"`
	Abstract string   `json:"abstract,omitempty"`
}
