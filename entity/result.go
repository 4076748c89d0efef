package entity

// Source tells which search backend produced a result
type Source int

const (
	Primary Source = iota
	Fallback
)

func (source Source) String() string {
	if source == Fallback {
		return "fallback"
	}
	return "primary"
}

func (source Source) MarshalText() ([]byte, error) {
	return []byte(source.String()), nil
}

// SearchResult is a single search engine hit:
// only the title and the short description are known
type SearchResult struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Source  Source `json:"source"`
}
