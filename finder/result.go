package finder

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/streambinder/lyricsfinder/entity"
)

const (
	KindMatches        = "matches"
	KindTooManyMatches = "too_many_matches"
	KindNoMetadata     = "no_metadata"
)

// Result is the outcome of processing a phrase,
// one of *Matches, *TooManyMatches or *NoMetadataAvailable:
// encoded, its "kind" field tells them apart
type Result interface {
	Kind() string
	result()
}

// Matches holds the enriched candidates, ranked by release date
type Matches struct {
	Corrected string                     `json:"corrected,omitempty"`
	Items     []entity.EnrichedCandidate `json:"matches"`
}

// TooManyMatches means the phrase is too vague to be worth enriching
type TooManyMatches struct {
	Count   int    `json:"count"`
	Message string `json:"message"`
}

// NoMetadataAvailable holds the candidates as they have been extracted,
// when tracks could not be looked up at all
type NoMetadataAvailable struct {
	Corrected string             `json:"corrected,omitempty"`
	Items     []entity.Candidate `json:"matches"`
	Note      string             `json:"note"`
}

func (*Matches) Kind() string             { return KindMatches }
func (*TooManyMatches) Kind() string      { return KindTooManyMatches }
func (*NoMetadataAvailable) Kind() string { return KindNoMetadata }

func (*Matches) result()             {}
func (*TooManyMatches) result()      {}
func (*NoMetadataAvailable) result() {}

func (result *Matches) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(struct {
		Kind      string                     `json:"kind"`
		Corrected string                     `json:"corrected,omitempty"`
		Items     []entity.EnrichedCandidate `json:"matches"`
	}{result.Kind(), result.Corrected, result.Items})
}

func (result *TooManyMatches) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(struct {
		Kind    string `json:"kind"`
		TooMany bool   `json:"too_many"`
		Count   int    `json:"count"`
		Message string `json:"message"`
	}{result.Kind(), true, result.Count, result.Message})
}

func (result *NoMetadataAvailable) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(struct {
		Kind      string             `json:"kind"`
		Corrected string             `json:"corrected,omitempty"`
		Items     []entity.Candidate `json:"matches"`
		Note      string             `json:"note"`
	}{result.Kind(), result.Corrected, result.Items, result.Note})
}
