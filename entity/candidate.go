package entity

// Candidate is an unverified (song title, artist) guess
// extracted from a search result
type Candidate struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
}

// Key is the canonical form of a candidate, used for equality only
type Key struct {
	Title  string
	Artist string
}

// EnrichedCandidate is a candidate resolved against a track lookup:
// empty fields mean the metadata is unknown
type EnrichedCandidate struct {
	Candidate
	ExternalID  string `json:"external_id,omitempty"`
	ReleaseDate string `json:"release_date,omitempty"`
}

func (candidate Candidate) String() string {
	return candidate.Title + " by " + candidate.Artist
}
