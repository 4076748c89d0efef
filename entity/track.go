package entity

import "strings"

// TrackMetadata is what a track lookup provider knows
// about a single track
type TrackMetadata struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Artists     []string `json:"artists"`
	Album       string   `json:"album"`
	ReleaseDate string   `json:"release_date,omitempty"` // ISO-8601, possibly year or year-month only
	ExternalURL string   `json:"external_url,omitempty"`
}

// TrackQuery is a lookup request for a candidate:
// strict queries address title and artist fields separately,
// relaxed ones search them as free text
type TrackQuery struct {
	Title   string
	Artist  string
	Relaxed bool
}

func (track *TrackMetadata) Artist() string {
	if len(track.Artists) == 0 {
		return ""
	}
	return track.Artists[0]
}

// certain track names include the variant description,
// this function strips that part out:
// > Name: Song - Remastered 2011
// > Song: Song
func (track *TrackMetadata) Song() (song string) {
	song = track.Name
	song = strings.Split(song+" - ", " - ")[0]
	song = strings.Split(song+" (", " (")[0]
	song = strings.Split(song+" [", " [")[0]
	return
}
