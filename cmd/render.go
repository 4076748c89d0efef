package cmd

import (
	"fmt"
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/streambinder/lyricsfinder/entity"
	"github.com/streambinder/lyricsfinder/finder"
	"github.com/streambinder/lyricsfinder/util/anchor"
)

func encode(w io.Writer, value interface{}) error {
	encoder := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

func render(tui *anchor.Anchor, result finder.Result) {
	switch result := result.(type) {
	case *finder.TooManyMatches:
		tui.AnchorPrintf("%s", result.Message)
	case *finder.NoMetadataAvailable:
		renderCorrection(tui, result.Corrected)
		tui.AnchorPrintf("%s", result.Note)
		for index, candidate := range result.Items {
			tui.Printf("%2d. %s — %s", index+1, candidate.Title, candidate.Artist)
		}
	case *finder.Matches:
		renderCorrection(tui, result.Corrected)
		if len(result.Items) == 0 {
			tui.AnchorPrintf("no matches found")
		}
		for index, item := range result.Items {
			tui.Printf("%2d. %s", index+1, line(item))
		}
	}
}

// summary is the one-line outcome shown once a search is over
func summary(result finder.Result) string {
	switch result := result.(type) {
	case *finder.TooManyMatches:
		return "too vague"
	case *finder.NoMetadataAvailable:
		return fmt.Sprintf("%d unranked matches", len(result.Items))
	case *finder.Matches:
		return fmt.Sprintf("%d matches", len(result.Items))
	}
	return ""
}

func renderCorrection(tui *anchor.Anchor, corrected string) {
	if len(corrected) > 0 {
		tui.AnchorPrintf("showing results for %q", corrected)
	}
}

func line(item entity.EnrichedCandidate) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "%s — %s", item.Title, item.Artist)
	if len(item.ReleaseDate) > 0 {
		fmt.Fprintf(&builder, " (%s)", item.ReleaseDate)
	}
	if len(item.ExternalID) > 0 {
		fmt.Fprintf(&builder, " [%s]", item.ExternalID)
	}
	return builder.String()
}

func renderTrack(tui *anchor.Anchor, track *entity.TrackMetadata) {
	tui.AnchorPrintf("%s — %s", track.Song(), track.Artist())
	if track.Name != track.Song() {
		tui.Printf("version:  %s", track.Name)
	}
	if len(track.Artists) > 1 {
		tui.Printf("artists:  %s", strings.Join(track.Artists, ", "))
	}
	for _, field := range [][2]string{
		{"album", track.Album},
		{"released", track.ReleaseDate},
		{"url", track.ExternalURL},
	} {
		if len(field[1]) > 0 {
			tui.Printf("%-9s %s", field[0]+":", field[1])
		}
	}
}
