package parser

import (
	"fmt"
	"strings"
)

// SidePolicy resolves which side of a separator split is the title
// when no keyword gives it away: it is a word count heuristic
// and, as such, it can be wrong
type SidePolicy int

const (
	// the side with the same or fewer words is the title
	FewerWordsTitle SidePolicy = iota
	// the side with the same or fewer words is the artist
	FewerWordsArtist
)

var policyNames = map[SidePolicy]string{
	FewerWordsTitle:  "fewer-words-title",
	FewerWordsArtist: "fewer-words-artist",
}

// Assign returns left and right as (title, artist)
func (policy SidePolicy) Assign(left, right string) (string, string) {
	shorter := words(left) <= words(right)
	if policy == FewerWordsArtist {
		shorter = !shorter
	}
	if shorter {
		return left, right
	}
	return right, left
}

func (policy SidePolicy) String() string {
	if name, ok := policyNames[policy]; ok {
		return name
	}
	return fmt.Sprintf("policy(%d)", int(policy))
}

func ParseSidePolicy(name string) (SidePolicy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if len(name) == 0 {
		return FewerWordsTitle, nil
	}
	for policy, policyName := range policyNames {
		if policyName == name {
			return policy, nil
		}
	}
	return FewerWordsTitle, fmt.Errorf("unknown separator policy: %s", name)
}
