// Package playerid decides whether a lookup keyword is a Steam identifier or
// a display name, and picks the best search candidate for a name.
package playerid

import (
	"fmt"
	"regexp"
	"strings"

	"l4d2stats/internal/errcode"

	"github.com/antzucaro/matchr"
	"github.com/leighmacdonald/steamid/v4/steamid"
)

// the offset between a 64-bit individual steam id and its account id
const individualBase int64 = 76561197960265728

var (
	legacyPattern = regexp.MustCompile(`^STEAM_[0-5]:[01]:\d+$`)
	steam3Pattern = regexp.MustCompile(`^\[U:1:\d+\]$`)
	id64Pattern   = regexp.MustCompile(`^7656119\d{10}$`)
)

type Kind int

const (
	KindName Kind = iota
	KindSteamID
)

type Identifier struct {
	Kind Kind
	// Raw is the trimmed keyword as given.
	Raw string
	// SteamID is the legacy STEAM_1:y:z form, set for KindSteamID only.
	SteamID string
}

func (i Identifier) String() string {
	if i.Kind == KindSteamID {
		return i.SteamID
	}
	return i.Raw
}

// Parse classifies keyword. Anything that looks like a steam id but does not
// validate is a caller error rather than a name.
func Parse(keyword string) (Identifier, error) {
	raw := strings.TrimSpace(keyword)
	if raw == "" {
		return Identifier{}, errcode.Caller(errcode.BadParams, fmt.Errorf("empty identifier"))
	}

	upper := strings.ToUpper(raw)
	if !legacyPattern.MatchString(upper) &&
		!steam3Pattern.MatchString(upper) &&
		!id64Pattern.MatchString(raw) {
		return Identifier{Kind: KindName, Raw: raw}, nil
	}

	sid := steamid.New(upper)
	if !sid.Valid() {
		return Identifier{}, errcode.Caller(errcode.BadParams, fmt.Errorf("invalid steam id %q", raw))
	}
	return Identifier{
		Kind:    KindSteamID,
		Raw:     raw,
		SteamID: Legacy(sid.Int64()),
	}, nil
}

// Legacy renders a 64-bit individual id as STEAM_1:y:z, the form the stats
// sites key their player pages on.
func Legacy(id64 int64) string {
	account := id64 - individualBase
	return fmt.Sprintf("STEAM_1:%d:%d", account&1, account>>1)
}

// BestMatch returns the index of the candidate whose name is closest to name
// by Jaro-Winkler similarity, or -1 when there are no candidates. Ties go to
// the earliest candidate.
func BestMatch(name string, candidates []string) int {
	target := strings.ToLower(strings.TrimSpace(name))
	best := -1
	bestScore := -1.0
	for i, candidate := range candidates {
		score := matchr.JaroWinkler(target, strings.ToLower(strings.TrimSpace(candidate)), false)
		if score > bestScore {
			best = i
			bestScore = score
		}
	}
	return best
}
