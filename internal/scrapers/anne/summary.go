package anne

import (
	"fmt"
	"strings"
)

// Summary renders the plain-text reply for a player lookup.
func Summary(r PlayerRecord) string {
	var sb strings.Builder

	sb.WriteString("-- player info --\n\n")
	if r.KillSummary != "" {
		sb.WriteString(r.KillSummary)
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "Name: %s\n", r.Info.Name)
	fmt.Fprintf(&sb, "Last seen: %s\n", r.Info.LastSeen)
	fmt.Fprintf(&sb, "Play time: %s\n", r.Info.PlayTime)

	fmt.Fprintf(&sb, "Rank: %s\n", r.Detail.Rank)
	fmt.Fprintf(&sb, "Score: %s\n", r.Detail.Score)
	fmt.Fprintf(&sb, "Score per minute: %s\n", r.Detail.ScorePerMinute)
	fmt.Fprintf(&sb, "Infected killed: %s\n", r.Detail.InfectedKills)
	fmt.Fprintf(&sb, "Survivors killed: %s\n", r.Detail.SurvivorKills)
	fmt.Fprintf(&sb, "Headshots: %s\n", r.Detail.Headshots)
	fmt.Fprintf(&sb, "Headshot rate: %s\n", r.Detail.HeadshotRate)
	fmt.Fprintf(&sb, "Maps played: %s\n", r.Detail.MapsPlayed)

	sb.WriteString("\n--- friendly fire ---\n")
	fmt.Fprintf(&sb, "Friendly fire: %s\n", r.Errors.FriendlyFire)
	fmt.Fprintf(&sb, "Teammates killed: %s\n", r.Errors.TeammatesKilled)
	fmt.Fprintf(&sb, "Teammates downed: %s\n", r.Errors.TeammatesDowned)
	fmt.Fprintf(&sb, "Teammates abandoned: %s\n", r.Errors.TeammatesAbandoned)
	fmt.Fprintf(&sb, "Infected let into the saferoom: %s\n", r.Errors.LetIntoSaferoom)
	fmt.Fprintf(&sb, "Witches startled: %s\n", r.Errors.WitchesStartled)

	return sb.String()
}
