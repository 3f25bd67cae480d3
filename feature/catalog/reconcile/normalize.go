package reconcile

import (
	"math"
	"strings"

	"guide-sync/core/utils"
	"guide-sync/feature/catalog/match"
)

// codexIconBase is stripped from codex icon URLs; the guide stores the path only.
const codexIconBase = "https://playorna.com/static/img/"

// eventPrefixes mark guide spawns standing for an in-game event. The first
// entry is used when an event spawn has to be looked up by name.
var eventPrefixes = []string{"Event: "}

// raidSpawn is given to raids created from the codex so Classify finds them.
const raidSpawn = "World Raid"

// statusAliases maps codex status effect spellings to the guide's names.
var statusAliases = map[string]string{
	"Att ↑": "Attack ↑",
	"Def ↑": "Defense ↑",
	"Mag ↑": "Magic ↑",
	"Res ↑": "Resistance ↑",
	"Dex ↑": "Dexterity ↑",
	"Att ↓": "Attack ↓",
	"Def ↓": "Defense ↓",
	"Mag ↓": "Magic ↓",
	"Res ↓": "Resistance ↓",
	"Dex ↓": "Dexterity ↓",
}

// iconPath turns a codex icon URL into the guide image path.
func iconPath(icon string) string {
	return strings.TrimPrefix(strings.TrimSpace(icon), codexIconBase)
}

// description collapses whitespace so line wrapping differences are ignored.
func description(s string) string {
	return utils.CollapseSpaces(s)
}

func element(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// baseStat scales a stat shown at quality percent back to common quality.
func baseStat(v, quality int) int {
	if quality == 0 || quality == 100 {
		return v
	}
	return int(math.Round(float64(v) * 100 / float64(quality)))
}

// statusNames applies statusAliases to codex status effect names.
func statusNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if alias, ok := statusAliases[n]; ok {
			n = alias
		}
		out = append(out, n)
	}
	return out
}

// eventName returns the event a spawn stands for, if any.
func eventName(spawn string) (string, bool) {
	for _, p := range eventPrefixes {
		if name, ok := strings.CutPrefix(spawn, p); ok {
			return name, true
		}
	}
	return "", false
}

// eventSpawnNames maps codex event names to guide spawn names.
func eventSpawnNames(events []string) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, eventPrefixes[0]+strings.TrimSpace(e))
	}
	return out
}

// canonicalURI trims a codex URI and gives it exactly one trailing separator.
func canonicalURI(uri string) string {
	return match.Canonical(uri)
}
