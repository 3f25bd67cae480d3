package models

import "fmt"

// Kind is an entity kind reconciled between the codex and the guide.
type Kind string

const (
	KindItem     Kind = "items"
	KindMonster  Kind = "monsters"
	KindSkill    Kind = "skills"
	KindFollower Kind = "followers"
)

// Kinds lists every reconcilable kind in reconciliation order. Items come
// last so the monster and skill fixes they depend on have already run.
var Kinds = []Kind{KindSkill, KindMonster, KindFollower, KindItem}

// ParseKind validates a kind name.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown kind %q", s)
}

// Codex URI prefixes, one per codex namespace.
const (
	PrefixItems     = "/items/"
	PrefixMonsters  = "/monsters/"
	PrefixBosses    = "/bosses/"
	PrefixRaids     = "/raids/"
	PrefixSkills    = "/spells/"
	PrefixFollowers = "/followers/"
)

// ParseKinds validates kind names. No names, or the single name "all",
// selects every kind.
func ParseKinds(names []string) ([]Kind, error) {
	if len(names) == 0 || (len(names) == 1 && names[0] == "all") {
		return Kinds, nil
	}
	out := make([]Kind, 0, len(names))
	for _, n := range names {
		k, err := ParseKind(n)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, nil
}
