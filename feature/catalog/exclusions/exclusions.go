// Package exclusions is the single table of entities and fields left out of
// reconciliation because the codex is known to be wrong about them.
//
// Each rule names the codex namespace, the slug, the fields it covers (none
// means the whole entity) and why it exists. Remove a rule once the codex
// has been fixed upstream.
package exclusions

import "slices"

// Rule excludes an entity, or some of its fields, from reconciliation.
type Rule struct {
	// Namespace is the codex URI prefix (e.g. "/items/").
	Namespace string `json:"namespace"`
	// Slug is the codex slug of the entity.
	Slug string `json:"slug"`
	// Fields lists the excluded fields. Empty excludes the whole entity.
	Fields []string `json:"fields,omitempty"`
	// Reason documents the upstream problem.
	Reason string `json:"reason"`
}

// Retired is a codex slug renamed upstream. Older snapshots still carry the
// old slug and must not bring it back when merged.
type Retired struct {
	Namespace string
	Slug      string
	RenamedTo string
}

var rules = []Rule{
	{
		Namespace: "/items/",
		Slug:      "fire-gauntlets",
		Fields:    []string{"element"},
		Reason:    "codex shows the element of the granted skill, not the item",
	},
	{
		Namespace: "/items/",
		Slug:      "midas-ring",
		Fields:    []string{"dropped_by"},
		Reason:    "codex lists event-only drop sources that no longer spawn",
	},
	{
		Namespace: "/monsters/",
		Slug:      "mimic",
		Fields:    []string{"family"},
		Reason:    "codex family changes with the disguise shown on the page",
	},
	{
		Namespace: "/spells/",
		Slug:      "attack",
		Reason:    "placeholder spell page, not a real skill",
	},
	{
		Namespace: "/followers/",
		Slug:      "arisen-morrigan",
		Fields:    []string{"cost"},
		Reason:    "codex cost includes the summoning event discount",
	},
}

var retired = []Retired{
	{Namespace: "/bosses/", Slug: "elite-balor-flame", RenamedTo: "balor-flame"},
}

// Entity reports whether the whole entity is excluded.
func Entity(namespace, slug string) bool {
	for _, r := range rules {
		if r.Namespace == namespace && r.Slug == slug && len(r.Fields) == 0 {
			return true
		}
	}
	return false
}

// Field reports whether one field of an entity is excluded.
func Field(namespace, slug, field string) bool {
	for _, r := range rules {
		if r.Namespace != namespace || r.Slug != slug {
			continue
		}
		if len(r.Fields) == 0 || slices.Contains(r.Fields, field) {
			return true
		}
	}
	return false
}

// IsRetired reports whether a slug was renamed upstream.
func IsRetired(namespace, slug string) bool {
	return slices.ContainsFunc(retired, func(r Retired) bool {
		return r.Namespace == namespace && r.Slug == slug
	})
}

// Rules returns a copy of the exclusion table.
func Rules() []Rule {
	return slices.Clone(rules)
}
