package reconcile

import (
	"guide-sync/feature/catalog/models"
)

// lookups are the name and URI tables codex references resolve against.
// They are rebuilt from the aggregate before each kind so entities created
// by an earlier kind resolve too.
type lookups struct {
	statuses   map[string]int
	spawnIDs   map[string]int
	spawnNames map[int]string
	items      map[string]int
	monsters   map[string]int
	skills     map[string]int
	// dropHolders maps an item ID to the monsters dropping it.
	dropHolders map[int][]int
}

func buildLookups(g models.GuideData) *lookups {
	l := &lookups{
		statuses:    make(map[string]int, len(g.StatusEffects)),
		spawnIDs:    make(map[string]int, len(g.Spawns)),
		spawnNames:  make(map[int]string, len(g.Spawns)),
		items:       byURI(g.Items),
		monsters:    byURI(g.Monsters),
		skills:      byURI(g.Skills),
		dropHolders: make(map[int][]int),
	}
	for _, s := range g.StatusEffects {
		l.statuses[s.Name] = s.ID
	}
	for _, s := range g.Spawns {
		l.spawnIDs[s.Name] = s.ID
		l.spawnNames[s.ID] = s.Name
	}
	for _, m := range g.Monsters {
		for _, item := range m.Drops {
			l.dropHolders[item] = append(l.dropHolders[item], m.ID)
		}
	}
	return l
}

// setDrops replaces the drops recorded for one monster.
func (l *lookups) setDrops(m models.Monster, previous []int) {
	for _, item := range previous {
		holders := l.dropHolders[item]
		for i, id := range holders {
			if id == m.ID {
				l.dropHolders[item] = append(holders[:i:i], holders[i+1:]...)
				break
			}
		}
	}
	for _, item := range m.Drops {
		l.dropHolders[item] = append(l.dropHolders[item], m.ID)
	}
}

type linked interface {
	Key() int
	URI() string
}

func byURI[G linked](guides []G) map[string]int {
	out := make(map[string]int, len(guides))
	for _, g := range guides {
		if uri := canonicalURI(g.URI()); uri != "" {
			out[uri] = g.Key()
		}
	}
	return out
}

// refURIs returns the canonical URIs of codex references.
func refURIs(refs []models.Ref) []string {
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		out = append(out, canonicalURI(r.URI))
	}
	return out
}
