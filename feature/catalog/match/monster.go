package match

import (
	"strings"

	"guide-sync/feature/catalog/models"
)

// Category is the codex namespace a guide monster belongs to.
type Category int

const (
	CategoryMonster Category = iota
	CategoryBoss
	CategoryRaid
)

func (c Category) String() string {
	switch c {
	case CategoryBoss:
		return "boss"
	case CategoryRaid:
		return "raid"
	default:
		return "monster"
	}
}

// Prefix returns the codex URI prefix of the category.
func (c Category) Prefix() string {
	switch c {
	case CategoryBoss:
		return models.PrefixBosses
	case CategoryRaid:
		return models.PrefixRaids
	default:
		return models.PrefixMonsters
	}
}

// Spawn name markers. Raid markers win over boss markers.
var (
	raidMarkers = []string{"Kingdom Raid", "World Raid", "Other Realmic Raid"}
	bossMarkers = []string{"Boss"}
)

// Classify tells which codex namespace a guide monster lives in, from the
// names of its spawns. spawnNames maps spawn IDs to names.
func Classify(m models.Monster, spawnNames map[int]string) Category {
	boss := m.Boss
	for _, id := range m.Spawns {
		name := spawnNames[id]
		if containsAny(name, raidMarkers) {
			return CategoryRaid
		}
		if containsAny(name, bossMarkers) {
			boss = true
		}
	}
	if boss {
		return CategoryBoss
	}
	return CategoryMonster
}

// CodexMonster finds the codex page of a guide monster in the namespace
// selected by Classify. Raids are returned through CodexRaid.AsMonster.
func CodexMonster(m models.Monster, spawnNames map[int]string, codex models.CodexData) (models.CodexMonster, Category, error) {
	category := Classify(m, spawnNames)
	slug := func(c models.CodexMonster) string { return c.Slug }

	switch category {
	case CategoryRaid:
		raid, err := CodexFor(m.CodexURI, models.PrefixRaids, codex.Raids, func(r models.CodexRaid) string { return r.Slug })
		return raid.AsMonster(), category, err
	case CategoryBoss:
		boss, err := CodexFor(m.CodexURI, models.PrefixBosses, codex.Bosses, slug)
		return boss, category, err
	default:
		monster, err := CodexFor(m.CodexURI, models.PrefixMonsters, codex.Monsters, slug)
		return monster, category, err
	}
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
