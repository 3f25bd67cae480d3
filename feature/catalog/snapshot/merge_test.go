package snapshot

import (
	"testing"

	"guide-sync/feature/catalog/models"

	"github.com/stretchr/testify/assert"
)

func TestMerge_LastWins(t *testing.T) {
	s1 := models.Data{
		Guide: models.GuideData{
			Items: []models.Item{{ID: 1, Name: "Sword"}, {ID: 2, Name: "Shield"}},
		},
		Codex: models.CodexData{
			Items: []models.CodexItem{{Slug: "sword", Tier: 1}},
		},
	}
	s2 := models.Data{
		Guide: models.GuideData{
			Items: []models.Item{{ID: 2, Name: "Tower Shield"}, {ID: 3, Name: "Bow"}},
		},
		Codex: models.CodexData{
			Items: []models.CodexItem{{Slug: "sword", Tier: 2}, {Slug: "bow", Tier: 1}},
		},
	}

	merged := Merge([]models.Data{s1, s2})

	assert.Equal(t, []models.Item{
		{ID: 1, Name: "Sword"},
		{ID: 2, Name: "Tower Shield"},
		{ID: 3, Name: "Bow"},
	}, merged.Guide.Items)
	assert.Equal(t, []models.CodexItem{
		{Slug: "bow", Tier: 1},
		{Slug: "sword", Tier: 2},
	}, merged.Codex.Items)
}

func TestMerge_SingleIsIdentity(t *testing.T) {
	s := models.Data{
		Guide: models.GuideData{
			Monsters:      []models.Monster{{ID: 4, Name: "Goblin"}, {ID: 9, Name: "Dragon"}},
			StatusEffects: []models.StatusEffect{{ID: 1, Name: "Burning"}},
			Spawns:        []models.Spawn{{ID: 1, Name: "World Raid"}},
		},
		Codex: models.CodexData{
			Monsters:  []models.CodexMonster{{Slug: "dragon"}, {Slug: "goblin"}},
			Raids:     []models.CodexRaid{{Slug: "fafnir"}},
			Skills:    []models.CodexSkill{{Slug: "fireball"}},
			Followers: []models.CodexFollower{{Slug: "wolf"}},
		},
	}

	merged := Merge([]models.Data{s})

	assert.Equal(t, s.Guide.Monsters, merged.Guide.Monsters)
	assert.Equal(t, s.Guide.StatusEffects, merged.Guide.StatusEffects)
	assert.Equal(t, s.Guide.Spawns, merged.Guide.Spawns)
	assert.Equal(t, s.Codex.Monsters, merged.Codex.Monsters)
	assert.Equal(t, s.Codex.Raids, merged.Codex.Raids)
	assert.Equal(t, s.Codex.Skills, merged.Codex.Skills)
	assert.Equal(t, s.Codex.Followers, merged.Codex.Followers)
	assert.Empty(t, merged.Guide.Items)
}

func TestMerge_SkipsRetiredBossSlug(t *testing.T) {
	old := models.Data{Codex: models.CodexData{
		Bosses: []models.CodexMonster{{Slug: "elite-balor-flame", Name: "Balor Flame"}},
	}}
	current := models.Data{Codex: models.CodexData{
		Bosses: []models.CodexMonster{{Slug: "balor-flame", Name: "Balor Flame"}},
	}}

	merged := Merge([]models.Data{old, current})

	assert.Equal(t, []models.CodexMonster{{Slug: "balor-flame", Name: "Balor Flame"}}, merged.Codex.Bosses)
}
