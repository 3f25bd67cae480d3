package match

import (
	"testing"

	"guide-sync/core/reconcile"
	"guide-sync/feature/catalog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itemURI(i models.Item) string { return i.CodexURI }

func TestSlug(t *testing.T) {
	tests := []struct {
		name   string
		uri    string
		prefix string
		want   string
		ok     bool
	}{
		{"TrailingSeparator", "/items/sword/", models.PrefixItems, "sword", true},
		{"NoTrailingSeparator", "/items/sword", models.PrefixItems, "sword", true},
		{"OtherNamespace", "/monsters/sword/", models.PrefixItems, "", false},
		{"Empty", "", models.PrefixItems, "", false},
		{"PrefixOnly", "/items/", models.PrefixItems, "", false},
		{"StraySpace", " /items/sword/ ", models.PrefixItems, "sword", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Slug(tt.uri, tt.prefix)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGuideFor(t *testing.T) {
	guides := []models.Item{
		{ID: 1, Name: "Sword", CodexURI: "/items/sword/"},
		{ID: 2, Name: "Iron Sword", CodexURI: "/items/iron-sword/"},
		{ID: 3, Name: "Unlinked"},
	}

	t.Run("Match", func(t *testing.T) {
		item, err := GuideFor("sword", models.PrefixItems, guides, itemURI)
		require.NoError(t, err)
		assert.Equal(t, 1, item.ID)
	})

	t.Run("SlugChanged", func(t *testing.T) {
		_, err := GuideFor("swords", models.PrefixItems, guides, itemURI)
		assert.ErrorIs(t, err, reconcile.ErrNotFound)
	})

	t.Run("URIChanged", func(t *testing.T) {
		changed := []models.Item{{ID: 1, CodexURI: "/items/sabre/"}}
		_, err := GuideFor("sword", models.PrefixItems, changed, itemURI)
		assert.ErrorIs(t, err, reconcile.ErrNotFound)
	})

	t.Run("Duplicate", func(t *testing.T) {
		dup := append(guides, models.Item{ID: 4, CodexURI: "/items/sword/"})
		_, err := GuideFor("sword", models.PrefixItems, dup, itemURI)
		assert.ErrorIs(t, err, reconcile.ErrDuplicateMatch)
	})
}

func TestCodexFor(t *testing.T) {
	codex := []models.CodexItem{{Slug: "sword"}, {Slug: "iron-sword"}}
	slug := func(c models.CodexItem) string { return c.Slug }

	got, err := CodexFor("/items/iron-sword/", models.PrefixItems, codex, slug)
	require.NoError(t, err)
	assert.Equal(t, "iron-sword", got.Slug)

	_, err = CodexFor("", models.PrefixItems, codex, slug)
	assert.ErrorIs(t, err, reconcile.ErrNotFound)
}

func TestClassify(t *testing.T) {
	spawns := map[int]string{
		1: "Overworld",
		2: "Kingdom Raid",
		3: "Boss",
		4: "Event: Halloween",
	}

	tests := []struct {
		name    string
		monster models.Monster
		want    Category
	}{
		{"Plain", models.Monster{Spawns: []int{1, 4}}, CategoryMonster},
		{"BossSpawn", models.Monster{Spawns: []int{1, 3}}, CategoryBoss},
		{"BossFlag", models.Monster{Boss: true}, CategoryBoss},
		{"RaidWinsOverBoss", models.Monster{Boss: true, Spawns: []int{3, 2}}, CategoryRaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.monster, spawns))
		})
	}
}

func TestCodexMonster(t *testing.T) {
	spawns := map[int]string{1: "World Raid"}
	codex := models.CodexData{
		Monsters: []models.CodexMonster{{Slug: "goblin", Name: "Goblin"}},
		Bosses:   []models.CodexMonster{{Slug: "goblin-king", Name: "Goblin King"}},
		Raids:    []models.CodexRaid{{Slug: "fafnir", Name: "Fafnir", Tier: 10}},
	}

	page, category, err := CodexMonster(models.Monster{CodexURI: "/raids/fafnir/", Spawns: []int{1}}, spawns, codex)
	require.NoError(t, err)
	assert.Equal(t, CategoryRaid, category)
	assert.Equal(t, "Fafnir", page.Name)
	assert.Equal(t, 10, page.Tier)

	page, category, err = CodexMonster(models.Monster{CodexURI: "/bosses/goblin-king/", Boss: true}, spawns, codex)
	require.NoError(t, err)
	assert.Equal(t, CategoryBoss, category)
	assert.Equal(t, "Goblin King", page.Name)

	page, _, err = CodexMonster(models.Monster{CodexURI: " /monsters/goblin "}, spawns, codex)
	require.NoError(t, err)
	assert.Equal(t, "Goblin", page.Name)

	// A boss URI on a monster classified as plain does not match.
	_, category, err = CodexMonster(models.Monster{CodexURI: "/bosses/goblin-king/"}, spawns, codex)
	assert.Equal(t, CategoryMonster, category)
	assert.ErrorIs(t, err, reconcile.ErrNotFound)
}
