package reconcile

import (
	"guide-sync/core/reconcile"
	"guide-sync/feature/catalog/match"
	"guide-sync/feature/catalog/models"
)

func slugOf[C interface{ Key() string }](c C) string { return c.Key() }

// linkedPage finds the codex page a guide URI points at within one namespace.
func linkedPage[C any](uri, prefix string, pages []page[C]) (page[C], error) {
	return match.CodexFor(canonicalURI(uri), prefix, pages, func(p page[C]) string { return p.slug })
}

func (d *Driver) itemRun() kindRun[models.Item, models.CodexItem] {
	pages := pagesOf(models.PrefixItems, d.data.Codex.Items, slugOf[models.CodexItem],
		func(c models.CodexItem) string { return c.Name })

	return kindRun[models.Item, models.CodexItem]{
		kind:   models.KindItem,
		store:  d.stores.Items,
		guides: &d.data.Guide.Items,
		pages:  pages,
		id:     models.Item.Key,
		name:   func(i models.Item) string { return i.Name },
		uri:    models.Item.URI,
		counterpart: func(i models.Item) (page[models.CodexItem], error) {
			return linkedPage(i.CodexURI, models.PrefixItems, pages)
		},
		seed: func(p page[models.CodexItem]) models.Item {
			return models.Item{Name: p.name, CodexURI: p.uri()}
		},
		fields: func(_ models.Item, p page[models.CodexItem]) []reconcile.Field[models.Item] {
			return itemFields(p.entity, d.lookups, d.stores.Monsters, d.refreshMonster)
		},
	}
}

// refreshMonster stores a monster re-read after a drop edit made from the
// item side, keeping the drop holders of the lookups current.
func (d *Driver) refreshMonster(m models.Monster) {
	for i, old := range d.data.Guide.Monsters {
		if old.ID == m.ID {
			d.lookups.setDrops(m, old.Drops)
			d.data.Guide.Monsters[i] = m
			return
		}
	}
	d.lookups.setDrops(m, nil)
	d.data.Guide.Monsters = append(d.data.Guide.Monsters, m)
}

// monsterPage is a codex monster, boss or raid with the category it came from.
type monsterPage struct {
	models.CodexMonster
	category match.Category
}

func (d *Driver) monsterRun() kindRun[models.Monster, monsterPage] {
	codex := d.data.Codex
	var pages []page[monsterPage]
	for _, c := range codex.Monsters {
		pages = append(pages, page[monsterPage]{models.PrefixMonsters, c.Slug, c.Name, monsterPage{c, match.CategoryMonster}})
	}
	for _, c := range codex.Bosses {
		pages = append(pages, page[monsterPage]{models.PrefixBosses, c.Slug, c.Name, monsterPage{c, match.CategoryBoss}})
	}
	for _, r := range codex.Raids {
		pages = append(pages, page[monsterPage]{models.PrefixRaids, r.Slug, r.Name, monsterPage{r.AsMonster(), match.CategoryRaid}})
	}

	return kindRun[models.Monster, monsterPage]{
		kind:   models.KindMonster,
		store:  d.stores.Monsters,
		guides: &d.data.Guide.Monsters,
		pages:  pages,
		id:     models.Monster.Key,
		name:   func(m models.Monster) string { return m.Name },
		uri:    models.Monster.URI,
		counterpart: func(m models.Monster) (page[monsterPage], error) {
			c, category, err := match.CodexMonster(m, d.lookups.spawnNames, codex)
			if err != nil {
				return page[monsterPage]{}, err
			}
			return page[monsterPage]{category.Prefix(), c.Slug, c.Name, monsterPage{c, category}}, nil
		},
		seed: func(p page[monsterPage]) models.Monster {
			m := models.Monster{
				Name:     p.name,
				Boss:     p.entity.category == match.CategoryBoss,
				CodexURI: p.uri(),
			}
			if p.entity.category == match.CategoryRaid {
				if id, ok := d.lookups.spawnIDs[raidSpawn]; ok {
					m.Spawns = []int{id}
				}
			}
			return m
		},
		fields: func(_ models.Monster, p page[monsterPage]) []reconcile.Field[models.Monster] {
			return monsterFields(p.entity.CodexMonster, p.entity.category, d.lookups)
		},
	}
}

func (d *Driver) skillRun() kindRun[models.Skill, models.CodexSkill] {
	pages := pagesOf(models.PrefixSkills, d.data.Codex.Skills, slugOf[models.CodexSkill],
		func(c models.CodexSkill) string { return c.Name })

	return kindRun[models.Skill, models.CodexSkill]{
		kind:   models.KindSkill,
		store:  d.stores.Skills,
		guides: &d.data.Guide.Skills,
		pages:  pages,
		id:     models.Skill.Key,
		name:   func(s models.Skill) string { return s.Name },
		uri:    models.Skill.URI,
		counterpart: func(s models.Skill) (page[models.CodexSkill], error) {
			return linkedPage(s.CodexURI, models.PrefixSkills, pages)
		},
		seed: func(p page[models.CodexSkill]) models.Skill {
			return models.Skill{Name: p.name, CodexURI: p.uri()}
		},
		fields: func(_ models.Skill, p page[models.CodexSkill]) []reconcile.Field[models.Skill] {
			return skillFields(p.entity, d.lookups)
		},
	}
}

func (d *Driver) followerRun() kindRun[models.Pet, models.CodexFollower] {
	pages := pagesOf(models.PrefixFollowers, d.data.Codex.Followers, slugOf[models.CodexFollower],
		func(c models.CodexFollower) string { return c.Name })

	return kindRun[models.Pet, models.CodexFollower]{
		kind:   models.KindFollower,
		store:  d.stores.Pets,
		guides: &d.data.Guide.Pets,
		pages:  pages,
		id:     models.Pet.Key,
		name:   func(p models.Pet) string { return p.Name },
		uri:    models.Pet.URI,
		counterpart: func(p models.Pet) (page[models.CodexFollower], error) {
			return linkedPage(p.CodexURI, models.PrefixFollowers, pages)
		},
		seed: func(p page[models.CodexFollower]) models.Pet {
			return models.Pet{Name: p.name, CodexURI: p.uri()}
		},
		fields: func(_ models.Pet, p page[models.CodexFollower]) []reconcile.Field[models.Pet] {
			return followerFields(p.entity, d.lookups)
		},
	}
}
