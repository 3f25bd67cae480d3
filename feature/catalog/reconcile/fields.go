package reconcile

import (
	"slices"

	"guide-sync/core/reconcile"
	"guide-sync/feature/catalog/match"
	"guide-sync/feature/catalog/models"
)

// lens is shorthand for building a reconcile.Lens from two closures.
func lens[E, V any](get func(E) V, set func(*E, V)) reconcile.Lens[E, V] {
	return reconcile.Lens[E, V]{Get: get, Set: set}
}

func itemFields(c models.CodexItem, l *lookups, monsters reconcile.Store[models.Monster], refresh func(models.Monster)) []reconcile.Field[models.Item] {
	q := c.Quality
	stat := func(name string, get func(models.Item) int, set func(*models.Item, int), v int) reconcile.Field[models.Item] {
		return reconcile.Scalar(name, lens(get, set), baseStat(v, q))
	}

	return []reconcile.Field[models.Item]{
		reconcile.Scalar("icon", lens(
			func(i models.Item) string { return i.Image },
			func(i *models.Item, v string) { i.Image = v },
		), iconPath(c.Icon)),
		reconcile.Scalar("description", lens(
			func(i models.Item) string { return description(i.Description) },
			func(i *models.Item, v string) { i.Description = v },
		), description(c.Description)),
		reconcile.Scalar("tier", lens(
			func(i models.Item) int { return i.Tier },
			func(i *models.Item, v int) { i.Tier = v },
		), c.Tier),
		stat("attack", func(i models.Item) int { return i.Attack }, func(i *models.Item, v int) { i.Attack = v }, c.Stats.Attack),
		stat("magic", func(i models.Item) int { return i.Magic }, func(i *models.Item, v int) { i.Magic = v }, c.Stats.Magic),
		stat("defense", func(i models.Item) int { return i.Defense }, func(i *models.Item, v int) { i.Defense = v }, c.Stats.Defense),
		stat("resistance", func(i models.Item) int { return i.Resistance }, func(i *models.Item, v int) { i.Resistance = v }, c.Stats.Resistance),
		stat("dexterity", func(i models.Item) int { return i.Dexterity }, func(i *models.Item, v int) { i.Dexterity = v }, c.Stats.Dexterity),
		stat("ward", func(i models.Item) int { return i.Ward }, func(i *models.Item, v int) { i.Ward = v }, c.Stats.Ward),
		stat("crit", func(i models.Item) int { return i.Crit }, func(i *models.Item, v int) { i.Crit = v }, c.Stats.Crit),
		stat("foresight", func(i models.Item) int { return i.Foresight }, func(i *models.Item, v int) { i.Foresight = v }, c.Stats.Foresight),
		stat("hp", func(i models.Item) int { return i.HP }, func(i *models.Item, v int) { i.HP = v }, c.Stats.HP),
		stat("mana", func(i models.Item) int { return i.Mana }, func(i *models.Item, v int) { i.Mana = v }, c.Stats.Mana),
		reconcile.Scalar("element", lens(
			func(i models.Item) string { return element(i.Element) },
			func(i *models.Item, v string) { i.Element = v },
		), element(c.Element)),
		statusSet("causes", func(i *models.Item) *[]int { return &i.Causes }, c.Causes, l),
		statusSet("cures", func(i *models.Item) *[]int { return &i.Cures }, c.Cures, l),
		statusSet("gives", func(i *models.Item) *[]int { return &i.Gives }, c.Gives, l),
		statusSet("immunities", func(i *models.Item) *[]int { return &i.Immunities }, c.Immunities, l),
		reconcile.IDSet("materials", idList(func(i *models.Item) *[]int { return &i.Materials }),
			reconcile.Resolve(refURIs(c.Materials), l.items)),
		reconcile.Cross("dropped_by", reconcile.CrossConfig[models.Item, models.Monster]{
			Kind:    string(models.KindMonster),
			ID:      models.Item.Key,
			Holders: func(i models.Item) []int { return l.dropHolders[i.ID] },
			Store:   monsters,
			Lens: lens(
				func(m models.Monster) []int { return m.Drops },
				func(m *models.Monster, v []int) { m.Drops = v },
			),
			Refresh: refresh,
		}, reconcile.Resolve(refURIs(c.DroppedBy), l.monsters)),
		abilityField(c.Ability, l),
	}
}

// abilityField compares the granted skill as a zero or one element list. A
// codex skill the guide does not have is reported as unresolved and the
// current ability is kept, since clearing it would lose data.
func abilityField(ref *models.Ref, l *lookups) reconcile.Field[models.Item] {
	var uris []string
	if ref != nil {
		uris = []string{canonicalURI(ref.URI)}
	}
	want := reconcile.Resolve(uris, l.skills)

	return reconcile.Guarded(reconcile.Debug("ability", lens(
		func(i models.Item) []int {
			if i.Ability == nil {
				return []int{}
			}
			return []int{*i.Ability}
		},
		func(i *models.Item, v []int) {
			if len(v) == 0 {
				i.Ability = nil
				return
			}
			id := v[0]
			i.Ability = &id
		},
	), want.Successes), want)
}

func monsterFields(c models.CodexMonster, category match.Category, l *lookups) []reconcile.Field[models.Monster] {
	fields := []reconcile.Field[models.Monster]{
		reconcile.Scalar("icon", lens(
			func(m models.Monster) string { return m.Image },
			func(m *models.Monster, v string) { m.Image = v },
		), iconPath(c.Icon)),
		reconcile.Scalar("tier", lens(
			func(m models.Monster) int { return m.Tier },
			func(m *models.Monster, v int) { m.Tier = v },
		), c.Tier),
		reconcile.IDSet("events", eventLens(l), reconcile.Resolve(eventSpawnNames(c.Events), l.spawnIDs)),
		reconcile.IDSet("skills", idList(func(m *models.Monster) *[]int { return &m.Skills }),
			reconcile.Resolve(refURIs(c.Abilities), l.skills)),
		reconcile.IDSet("drops", idList(func(m *models.Monster) *[]int { return &m.Drops }),
			reconcile.Resolve(refURIs(c.Drops), l.items)),
	}
	// Raid pages have no family.
	if category != match.CategoryRaid {
		fields = append(fields, reconcile.Scalar("family", lens(
			func(m models.Monster) string { return m.Family },
			func(m *models.Monster, v string) { m.Family = v },
		), c.Family))
	}
	return fields
}

// eventLens views only the event spawns of a monster. Setting it keeps the
// other spawns untouched.
func eventLens(l *lookups) reconcile.Lens[models.Monster, []int] {
	isEvent := func(id int) bool {
		_, ok := eventName(l.spawnNames[id])
		return ok
	}
	return lens(
		func(m models.Monster) []int {
			var out []int
			for _, id := range m.Spawns {
				if isEvent(id) {
					out = append(out, id)
				}
			}
			return out
		},
		func(m *models.Monster, events []int) {
			kept := slices.DeleteFunc(slices.Clone(m.Spawns), isEvent)
			m.Spawns = reconcile.SortedIDs(append(kept, events...))
		},
	)
}

func skillFields(c models.CodexSkill, l *lookups) []reconcile.Field[models.Skill] {
	return []reconcile.Field[models.Skill]{
		reconcile.Scalar("tier", lens(
			func(s models.Skill) int { return s.Tier },
			func(s *models.Skill, v int) { s.Tier = v },
		), c.Tier),
		reconcile.Scalar("mana_cost", lens(
			func(s models.Skill) int { return s.ManaCost },
			func(s *models.Skill, v int) { s.ManaCost = v },
		), c.ManaCost),
		reconcile.Scalar("element", lens(
			func(s models.Skill) string { return element(s.Element) },
			func(s *models.Skill, v string) { s.Element = v },
		), element(c.Element)),
		reconcile.Scalar("description", lens(
			func(s models.Skill) string { return description(s.Description) },
			func(s *models.Skill, v string) { s.Description = v },
		), description(c.Description)),
		reconcile.Scalar("offhand", lens(
			func(s models.Skill) bool { return s.Offhand },
			func(s *models.Skill, v bool) { s.Offhand = v },
		), c.Offhand),
		statusSet("causes", func(s *models.Skill) *[]int { return &s.Causes }, c.Causes, l),
		statusSet("gives", func(s *models.Skill) *[]int { return &s.Gives }, c.Gives, l),
	}
}

func followerFields(c models.CodexFollower, l *lookups) []reconcile.Field[models.Pet] {
	return []reconcile.Field[models.Pet]{
		reconcile.Scalar("icon", lens(
			func(p models.Pet) string { return p.Image },
			func(p *models.Pet, v string) { p.Image = v },
		), iconPath(c.Icon)),
		reconcile.Scalar("description", lens(
			func(p models.Pet) string { return description(p.Description) },
			func(p *models.Pet, v string) { p.Description = v },
		), description(c.Description)),
		reconcile.Scalar("tier", lens(
			func(p models.Pet) int { return p.Tier },
			func(p *models.Pet, v int) { p.Tier = v },
		), c.Tier),
		reconcile.Scalar("cost", lens(
			func(p models.Pet) int { return p.Cost },
			func(p *models.Pet, v int) { p.Cost = v },
		), c.Cost),
		reconcile.IDSet("skills", idList(func(p *models.Pet) *[]int { return &p.Skills }),
			reconcile.Resolve(refURIs(c.Abilities), l.skills)),
	}
}

// idList builds a lens over an ID list from a pointer accessor.
func idList[E any](field func(*E) *[]int) reconcile.Lens[E, []int] {
	return lens(
		func(e E) []int { return *field(&e) },
		func(e *E, v []int) { *field(e) = v },
	)
}

func statusSet[E any](name string, field func(*E) *[]int, names []string, l *lookups) reconcile.Field[E] {
	return reconcile.IDSet(name, idList(field), reconcile.Resolve(statusNames(names), l.statuses))
}
