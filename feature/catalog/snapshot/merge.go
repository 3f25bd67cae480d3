// Package snapshot loads, stores and merges codex and guide snapshots.
package snapshot

import (
	"cmp"
	"maps"
	"slices"

	"guide-sync/feature/catalog/exclusions"
	"guide-sync/feature/catalog/models"
)

// Merge folds snapshots, oldest first, into one aggregate. Every collection
// is keyed by its stable key (ID on the guide side, slug on the codex side)
// and the last snapshot holding a key wins. Records are never merged field by
// field. The output is ordered by key.
func Merge(snapshots []models.Data) models.Data {
	var out models.Data

	out.Guide.Items = mergeBy(snapshots, func(d models.Data) []models.Item { return d.Guide.Items }, models.Item.Key, nil)
	out.Guide.Monsters = mergeBy(snapshots, func(d models.Data) []models.Monster { return d.Guide.Monsters }, models.Monster.Key, nil)
	out.Guide.Skills = mergeBy(snapshots, func(d models.Data) []models.Skill { return d.Guide.Skills }, models.Skill.Key, nil)
	out.Guide.Pets = mergeBy(snapshots, func(d models.Data) []models.Pet { return d.Guide.Pets }, models.Pet.Key, nil)
	out.Guide.StatusEffects = mergeBy(snapshots, func(d models.Data) []models.StatusEffect { return d.Guide.StatusEffects }, models.StatusEffect.Key, nil)
	out.Guide.Spawns = mergeBy(snapshots, func(d models.Data) []models.Spawn { return d.Guide.Spawns }, models.Spawn.Key, nil)

	out.Codex.Items = mergeBy(snapshots, func(d models.Data) []models.CodexItem { return d.Codex.Items }, models.CodexItem.Key, nil)
	out.Codex.Monsters = mergeBy(snapshots, func(d models.Data) []models.CodexMonster { return d.Codex.Monsters }, models.CodexMonster.Key, nil)
	out.Codex.Bosses = mergeBy(snapshots, func(d models.Data) []models.CodexMonster { return d.Codex.Bosses }, models.CodexMonster.Key, retiredBoss)
	out.Codex.Raids = mergeBy(snapshots, func(d models.Data) []models.CodexRaid { return d.Codex.Raids }, models.CodexRaid.Key, nil)
	out.Codex.Skills = mergeBy(snapshots, func(d models.Data) []models.CodexSkill { return d.Codex.Skills }, models.CodexSkill.Key, nil)
	out.Codex.Followers = mergeBy(snapshots, func(d models.Data) []models.CodexFollower { return d.Codex.Followers }, models.CodexFollower.Key, nil)

	return out
}

// retiredBoss keeps renamed boss pages found in old snapshots out of the merge.
func retiredBoss(c models.CodexMonster) bool {
	return exclusions.IsRetired(models.PrefixBosses, c.Slug)
}

func mergeBy[T any, K cmp.Ordered](snapshots []models.Data, collection func(models.Data) []T, key func(T) K, skip func(T) bool) []T {
	merged := make(map[K]T)
	for _, s := range snapshots {
		for _, v := range collection(s) {
			if skip != nil && skip(v) {
				continue
			}
			merged[key(v)] = v
		}
	}

	out := make([]T, 0, len(merged))
	for _, k := range slices.Sorted(maps.Keys(merged)) {
		out = append(out, merged[k])
	}
	return out
}
