package exclusions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestField(t *testing.T) {
	assert.True(t, Field("/items/", "fire-gauntlets", "element"))
	assert.False(t, Field("/items/", "fire-gauntlets", "tier"))
	assert.False(t, Field("/monsters/", "fire-gauntlets", "element"))
	assert.True(t, Field("/spells/", "attack", "tier"), "whole-entity rules cover every field")
}

func TestEntity(t *testing.T) {
	assert.True(t, Entity("/spells/", "attack"))
	assert.False(t, Entity("/items/", "fire-gauntlets"), "field rules do not exclude the entity")
}

func TestIsRetired(t *testing.T) {
	assert.True(t, IsRetired("/bosses/", "elite-balor-flame"))
	assert.False(t, IsRetired("/bosses/", "balor-flame"))
}

func TestRules_HaveReasons(t *testing.T) {
	for _, r := range Rules() {
		assert.NotEmpty(t, r.Reason, "%s%s", r.Namespace, r.Slug)
	}
}
