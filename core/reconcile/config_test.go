package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Lists(t *testing.T) {
	c := Config{Kinds: " items, ,skills ", Snapshots: "s1,s2"}
	assert.Equal(t, []string{"items", "skills"}, c.KindNames())
	assert.Equal(t, []string{"s1", "s2"}, c.SnapshotPrefixes())
	assert.Empty(t, Config{}.SnapshotPrefixes())
}
