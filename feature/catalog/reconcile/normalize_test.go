package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseStat(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		quality int
		want    int
	}{
		{"Unknown Quality", 50, 0, 50},
		{"Common", 50, 100, 50},
		{"Ornate", 140, 200, 70},
		{"Rounds Up", 33, 140, 24},
		{"Rounds Down", 10, 70, 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, baseStat(tt.value, tt.quality))
		})
	}
}

func TestNormalizers(t *testing.T) {
	assert.Equal(t, "items/sword.png", iconPath("https://playorna.com/static/img/items/sword.png"))
	assert.Equal(t, "items/sword.png", iconPath("items/sword.png"))
	assert.Equal(t, "A sharp blade.", description("  A sharp\n blade. "))
	assert.Equal(t, "fire", element(" Fire "))
	assert.Equal(t, "/items/sword/", canonicalURI(" /items/sword"))
	assert.Equal(t, "", canonicalURI("/"))
}

func TestStatusNames(t *testing.T) {
	assert.Equal(t, []string{"Attack ↑", "Poisoned"}, statusNames([]string{"Att ↑", " Poisoned "}))
}

func TestEvents(t *testing.T) {
	name, ok := eventName("Event: Halloween")
	assert.True(t, ok)
	assert.Equal(t, "Halloween", name)

	_, ok = eventName("Forest")
	assert.False(t, ok)

	assert.Equal(t, []string{"Event: Halloween"}, eventSpawnNames([]string{"Halloween "}))
}
