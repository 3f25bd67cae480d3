package models

// Item is an item in the guide. ID lists point at other guide collections.
type Item struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:120;index" json:"name"`
	Tier        int    `json:"tier"`
	Image       string `gorm:"size:255" json:"image_name"`
	Description string `gorm:"type:text" json:"description"`
	Attack      int    `json:"attack"`
	Magic       int    `json:"magic"`
	Defense     int    `json:"defense"`
	Resistance  int    `json:"resistance"`
	Dexterity   int    `json:"dexterity"`
	Ward        int    `json:"ward"`
	Crit        int    `json:"crit"`
	Foresight   int    `json:"foresight"`
	HP          int    `json:"hp"`
	Mana        int    `json:"mana"`
	Element     string `gorm:"size:32" json:"element"`
	// Ability is the ID of the skill granted by the item, nil when none.
	Ability    *int   `json:"ability"`
	Causes     []int  `gorm:"serializer:json" json:"causes"`
	Cures      []int  `gorm:"serializer:json" json:"cures"`
	Gives      []int  `gorm:"serializer:json" json:"gives"`
	Immunities []int  `gorm:"serializer:json" json:"prevents"`
	Materials  []int  `gorm:"serializer:json" json:"materials"`
	CodexURI   string `gorm:"size:255" json:"codex_uri"`
}

// Monster is a guide monster. Bosses and raids are monsters too; their
// spawns carry the markers telling them apart.
type Monster struct {
	ID       int    `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:120;index" json:"name"`
	Tier     int    `json:"tier"`
	Image    string `gorm:"size:255" json:"image_name"`
	Family   string `gorm:"size:64" json:"family"`
	Boss     bool   `json:"boss"`
	Spawns   []int  `gorm:"serializer:json" json:"spawns"`
	Skills   []int  `gorm:"serializer:json" json:"skills"`
	Drops    []int  `gorm:"serializer:json" json:"drops"`
	CodexURI string `gorm:"size:255" json:"codex_uri"`
}

// Skill is a guide skill (spell).
type Skill struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:120;index" json:"name"`
	Tier        int    `json:"tier"`
	Type        string `gorm:"size:32" json:"type"`
	ManaCost    int    `json:"mana_cost"`
	Element     string `gorm:"size:32" json:"element"`
	Description string `gorm:"type:text" json:"description"`
	Offhand     bool   `json:"offhand"`
	Causes      []int  `gorm:"serializer:json" json:"causes"`
	Gives       []int  `gorm:"serializer:json" json:"gives"`
	CodexURI    string `gorm:"size:255" json:"codex_uri"`
}

// Pet is a guide follower.
type Pet struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:120;index" json:"name"`
	Tier        int    `json:"tier"`
	Image       string `gorm:"size:255" json:"image_name"`
	Description string `gorm:"type:text" json:"description"`
	Cost        int    `json:"cost"`
	Skills      []int  `gorm:"serializer:json" json:"skills"`
	CodexURI    string `gorm:"size:255" json:"codex_uri"`
}

// StatusEffect is a named status effect referenced by items and skills.
type StatusEffect struct {
	ID   int    `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:120;uniqueIndex" json:"name"`
}

// Spawn is a location or event a monster appears in.
type Spawn struct {
	ID   int    `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:120;uniqueIndex" json:"name"`
}

// Listing is the (id, name) pair returned when listing a kind.
type Listing struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// GuideData holds every guide collection.
type GuideData struct {
	Items         []Item         `json:"items"`
	Monsters      []Monster      `json:"monsters"`
	Skills        []Skill        `json:"skills"`
	Pets          []Pet          `json:"pets"`
	StatusEffects []StatusEffect `json:"status_effects"`
	Spawns        []Spawn        `json:"spawns"`
}
