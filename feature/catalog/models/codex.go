package models

// Ref is a link from one codex page to another codex entity.
type Ref struct {
	Name string `json:"name"`
	URI  string `json:"uri"`
}

// Stats are the numeric stats shown on a codex item page.
type Stats struct {
	Attack     int `json:"attack"`
	Magic      int `json:"magic"`
	Defense    int `json:"defense"`
	Resistance int `json:"resistance"`
	Dexterity  int `json:"dexterity"`
	Ward       int `json:"ward"`
	Crit       int `json:"crit"`
	Foresight  int `json:"foresight"`
	HP         int `json:"hp"`
	Mana       int `json:"mana"`
}

// CodexItem is an item page of the codex.
type CodexItem struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Tier        int    `json:"tier"`
	// Quality is the percentage the stats were shown at; 0 and 100 mean common.
	Quality    int      `json:"quality"`
	Stats      Stats    `json:"stats"`
	Element    string   `json:"element"`
	Ability    *Ref     `json:"ability"`
	Causes     []string `json:"causes"`
	Cures      []string `json:"cures"`
	Gives      []string `json:"gives"`
	Immunities []string `json:"immunities"`
	DroppedBy  []Ref    `json:"dropped_by"`
	Materials  []Ref    `json:"upgrade_materials"`
}

// CodexMonster is a monster or boss page of the codex.
type CodexMonster struct {
	Slug      string   `json:"slug"`
	Name      string   `json:"name"`
	Icon      string   `json:"icon"`
	Family    string   `json:"family"`
	Tier      int      `json:"tier"`
	Events    []string `json:"events"`
	Abilities []Ref    `json:"abilities"`
	Drops     []Ref    `json:"drops"`
}

// CodexRaid is a raid page of the codex.
type CodexRaid struct {
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	Icon        string   `json:"icon"`
	Description string   `json:"description"`
	Tier        int      `json:"tier"`
	Events      []string `json:"events"`
	Abilities   []Ref    `json:"abilities"`
	Drops       []Ref    `json:"drops"`
}

// CodexSkill is a spell page of the codex.
type CodexSkill struct {
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	Icon        string   `json:"icon"`
	Description string   `json:"description"`
	Tier        int      `json:"tier"`
	ManaCost    int      `json:"mana_cost"`
	Element     string   `json:"element"`
	Offhand     bool     `json:"offhand"`
	Causes      []string `json:"causes"`
	Gives       []string `json:"gives"`
}

// CodexFollower is a follower page of the codex.
type CodexFollower struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Tier        int    `json:"tier"`
	Cost        int    `json:"cost"`
	Abilities   []Ref  `json:"abilities"`
}

// CodexData holds every codex collection. Bosses and raids are separate
// namespaces with slugs that never overlap monster slugs.
type CodexData struct {
	Items     []CodexItem     `json:"items"`
	Monsters  []CodexMonster  `json:"monsters"`
	Bosses    []CodexMonster  `json:"bosses"`
	Raids     []CodexRaid     `json:"raids"`
	Skills    []CodexSkill    `json:"skills"`
	Followers []CodexFollower `json:"followers"`
}

// Data is the full aggregate of both sides.
type Data struct {
	Guide GuideData `json:"guide"`
	Codex CodexData `json:"codex"`
}

// AsMonster views a raid as a monster page so both share one field table.
func (r CodexRaid) AsMonster() CodexMonster {
	return CodexMonster{
		Slug:      r.Slug,
		Name:      r.Name,
		Icon:      r.Icon,
		Tier:      r.Tier,
		Events:    r.Events,
		Abilities: r.Abilities,
		Drops:     r.Drops,
	}
}
