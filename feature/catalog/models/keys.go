package models

// Key methods return the stable key of each record: the ID on the guide side
// and the slug on the codex side. URI methods return the codex link of guide
// records.

func (i Item) Key() int         { return i.ID }
func (m Monster) Key() int      { return m.ID }
func (s Skill) Key() int        { return s.ID }
func (p Pet) Key() int          { return p.ID }
func (s StatusEffect) Key() int { return s.ID }
func (s Spawn) Key() int        { return s.ID }

func (i Item) URI() string    { return i.CodexURI }
func (m Monster) URI() string { return m.CodexURI }
func (s Skill) URI() string   { return s.CodexURI }
func (p Pet) URI() string     { return p.CodexURI }

func (c CodexItem) Key() string     { return c.Slug }
func (c CodexMonster) Key() string  { return c.Slug }
func (c CodexRaid) Key() string     { return c.Slug }
func (c CodexSkill) Key() string    { return c.Slug }
func (c CodexFollower) Key() string { return c.Slug }
