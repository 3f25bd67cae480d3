package reconcile

import "strings"

// Config holds the defaults of reconciliation runs.
type Config struct {
	// Kinds is the comma separated list of kinds reconciled when none is given.
	Kinds string `mapstructure:"kinds" default:"skills,monsters,followers,items"`
	// Snapshots is the comma separated list of snapshot prefixes, oldest first.
	Snapshots string `mapstructure:"snapshots" default:"snapshots/latest"`
	// SnapshotRoot is where snapshots are listed from.
	SnapshotRoot string `mapstructure:"snapshot_root" default:"snapshots"`
}

// KindNames splits Kinds.
func (c Config) KindNames() []string {
	return splitList(c.Kinds)
}

// SnapshotPrefixes splits Snapshots.
func (c Config) SnapshotPrefixes() []string {
	return splitList(c.Snapshots)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
