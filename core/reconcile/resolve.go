package reconcile

// Conversion is the outcome of translating reference-side names into
// authoritative IDs. Names that could not be translated are kept in Failures
// so the caller decides whether a partial result is acceptable.
type Conversion[ID any] struct {
	// Successes holds resolved IDs in the order their names were given.
	Successes []ID `json:"successes"`
	// Failures holds the names that had no entry in the lookup table.
	Failures []string `json:"failures"`
}

// Partial reports whether at least one name could not be resolved.
func (c Conversion[ID]) Partial() bool {
	return len(c.Failures) > 0
}

// Resolve looks every name up in table. It never fails on its own: unknown
// names are collected, not dropped.
func Resolve[ID any](names []string, table map[string]ID) Conversion[ID] {
	conv := Conversion[ID]{
		Successes: make([]ID, 0, len(names)),
		Failures:  []string{},
	}
	for _, name := range names {
		if id, ok := table[name]; ok {
			conv.Successes = append(conv.Successes, id)
		} else {
			conv.Failures = append(conv.Failures, name)
		}
	}
	return conv
}
