package reconcile

import (
	"guide-sync/core/reconcile"
	"guide-sync/feature/catalog/models"
)

// Summary counts what happened to one kind during a run.
type Summary struct {
	Kind       models.Kind `json:"kind"`
	Missing    int         `json:"missing"`
	Created    int         `json:"created"`
	Orphans    int         `json:"orphans"`
	Checked    int         `json:"checked"`
	Mismatched int         `json:"mismatched"`
	Fixed      int         `json:"fixed"`
	// Unfixed counts mismatching fields left as they are, every mismatch on
	// a dry run.
	Unfixed    int         `json:"unfixed"`
	Failed     int         `json:"failed"`
	Duplicates int         `json:"duplicates"`
}

// MissingEntity is a codex page with no guide counterpart.
type MissingEntity struct {
	Kind    models.Kind `json:"kind"`
	URI     string      `json:"uri"`
	Name    string      `json:"name"`
	Created bool        `json:"created"`
}

// Orphan is a guide entity whose codex URI is empty or points nowhere.
type Orphan struct {
	Kind models.Kind `json:"kind"`
	ID   int         `json:"id"`
	Name string      `json:"name"`
	URI  string      `json:"uri,omitempty"`
}

// EntityResult is the outcome of checking one entity that had discrepancies.
type EntityResult struct {
	Kind models.Kind `json:"kind"`
	ID   int         `json:"id"`
	Name string      `json:"name"`
	URI  string      `json:"uri"`
	reconcile.Outcome
}

// Failure is an entity the run had to give up on.
type Failure struct {
	Kind  models.Kind `json:"kind"`
	ID    int         `json:"id,omitempty"`
	URI   string      `json:"uri,omitempty"`
	Error string      `json:"error"`
}

// Report is the result of a reconciliation run.
type Report struct {
	ID        string          `json:"id"`
	Fix       bool            `json:"fix"`
	Summaries []Summary       `json:"summaries"`
	Missing   []MissingEntity `json:"missing"`
	Orphans   []Orphan        `json:"orphans"`
	Entities  []EntityResult  `json:"entities"`
	Failures  []Failure       `json:"failures"`
}

func newReport(id string, fix bool) *Report {
	return &Report{
		ID:        id,
		Fix:       fix,
		Summaries: []Summary{},
		Missing:   []MissingEntity{},
		Orphans:   []Orphan{},
		Entities:  []EntityResult{},
		Failures:  []Failure{},
	}
}

// Summary returns the counts of a kind, or nil if the kind did not run.
func (r *Report) Summary(kind models.Kind) *Summary {
	for i := range r.Summaries {
		if r.Summaries[i].Kind == kind {
			return &r.Summaries[i]
		}
	}
	return nil
}

// Clean reports whether the run found nothing to act on.
func (r *Report) Clean() bool {
	return len(r.Missing) == 0 && len(r.Orphans) == 0 && len(r.Entities) == 0 && len(r.Failures) == 0
}
