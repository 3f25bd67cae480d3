package reconcile

import (
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"
)

// Strategy selects how a field's values are compared.
type Strategy int

const (
	// StrategyScalar compares values with ==.
	StrategyScalar Strategy = iota
	// StrategyDebug compares the %+v rendering of both values.
	StrategyDebug
	// StrategySortedSet compares ID collections as sorted sets.
	StrategySortedSet
)

func (s Strategy) String() string {
	switch s {
	case StrategyScalar:
		return "scalar"
	case StrategyDebug:
		return "debug"
	case StrategySortedSet:
		return "sorted_set"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// Lens reads and writes one field of an entity.
type Lens[E, V any] struct {
	Get func(E) V
	Set func(*E, V)
}

// Field is one checkable property of an authoritative entity.
type Field[E any] interface {
	Name() string
	Strategy() Strategy
	Compare(entity E) Discrepancy
}

// LocalField is repaired by mutating the entity itself before it is saved.
type LocalField[E any] interface {
	Field[E]
	Apply(entity *E)
}

// RemoteField lives on other entities (e.g. the monsters dropping an item)
// and is repaired by saving those entities instead.
type RemoteField[E any] interface {
	Field[E]
	Repair(ctx context.Context, entity E, logger *zap.Logger) error
}

type scalarField[E any, V comparable] struct {
	name string
	lens Lens[E, V]
	want V
}

// Scalar builds a field compared with ==.
func Scalar[E any, V comparable](name string, lens Lens[E, V], want V) LocalField[E] {
	return &scalarField[E, V]{name: name, lens: lens, want: want}
}

func (f *scalarField[E, V]) Name() string       { return f.name }
func (f *scalarField[E, V]) Strategy() Strategy { return StrategyScalar }

func (f *scalarField[E, V]) Compare(entity E) Discrepancy {
	got := f.lens.Get(entity)
	return Discrepancy{Field: f.name, Actual: got, Expected: f.want, Matched: got == f.want}
}

func (f *scalarField[E, V]) Apply(entity *E) {
	f.lens.Set(entity, f.want)
}

type debugField[E, V any] struct {
	name string
	lens Lens[E, V]
	want V
}

// Debug builds a field for values that are not comparable with ==, such as
// slices or optional IDs held as zero or one element slices. V must render
// deterministically with %+v (no pointers).
func Debug[E, V any](name string, lens Lens[E, V], want V) LocalField[E] {
	return &debugField[E, V]{name: name, lens: lens, want: want}
}

func (f *debugField[E, V]) Name() string       { return f.name }
func (f *debugField[E, V]) Strategy() Strategy { return StrategyDebug }

func (f *debugField[E, V]) Compare(entity E) Discrepancy {
	got := f.lens.Get(entity)
	return Discrepancy{
		Field:    f.name,
		Actual:   got,
		Expected: f.want,
		Matched:  fmt.Sprintf("%+v", got) == fmt.Sprintf("%+v", f.want),
	}
}

func (f *debugField[E, V]) Apply(entity *E) {
	f.lens.Set(entity, f.want)
}

type idSetField[E any] struct {
	name       string
	lens       Lens[E, []int]
	want       []int
	unresolved []string
}

// IDSet builds a field holding IDs of other authoritative entities. The
// expected IDs come from a Conversion; its failures are reported on every
// comparison and never added.
func IDSet[E any](name string, lens Lens[E, []int], want Conversion[int]) LocalField[E] {
	return &idSetField[E]{
		name:       name,
		lens:       lens,
		want:       SortedIDs(want.Successes),
		unresolved: want.Failures,
	}
}

func (f *idSetField[E]) Name() string       { return f.name }
func (f *idSetField[E]) Strategy() Strategy { return StrategySortedSet }

func (f *idSetField[E]) Compare(entity E) Discrepancy {
	got := SortedIDs(f.lens.Get(entity))
	toAdd, toRemove := SortedDiff(f.want, got)
	return Discrepancy{
		Field:      f.name,
		Actual:     got,
		Expected:   f.want,
		Matched:    len(toAdd) == 0 && len(toRemove) == 0,
		Unresolved: f.unresolved,
	}
}

func (f *idSetField[E]) Apply(entity *E) {
	current := SortedIDs(f.lens.Get(*entity))
	toAdd, toRemove := SortedDiff(f.want, current)
	next := slices.DeleteFunc(current, func(id int) bool {
		return slices.Contains(toRemove, id)
	})
	next = SortedIDs(append(next, toAdd...))
	f.lens.Set(entity, next)
}

type guardedField[E any] struct {
	LocalField[E]
	unresolved []string
}

// Guarded wraps a field whose expected value was built from conv. When the
// conversion is partial the expected value is unknown: the field is reported
// with its unresolved names and never applied, so the current value is kept.
func Guarded[E, ID any](field LocalField[E], conv Conversion[ID]) LocalField[E] {
	if !conv.Partial() {
		return field
	}
	return &guardedField[E]{LocalField: field, unresolved: conv.Failures}
}

func (f *guardedField[E]) Compare(entity E) Discrepancy {
	d := f.LocalField.Compare(entity)
	d.Matched = true
	d.Unresolved = f.unresolved
	return d
}

func (f *guardedField[E]) Apply(*E) {}

// CrossConfig describes a collection that is stored on counterpart entities
// of another kind C but checked from the point of view of E.
type CrossConfig[E, C any] struct {
	// Kind names the counterpart kind for error reports.
	Kind string
	// ID returns the ID of the entity being checked.
	ID func(E) int
	// Holders returns the IDs of counterparts currently listing the entity.
	Holders func(E) []int
	// Store retrieves and saves counterparts.
	Store Store[C]
	// Lens reads and writes the counterpart collection holding E's ID.
	Lens Lens[C, []int]
	// Refresh is called with every counterpart re-retrieved after a save.
	Refresh func(C)
}

type crossField[E, C any] struct {
	name       string
	cfg        CrossConfig[E, C]
	want       []int
	unresolved []string
}

// Cross builds a field whose expected value is the set of counterparts that
// should list the entity.
func Cross[E, C any](name string, cfg CrossConfig[E, C], want Conversion[int]) RemoteField[E] {
	return &crossField[E, C]{
		name:       name,
		cfg:        cfg,
		want:       SortedIDs(want.Successes),
		unresolved: want.Failures,
	}
}

func (f *crossField[E, C]) Name() string       { return f.name }
func (f *crossField[E, C]) Strategy() Strategy { return StrategySortedSet }

func (f *crossField[E, C]) Compare(entity E) Discrepancy {
	got := SortedIDs(f.cfg.Holders(entity))
	toAdd, toRemove := SortedDiff(f.want, got)
	return Discrepancy{
		Field:      f.name,
		Actual:     got,
		Expected:   f.want,
		Matched:    len(toAdd) == 0 && len(toRemove) == 0,
		Unresolved: f.unresolved,
	}
}

func (f *crossField[E, C]) Repair(ctx context.Context, entity E, logger *zap.Logger) error {
	own := f.cfg.ID(entity)
	toAdd, toRemove := SortedDiff(f.want, SortedIDs(f.cfg.Holders(entity)))

	for _, id := range toAdd {
		if err := f.edit(ctx, id, own, true, logger); err != nil {
			return err
		}
	}
	for _, id := range toRemove {
		if err := f.edit(ctx, id, own, false, logger); err != nil {
			return err
		}
	}
	return nil
}

// edit adds or removes own from counterpart id. Containment is re-checked on
// the fresh copy so a change applied by an earlier partial run is not applied twice.
func (f *crossField[E, C]) edit(ctx context.Context, id, own int, add bool, logger *zap.Logger) error {
	counterpart, err := RetryOnce(func() (C, error) {
		return f.cfg.Store.Retrieve(ctx, id)
	})
	if err != nil {
		return &TransportError{Kind: f.cfg.Kind, ID: id, Field: f.name, Op: "retrieve", Err: err}
	}

	ids := f.cfg.Lens.Get(counterpart)
	if slices.Contains(ids, own) == add {
		logger.Debug("Counterpart already up to date",
			zap.String("field", f.name),
			zap.String("counterpart_kind", f.cfg.Kind),
			zap.Int("counterpart_id", id),
		)
		// The caller's view may still be stale.
		if f.cfg.Refresh != nil {
			f.cfg.Refresh(counterpart)
		}
		return nil
	}

	if add {
		ids = SortedIDs(append(slices.Clone(ids), own))
	} else {
		ids = slices.DeleteFunc(slices.Clone(ids), func(v int) bool { return v == own })
	}
	f.cfg.Lens.Set(&counterpart, ids)

	if err := RetryOnceErr(func() error { return f.cfg.Store.Save(ctx, counterpart) }); err != nil {
		return &TransportError{Kind: f.cfg.Kind, ID: id, Field: f.name, Op: "save", Err: err}
	}

	fresh, err := RetryOnce(func() (C, error) {
		return f.cfg.Store.Retrieve(ctx, id)
	})
	if err != nil {
		return &TransportError{Kind: f.cfg.Kind, ID: id, Field: f.name, Op: "retrieve", Err: err}
	}
	if f.cfg.Refresh != nil {
		f.cfg.Refresh(fresh)
	}
	return nil
}

// SortedIDs returns a sorted, de-duplicated copy of ids.
func SortedIDs(ids []int) []int {
	out := slices.Clone(ids)
	if out == nil {
		out = []int{}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
