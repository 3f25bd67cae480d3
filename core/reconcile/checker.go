package reconcile

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Store is the part of the authoritative store the checker needs for one kind.
type Store[E any] interface {
	// Retrieve fetches the current version of an entity by ID, bypassing caches.
	Retrieve(ctx context.Context, id int) (E, error)
	// Save persists an entity.
	Save(ctx context.Context, entity E) error
}

// Checker compares fields of one authoritative entity kind and, when Fix is
// set, repairs them one at a time with a retrieve, mutate, save, re-retrieve cycle.
type Checker[E any] struct {
	// Kind is used in logs and errors (e.g. "item").
	Kind string
	// Store is the authoritative store for Kind.
	Store Store[E]
	// ID extracts the entity ID.
	ID func(E) int
	// Logger receives one entry per discrepancy.
	Logger *zap.Logger
	// Fix enables repairs. Discrepancies are reported either way.
	Fix bool
}

// Outcome summarises the checks run on one entity.
type Outcome struct {
	Discrepancies []Discrepancy `json:"discrepancies"`
	Fixed         []string      `json:"fixed,omitempty"`
	Unfixed       []string      `json:"unfixed,omitempty"`
}

// Check runs every field against entity. On a successful fix the entity is
// replaced with the re-retrieved copy so later fields see the saved state.
// A *TransportError stops the remaining fields of this entity.
func (c *Checker[E]) Check(ctx context.Context, entity *E, fields []Field[E]) (Outcome, error) {
	out := Outcome{Discrepancies: []Discrepancy{}}
	log := c.Logger.With(zap.String("kind", c.Kind), zap.Int("id", c.ID(*entity)))

	for _, field := range fields {
		d := field.Compare(*entity)
		if len(d.Unresolved) > 0 {
			log.Warn("Unresolved references",
				zap.String("field", d.Field),
				zap.Strings("names", d.Unresolved),
			)
		}
		if d.Matched {
			continue
		}

		out.Discrepancies = append(out.Discrepancies, d)
		log.Info("Field mismatch",
			zap.String("field", d.Field),
			zap.Any("expected", d.Expected),
			zap.Any("actual", d.Actual),
		)

		if !c.Fix {
			continue
		}

		if err := c.repair(ctx, entity, field, log); err != nil {
			return out, err
		}

		if field.Compare(*entity).Matched {
			out.Fixed = append(out.Fixed, d.Field)
			log.Info("Field fixed", zap.String("field", d.Field))
		} else {
			out.Unfixed = append(out.Unfixed, d.Field)
			log.Warn("Field still differs after save", zap.String("field", d.Field))
		}
	}

	return out, nil
}

func (c *Checker[E]) repair(ctx context.Context, entity *E, field Field[E], log *zap.Logger) error {
	id := c.ID(*entity)

	switch f := field.(type) {
	case LocalField[E]:
		fresh, err := RetryOnce(func() (E, error) { return c.Store.Retrieve(ctx, id) })
		if err != nil {
			return c.transportErr(id, f.Name(), "retrieve", err)
		}
		f.Apply(&fresh)
		if err := RetryOnceErr(func() error { return c.Store.Save(ctx, fresh) }); err != nil {
			return c.transportErr(id, f.Name(), "save", err)
		}
	case RemoteField[E]:
		if err := f.Repair(ctx, *entity, log); err != nil {
			return err
		}
	default:
		return fmt.Errorf("field %s of %s has no repair strategy", field.Name(), c.Kind)
	}

	refreshed, err := RetryOnce(func() (E, error) { return c.Store.Retrieve(ctx, id) })
	if err != nil {
		return c.transportErr(id, field.Name(), "retrieve", err)
	}
	*entity = refreshed
	return nil
}

func (c *Checker[E]) transportErr(id int, field, op string, err error) error {
	return &TransportError{Kind: c.Kind, ID: id, Field: field, Op: op, Err: err}
}
