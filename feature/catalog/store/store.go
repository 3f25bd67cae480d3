package store

import (
	"context"
	"errors"
	"fmt"

	"guide-sync/core/database"
	"guide-sync/core/reconcile"
	"guide-sync/feature/catalog/models"

	"gorm.io/gorm"
)

// Table gives retrieve, save, list and create access to one guide collection.
// It satisfies reconcile.Store for its entity type.
type Table[E any] struct {
	db   *gorm.DB
	kind string
}

// Retrieve loads one entity by primary key.
func (t *Table[E]) Retrieve(ctx context.Context, id int) (E, error) {
	var entity E
	err := t.db.WithContext(ctx).First(&entity, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity, fmt.Errorf("%s #%d: %w", t.kind, id, reconcile.ErrNotFound)
	}
	if err != nil {
		return entity, fmt.Errorf("failed to retrieve %s #%d: %w", t.kind, id, err)
	}
	return entity, nil
}

// Save writes every column of an existing entity.
func (t *Table[E]) Save(ctx context.Context, entity E) error {
	if err := t.db.WithContext(ctx).Save(&entity).Error; err != nil {
		return fmt.Errorf("failed to save %s: %w", t.kind, err)
	}
	return nil
}

// List returns the (id, name) pairs of the collection ordered by ID.
func (t *Table[E]) List(ctx context.Context) ([]models.Listing, error) {
	var rows []models.Listing
	err := t.db.WithContext(ctx).Model(new(E)).Select("id", "name").Order("id").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", t.kind, err)
	}
	return rows, nil
}

// Create inserts a new entity. The store assigns the ID.
func (t *Table[E]) Create(ctx context.Context, entity E) error {
	if err := t.db.WithContext(ctx).Create(&entity).Error; err != nil {
		return fmt.Errorf("failed to create %s: %w", t.kind, err)
	}
	return nil
}

// All loads the whole collection ordered by ID.
func (t *Table[E]) All(ctx context.Context) ([]E, error) {
	var rows []E
	if err := t.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", t.kind, err)
	}
	return rows, nil
}

// Store is the guide database, one Table per collection.
type Store struct {
	db *gorm.DB

	Items         *Table[models.Item]
	Monsters      *Table[models.Monster]
	Skills        *Table[models.Skill]
	Pets          *Table[models.Pet]
	StatusEffects *Table[models.StatusEffect]
	Spawns        *Table[models.Spawn]
}

// New wraps a database connection.
func New(db *gorm.DB) *Store {
	return &Store{
		db:            db,
		Items:         &Table[models.Item]{db: db, kind: "item"},
		Monsters:      &Table[models.Monster]{db: db, kind: "monster"},
		Skills:        &Table[models.Skill]{db: db, kind: "skill"},
		Pets:          &Table[models.Pet]{db: db, kind: "pet"},
		StatusEffects: &Table[models.StatusEffect]{db: db, kind: "status effect"},
		Spawns:        &Table[models.Spawn]{db: db, kind: "spawn"},
	}
}

func tableModels() []any {
	return []any{
		&models.Item{},
		&models.Monster{},
		&models.Skill{},
		&models.Pet{},
		&models.StatusEffect{},
		&models.Spawn{},
	}
}

// Migrate creates or updates the guide tables.
func (s *Store) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(tableModels()...)
}

// Verify returns, per table, the mapped columns the database lacks.
func (s *Store) Verify(ctx context.Context) (map[string][]string, error) {
	out := make(map[string][]string)
	for _, m := range tableModels() {
		stmt := &gorm.Statement{DB: s.db}
		if err := stmt.Parse(m); err != nil {
			return nil, fmt.Errorf("failed to parse model %T: %w", m, err)
		}
		missing, err := database.MissingColumns(s.db.WithContext(ctx), stmt.Schema.Table, stmt.Schema.DBNames)
		if err != nil {
			return nil, err
		}
		if len(missing) > 0 {
			out[stmt.Schema.Table] = missing
		}
	}
	return out, nil
}

// Dump loads every guide collection.
func (s *Store) Dump(ctx context.Context) (models.GuideData, error) {
	var (
		data models.GuideData
		err  error
	)
	if data.Items, err = s.Items.All(ctx); err != nil {
		return data, err
	}
	if data.Monsters, err = s.Monsters.All(ctx); err != nil {
		return data, err
	}
	if data.Skills, err = s.Skills.All(ctx); err != nil {
		return data, err
	}
	if data.Pets, err = s.Pets.All(ctx); err != nil {
		return data, err
	}
	if data.StatusEffects, err = s.StatusEffects.All(ctx); err != nil {
		return data, err
	}
	if data.Spawns, err = s.Spawns.All(ctx); err != nil {
		return data, err
	}
	return data, nil
}
