package store

import (
	"context"
	"fmt"
	"testing"

	"guide-sync/core/reconcile"
	"guide-sync/feature/catalog/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates a migrated in-memory SQLite store.
func setupTestDB(t *testing.T, name string) *Store {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	s := New(db)
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

// setupMockDB creates a store on a mocked MySQL connection.
func setupMockDB(t *testing.T) (*Store, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	})
	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return New(db), mock
}

func TestTable_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := setupTestDB(t, "store_round_trip")

	ability := 12
	require.NoError(t, s.Items.Create(ctx, models.Item{
		ID:        42,
		Name:      "Iron Sword",
		Tier:      2,
		Ability:   &ability,
		Materials: []int{},
		Causes:    []int{3, 1},
		CodexURI:  "/items/iron-sword/",
	}))

	item, err := s.Items.Retrieve(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "Iron Sword", item.Name)
	assert.Equal(t, []int{3, 1}, item.Causes)
	require.NotNil(t, item.Ability)
	assert.Equal(t, 12, *item.Ability)

	item.Materials = []int{7}
	require.NoError(t, s.Items.Save(ctx, item))

	saved, err := s.Items.Retrieve(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, []int{7}, saved.Materials)

	listing, err := s.Items.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Listing{{ID: 42, Name: "Iron Sword"}}, listing)
}

func TestTable_RetrieveNotFound(t *testing.T) {
	s := setupTestDB(t, "store_not_found")

	_, err := s.Monsters.Retrieve(context.Background(), 999)
	assert.ErrorIs(t, err, reconcile.ErrNotFound)
}

func TestStore_Dump(t *testing.T) {
	ctx := context.Background()
	s := setupTestDB(t, "store_dump")

	require.NoError(t, s.StatusEffects.Create(ctx, models.StatusEffect{ID: 1, Name: "Burning"}))
	require.NoError(t, s.Spawns.Create(ctx, models.Spawn{ID: 1, Name: "World Raid"}))
	require.NoError(t, s.Monsters.Create(ctx, models.Monster{ID: 5, Name: "Fafnir", Spawns: []int{1}}))
	require.NoError(t, s.Pets.Create(ctx, models.Pet{ID: 2, Name: "Wolf"}))
	require.NoError(t, s.Skills.Create(ctx, models.Skill{ID: 8, Name: "Fireball"}))

	data, err := s.Dump(ctx)
	require.NoError(t, err)
	assert.Len(t, data.StatusEffects, 1)
	assert.Len(t, data.Spawns, 1)
	require.Len(t, data.Monsters, 1)
	assert.Equal(t, []int{1}, data.Monsters[0].Spawns)
	assert.Len(t, data.Pets, 1)
	assert.Len(t, data.Skills, 1)
	assert.Empty(t, data.Items)
}

func TestTable_RetrieveMySQL(t *testing.T) {
	s, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"id", "name", "tier", "drops", "codex_uri"}).
		AddRow(7, "Goblin", 1, "[3,4]", "/monsters/goblin/")
	mock.ExpectQuery("SELECT \\* FROM `monsters` WHERE `monsters`.`id` = \\?").WillReturnRows(rows)

	monster, err := s.Monsters.Retrieve(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Goblin", monster.Name)
	assert.Equal(t, []int{3, 4}, monster.Drops)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTable_ListMySQLError(t *testing.T) {
	s, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT `id`,`name` FROM `skills`").WillReturnError(fmt.Errorf("connection reset"))

	_, err := s.Skills.List(context.Background())
	assert.ErrorContains(t, err, "failed to list skill")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Verify(t *testing.T) {
	ctx := context.Background()

	t.Run("Migrated", func(t *testing.T) {
		s := setupTestDB(t, "store_verify_ok")
		missing, err := s.Verify(ctx)
		require.NoError(t, err)
		assert.Empty(t, missing)
	})

	t.Run("Old Schema", func(t *testing.T) {
		s := setupTestDB(t, "store_verify_old")
		require.NoError(t, s.db.Migrator().DropColumn(&models.Pet{}, "CodexURI"))

		missing, err := s.Verify(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[string][]string{"pets": {"codex_uri"}}, missing)
	})
}
