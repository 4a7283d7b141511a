package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := InitDatabase(DatabaseConfig{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func tableDDL(t *testing.T, db *gorm.DB, table string) string {
	var ddl string
	err := db.Raw("SELECT sql FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&ddl).Error
	require.NoError(t, err)
	return ddl
}

func TestDSN(t *testing.T) {
	testCases := []struct {
		name     string
		config   DatabaseConfig
		expected string
	}{
		{
			name:     "sqlite enables foreign keys",
			config:   DatabaseConfig{Driver: "sqlite", Path: "app.sqlite"},
			expected: "app.sqlite?_foreign_keys=on",
		},
		{
			name:     "sqlite keeps existing query string",
			config:   DatabaseConfig{Driver: "sqlite", Path: "file:app.db?cache=shared"},
			expected: "file:app.db?cache=shared&_foreign_keys=on",
		},
		{
			name:     "sqlite keeps explicit foreign key setting",
			config:   DatabaseConfig{Path: "app.db?_foreign_keys=off"},
			expected: "app.db?_foreign_keys=off",
		},
		{
			name:     "postgres from parts",
			config:   DatabaseConfig{Driver: "postgres", Host: "db", Port: "5432", User: "u", Password: "p", Name: "pizzas", SSLMode: "disable"},
			expected: "host=db user=u password=p dbname=pizzas port=5432 sslmode=disable",
		},
		{
			name:     "postgres from url",
			config:   DatabaseConfig{Driver: "postgresql", URL: "postgres://u:p@db:5432/pizzas"},
			expected: "postgres://u:p@db:5432/pizzas",
		},
		{
			name:     "unknown driver",
			config:   DatabaseConfig{Driver: "mysql"},
			expected: "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.DSN())
		})
	}
}

func TestDatabaseConfigStringMasksPassword(t *testing.T) {
	cfg := DatabaseConfig{Driver: "postgres", Password: "hunter2"}
	assert.NotContains(t, cfg.String(), "hunter2")
	assert.Contains(t, cfg.String(), "[REDACTED]")
}

func TestInitDatabaseUnsupportedDriver(t *testing.T) {
	_, err := InitDatabase(DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}

func TestConnectStopsRetryingWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := DatabaseConfig{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "missing", "dir", "db.sqlite")}
	start := time.Now()
	_, err := Connect(ctx, cfg, RetryPolicy{Delays: []time.Duration{time.Hour}})
	require.Error(t, err)
	assert.Less(t, time.Since(start), time.Minute)
}

func TestConnectWithoutRetries(t *testing.T) {
	cfg := DatabaseConfig{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "missing", "dir", "db.sqlite")}
	_, err := Connect(context.Background(), cfg, RetryPolicy{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 1 attempts")
}

func TestMigrateCreatesTables(t *testing.T) {
	db := setupTestDB(t)

	for _, table := range []string{"restaurants", "pizzas", "restaurant_pizzas", "api_clients", "oauth_tokens"} {
		assert.True(t, db.Migrator().HasTable(table), "table %s", table)
	}
}

func TestForeignKeyNames(t *testing.T) {
	db := setupTestDB(t)

	ddl := tableDDL(t, db, "restaurant_pizzas")
	assert.Contains(t, ddl, "fk_restaurant_pizzas_restaurant_id_restaurants")
	assert.Contains(t, ddl, "fk_restaurant_pizzas_pizza_id_pizzas")
	assert.Contains(t, ddl, "chk_restaurant_pizzas_price")
	assert.Equal(t, "fk_a_b_c", ForeignKeyName("a", "b", "c"))
}

func TestStorageRejectsDanglingForeignKey(t *testing.T) {
	db := setupTestDB(t)

	rp, err := models.NewRestaurantPizza("orphan", 10, 999, 999)
	require.NoError(t, err)
	err = db.Create(rp).Error
	assert.Error(t, err)
}

func TestStorageCascadesDeletes(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	seeded, err := Seed(ctx, db)
	require.NoError(t, err)
	require.True(t, seeded)

	var restaurant models.Restaurant
	require.NoError(t, db.Where("name = ?", "Kiki's Pizza").First(&restaurant).Error)

	require.NoError(t, db.Exec("DELETE FROM restaurants WHERE id = ?", restaurant.ID).Error)

	var count int64
	require.NoError(t, db.Model(&models.RestaurantPizza{}).Where("restaurant_id = ?", restaurant.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSeedIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	seeded, err := Seed(ctx, db)
	require.NoError(t, err)
	assert.True(t, seeded)

	seeded, err = Seed(ctx, db)
	require.NoError(t, err)
	assert.False(t, seeded)

	var restaurants, pizzas, prices int64
	db.Model(&models.Restaurant{}).Count(&restaurants)
	db.Model(&models.Pizza{}).Count(&pizzas)
	db.Model(&models.RestaurantPizza{}).Count(&prices)
	assert.Equal(t, int64(3), restaurants)
	assert.Equal(t, int64(3), pizzas)
	assert.Equal(t, int64(3), prices)
}

func TestSetLogLevel(t *testing.T) {
	previous := log.GetLevel()
	t.Cleanup(func() { log.SetLevel(previous) })

	SetLogLevel(logrus.WarnLevel)
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())
}
