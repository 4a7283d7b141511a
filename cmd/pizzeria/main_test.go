package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/config"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestEnv(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "pizzeria.sqlite")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", path)
	t.Setenv("DATABASE_URL", "")
	t.Setenv("APP_ENV", "test")
	t.Setenv("LOG_LEVEL", "error")
	return path
}

func run(t *testing.T, args ...string) string {
	var out bytes.Buffer
	root := newRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	require.NoError(t, root.Execute(), out.String())
	return out.String()
}

func TestSeedCommand(t *testing.T) {
	path := setTestEnv(t)

	assert.Contains(t, run(t, "seed"), "Database seeded")
	assert.Contains(t, run(t, "seed"), "nothing to do")

	db, err := database.InitDatabase(database.DatabaseConfig{Driver: "sqlite", Path: path})
	require.NoError(t, err)
	var count int64
	require.NoError(t, db.Model(&models.Restaurant{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)
}

func TestClientCreateCommand(t *testing.T) {
	path := setTestEnv(t)

	out := run(t, "client", "create", "--name", "dev", "--id", "dev-client", "--secret", "dev-secret-123", "--role", "admin")
	assert.Contains(t, out, "Client ID: dev-client")
	assert.Contains(t, out, "Client Secret: dev-secret-123")

	db, err := database.InitDatabase(database.DatabaseConfig{Driver: "sqlite", Path: path})
	require.NoError(t, err)
	var client models.APIClient
	require.NoError(t, db.Where("id = ?", "dev-client").First(&client).Error)
	assert.Equal(t, models.RoleAdmin, client.Role)
	assert.True(t, client.VerifyPassword("dev-secret-123"))
}

func TestClientCreateRejectsUnknownRole(t *testing.T) {
	setTestEnv(t)

	root := newRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"client", "create", "--name", "dev", "--role", "owner"})
	assert.Error(t, root.Execute())
}

func TestApplyLogLevel(t *testing.T) {
	previous := logrus.GetLevel()
	t.Cleanup(func() { logrus.SetLevel(previous) })

	applyLogLevel(&config.Config{LogLevel: "warn"})
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())

	applyLogLevel(&config.Config{LogLevel: "not-a-level"})
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())
}
