package helper

import (
	"io/fs"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"impressions/config"
	"impressions/migrations"
)

func TestParseAction(t *testing.T) {
	for _, value := range []string{"up", "down", "step-up", "drop", "version"} {
		action, err := ParseAction(value)
		require.NoError(t, err)
		assert.Equal(t, Action(value), action)
	}

	_, err := ParseAction("sideways")
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestDatabaseURL(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Postgres.Prefix = "dev_"
	cfg.DB.Postgres.MigrationTable = "schema_migrations"
	cfg.DB.Postgres.Write = config.Database{
		Host:     "db",
		Port:     "5432",
		Username: "studio",
		Password: "p@ss word",
		Name:     "impressions",
		SSLMode:  "disable",
	}

	raw, err := databaseURL(cfg)
	require.NoError(t, err)

	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "postgres", parsed.Scheme)
	assert.Equal(t, "db:5432", parsed.Host)
	assert.Equal(t, "/dev_impressions", parsed.Path)
	assert.Equal(t, "schema_migrations", parsed.Query().Get("x-migrations-table"))
	assert.Equal(t, "disable", parsed.Query().Get("sslmode"))

	password, _ := parsed.User.Password()
	assert.Equal(t, "p@ss word", password)
}

func TestEmbeddedMigrations_ArePaired(t *testing.T) {
	entries, err := fs.ReadDir(migrations.Postgres, migrations.PostgresDir)
	require.NoError(t, err)

	ups := map[string]bool{}
	downs := map[string]bool{}

	for _, entry := range entries {
		name := entry.Name()

		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		}
	}

	assert.NotEmpty(t, ups)
	assert.Equal(t, ups, downs)
}
