package helper

import (
	"net/url"
	"testing"

	"frontdesk/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionString(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Postgres.Prefix = "dev_"
	cfg.DB.Postgres.MigrationTable = "frontdesk_migrations"
	cfg.DB.Postgres.Write.Host = "db.internal"
	cfg.DB.Postgres.Write.Port = "5432"
	cfg.DB.Postgres.Write.Username = "frontdesk"
	cfg.DB.Postgres.Write.Password = "p@ss/word"
	cfg.DB.Postgres.Write.Name = "frontdesk"
	cfg.DB.Postgres.Write.SSLMode = "disable"

	parsed, err := url.Parse(connectionString(cfg))
	require.NoError(t, err)

	password, _ := parsed.User.Password()

	assert.Equal(t, "postgres", parsed.Scheme)
	assert.Equal(t, "db.internal:5432", parsed.Host)
	assert.Equal(t, "/dev_frontdesk", parsed.Path)
	assert.Equal(t, "frontdesk", parsed.User.Username())
	assert.Equal(t, "p@ss/word", password)
	assert.Equal(t, "disable", parsed.Query().Get("sslmode"))
	assert.Equal(t, "frontdesk_migrations", parsed.Query().Get("x-migrations-table"))
}

func TestConnectionString_OmitsEmptyOptions(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Postgres.Write.Host = "localhost"
	cfg.DB.Postgres.Write.Port = "5432"
	cfg.DB.Postgres.Write.Name = "frontdesk"

	parsed, err := url.Parse(connectionString(cfg))
	require.NoError(t, err)

	assert.Empty(t, parsed.RawQuery)
	assert.Equal(t, "/frontdesk", parsed.Path)
}
