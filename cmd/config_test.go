package cmd_test

import (
	"os"
	"path/filepath"
	"testing"

	"crazygenerics/cmd"
	"crazygenerics/internal/pkg/errs"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() cmd.Config {
	return cmd.Config{
		HTTPPort:   "8080",
		Storage:    cmd.StorageMemory,
		SQLitePath: "entities.db",
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("reads env file", func(t *testing.T) {
		for _, key := range []string{"HTTP_PORT", "STORAGE", "SQLITE_PATH", "AUDIT_SCHEDULE"} {
			t.Setenv(key, "")
			require.NoError(t, os.Unsetenv(key))
		}
		envFile := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(envFile, []byte("HTTP_PORT=9090\nSTORAGE=sqlite\n"), 0o600))

		config, err := cmd.LoadConfig(envFile)

		require.NoError(t, err)
		assert.Equal(t, "9090", config.HTTPPort)
		assert.Equal(t, cmd.StorageSQLite, config.Storage)
		assert.Equal(t, "entities.db", config.SQLitePath)
		assert.Equal(t, "*/10 * * * * *", config.AuditSchedule)
	})

	t.Run("missing env file falls back to environment", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "7070")

		config, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "absent.env"))

		require.NoError(t, err)
		assert.Equal(t, "7070", config.HTTPPort)
	})
}

func TestConfig_ApplyFlags(t *testing.T) {
	flags := pflag.NewFlagSet("serve", pflag.ContinueOnError)
	cmd.RegisterFlags(flags)
	require.NoError(t, flags.Parse([]string{"--port", "9999", "--storage", "postgres"}))

	config := validConfig()
	require.NoError(t, config.ApplyFlags(flags))

	assert.Equal(t, "9999", config.HTTPPort)
	assert.Equal(t, cmd.StoragePostgres, config.Storage)
	assert.Equal(t, "entities.db", config.SQLitePath)
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		require.NoError(t, validConfig().Validate())
	})

	t.Run("port out of range", func(t *testing.T) {
		config := validConfig()
		config.HTTPPort = "70000"

		err := config.Validate()

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "70000 is HTTP_PORT")
	})

	t.Run("port is not a number", func(t *testing.T) {
		config := validConfig()
		config.HTTPPort = "http"

		require.ErrorIs(t, config.Validate(), errs.ErrValueIsInvalid)
	})

	t.Run("unknown storage", func(t *testing.T) {
		config := validConfig()
		config.Storage = "redis"

		require.ErrorIs(t, config.Validate(), errs.ErrValueIsInvalid)
	})

	t.Run("postgres needs connection settings", func(t *testing.T) {
		config := validConfig()
		config.Storage = cmd.StoragePostgres

		err := config.Validate()

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "DB_HOST")
		assert.Contains(t, err.Error(), "DB_NAME")
	})

	t.Run("errors are joined", func(t *testing.T) {
		config := validConfig()
		config.HTTPPort = "0"
		config.Storage = ""

		err := config.Validate()

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestConfig_PostgresSettings(t *testing.T) {
	config := validConfig()
	config.DBHost = "db"
	config.DBPort = "5433"
	config.DBUser = "app"
	config.DBPassword = "secret"
	config.DBName = "entities"

	assert.Equal(t,
		"host=db port=5433 user=app password=secret dbname=entities sslmode=disable",
		config.PostgresSettings().DSN())
}
