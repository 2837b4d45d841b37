package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strconv"

	"crazygenerics/internal/adapters/out/postgres"
	"crazygenerics/internal/core/domain/model/generic"
	"crazygenerics/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Storage backends.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
)

var storageKinds = []string{StorageMemory, StoragePostgres, StorageSQLite}

// Flag names accepted by the serve command. A flag that is set wins over the
// matching environment variable.
const (
	flagPort          = "port"
	flagStorage       = "storage"
	flagSQLitePath    = "sqlite-path"
	flagAuditSchedule = "audit-schedule"
)

type Config struct {
	HTTPPort      string
	Storage       string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSslMode     string
	SQLitePath    string
	AuditSchedule string
}

// LoadConfig reads envFile into the process environment, when it exists, and
// builds the configuration from it.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	return Config{
		HTTPPort:      envOrDefault("HTTP_PORT", "8080"),
		Storage:       envOrDefault("STORAGE", StorageMemory),
		DBHost:        os.Getenv("DB_HOST"),
		DBPort:        envOrDefault("DB_PORT", "5432"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		DBSslMode:     os.Getenv("DB_SSLMODE"),
		SQLitePath:    envOrDefault("SQLITE_PATH", "entities.db"),
		AuditSchedule: envOrDefault("AUDIT_SCHEDULE", "*/10 * * * * *"),
	}, nil
}

// RegisterFlags declares the command-line overrides on flags.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String(flagPort, "", "HTTP port (overrides HTTP_PORT)")
	flags.String(flagStorage, "", "storage backend: memory, postgres or sqlite (overrides STORAGE)")
	flags.String(flagSQLitePath, "", "sqlite database file (overrides SQLITE_PATH)")
	flags.String(flagAuditSchedule, "", "cron schedule of the collection audit (overrides AUDIT_SCHEDULE)")
}

// ApplyFlags copies every flag explicitly set on flags into the configuration.
func (c *Config) ApplyFlags(flags *pflag.FlagSet) error {
	targets := map[string]*string{
		flagPort:          &c.HTTPPort,
		flagStorage:       &c.Storage,
		flagSQLitePath:    &c.SQLitePath,
		flagAuditSchedule: &c.AuditSchedule,
	}
	for name, target := range targets {
		if flags.Lookup(name) == nil || !flags.Changed(name) {
			continue
		}
		value, err := flags.GetString(name)
		if err != nil {
			return err
		}
		*target = value
	}
	return nil
}

// Validate checks the port range, the storage kind and the settings the
// chosen storage needs.
func (c Config) Validate() error {
	var validationErrors []error

	port, err := strconv.Atoi(c.HTTPPort)
	if err != nil {
		validationErrors = append(validationErrors, errs.NewValueIsInvalidErrorWithCause("HTTP_PORT", err))
	} else if err = generic.NewLimited(port, 1, 65535).Validate("HTTP_PORT"); err != nil {
		validationErrors = append(validationErrors, err)
	}

	switch {
	case !slices.Contains(storageKinds, c.Storage):
		validationErrors = append(validationErrors, errs.NewValueIsInvalidError("STORAGE"))
	case c.Storage == StoragePostgres:
		for name, value := range map[string]string{"DB_HOST": c.DBHost, "DB_USER": c.DBUser, "DB_NAME": c.DBName} {
			if value == "" {
				validationErrors = append(validationErrors, errs.NewValueIsRequiredError(name))
			}
		}
	case c.Storage == StorageSQLite && c.SQLitePath == "":
		validationErrors = append(validationErrors, errs.NewValueIsRequiredError("SQLITE_PATH"))
	}

	return errors.Join(validationErrors...)
}

// PostgresSettings extracts the postgres connection settings.
func (c Config) PostgresSettings() postgres.ConnectionSettings {
	return postgres.ConnectionSettings{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		DBName:   c.DBName,
		SSLMode:  c.DBSslMode,
	}
}

func envOrDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
