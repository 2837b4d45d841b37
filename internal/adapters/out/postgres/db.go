// Package postgres opens the GORM connection used by the postgres storage backend.
package postgres

import (
	"fmt"

	"crazygenerics/internal/adapters/out/postgres/entityrepo"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectionSettings holds the values needed to build a postgres DSN.
type ConnectionSettings struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DSN renders the settings in the key=value form understood by the pgx driver.
func (s ConnectionSettings) DSN() string {
	sslMode := s.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		s.Host, s.Port, s.User, s.Password, s.DBName, sslMode)
}

// Open connects to postgres and migrates the entity schema.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	if err = db.AutoMigrate(&entityrepo.EntityDTO{}); err != nil {
		return nil, fmt.Errorf("migrate entities: %w", err)
	}

	return db, nil
}
