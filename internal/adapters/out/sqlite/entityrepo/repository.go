// Package entityrepo persists kernel.BaseEntity values in SQLite through
// database/sql and the pure-Go modernc.org/sqlite driver.
package entityrepo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"crazygenerics/internal/core/domain/model/kernel"
	"crazygenerics/internal/core/ports"

	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

const schema = `
CREATE TABLE IF NOT EXISTS entities (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	uuid       TEXT    NOT NULL,
	created_on TEXT    NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_entities_uuid ON entities(uuid);
`

// SQLiteEntityRepository implements ports.EntityRepository on SQLite.
type SQLiteEntityRepository struct {
	db *sql.DB
}

var _ ports.EntityRepository = (*SQLiteEntityRepository)(nil)

// Open opens (creating if needed) the database at path and applies the schema.
// Use ":memory:" for a private in-memory database.
func Open(ctx context.Context, path string) (*SQLiteEntityRepository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// an in-memory database lives only as long as its single connection
	db.SetMaxOpenConns(1)

	if _, err = db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply sqlite schema: %w", err)
	}

	return &SQLiteEntityRepository{db: db}, nil
}

// Close releases the underlying database handle.
func (r *SQLiteEntityRepository) Close() error {
	return r.db.Close()
}

// Save inserts a new entity and assigns the generated ID, or upserts a restored one.
func (r *SQLiteEntityRepository) Save(ctx context.Context, entity *kernel.BaseEntity) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	createdOn := entity.CreatedOn().UTC().Format(time.RFC3339Nano)
	if id := entity.ID(); id != nil {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO entities (id, uuid, created_on) VALUES (?, ?, ?)
			 ON CONFLICT(id) DO UPDATE SET uuid = excluded.uuid, created_on = excluded.created_on`,
			*id, entity.UUID().String(), createdOn)
		return err
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO entities (uuid, created_on) VALUES (?, ?)`,
		entity.UUID().String(), createdOn)
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	return entity.AssignID(id)
}

// EntityCollection returns every stored entity ordered by ID.
func (r *SQLiteEntityRepository) EntityCollection(ctx context.Context) ([]*kernel.BaseEntity, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, uuid, created_on FROM entities ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entities := make([]*kernel.BaseEntity, 0)
	for rows.Next() {
		var (
			id        int64
			rawUUID   string
			createdOn string
		)
		if err = rows.Scan(&id, &rawUUID, &createdOn); err != nil {
			return nil, err
		}

		e, scanErr := scanEntity(id, rawUUID, createdOn)
		if scanErr != nil {
			return nil, scanErr
		}
		entities = append(entities, e)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entities, nil
}

func scanEntity(id int64, rawUUID, rawCreatedOn string) (*kernel.BaseEntity, error) {
	uuid, err := kernel.UUIDFromString(rawUUID)
	if err != nil {
		return nil, err
	}

	createdOn, err := time.Parse(time.RFC3339Nano, rawCreatedOn)
	if err != nil {
		return nil, fmt.Errorf("parse created_on of entity %d: %w", id, err)
	}

	return kernel.RestoreBaseEntity(id, uuid, createdOn)
}
