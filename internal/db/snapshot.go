package db

import (
	"context"
	"crypto/rand"
	"database/sql"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/hpungsan/rig/internal/build"
	"github.com/hpungsan/rig/internal/catalog"
	"github.com/hpungsan/rig/internal/errors"
)

// SnapshotStore persists selections in SQLite, one row per (build, category).
// It implements build.Store.
type SnapshotStore struct {
	db  *sql.DB
	now func() time.Time
}

// NewSnapshotStore wraps an initialized database.
func NewSnapshotStore(db *sql.DB) *SnapshotStore {
	return &SnapshotStore{db: db, now: time.Now}
}

// BuildInfo describes a stored build.
type BuildInfo struct {
	Key       string `json:"key"`
	ID        string `json:"id"`
	Slots     int    `json:"slots"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

// Load implements build.Store. Rows naming an unknown category or holding a
// part that no longer decodes make the whole snapshot unreadable.
func (s *SnapshotStore) Load(ctx context.Context, key string) (*build.Selection, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT category, part_json FROM selections WHERE build_key = ?`, key)
	if err != nil {
		return nil, errors.NewPersistenceRead(err)
	}
	defer rows.Close()

	slots := make(map[catalog.Category]catalog.Part)
	for rows.Next() {
		var catKey, data string
		if err := rows.Scan(&catKey, &data); err != nil {
			return nil, errors.NewPersistenceRead(err)
		}
		c, err := catalog.ParseCategory(catKey)
		if err != nil {
			return nil, errors.NewPersistenceRead(fmt.Errorf("snapshot row: %w", err))
		}
		p, err := catalog.DecodePart(c, []byte(data))
		if err != nil {
			return nil, errors.NewPersistenceRead(fmt.Errorf("snapshot row %s: %w", catKey, err))
		}
		slots[c] = p
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewPersistenceRead(err)
	}

	sel := build.NewSelection()
	sel.Restore(slots)
	return sel, nil
}

// SaveSlot implements build.Store. The build row is created on first write.
func (s *SnapshotStore) SaveSlot(ctx context.Context, key string, c catalog.Category, part catalog.Part) error {
	if !c.Valid() {
		return errors.NewInvalidRequest(fmt.Sprintf("invalid category %d", int(c)))
	}

	var data []byte
	if part != nil {
		var err error
		if data, err = catalog.EncodePart(part); err != nil {
			return errors.NewPersistenceWrite(err)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.NewPersistenceWrite(err)
	}
	defer func() { _ = tx.Rollback() }()

	now := s.now().Unix()
	if err := touchBuild(ctx, tx, key, now); err != nil {
		return errors.NewPersistenceWrite(err)
	}

	if part == nil {
		_, err = tx.ExecContext(ctx,
			`DELETE FROM selections WHERE build_key = ? AND category = ?`, key, c.Key())
	} else {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO selections (build_key, category, part_id, part_json, updated_at)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(build_key, category) DO UPDATE SET
			  part_id = excluded.part_id,
			  part_json = excluded.part_json,
			  updated_at = excluded.updated_at
		`, key, c.Key(), part.Base().ID, string(data), now)
	}
	if err != nil {
		return errors.NewPersistenceWrite(err)
	}

	if err := tx.Commit(); err != nil {
		return errors.NewPersistenceWrite(err)
	}
	return nil
}

// Reset implements build.Store. The build keeps its id.
func (s *SnapshotStore) Reset(ctx context.Context, key string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.NewPersistenceWrite(err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM selections WHERE build_key = ?`, key); err != nil {
		return errors.NewPersistenceWrite(err)
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE builds SET updated_at = ? WHERE key = ?`, s.now().Unix(), key); err != nil {
		return errors.NewPersistenceWrite(err)
	}

	if err := tx.Commit(); err != nil {
		return errors.NewPersistenceWrite(err)
	}
	return nil
}

// BuildID returns the ULID assigned to a build on its first write.
func (s *SnapshotStore) BuildID(ctx context.Context, key string) (string, error) {
	info, err := s.Info(ctx, key)
	if err != nil {
		return "", err
	}
	return info.ID, nil
}

// Info returns the metadata of a build. A build that was never written is
// NOT_FOUND.
func (s *SnapshotStore) Info(ctx context.Context, key string) (*BuildInfo, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT b.key, b.id, b.created_at, b.updated_at,
		       (SELECT COUNT(*) FROM selections WHERE build_key = b.key)
		FROM builds b
		WHERE b.key = ?
	`, key)

	var info BuildInfo
	err := row.Scan(&info.Key, &info.ID, &info.CreatedAt, &info.UpdatedAt, &info.Slots)
	if err == sql.ErrNoRows {
		return nil, errors.NewBuildNotFound(key)
	}
	if err != nil {
		return nil, errors.NewPersistenceRead(err)
	}
	return &info, nil
}

// touchBuild creates the build row if needed and bumps its updated_at.
func touchBuild(ctx context.Context, tx *sql.Tx, key string, now int64) error {
	id, err := newID()
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO builds (key, id, created_at, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET updated_at = excluded.updated_at
	`, key, id, now, now)
	return err
}

func newID() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
