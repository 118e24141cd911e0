/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package store persists object transform snapshots in a workspace-scoped
// SQLite database, so a saved transform can be restored across sessions.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	applog "motionkit/internal/log"
	"motionkit/internal/object"

	// Pure-Go SQLite driver (CGO-free)
	_ "modernc.org/sqlite"
)

const (
	// StoreDirName holds all per-workspace data under the workspace root.
	StoreDirName  = ".mkit"
	StoreFileName = "motion.sqlite"

	// schemaVersion tracks the SQLite schema. Bump on breaking changes and
	// add a migration in ensureSchema.
	schemaVersion = 1
)

// language=SQL
// dialect=SQLite
const createSnapshotsSQL = `CREATE TABLE IF NOT EXISTS snapshots (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	object_id TEXT NOT NULL,
	ts TEXT NOT NULL,
	scale_x REAL NOT NULL, scale_y REAL NOT NULL,
	skew_x REAL NOT NULL, skew_y REAL NOT NULL,
	angle REAL NOT NULL,
	flip_x INTEGER NOT NULL, flip_y INTEGER NOT NULL,
	left_pos REAL NOT NULL, top_pos REAL NOT NULL
)`

// language=SQL
// dialect=SQLite
const insertSnapshotSQL = `INSERT INTO snapshots
	(object_id, ts, scale_x, scale_y, skew_x, skew_y, angle, flip_x, flip_y, left_pos, top_pos)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// language=SQL
// dialect=SQLite
const selectLatestSQL = `SELECT ts, scale_x, scale_y, skew_x, skew_y, angle, flip_x, flip_y, left_pos, top_pos
	FROM snapshots WHERE object_id = ? ORDER BY ts DESC, id DESC LIMIT 1`

// language=SQL
// dialect=SQLite
const listSnapshotsSQL = `SELECT ts, scale_x, scale_y, skew_x, skew_y, angle, flip_x, flip_y, left_pos, top_pos
	FROM snapshots WHERE object_id = ? ORDER BY ts DESC, id DESC LIMIT ?`

// language=SQL
// dialect=SQLite
const pruneSQL = `DELETE FROM snapshots WHERE object_id = ? AND id NOT IN (
	SELECT id FROM snapshots WHERE object_id = ? ORDER BY ts DESC, id DESC LIMIT ?
)`

// Snapshot is a persisted transform state with its capture time.
type Snapshot struct {
	State object.State
	TS    time.Time
}

// Store wraps the workspace database.
type Store struct {
	db   *sql.DB
	root string
}

// Path returns the full path to the workspace database file.
func Path(root string) string {
	return filepath.Join(root, StoreDirName, StoreFileName)
}

// Open ensures the workspace database exists under root/.mkit, opens it in
// WAL mode and brings the schema up to date.
func Open(root string) (*Store, error) {
	l := applog.WithOperation(applog.WithComponent("store"), "open").With(slog.String("root", root))
	if strings.TrimSpace(root) == "" {
		return nil, errors.New("workspace root is required")
	}
	if err := os.MkdirAll(filepath.Join(root, StoreDirName), 0o755); err != nil {
		l.Error("create store dir failed", slog.Any("err", err))
		return nil, fmt.Errorf("create %s dir: %w", StoreDirName, err)
	}
	dsn := fmt.Sprintf("file:%s?cache=shared&_pragma=busy_timeout(5000)", filepath.ToSlash(Path(root)))
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		l.Error("sqlite open failed", slog.Any("err", err))
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(`PRAGMA journal_mode=WAL`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable WAL: %w", err)
	}
	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db, root: root}, nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

func ensureSchema(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS meta (key TEXT PRIMARY KEY, value TEXT)`); err != nil {
		return fmt.Errorf("create meta table: %w", err)
	}
	if _, err := db.Exec(createSnapshotsSQL); err != nil {
		return fmt.Errorf("create snapshots table: %w", err)
	}
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_snapshots_object ON snapshots(object_id, ts)`); err != nil {
		return fmt.Errorf("create snapshots index: %w", err)
	}
	_, err := db.Exec(`INSERT INTO meta(key, value) VALUES ('schema_version', ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, fmt.Sprint(schemaVersion))
	if err != nil {
		return fmt.Errorf("write schema version: %w", err)
	}
	return nil
}

// SaveSnapshot persists one transform snapshot for the object.
func (s *Store) SaveSnapshot(ctx context.Context, objectID string, st object.State, ts time.Time) error {
	if strings.TrimSpace(objectID) == "" {
		return errors.New("object id is required")
	}
	_, err := s.db.ExecContext(ctx, insertSnapshotSQL,
		objectID, ts.UTC().Format(time.RFC3339Nano),
		st.ScaleX, st.ScaleY, st.SkewX, st.SkewY, st.Angle,
		boolToInt(st.FlipX), boolToInt(st.FlipY), st.Left, st.Top)
	if err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}
	return nil
}

// Latest returns the most recent snapshot for the object, or ok=false when
// none exists.
func (s *Store) Latest(ctx context.Context, objectID string) (Snapshot, bool, error) {
	row := s.db.QueryRowContext(ctx, selectLatestSQL, objectID)
	snap, err := scanSnapshot(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return Snapshot{}, false, nil
	}
	if err != nil {
		return Snapshot{}, false, err
	}
	return snap, true, nil
}

// List returns up to limit snapshots for the object, newest first.
func (s *Store) List(ctx context.Context, objectID string, limit int) ([]Snapshot, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, listSnapshotsSQL, objectID, limit)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer func() { _ = rows.Close() }()
	var out []Snapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, snap)
	}
	return out, rows.Err()
}

// Prune deletes all but the keep most recent snapshots for the object.
// keep <= 0 is a no-op.
func (s *Store) Prune(ctx context.Context, objectID string, keep int) error {
	if keep <= 0 {
		return nil
	}
	if _, err := s.db.ExecContext(ctx, pruneSQL, objectID, objectID, keep); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

func scanSnapshot(scan func(dest ...any) error) (Snapshot, error) {
	var tsStr string
	var st object.State
	var fx, fy int
	if err := scan(&tsStr, &st.ScaleX, &st.ScaleY, &st.SkewX, &st.SkewY, &st.Angle, &fx, &fy, &st.Left, &st.Top); err != nil {
		return Snapshot{}, err
	}
	st.FlipX = fx != 0
	st.FlipY = fy != 0
	ts, err := time.Parse(time.RFC3339Nano, tsStr)
	if err != nil {
		ts = time.Time{}
	}
	return Snapshot{State: st, TS: ts}, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
