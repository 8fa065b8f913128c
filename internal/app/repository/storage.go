package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
	"github.com/zaiboost/zaiboost/internal/app/config"
	"github.com/zaiboost/zaiboost/migrations"
)

// NewPersister picks the database backend when a DSN is configured and the
// JSON data file otherwise.
func NewPersister(cfg config.AppConfig) (Persister, func() error, error) {
	if cfg.DatabaseDSN == "" {
		return NewFilePersister(cfg.DataFile), func() error { return nil }, nil
	}
	db, err := Open(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		return nil, nil, err
	}
	// Migrate the database
	if err := MigrateFS(db, cfg.DatabaseDriver, migrations.FS, "."); err != nil {
		db.Close()
		return nil, nil, err
	}
	return NewDBPersister(db), db.Close, nil
}

// FilePersister keeps the snapshot in a single JSON document.
type FilePersister struct {
	path string
}

func NewFilePersister(path string) *FilePersister {
	return &FilePersister{path: path}
}

func (fp *FilePersister) Load(_ context.Context) (*Snapshot, error) {
	data, err := os.ReadFile(fp.path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewSnapshot(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}
	snap := NewSnapshot()
	if err := json.Unmarshal(data, snap); err != nil {
		return nil, fmt.Errorf("decode data file %s: %w", fp.path, err)
	}
	return snap, nil
}

// Save writes to a sibling temp file and renames it over the target.
func (fp *FilePersister) Save(_ context.Context, snap *Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	dir := filepath.Dir(fp.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(fp.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o600); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), fp.path)
}

const snapshotRowID = 1

// DBPersister keeps the snapshot as a single row of ledger_snapshots.
type DBPersister struct {
	db *sqlx.DB
}

func NewDBPersister(db *sqlx.DB) *DBPersister {
	return &DBPersister{db: db}
}

func (dp *DBPersister) Load(ctx context.Context) (*Snapshot, error) {
	query := `SELECT body FROM ledger_snapshots WHERE id = $1;`
	var body string
	err := dp.db.GetContext(ctx, &body, query, snapshotRowID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return NewSnapshot(), nil
		}
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	snap := NewSnapshot()
	if err := json.Unmarshal([]byte(body), snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, nil
}

func (dp *DBPersister) Save(ctx context.Context, snap *Snapshot) error {
	body, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	query := `INSERT INTO ledger_snapshots (id, body, updated_at) VALUES ($1, $2, $3)
			  ON CONFLICT (id) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at;`
	_, err = dp.db.ExecContext(ctx, query, snapshotRowID, string(body), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("upsert snapshot: %w", err)
	}
	return nil
}

func (dp *DBPersister) GetDB() *sqlx.DB {
	return dp.db
}

func Open(driver, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}
	return db, nil
}

func MigrateFS(db *sqlx.DB, dialect string, migrationsFS fs.FS, dir string) error {
	goose.SetBaseFS(migrationsFS)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err := goose.Up(db.DB, dir); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
