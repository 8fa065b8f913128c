package repository

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zaiboost/zaiboost/internal/app/config"
	"github.com/zaiboost/zaiboost/internal/app/models"
	"github.com/zaiboost/zaiboost/migrations"
)

func setupInMemorySnapshotDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := Open("sqlite3", "file:"+t.Name()+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("could not create in-memory db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := MigrateFS(db, "sqlite3", migrations.FS, "."); err != nil {
		t.Fatalf("could not migrate: %v", err)
	}
	return db
}

func sampleSnapshot() *Snapshot {
	snap := NewSnapshot()
	created := time.Date(2024, 2, 2, 8, 30, 0, 0, time.UTC)
	snap.Users = append(snap.Users, models.User{ID: 1, Username: "admin", PasswordHash: "s:h", Role: models.RoleAdmin, CreatedAt: created})
	snap.Orders = append(snap.Orders, models.Order{ID: 1, UserID: 1, ServiceID: 3, Status: models.PROCESSING, TargetValue: 100, CreatedAt: created})
	snap.Counters = models.Counters{Users: 1, Orders: 1, Services: 3}
	return snap
}

func TestFilePersister(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "zaiboost.db.json")
	fp := NewFilePersister(path)

	t.Run("Missing File Loads Empty", func(t *testing.T) {
		snap, err := fp.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, snap.Users)
		assert.NotNil(t, snap.Orders)
	})

	t.Run("Round Trip", func(t *testing.T) {
		require.NoError(t, fp.Save(ctx, sampleSnapshot()))
		snap, err := fp.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, sampleSnapshot(), snap)

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

		entries, err := os.ReadDir(filepath.Dir(path))
		require.NoError(t, err)
		assert.Len(t, entries, 1, "temp files must not linger")
	})

	t.Run("Document Shape", func(t *testing.T) {
		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		var doc map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(raw, &doc))
		for _, key := range []string{"users", "services", "orders", "reviews", "counters"} {
			assert.Contains(t, doc, key)
		}
		assert.JSONEq(t, `[]`, string(doc["services"]))
	})

	t.Run("Corrupt File", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o600))
		_, err := NewFilePersister(bad).Load(ctx)
		assert.Error(t, err)
		_, err = OpenLedger(ctx, NewFilePersister(bad))
		assert.Error(t, err)
	})
}

func TestFilePersister_LoadsLegacyDocument(t *testing.T) {
	legacy := `{
  "users": [{"id": 1, "username": "admin", "password": "aa:bb", "role": "admin", "created_at": "2024-06-01T10:00:00.000Z"}],
  "services": [],
  "orders": [{"id": 1, "user_id": 1, "service_id": 2, "game": "genshin", "uid": "8", "server": "Asia",
              "game_username": "u", "game_password": "iv:ct", "total_price": 35000, "status": "pending",
              "start_value": 0, "current_value": 0, "target_value": 7, "notes": "", "created_at": "2024-06-01T10:00:00.000Z"}],
  "reviews": [{"id": 1, "order_id": null, "user_id": 1, "rating": 5, "comment": "mantap", "created_at": "2024-06-01T10:00:00.000Z"}],
  "counters": {"users": 1, "services": 0, "orders": 1, "reviews": 1}
}`
	path := filepath.Join(t.TempDir(), "zaiboost.db.json")
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o600))

	snap, err := NewFilePersister(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.Orders, 1)
	assert.Equal(t, int64(35000), snap.Orders[0].TotalPrice)
	assert.Equal(t, models.PENDING, snap.Orders[0].Status)
	assert.Nil(t, snap.Reviews[0].OrderID)
	assert.Equal(t, int64(1), snap.Counters.Reviews)
}

func TestDBPersister(t *testing.T) {
	ctx := context.Background()
	dp := NewDBPersister(setupInMemorySnapshotDB(t))

	snap, err := dp.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, snap.Users)

	require.NoError(t, dp.Save(ctx, sampleSnapshot()))
	// second save updates the same row
	updated := sampleSnapshot()
	updated.Counters.Users = 5
	require.NoError(t, dp.Save(ctx, updated))

	var rows int
	require.NoError(t, dp.GetDB().Get(&rows, `SELECT count(*) FROM ledger_snapshots;`))
	assert.Equal(t, 1, rows)

	loaded, err := dp.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, updated, loaded)
}

func TestNewPersister(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	p, closeFn, err := NewPersister(config.AppConfig{DataFile: path})
	require.NoError(t, err)
	defer closeFn()
	assert.IsType(t, &FilePersister{}, p)

	p, closeFn, err = NewPersister(config.AppConfig{DatabaseDriver: "sqlite3", DatabaseDSN: "file:newpersister?mode=memory&cache=shared"})
	require.NoError(t, err)
	defer closeFn()
	assert.IsType(t, &DBPersister{}, p)
}

type failingPersister struct {
	saves int
}

func (fp *failingPersister) Load(context.Context) (*Snapshot, error) { return NewSnapshot(), nil }
func (fp *failingPersister) Save(context.Context, *Snapshot) error {
	fp.saves++
	return errors.New("disk full")
}

func TestLedger_PersistFailureKeepsMemory(t *testing.T) {
	ctx := context.Background()
	fp := &failingPersister{}
	ledger, err := OpenLedger(ctx, fp)
	require.NoError(t, err)
	users := NewUserRepository(ledger)

	err = users.Create(ctx, newUser(t, "traveler", models.RoleCustomer))
	assert.ErrorContains(t, err, "disk full")
	assert.Equal(t, 1, fp.saves)

	// no rollback: the record is visible in memory
	_, err = users.FindByUsername(ctx, "traveler")
	assert.NoError(t, err)
}

func TestLedger_CanceledContext(t *testing.T) {
	ledger, _ := setupLedger(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewUserRepository(ledger).Create(ctx, newUser(t, "late", models.RoleCustomer))
	assert.ErrorIs(t, err, context.Canceled)
	_, err = NewCatalogRepository(ledger).List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
