package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/zaiboost/zaiboost/internal/app/logger"
	"github.com/zaiboost/zaiboost/internal/app/models"
	"go.uber.org/zap"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate")

	// errNothingToDo aborts a write without persisting.
	errNothingToDo = errors.New("nothing to do")
)

// Snapshot is the full ledger state as it is persisted.
type Snapshot struct {
	Users    []models.User    `json:"users"`
	Services []models.Service `json:"services"`
	Orders   []models.Order   `json:"orders"`
	Reviews  []models.Review  `json:"reviews"`
	Counters models.Counters  `json:"counters"`
}

func NewSnapshot() *Snapshot {
	return &Snapshot{
		Users:    []models.User{},
		Services: []models.Service{},
		Orders:   []models.Order{},
		Reviews:  []models.Review{},
	}
}

// normalize replaces nil collections so the persisted document always
// carries all four arrays.
func (s *Snapshot) normalize() {
	if s.Users == nil {
		s.Users = []models.User{}
	}
	if s.Services == nil {
		s.Services = []models.Service{}
	}
	if s.Orders == nil {
		s.Orders = []models.Order{}
	}
	if s.Reviews == nil {
		s.Reviews = []models.Review{}
	}
}

// Persister stores and restores whole snapshots.
type Persister interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snap *Snapshot) error
}

// Ledger is the single owner of all records. Every mutation is followed by
// a full Save while the write lock is still held.
type Ledger struct {
	mu        sync.RWMutex
	snap      *Snapshot
	persister Persister
}

func OpenLedger(ctx context.Context, persister Persister) (*Ledger, error) {
	snap, err := persister.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	if snap == nil {
		snap = NewSnapshot()
	}
	snap.normalize()
	return &Ledger{snap: snap, persister: persister}, nil
}

// withWrite runs fn and persists the result. A failed Save leaves the
// in-memory change in place.
func (l *Ledger) withWrite(ctx context.Context, fn func(*Snapshot) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	if err := fn(l.snap); err != nil {
		return err
	}
	if err := l.persister.Save(ctx, l.snap); err != nil {
		logger.Log.Error("ledger persist failed, memory and storage diverged", zap.Error(err))
		return fmt.Errorf("persist snapshot: %w", err)
	}
	return nil
}

func (l *Ledger) withRead(ctx context.Context, fn func(*Snapshot) error) error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	return fn(l.snap)
}

func findUser(s *Snapshot, id int64) *models.User {
	for i := range s.Users {
		if s.Users[i].ID == id {
			return &s.Users[i]
		}
	}
	return nil
}

func findService(s *Snapshot, id int64) *models.Service {
	for i := range s.Services {
		if s.Services[i].ID == id {
			return &s.Services[i]
		}
	}
	return nil
}

func findOrder(s *Snapshot, id int64) *models.Order {
	for i := range s.Orders {
		if s.Orders[i].ID == id {
			return &s.Orders[i]
		}
	}
	return nil
}
