package repository

import (
	"context"
	"net/http"

	appErrors "github.com/zaiboost/zaiboost/internal/app/errors"
	"github.com/zaiboost/zaiboost/internal/app/models"
)

type (
	UserRepository interface {
		Create(ctx context.Context, user *models.User) error
		FindByUsername(ctx context.Context, username string) (*models.User, error)
		FindByID(ctx context.Context, id int64) (*models.User, error)
	}
	UserRepositoryImpl struct {
		ledger *Ledger
	}
)

func NewUserRepository(ledger *Ledger) *UserRepositoryImpl {
	return &UserRepositoryImpl{ledger: ledger}
}

// Create assigns the next user id. Usernames are unique.
func (ur *UserRepositoryImpl) Create(ctx context.Context, user *models.User) error {
	return ur.ledger.withWrite(ctx, func(s *Snapshot) error {
		for _, u := range s.Users {
			if u.Username == user.Username {
				return appErrors.NewWithCode(ErrDuplicate, "Username already taken", http.StatusBadRequest)
			}
		}
		s.Counters.Users++
		user.ID = s.Counters.Users
		s.Users = append(s.Users, *user)
		return nil
	})
}

func (ur *UserRepositoryImpl) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var out *models.User
	err := ur.ledger.withRead(ctx, func(s *Snapshot) error {
		for _, u := range s.Users {
			if u.Username == username {
				user := u
				out = &user
				return nil
			}
		}
		return appErrors.NewWithCode(ErrNotFound, "User not found", http.StatusNotFound)
	})
	return out, err
}

func (ur *UserRepositoryImpl) FindByID(ctx context.Context, id int64) (*models.User, error) {
	var out *models.User
	err := ur.ledger.withRead(ctx, func(s *Snapshot) error {
		u := findUser(s, id)
		if u == nil {
			return appErrors.NewWithCode(ErrNotFound, "User not found", http.StatusNotFound)
		}
		user := *u
		out = &user
		return nil
	})
	return out, err
}
