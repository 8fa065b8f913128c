package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/zaiboost/zaiboost/internal/app/config"
	appErrors "github.com/zaiboost/zaiboost/internal/app/errors"
	"github.com/zaiboost/zaiboost/internal/app/logger"
	"github.com/zaiboost/zaiboost/internal/app/metrics"
	"github.com/zaiboost/zaiboost/internal/app/models"
	"github.com/zaiboost/zaiboost/internal/app/repository"
	"github.com/zaiboost/zaiboost/internal/app/secure"
	"go.uber.org/zap"
)

const (
	minUsernameLength = 3
	minPasswordLength = 6
)

var errBadCredentials = errors.New("bad credentials")

type UserService interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
	EnsureAdmin(ctx context.Context, username, password string) (bool, error)
}

type UserServiceImpl struct {
	userRepo   repository.UserRepository
	loginGuard LoginGuard
}

func NewUserService(userRepo repository.UserRepository, loginGuard LoginGuard) *UserServiceImpl {
	return &UserServiceImpl{
		userRepo:   userRepo,
		loginGuard: loginGuard,
	}
}

func (us *UserServiceImpl) Register(ctx context.Context, username, password string) (*models.User, error) {
	if utf8.RuneCountInString(username) < minUsernameLength {
		msg := fmt.Sprintf("Username must be at least %d characters", minUsernameLength)
		return nil, appErrors.NewWithCode(errors.New(msg), msg, http.StatusBadRequest)
	}
	if utf8.RuneCountInString(password) < minPasswordLength {
		msg := fmt.Sprintf("Password must be at least %d characters", minPasswordLength)
		return nil, appErrors.NewWithCode(errors.New(msg), msg, http.StatusBadRequest)
	}
	user, err := us.create(ctx, username, password, models.RoleCustomer)
	if err != nil {
		return nil, err
	}
	metrics.Registrations.Inc()
	return user, nil
}

func (us *UserServiceImpl) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	if us.loginGuard.Blocked(username) {
		metrics.LoginFailures.Inc()
		return nil, appErrors.NewWithCode(errBadCredentials, "Too many failed login attempts, try again later", http.StatusTooManyRequests)
	}
	user, err := us.userRepo.FindByUsername(ctx, username)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil || !secure.VerifyPassword(password, user.PasswordHash) {
		us.loginGuard.RegisterFailure(username)
		metrics.LoginFailures.Inc()
		return nil, appErrors.NewWithCode(errBadCredentials, "Invalid username or password", http.StatusUnauthorized)
	}
	us.loginGuard.Reset(username)
	return user, nil
}

// EnsureAdmin creates the admin account when no user holds the admin
// username. It reports whether an account was created.
func (us *UserServiceImpl) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	_, err := us.userRepo.FindByUsername(ctx, username)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return false, fmt.Errorf("find admin: %w", err)
	}
	if _, err := us.create(ctx, username, password, models.RoleAdmin); err != nil {
		return false, fmt.Errorf("create admin: %w", err)
	}
	logger.Log.Info("default admin created", zap.String("username", username))
	if password == config.DefaultAdminPassword {
		logger.Log.Warn("admin account uses the default password, change ADMIN_PASSWORD", zap.String("username", username))
	}
	return true, nil
}

func (us *UserServiceImpl) create(ctx context.Context, username, password string, role models.Role) (*models.User, error) {
	passwordHash, err := secure.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user, err := models.NewUser(username, passwordHash, role, time.Now().UTC())
	if err != nil {
		return nil, appErrors.NewWithCode(err, err.Error(), http.StatusBadRequest)
	}
	if err := us.userRepo.Create(ctx, user); err != nil {
		appErr := &appErrors.ResponseCodeError{}
		if errors.As(err, appErr) {
			return nil, err
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}
