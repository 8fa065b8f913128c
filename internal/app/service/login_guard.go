package service

import (
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/zaiboost/zaiboost/internal/app/logger"
	"go.uber.org/zap"
)

// LoginGuard counts failed logins per username and locks the username out
// once the limit is reached, until the window expires.
type LoginGuard interface {
	Blocked(username string) bool
	RegisterFailure(username string) int
	Reset(username string)
}

type LoginGuardImpl struct {
	*cache.Cache
	maxAttempts int
}

func NewLoginGuard(maxAttempts int, window, cleanupInterval time.Duration) *LoginGuardImpl {
	return &LoginGuardImpl{
		Cache:       cache.New(window, cleanupInterval),
		maxAttempts: maxAttempts,
	}
}

func (g *LoginGuardImpl) Blocked(username string) bool {
	if g.maxAttempts <= 0 {
		return false
	}
	v, found := g.Get(username)
	if !found {
		return false
	}
	n, ok := v.(int)
	return ok && n >= g.maxAttempts
}

// RegisterFailure returns the failure count inside the current window.
func (g *LoginGuardImpl) RegisterFailure(username string) int {
	if err := g.Add(username, 1, cache.DefaultExpiration); err == nil {
		return 1
	}
	n, err := g.IncrementInt(username, 1)
	if err != nil {
		// expired between Add and IncrementInt
		g.Set(username, 1, cache.DefaultExpiration)
		return 1
	}
	if n == g.maxAttempts {
		logger.Log.Warn("login locked out", zap.String("username", username), zap.Int("attempts", n))
	}
	return n
}

func (g *LoginGuardImpl) Reset(username string) {
	g.Delete(username)
}
