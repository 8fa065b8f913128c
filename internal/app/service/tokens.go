package service

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/zaiboost/zaiboost/internal/app/config"
	"github.com/zaiboost/zaiboost/internal/app/models"
)

var (
	ErrMalformedToken   = errors.New("malformed token")
	ErrInvalidSignature = errors.New("invalid signature")
	ErrTokenExpired     = errors.New("token expired")
)

type TokenService interface {
	ParseToken(tokenString string) (*models.Identity, error)
	GenerateToken(identity models.Identity) (string, error)
}

// Claims is the token payload. ExpiresAt is in epoch milliseconds.
type Claims struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	ExpiresAt int64  `json:"exp"`
}

func (c Claims) Valid() error {
	if c.expired(time.Now()) {
		return ErrTokenExpired
	}
	return nil
}

func (c Claims) expired(now time.Time) bool {
	return now.UnixMilli() > c.ExpiresAt
}

type TokenServiceImpl struct {
	secretKey     string
	tokenLifetime time.Duration
	now           func() time.Time
}

func NewTokenService(cfg config.AppConfig) *TokenServiceImpl {
	return &TokenServiceImpl{
		secretKey:     cfg.TokenSecretKey,
		tokenLifetime: time.Duration(cfg.TokenLifetimeSec) * time.Second,
		now:           time.Now,
	}
}

func (ts TokenServiceImpl) ParseToken(tokenString string) (*models.Identity, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			return []byte(ts.secretKey), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		// expiry is checked below against the service clock
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
		default:
			return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
		}
	}

	if !ts.canonicalSignature(tokenString) {
		return nil, ErrInvalidSignature
	}

	if claims.expired(ts.now()) {
		return nil, ErrTokenExpired
	}

	role := models.Role(claims.Role)
	if claims.ID == 0 || claims.Username == "" || !role.Valid() {
		return nil, fmt.Errorf("%w: incomplete identity claims", ErrMalformedToken)
	}

	return &models.Identity{ID: claims.ID, Username: claims.Username, Role: role}, nil
}

// canonicalSignature rejects signatures that decode to the right bytes but
// are not spelled exactly as issued, e.g. a changed trailing base64 char.
func (ts TokenServiceImpl) canonicalSignature(tokenString string) bool {
	i := strings.LastIndex(tokenString, ".")
	if i < 0 {
		return false
	}
	want, err := jwt.SigningMethodHS256.Sign(tokenString[:i], []byte(ts.secretKey))
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(want), []byte(tokenString[i+1:])) == 1
}

func (ts TokenServiceImpl) GenerateToken(identity models.Identity) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		ID:        identity.ID,
		Username:  identity.Username,
		Role:      identity.Role.String(),
		ExpiresAt: ts.now().Add(ts.tokenLifetime).UnixMilli(),
	})

	tokenString, err := token.SignedString([]byte(ts.secretKey))
	if err != nil {
		return "", err
	}
	return tokenString, nil
}
