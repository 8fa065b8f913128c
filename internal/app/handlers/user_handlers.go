package handlers

import (
	"context"
	"net/http"
	"time"

	appContext "github.com/zaiboost/zaiboost/internal/app/context"
	appErrors "github.com/zaiboost/zaiboost/internal/app/errors"
	"github.com/zaiboost/zaiboost/internal/app/models"
	"github.com/zaiboost/zaiboost/internal/app/service"
)

type UserHandler struct {
	userService    service.UserService
	tokenService   service.TokenService
	contextTimeout time.Duration
}

func NewUserHandler(userService service.UserService, tokenService service.TokenService, contextTimeoutSec int) *UserHandler {
	return &UserHandler{
		userService:    userService,
		tokenService:   tokenService,
		contextTimeout: time.Duration(contextTimeoutSec) * time.Second,
	}
}

// Register godoc
// @Summary Customer registration
// @Description Creates a customer account and signs the caller in. Usernames are unique,
// @Description at least 3 characters long; passwords at least 6.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsDto true "Username and password"
// @Success 200 {object} AuthResponse "Account created, token issued"
// @Failure 400 {object} ErrorResponse "Missing fields, too short or username taken"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /auth/register [post]
func (uh *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), uh.contextTimeout)
	defer cancel()

	dto, err := uh.readCredentials(r)
	if err != nil {
		PrepareError(w, err)
		return
	}

	user, err := uh.userService.Register(ctx, dto.Username, dto.Password)
	if err != nil {
		PrepareError(w, err)
		return
	}
	uh.respondWithToken(ctx, w, user)
}

// Login godoc
// @Summary Sign in
// @Description Exchanges a username and password for a bearer token. Repeated failures lock the username out for a while.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsDto true "Username and password"
// @Success 200 {object} AuthResponse "Token issued"
// @Failure 400 {object} ErrorResponse "Missing fields"
// @Failure 401 {object} ErrorResponse "Invalid username or password"
// @Failure 429 {object} ErrorResponse "Too many failed login attempts"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /auth/login [post]
func (uh *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), uh.contextTimeout)
	defer cancel()

	dto, err := uh.readCredentials(r)
	if err != nil {
		PrepareError(w, err)
		return
	}

	user, err := uh.userService.Authenticate(ctx, dto.Username, dto.Password)
	if err != nil {
		PrepareError(w, err)
		return
	}
	uh.respondWithToken(ctx, w, user)
}

func (uh *UserHandler) readCredentials(r *http.Request) (*CredentialsDto, error) {
	dto := &CredentialsDto{}
	if err := decodeBody(r, dto); err != nil {
		return nil, err
	}
	err := checkRequired(
		requiredField{"username", dto.Username != ""},
		requiredField{"password", dto.Password != ""},
	)
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (uh *UserHandler) respondWithToken(ctx context.Context, w http.ResponseWriter, user *models.User) {
	token, err := uh.tokenService.GenerateToken(models.Identity{ID: user.ID, Username: user.Username, Role: user.Role})
	if err != nil {
		PrepareError(w, appErrors.NewWithCode(err, "Unable to generate token", http.StatusInternalServerError))
		return
	}

	err = appContext.GetContextError(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, AuthResponse{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role.String(),
		Token:    token,
	})
}
