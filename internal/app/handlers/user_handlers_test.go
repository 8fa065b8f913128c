package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	appErrors "github.com/zaiboost/zaiboost/internal/app/errors"
	"github.com/zaiboost/zaiboost/internal/app/models"
)

type MockUserService struct {
	mock.Mock
}
type MockTokenService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, username, password string) (*models.User, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	args := m.Called(ctx, username, password)
	return args.Bool(0), args.Error(1)
}

func (m *MockTokenService) ParseToken(tokenString string) (*models.Identity, error) {
	args := m.Called(tokenString)
	return args.Get(0).(*models.Identity), args.Error(1)
}

func (m *MockTokenService) GenerateToken(identity models.Identity) (string, error) {
	args := m.Called(identity)
	return args.String(0), args.Error(1)
}

func testUser(id int64, username string, role models.Role) *models.User {
	return &models.User{ID: id, Username: username, PasswordHash: "salt:hash", Role: role, CreatedAt: time.Now()}
}

func TestUserHandler_Login(t *testing.T) {
	tests := []struct {
		name             string
		request          string
		mockUserService  func() *MockUserService
		mockTokenService func() *MockTokenService
		contextTimeout   time.Duration
		wantResponse     string
		wantStatusCode   int
	}{
		{
			name:    "Successful Login",
			request: `{"username":"admin","password":"admin123"}`,
			mockUserService: func() *MockUserService {
				m := &MockUserService{}
				m.On("Authenticate", mock.Anything, "admin", "admin123").Return(testUser(1, "admin", models.RoleAdmin), nil)
				return m
			},
			mockTokenService: func() *MockTokenService {
				m := &MockTokenService{}
				m.On("GenerateToken", models.Identity{ID: 1, Username: "admin", Role: models.RoleAdmin}).Return("secret-token", nil)
				return m
			},
			contextTimeout: 5 * time.Second,
			wantResponse:   `{"id":1,"username":"admin","role":"admin","token":"secret-token"}`,
			wantStatusCode: http.StatusOK,
		},
		{
			name:    "Invalid Password",
			request: `{"username":"admin","password":"nope"}`,
			mockUserService: func() *MockUserService {
				m := &MockUserService{}
				err := appErrors.NewWithCode(errors.New(""), "Invalid username or password", http.StatusUnauthorized)
				m.On("Authenticate", mock.Anything, "admin", "nope").Return((*models.User)(nil), err)
				return m
			},
			mockTokenService: func() *MockTokenService { return &MockTokenService{} },
			contextTimeout:   5 * time.Second,
			wantResponse:     `{"error":"Invalid username or password","code":401}`,
			wantStatusCode:   http.StatusUnauthorized,
		},
		{
			name:    "Locked Out",
			request: `{"username":"admin","password":"nope"}`,
			mockUserService: func() *MockUserService {
				m := &MockUserService{}
				err := appErrors.NewWithCode(errors.New(""), "Too many failed login attempts, try again later", http.StatusTooManyRequests)
				m.On("Authenticate", mock.Anything, "admin", "nope").Return((*models.User)(nil), err)
				return m
			},
			mockTokenService: func() *MockTokenService { return &MockTokenService{} },
			contextTimeout:   5 * time.Second,
			wantResponse:     `{"error":"Too many failed login attempts, try again later","code":429}`,
			wantStatusCode:   http.StatusTooManyRequests,
		},
		{
			name:             "Missing Fields",
			request:          `{"username":"","password":""}`,
			mockUserService:  func() *MockUserService { return &MockUserService{} },
			mockTokenService: func() *MockTokenService { return &MockTokenService{} },
			contextTimeout:   5 * time.Second,
			wantResponse:     `{"error":"Missing: username, password","code":400,"fields":["username","password"]}`,
			wantStatusCode:   http.StatusBadRequest,
		},
		{
			name:    "Error in Token Generation",
			request: `{"username":"admin","password":"admin123"}`,
			mockUserService: func() *MockUserService {
				m := &MockUserService{}
				m.On("Authenticate", mock.Anything, "admin", "admin123").Return(testUser(1, "admin", models.RoleAdmin), nil)
				return m
			},
			mockTokenService: func() *MockTokenService {
				m := &MockTokenService{}
				m.On("GenerateToken", mock.Anything).Return("", errors.New("token generation error"))
				return m
			},
			contextTimeout: 5 * time.Second,
			wantResponse:   `{"error":"Unable to generate token","code":500}`,
			wantStatusCode: http.StatusInternalServerError,
		},
		{
			name:    "Context Timeout",
			request: `{"username":"admin","password":"admin123"}`,
			mockUserService: func() *MockUserService {
				m := &MockUserService{}
				m.On("Authenticate", mock.Anything, "admin", "admin123").Return(testUser(1, "admin", models.RoleAdmin), nil)
				return m
			},
			mockTokenService: func() *MockTokenService {
				m := &MockTokenService{}
				m.On("GenerateToken", mock.Anything).Return("secret-token", nil)
				return m
			},
			contextTimeout: 0 * time.Second,
			wantResponse:   `{"error":"Timeout exceeded","code":500}`,
			wantStatusCode: http.StatusInternalServerError,
		},
		{
			name:             "Invalid JSON Request",
			request:          `{"username":admin,"password":"admin123"}`,
			mockUserService:  func() *MockUserService { return &MockUserService{} },
			mockTokenService: func() *MockTokenService { return &MockTokenService{} },
			contextTimeout:   5 * time.Second,
			wantResponse:     `{"error":"Unable to parse body","code":400}`,
			wantStatusCode:   http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(tt.request))
			w := httptest.NewRecorder()

			uh := &UserHandler{
				userService:    tt.mockUserService(),
				tokenService:   tt.mockTokenService(),
				contextTimeout: tt.contextTimeout,
			}
			uh.Login(w, req)

			assert.Equal(t, tt.wantStatusCode, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantResponse, w.Body.String())
		})
	}
}

func TestUserHandler_Register(t *testing.T) {
	tests := []struct {
		name             string
		request          string
		mockUserService  func() *MockUserService
		mockTokenService func() *MockTokenService
		wantResponse     string
		wantStatusCode   int
	}{
		{
			name:    "Successful Registration",
			request: `{"username":"traveler","password":"paimon123"}`,
			mockUserService: func() *MockUserService {
				m := &MockUserService{}
				m.On("Register", mock.Anything, "traveler", "paimon123").Return(testUser(2, "traveler", models.RoleCustomer), nil)
				return m
			},
			mockTokenService: func() *MockTokenService {
				m := &MockTokenService{}
				m.On("GenerateToken", models.Identity{ID: 2, Username: "traveler", Role: models.RoleCustomer}).Return("secret-token", nil)
				return m
			},
			wantResponse:   `{"id":2,"username":"traveler","role":"customer","token":"secret-token"}`,
			wantStatusCode: http.StatusOK,
		},
		{
			name:             "Missing Password",
			request:          `{"username":"traveler"}`,
			mockUserService:  func() *MockUserService { return &MockUserService{} },
			mockTokenService: func() *MockTokenService { return &MockTokenService{} },
			wantResponse:     `{"error":"Missing: password","code":400,"fields":["password"]}`,
			wantStatusCode:   http.StatusBadRequest,
		},
		{
			name:    "Username Taken",
			request: `{"username":"traveler","password":"paimon123"}`,
			mockUserService: func() *MockUserService {
				m := &MockUserService{}
				err := appErrors.NewWithCode(errors.New("duplicate"), "Username already taken", http.StatusBadRequest)
				m.On("Register", mock.Anything, "traveler", "paimon123").Return((*models.User)(nil), err)
				return m
			},
			mockTokenService: func() *MockTokenService { return &MockTokenService{} },
			wantResponse:     `{"error":"Username already taken","code":400}`,
			wantStatusCode:   http.StatusBadRequest,
		},
		{
			name:    "Storage Failure",
			request: `{"username":"traveler","password":"paimon123"}`,
			mockUserService: func() *MockUserService {
				m := &MockUserService{}
				m.On("Register", mock.Anything, "traveler", "paimon123").Return((*models.User)(nil), errors.New("disk full"))
				return m
			},
			mockTokenService: func() *MockTokenService { return &MockTokenService{} },
			wantResponse:     `{"error":"Internal Server Error","code":500}`,
			wantStatusCode:   http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(tt.request))
			w := httptest.NewRecorder()

			uh := NewUserHandler(tt.mockUserService(), tt.mockTokenService(), 5)
			uh.Register(w, req)

			assert.Equal(t, tt.wantStatusCode, w.Code)
			assert.JSONEq(t, tt.wantResponse, w.Body.String())
		})
	}
}
