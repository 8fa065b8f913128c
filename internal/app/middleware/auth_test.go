package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	appContext "github.com/zaiboost/zaiboost/internal/app/context"
	"github.com/zaiboost/zaiboost/internal/app/models"
	"github.com/zaiboost/zaiboost/internal/app/service"
)

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) ParseToken(tokenString string) (*models.Identity, error) {
	args := m.Called(tokenString)
	return args.Get(0).(*models.Identity), args.Error(1)
}

func (m *MockTokenService) GenerateToken(identity models.Identity) (string, error) {
	args := m.Called(identity)
	return args.String(0), args.Error(1)
}

// echoIdentity answers 200 with the username found in the request context.
var echoIdentity = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	identity := appContext.Identity(r.Context())
	if identity == nil {
		w.WriteHeader(http.StatusTeapot)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(identity.Username))
})

func TestAuthMiddleware_Authenticate(t *testing.T) {
	traveler := &models.Identity{ID: 7, Username: "traveler", Role: models.RoleCustomer}

	tests := []struct {
		name           string
		header         string
		setupMock      func(*MockTokenService)
		wantStatusCode int
		wantBody       string
	}{
		{
			name:   "Valid Token",
			header: "Bearer good-token",
			setupMock: func(m *MockTokenService) {
				m.On("ParseToken", "good-token").Return(traveler, nil)
			},
			wantStatusCode: http.StatusOK,
			wantBody:       "traveler",
		},
		{
			name:           "No Header",
			header:         "",
			setupMock:      func(*MockTokenService) {},
			wantStatusCode: http.StatusUnauthorized,
			wantBody:       `{"error":"Token required","code":401}`,
		},
		{
			name:           "Wrong Scheme",
			header:         "Basic YWRtaW46YWRtaW4xMjM=",
			setupMock:      func(*MockTokenService) {},
			wantStatusCode: http.StatusUnauthorized,
			wantBody:       `{"error":"Token required","code":401}`,
		},
		{
			name:           "Lowercase Scheme",
			header:         "bearer good-token",
			setupMock:      func(*MockTokenService) {},
			wantStatusCode: http.StatusUnauthorized,
			wantBody:       `{"error":"Token required","code":401}`,
		},
		{
			name:   "Expired Token",
			header: "Bearer old-token",
			setupMock: func(m *MockTokenService) {
				m.On("ParseToken", "old-token").Return((*models.Identity)(nil), service.ErrTokenExpired)
			},
			wantStatusCode: http.StatusUnauthorized,
			wantBody:       `{"error":"Invalid or expired token","code":401}`,
		},
		{
			name:   "Forged Token",
			header: "Bearer forged",
			setupMock: func(m *MockTokenService) {
				m.On("ParseToken", "forged").Return((*models.Identity)(nil), service.ErrInvalidSignature)
			},
			wantStatusCode: http.StatusUnauthorized,
			wantBody:       `{"error":"Invalid or expired token","code":401}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := &MockTokenService{}
			tt.setupMock(ts)
			am := NewAuthMiddleware(ts)

			req := httptest.NewRequest(http.MethodGet, "/api/orders/user/7", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			am.Authenticate(echoIdentity).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatusCode, w.Code)
			if tt.wantStatusCode == http.StatusOK {
				assert.Equal(t, tt.wantBody, w.Body.String())
				return
			}
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestAuthMiddleware_RequireAdmin(t *testing.T) {
	tests := []struct {
		name           string
		identity       *models.Identity
		wantStatusCode int
	}{
		{name: "Admin", identity: &models.Identity{ID: 1, Username: "admin", Role: models.RoleAdmin}, wantStatusCode: http.StatusOK},
		{name: "Customer", identity: &models.Identity{ID: 7, Username: "traveler", Role: models.RoleCustomer}, wantStatusCode: http.StatusForbidden},
		{name: "Anonymous", wantStatusCode: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			am := NewAuthMiddleware(&MockTokenService{})
			req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
			if tt.identity != nil {
				req = req.WithContext(appContext.WithIdentity(req.Context(), tt.identity))
			}
			w := httptest.NewRecorder()
			am.RequireAdmin(echoIdentity).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatusCode, w.Code)
			if tt.wantStatusCode == http.StatusForbidden {
				assert.JSONEq(t, `{"error":"Admin access required","code":403}`, w.Body.String())
			}
		})
	}
}
