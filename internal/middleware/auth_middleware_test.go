package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/medicamp/backend/internal/pkg/auth"
)

func newAuthFixture() (*AuthMiddleware, *auth.JWTService) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "medicamp.app",
	})
	return NewAuthMiddleware(jwtService), jwtService
}

func protectedRouter(m *AuthMiddleware, roles ...string) *gin.Engine {
	router := gin.New()
	group := router.Group("/", m.JWTAuth())
	if len(roles) > 0 {
		group.Use(m.RoleRequired(roles...))
	}
	group.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"email": c.GetString(ContextUserEmail),
			"role":  c.GetString(ContextUserRole),
		})
	})
	return router
}

func TestJWTAuth(t *testing.T) {
	m, jwtService := newAuthFixture()
	router := protectedRouter(m)

	token, _, err := jwtService.GenerateToken("organizer@medicamp.app", "organizer")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"valid token", "Bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
		})
	}
}

func TestRoleRequired(t *testing.T) {
	m, jwtService := newAuthFixture()
	router := protectedRouter(m, "organizer", "admin")

	tests := []struct {
		role       string
		wantStatus int
	}{
		{"organizer", http.StatusOK},
		{"admin", http.StatusOK},
		{"participant", http.StatusForbidden},
	}

	for _, tc := range tests {
		t.Run(tc.role, func(t *testing.T) {
			token, _, err := jwtService.GenerateToken("user@medicamp.app", tc.role)
			if err != nil {
				t.Fatalf("GenerateToken: %v", err)
			}

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Errorf("role %q: status = %d, want %d", tc.role, rec.Code, tc.wantStatus)
			}
		})
	}
}
