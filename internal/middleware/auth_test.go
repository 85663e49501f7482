package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"quizmaster-service/internal/models"

	"github.com/gin-gonic/gin"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func protectedRouter(lookup UserLookup) *gin.Engine {
	r := gin.New()
	group := r.Group("/protected")
	group.Use(RequireUser(testSecret))
	group.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": UserID(c)})
	})
	if lookup != nil {
		admin := r.Group("/admin")
		admin.Use(RequireUser(testSecret), RequireAdmin(lookup))
		admin.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})
	}
	return r
}

func TestRequireUser_HeaderIdentity(t *testing.T) {
	r := protectedRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/protected/whoami", nil)
	req.Header.Set("X-User-ID", "user-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRequireUser_ValidToken(t *testing.T) {
	r := protectedRouter(nil)

	token, err := GenerateJWT("user-7", testSecret)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/protected/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRequireUser_MissingIdentity(t *testing.T) {
	r := protectedRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/protected/whoami", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", w.Code)
	}
}

func TestRequireUser_BadToken(t *testing.T) {
	r := protectedRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/protected/whoami", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", w.Code)
	}
}

func TestRequireUser_WrongSecretRejected(t *testing.T) {
	r := protectedRouter(nil)

	token, _ := GenerateJWT("user-7", "some-other-secret")
	req := httptest.NewRequest(http.MethodGet, "/protected/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", w.Code)
	}
}

type fakeLookup struct {
	users map[string]*models.User
}

func (f *fakeLookup) FindByID(ctx context.Context, id string) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return user, nil
}

func TestRequireAdmin(t *testing.T) {
	lookup := &fakeLookup{users: map[string]*models.User{
		"admin-1":   {ID: "admin-1", Role: models.RoleAdmin},
		"student-1": {ID: "student-1", Role: models.RoleStudent},
	}}
	r := protectedRouter(lookup)

	cases := []struct {
		userID string
		want   int
	}{
		{"admin-1", http.StatusOK},
		{"student-1", http.StatusForbidden},
		{"ghost", http.StatusForbidden},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
		req.Header.Set("X-User-ID", tc.userID)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != tc.want {
			t.Errorf("%s: expected %d, got %d", tc.userID, tc.want, w.Code)
		}
	}
}
