package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	appdb "poker_tracker/internal/db"
	"poker_tracker/internal/router"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testJWTSecret = "test-secret"

// setupRouter builds the full API against a fresh in-memory database.
// Redis is disabled (nil client), so cached reads always hit the DB.
func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(appdb.Models()...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return router.New(db, nil, testJWTSecret, t.TempDir()), db
}

// doRequest performs a JSON request against the router
func doRequest(t *testing.T, r http.Handler, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals a recorded JSON response into dest
func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dest any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dest); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}

// registerUser creates an account and returns its body plus the session cookie
func registerUser(t *testing.T, r http.Handler, username string) (map[string]any, *http.Cookie) {
	t.Helper()
	w := doRequest(t, r, http.MethodPost, "/api/auth/register",
		gin.H{"username": username, "password": "secret123"})
	if w.Code != http.StatusCreated {
		t.Fatalf("register %q = %d, want %d: %s", username, w.Code, http.StatusCreated, w.Body.String())
	}
	var user map[string]any
	decodeBody(t, w, &user)
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "token" && ck.Value != "" {
			return user, ck
		}
	}
	t.Fatal("register response did not set a session cookie")
	return nil, nil
}
