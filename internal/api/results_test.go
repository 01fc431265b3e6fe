package api_test

import (
	"net/http"
	"strconv"
	"testing"

	"poker_tracker/internal/domain"

	"github.com/gin-gonic/gin"
)

func TestAddAndListResults(t *testing.T) {
	r, _ := setupRouter(t)
	_, cookie := registerUser(t, r, "alice")

	w := doRequest(t, r, http.MethodPost, "/api/players", gin.H{"username": "Bob"})
	if w.Code != http.StatusOK {
		t.Fatalf("create player = %d", w.Code)
	}
	w = doRequest(t, r, http.MethodPost, "/api/sessions", gin.H{"date": "2024-01-01", "buy_in_amount": 100.0}, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("create session = %d", w.Code)
	}
	w = doRequest(t, r, http.MethodPost, "/api/session/1/results", gin.H{"player_id": 1, "final_amount": 150.0})
	if w.Code != http.StatusOK {
		t.Fatalf("add result = %d: %s", w.Code, w.Body.String())
	}

	w = doRequest(t, r, http.MethodGet, "/api/session/1/results", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list results = %d", w.Code)
	}
	var results []map[string]any
	decodeBody(t, w, &results)
	if len(results) != 1 {
		t.Fatalf("result count = %d, want 1", len(results))
	}
	if results[0]["player_name"] != "Bob" {
		t.Errorf("player_name = %v, want Bob", results[0]["player_name"])
	}
	if results[0]["final_amount"] != 150.0 {
		t.Errorf("final_amount = %v, want 150", results[0]["final_amount"])
	}
}

func TestAddResultZeroFinalAmount(t *testing.T) {
	r, _ := setupRouter(t)
	_, cookie := registerUser(t, r, "alice")

	doRequest(t, r, http.MethodPost, "/api/players", gin.H{"username": "Bob"})
	doRequest(t, r, http.MethodPost, "/api/sessions", gin.H{"date": "2024-01-01", "buy_in_amount": 100.0}, cookie)

	// Busting out is a legitimate cash-out of zero
	w := doRequest(t, r, http.MethodPost, "/api/session/1/results", gin.H{"player_id": 1, "final_amount": 0.0})
	if w.Code != http.StatusOK {
		t.Errorf("add zero result = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
	}
}

// Re-submitting a result for the same player creates a second row.
func TestAddResultAllowsDuplicates(t *testing.T) {
	r, db := setupRouter(t)
	_, cookie := registerUser(t, r, "alice")

	doRequest(t, r, http.MethodPost, "/api/players", gin.H{"username": "Bob"})
	doRequest(t, r, http.MethodPost, "/api/sessions", gin.H{"date": "2024-01-01"}, cookie)

	for i := 0; i < 2; i++ {
		w := doRequest(t, r, http.MethodPost, "/api/session/1/results", gin.H{"player_id": 1, "final_amount": 150.0})
		if w.Code != http.StatusOK {
			t.Fatalf("add result #%d = %d", i+1, w.Code)
		}
	}
	var count int64
	if err := db.Model(&domain.PlayerResult{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count results: %v", err)
	}
	if count != 2 {
		t.Errorf("result rows = %d, want 2", count)
	}
}

func TestAddResultValidation(t *testing.T) {
	tests := []struct {
		name     string
		body     gin.H
		wantCode int
	}{
		{name: "missing player", body: gin.H{"final_amount": 150.0}, wantCode: http.StatusBadRequest},
		{name: "missing amount", body: gin.H{"player_id": 1}, wantCode: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := setupRouter(t)
			_, cookie := registerUser(t, r, "alice")
			doRequest(t, r, http.MethodPost, "/api/players", gin.H{"username": "Bob"})
			doRequest(t, r, http.MethodPost, "/api/sessions", gin.H{"date": "2024-01-01"}, cookie)

			w := doRequest(t, r, http.MethodPost, "/api/session/1/results", tt.body)
			if w.Code != tt.wantCode {
				t.Errorf("add result = %d, want %d", w.Code, tt.wantCode)
			}
		})
	}
}

// A negative session ID must be rejected outright, not coerced into an
// unsigned value that silently inserts rows.
func TestAddResultNegativeSessionID(t *testing.T) {
	r, db := setupRouter(t)
	doRequest(t, r, http.MethodPost, "/api/players", gin.H{"username": "Bob"})

	w := doRequest(t, r, http.MethodPost, "/api/session/-1/results", gin.H{"player_id": 1, "final_amount": 150.0})
	if w.Code != http.StatusNotFound {
		t.Errorf("add result = %d, want %d", w.Code, http.StatusNotFound)
	}
	var count int64
	db.Model(&domain.PlayerResult{}).Count(&count)
	if count != 0 {
		t.Errorf("result rows = %d, want 0", count)
	}

	w = doRequest(t, r, http.MethodGet, "/api/session/-1/results", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("list results = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestUserStatsNoSessions(t *testing.T) {
	r, _ := setupRouter(t)
	_, cookie := registerUser(t, r, "alice")

	w := doRequest(t, r, http.MethodGet, "/api/profile/stats/1", nil, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("stats = %d, want %d", w.Code, http.StatusOK)
	}
	var stats map[string]any
	decodeBody(t, w, &stats)
	if stats["total_sessions"] != 0.0 {
		t.Errorf("total_sessions = %v, want 0", stats["total_sessions"])
	}
	if stats["total_profit"] != 0.0 {
		t.Errorf("total_profit = %v, want 0", stats["total_profit"])
	}
	if stats["win_rate"] != 0.0 {
		t.Errorf("win_rate = %v, want 0", stats["win_rate"])
	}
}

func TestUserStatsNegativePlayerID(t *testing.T) {
	r, _ := setupRouter(t)
	_, cookie := registerUser(t, r, "alice")

	w := doRequest(t, r, http.MethodGet, "/api/profile/stats/-1", nil, cookie)
	if w.Code != http.StatusNotFound {
		t.Errorf("stats = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestUserStatsSingleWinningSession(t *testing.T) {
	r, _ := setupRouter(t)
	_, cookie := registerUser(t, r, "alice")

	doRequest(t, r, http.MethodPost, "/api/players", gin.H{"username": "Bob"})
	w := doRequest(t, r, http.MethodPost, "/api/sessions", gin.H{"date": "2024-01-01", "buy_in_amount": 100.0}, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("create session = %d", w.Code)
	}
	w = doRequest(t, r, http.MethodPost, "/api/session/1/results", gin.H{"player_id": 1, "final_amount": 150.0})
	if w.Code != http.StatusOK {
		t.Fatalf("add result = %d", w.Code)
	}

	w = doRequest(t, r, http.MethodGet, "/api/profile/stats/1", nil, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("stats = %d, want %d", w.Code, http.StatusOK)
	}
	var stats map[string]any
	decodeBody(t, w, &stats)
	if stats["total_sessions"] != 1.0 {
		t.Errorf("total_sessions = %v, want 1", stats["total_sessions"])
	}
	if stats["total_profit"] != 50.0 {
		t.Errorf("total_profit = %v, want 50", stats["total_profit"])
	}
	if stats["win_rate"] != 100.0 {
		t.Errorf("win_rate = %v, want 100", stats["win_rate"])
	}
	recent, _ := stats["recent_sessions"].([]any)
	if len(recent) != 1 {
		t.Fatalf("recent_sessions length = %d, want 1", len(recent))
	}
	entry, _ := recent[0].(map[string]any)
	if entry["profit_loss"] != 50.0 {
		t.Errorf("recent profit_loss = %v, want 50", entry["profit_loss"])
	}
}

func TestUserStatsMixedOutcomes(t *testing.T) {
	r, _ := setupRouter(t)
	_, cookie := registerUser(t, r, "alice")

	doRequest(t, r, http.MethodPost, "/api/players", gin.H{"username": "Bob"})
	// Three sessions: one win, one loss, one break-even
	outcomes := []struct {
		date  string
		buyIn float64
		final float64
	}{
		{"2024-01-01", 100, 250},
		{"2024-01-02", 100, 40},
		{"2024-01-03", 100, 100},
	}
	for i, o := range outcomes {
		w := doRequest(t, r, http.MethodPost, "/api/sessions",
			gin.H{"date": o.date, "buy_in_amount": o.buyIn}, cookie)
		if w.Code != http.StatusOK {
			t.Fatalf("create session #%d = %d", i+1, w.Code)
		}
		var created map[string]any
		decodeBody(t, w, &created)
		id := int(created["id"].(float64))
		w = doRequest(t, r, http.MethodPost,
			"/api/session/"+strconv.Itoa(id)+"/results", gin.H{"player_id": 1, "final_amount": o.final})
		if w.Code != http.StatusOK {
			t.Fatalf("add result #%d = %d", i+1, w.Code)
		}
	}

	w := doRequest(t, r, http.MethodGet, "/api/profile/stats/1", nil, cookie)
	var stats map[string]any
	decodeBody(t, w, &stats)
	if stats["total_sessions"] != 3.0 {
		t.Errorf("total_sessions = %v, want 3", stats["total_sessions"])
	}
	// +150 -60 +0
	if stats["total_profit"] != 90.0 {
		t.Errorf("total_profit = %v, want 90", stats["total_profit"])
	}
	// 1 winning session of 3, rounded to one decimal
	if stats["win_rate"] != 33.3 {
		t.Errorf("win_rate = %v, want 33.3", stats["win_rate"])
	}
}
