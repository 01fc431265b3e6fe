package api_test

import (
	"net/http"
	"strconv"
	"testing"

	appdb "poker_tracker/internal/db"
	"poker_tracker/internal/domain"

	"github.com/gin-gonic/gin"
)

func TestLeaderboardSeededOrder(t *testing.T) {
	r, db := setupRouter(t)
	if err := appdb.SeedPlayers(db); err != nil {
		t.Fatalf("failed to seed players: %v", err)
	}

	w := doRequest(t, r, http.MethodGet, "/api/leaderboard", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("leaderboard = %d, want %d", w.Code, http.StatusOK)
	}
	var players []map[string]any
	decodeBody(t, w, &players)
	wantScores := []float64{1500, 1200, 1000, 800, 750}
	if len(players) != len(wantScores) {
		t.Fatalf("player count = %d, want %d", len(players), len(wantScores))
	}
	for i, p := range players {
		if p["score"] != wantScores[i] {
			t.Errorf("players[%d].score = %v, want %v", i, p["score"], wantScores[i])
		}
	}
}

func TestLeaderboardCappedAtTen(t *testing.T) {
	r, db := setupRouter(t)
	for i := 0; i < 15; i++ {
		player := domain.Player{Username: "player" + strconv.Itoa(i), Score: i * 100}
		if err := db.Create(&player).Error; err != nil {
			t.Fatalf("failed to create player: %v", err)
		}
	}

	w := doRequest(t, r, http.MethodGet, "/api/leaderboard", nil)
	var players []map[string]any
	decodeBody(t, w, &players)
	if len(players) != 10 {
		t.Fatalf("player count = %d, want 10", len(players))
	}
	// Highest score first
	if players[0]["score"] != 1400.0 {
		t.Errorf("top score = %v, want 1400", players[0]["score"])
	}
}

func TestCreateAndListPlayers(t *testing.T) {
	r, _ := setupRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/players", gin.H{"username": "Bob", "avatar": "bob.png"})
	if w.Code != http.StatusOK {
		t.Fatalf("create player = %d: %s", w.Code, w.Body.String())
	}
	var created map[string]any
	decodeBody(t, w, &created)
	if created["username"] != "Bob" || created["score"] != 0.0 {
		t.Errorf("created player = %v, want Bob with score 0", created)
	}

	// Duplicate player name is rejected
	w = doRequest(t, r, http.MethodPost, "/api/players", gin.H{"username": "Bob"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("duplicate player = %d, want %d", w.Code, http.StatusBadRequest)
	}

	w = doRequest(t, r, http.MethodGet, "/api/players", nil)
	var players []map[string]any
	decodeBody(t, w, &players)
	if len(players) != 1 {
		t.Errorf("player count = %d, want 1", len(players))
	}
}

func TestCreatePlayerValidation(t *testing.T) {
	r, _ := setupRouter(t)
	w := doRequest(t, r, http.MethodPost, "/api/players", gin.H{"avatar": "x.png"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("create player without username = %d, want %d", w.Code, http.StatusBadRequest)
	}
}
