package ranking

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/popacta/draftboard/go/internal/apperrors"
	"github.com/popacta/draftboard/go/internal/models"
	"github.com/popacta/draftboard/go/internal/player"
	"github.com/popacta/draftboard/go/internal/storage"
)

func setupTestApp(t *testing.T) (*App, *sql.DB) {
	t.Helper()
	db := storage.OpenTest(t)
	return NewApp(NewRepository(db)), db
}

func seedPool(t *testing.T, db *sql.DB, reqs []player.CreatePlayerRequest) map[string]int64 {
	t.Helper()
	ctx := context.Background()
	repo := player.NewRepository(db)
	if _, err := repo.InsertPlayers(ctx, reqs, time.Now()); err != nil {
		t.Fatalf("failed to seed players: %v", err)
	}
	players, err := repo.ListPlayers(ctx)
	if err != nil {
		t.Fatalf("failed to list players: %v", err)
	}
	byName := make(map[string]int64, len(players))
	for _, p := range players {
		byName[p.Name] = p.ID
	}
	return byName
}

func poolRequest(name string, pos models.Position, points float64) player.CreatePlayerRequest {
	return player.CreatePlayerRequest{
		Name:            name,
		Position:        pos,
		Team:            "FA",
		ProjectedPoints: points,
		ByeWeek:         7,
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestVorpDropAdjacentRanks(t *testing.T) {
	app, db := setupTestApp(t)
	ids := seedPool(t, db, []player.CreatePlayerRequest{
		poolRequest("RB One", models.PositionRB, 30),
		poolRequest("RB Two", models.PositionRB, 25),
		poolRequest("RB Three", models.PositionRB, 20),
		poolRequest("RB Four", models.PositionRB, 10),
	})

	drops, err := app.VorpDrop(context.Background(), 1)
	if err != nil {
		t.Fatalf("vorp drop failed: %v", err)
	}

	want := map[string]float64{"RB One": 5, "RB Two": 5, "RB Three": 10}
	if len(drops) != len(want) {
		t.Fatalf("expected %d entries, got %d: %v", len(want), len(drops), drops)
	}
	for name, wantDrop := range want {
		got, ok := drops[ids[name]]
		if !ok {
			t.Errorf("%s missing from result", name)
			continue
		}
		if !almostEqual(got, wantDrop) {
			t.Errorf("%s: expected drop %.1f, got %.1f", name, wantDrop, got)
		}
	}
	if _, ok := drops[ids["RB Four"]]; ok {
		t.Error("bottom-ranked player must be absent from the result")
	}
}

func TestVorpDropGroupsByPosition(t *testing.T) {
	app, db := setupTestApp(t)
	ids := seedPool(t, db, []player.CreatePlayerRequest{
		poolRequest("QB One", models.PositionQB, 300),
		poolRequest("QB Two", models.PositionQB, 280),
		poolRequest("WR One", models.PositionWR, 200),
		poolRequest("WR Two", models.PositionWR, 150),
		poolRequest("TE Solo", models.PositionTE, 120),
	})

	drops, err := app.VorpDrop(context.Background(), 1)
	if err != nil {
		t.Fatalf("vorp drop failed: %v", err)
	}

	if got := drops[ids["QB One"]]; !almostEqual(got, 20) {
		t.Errorf("QB One: expected 20, got %.1f", got)
	}
	if got := drops[ids["WR One"]]; !almostEqual(got, 50) {
		t.Errorf("WR One: expected 50, got %.1f", got)
	}
	// A lone player in a position group has no rank r+k to compare against.
	if _, ok := drops[ids["TE Solo"]]; ok {
		t.Error("single-player group must yield no entries")
	}
}

func TestVorpDropExcludesDrafted(t *testing.T) {
	app, db := setupTestApp(t)
	ids := seedPool(t, db, []player.CreatePlayerRequest{
		poolRequest("RB One", models.PositionRB, 30),
		poolRequest("RB Two", models.PositionRB, 25),
		poolRequest("RB Three", models.PositionRB, 20),
	})

	if _, err := db.Exec("UPDATE players SET drafted_status = 1 WHERE id = ?", ids["RB One"]); err != nil {
		t.Fatalf("failed to mark player drafted: %v", err)
	}

	drops, err := app.VorpDrop(context.Background(), 1)
	if err != nil {
		t.Fatalf("vorp drop failed: %v", err)
	}
	if _, ok := drops[ids["RB One"]]; ok {
		t.Error("drafted player must be excluded")
	}
	if got := drops[ids["RB Two"]]; !almostEqual(got, 5) {
		t.Errorf("RB Two: expected 5, got %.1f", got)
	}
}

func TestVorpDropTieBrokenByID(t *testing.T) {
	app, db := setupTestApp(t)
	ids := seedPool(t, db, []player.CreatePlayerRequest{
		poolRequest("RB First", models.PositionRB, 25),
		poolRequest("RB Second", models.PositionRB, 25),
		poolRequest("RB Third", models.PositionRB, 10),
	})

	drops, err := app.VorpDrop(context.Background(), 1)
	if err != nil {
		t.Fatalf("vorp drop failed: %v", err)
	}
	// Equal points rank by lowest id, so the first insert sits at rank 1.
	if got := drops[ids["RB First"]]; !almostEqual(got, 0) {
		t.Errorf("RB First: expected 0, got %.1f", got)
	}
	if got := drops[ids["RB Second"]]; !almostEqual(got, 15) {
		t.Errorf("RB Second: expected 15, got %.1f", got)
	}
}

func TestVorpDropLargerWindow(t *testing.T) {
	app, db := setupTestApp(t)
	ids := seedPool(t, db, []player.CreatePlayerRequest{
		poolRequest("RB One", models.PositionRB, 30),
		poolRequest("RB Two", models.PositionRB, 25),
		poolRequest("RB Three", models.PositionRB, 20),
		poolRequest("RB Four", models.PositionRB, 10),
	})

	drops, err := app.VorpDrop(context.Background(), 2)
	if err != nil {
		t.Fatalf("vorp drop failed: %v", err)
	}
	if len(drops) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(drops))
	}
	if got := drops[ids["RB One"]]; !almostEqual(got, 10) {
		t.Errorf("RB One: expected 10, got %.1f", got)
	}
	if got := drops[ids["RB Two"]]; !almostEqual(got, 15) {
		t.Errorf("RB Two: expected 15, got %.1f", got)
	}
}

func TestVorpDropValidatesK(t *testing.T) {
	app, _ := setupTestApp(t)

	for _, k := range []int{0, -3} {
		_, err := app.VorpDrop(context.Background(), k)
		var vErr *apperrors.ValidationError
		if !errors.As(err, &vErr) || vErr.Field != "k" {
			t.Errorf("k=%d: expected ValidationError on k, got %v", k, err)
		}
	}
}

func TestVorpDropEmptyPool(t *testing.T) {
	app, _ := setupTestApp(t)

	drops, err := app.VorpDrop(context.Background(), 3)
	if err != nil {
		t.Fatalf("vorp drop failed: %v", err)
	}
	if len(drops) != 0 {
		t.Errorf("expected empty result, got %v", drops)
	}
}

func TestRecentPicksOrderAndLimit(t *testing.T) {
	app, db := setupTestApp(t)
	ids := seedPool(t, db, []player.CreatePlayerRequest{
		poolRequest("RB One", models.PositionRB, 30),
		poolRequest("RB Two", models.PositionRB, 25),
		poolRequest("RB Three", models.PositionRB, 20),
	})

	ctx := context.Background()
	order := []string{"RB Two", "RB Three", "RB One"}
	for i, name := range order {
		_, err := db.Exec(
			"INSERT INTO draft_picks (player_id, pick_number, round_number, drafted_at) VALUES (?, ?, 1, ?)",
			ids[name], i+1, time.Now())
		if err != nil {
			t.Fatalf("failed to insert pick: %v", err)
		}
	}

	picks, err := app.RecentPicks(ctx, 2)
	if err != nil {
		t.Fatalf("recent picks failed: %v", err)
	}
	if len(picks) != 2 {
		t.Fatalf("expected 2 picks, got %d", len(picks))
	}
	if picks[0].PlayerName != "RB One" || picks[0].PickNumber != 3 {
		t.Errorf("expected RB One at pick 3 first, got %s at %d", picks[0].PlayerName, picks[0].PickNumber)
	}
	if picks[1].PlayerName != "RB Three" || picks[1].PickNumber != 2 {
		t.Errorf("expected RB Three at pick 2 second, got %s at %d", picks[1].PlayerName, picks[1].PickNumber)
	}
}

func TestRecentPicksValidatesLimit(t *testing.T) {
	app, _ := setupTestApp(t)

	_, err := app.RecentPicks(context.Background(), 0)
	var vErr *apperrors.ValidationError
	if !errors.As(err, &vErr) || vErr.Field != "limit" {
		t.Fatalf("expected ValidationError on limit, got %v", err)
	}
}

func TestRecentPicksEmptyLedger(t *testing.T) {
	app, _ := setupTestApp(t)

	picks, err := app.RecentPicks(context.Background(), 10)
	if err != nil {
		t.Fatalf("recent picks failed: %v", err)
	}
	if len(picks) != 0 {
		t.Errorf("expected no picks, got %d", len(picks))
	}
}
