package storage

import "testing"

func TestMigrationsCreateSchema(t *testing.T) {
	db := OpenTest(t)

	for _, table := range []string{"players", "draft_settings", "draft_picks", "welcome_messages"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}

func TestMigrationsSeedDefaultSettings(t *testing.T) {
	db := OpenTest(t)

	var teams, rounds, current int
	var active bool
	err := db.QueryRow(
		"SELECT total_teams, rounds, current_pick, is_active FROM draft_settings WHERE id = 1").
		Scan(&teams, &rounds, &current, &active)
	if err != nil {
		t.Fatalf("settings row missing: %v", err)
	}
	if teams != 12 || rounds != 16 || current != 1 || active {
		t.Errorf("unexpected defaults: teams=%d rounds=%d current=%d active=%v",
			teams, rounds, current, active)
	}
}

func TestSettingsSingletonConstraint(t *testing.T) {
	db := OpenTest(t)

	_, err := db.Exec(
		"INSERT INTO draft_settings (id, total_teams, rounds, current_pick) VALUES (2, 12, 16, 1)")
	if err == nil {
		t.Fatal("expected the singleton check to reject a second settings row")
	}
}

func TestPickCascadeOnPlayerDelete(t *testing.T) {
	db := OpenTest(t)

	res, err := db.Exec(
		`INSERT INTO players (name, position, team, projected_points, bye_week, drafted_status, target_status, created_at)
		 VALUES ('A', 'RB', 'FA', 100, 5, 1, 'default', CURRENT_TIMESTAMP)`)
	if err != nil {
		t.Fatalf("failed to insert player: %v", err)
	}
	playerID, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("failed to read id: %v", err)
	}
	if _, err := db.Exec(
		"INSERT INTO draft_picks (player_id, pick_number, round_number, drafted_at) VALUES (?, 1, 1, CURRENT_TIMESTAMP)",
		playerID); err != nil {
		t.Fatalf("failed to insert pick: %v", err)
	}

	if _, err := db.Exec("DELETE FROM players WHERE id = ?", playerID); err != nil {
		t.Fatalf("failed to delete player: %v", err)
	}

	var picks int
	if err := db.QueryRow("SELECT COUNT(*) FROM draft_picks").Scan(&picks); err != nil {
		t.Fatalf("failed to count picks: %v", err)
	}
	if picks != 0 {
		t.Errorf("expected pick deleted with its player, got %d rows", picks)
	}
}

func TestUniquePickNumber(t *testing.T) {
	db := OpenTest(t)

	insert := `INSERT INTO players (name, position, team, projected_points, bye_week, drafted_status, target_status, created_at)
	 VALUES (?, 'RB', 'FA', 100, 5, 1, 'default', CURRENT_TIMESTAMP)`
	for _, name := range []string{"A", "B"} {
		if _, err := db.Exec(insert, name); err != nil {
			t.Fatalf("failed to insert player: %v", err)
		}
	}

	if _, err := db.Exec(
		"INSERT INTO draft_picks (player_id, pick_number, round_number, drafted_at) VALUES (1, 1, 1, CURRENT_TIMESTAMP)"); err != nil {
		t.Fatalf("failed to insert first pick: %v", err)
	}
	_, err := db.Exec(
		"INSERT INTO draft_picks (player_id, pick_number, round_number, drafted_at) VALUES (2, 1, 1, CURRENT_TIMESTAMP)")
	if err == nil {
		t.Fatal("expected duplicate pick_number to be rejected")
	}
}
