// Command seed_players populates an empty draftboard database with the
// sample player pool and welcome messages used for local development.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/popacta/draftboard/go/internal/models"
	"github.com/popacta/draftboard/go/internal/player"
	"github.com/popacta/draftboard/go/internal/storage"
	"github.com/popacta/draftboard/go/internal/welcome"
)

var samplePlayers = []player.CreatePlayerRequest{
	{Name: "Josh Allen", Position: models.PositionQB, Team: "BUF", ProjectedPoints: 285.5, ByeWeek: 12},
	{Name: "Christian McCaffrey", Position: models.PositionRB, Team: "SF", ProjectedPoints: 245.8, ByeWeek: 9},
	{Name: "Cooper Kupp", Position: models.PositionWR, Team: "LAR", ProjectedPoints: 265.2, ByeWeek: 10},
	{Name: "Travis Kelce", Position: models.PositionTE, Team: "KC", ProjectedPoints: 195.4, ByeWeek: 10},
	{Name: "Justin Tucker", Position: models.PositionK, Team: "BAL", ProjectedPoints: 145.2, ByeWeek: 13},
	{Name: "San Francisco 49ers", Position: models.PositionDST, Team: "SF", ProjectedPoints: 125.8, ByeWeek: 9},
}

var sampleMessages = []string{
	"Welcome to the draft board!",
	"Get ready for the draft!",
	"May your picks be ever in your favor!",
}

func main() {
	dbPath := flag.String("db", "data/draftboard.db", "path to the sqlite database")
	flag.Parse()

	ctx := context.Background()

	mgr, err := storage.NewMigrationManager(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create migration manager: %v\n", err)
		os.Exit(1)
	}
	if err := mgr.Up(); err != nil {
		fmt.Fprintf(os.Stderr, "run migrations: %v\n", err)
		os.Exit(1)
	}
	if err := mgr.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "close migration manager: %v\n", err)
		os.Exit(1)
	}

	db, err := storage.Open(storage.DefaultConfig(*dbPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "open database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	playerRepo := player.NewRepository(db)
	existing, err := playerRepo.ListPlayers(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "list players: %v\n", err)
		os.Exit(1)
	}
	if len(existing) > 0 {
		fmt.Printf("database already has %d players, skipping seed\n", len(existing))
		return
	}

	inserted, err := playerRepo.InsertPlayers(ctx, samplePlayers, time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "insert players: %v\n", err)
		os.Exit(1)
	}

	welcomeRepo := welcome.NewRepository(db)
	for _, msg := range sampleMessages {
		if err := welcomeRepo.InsertMessage(ctx, msg); err != nil {
			fmt.Fprintf(os.Stderr, "insert welcome message: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Printf("seeded %d players and %d welcome messages\n", inserted, len(sampleMessages))
}
