package main

import (
	"database/sql"

	"github.com/jonboulle/clockwork"

	"github.com/popacta/draftboard/go/internal/draft"
	"github.com/popacta/draftboard/go/internal/importer"
	"github.com/popacta/draftboard/go/internal/player"
	"github.com/popacta/draftboard/go/internal/ranking"
	"github.com/popacta/draftboard/go/internal/welcome"
)

// Services holds the application layers behind the HTTP boundary.
type Services struct {
	Players  *player.App
	Draft    *draft.App
	Ranking  *ranking.App
	Importer *importer.App
	Welcome  *welcome.Repository
}

func setupServices(db *sql.DB) *Services {
	clock := clockwork.NewRealClock()
	guard := draft.NewGuard()

	playerRepo := player.NewRepository(db)
	draftRepo := draft.NewRepository(db)
	rankingRepo := ranking.NewRepository(db)
	welcomeRepo := welcome.NewRepository(db)

	return &Services{
		Players:  player.NewApp(playerRepo),
		Draft:    draft.NewApp(db, playerRepo, draftRepo, guard, clock),
		Ranking:  ranking.NewApp(rankingRepo),
		Importer: importer.NewApp(db, playerRepo, draftRepo, guard, clock),
		Welcome:  welcomeRepo,
	}
}
