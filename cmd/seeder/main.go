package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/swiss-tournament/internal/config"
	"github.com/mauv0809/swiss-tournament/internal/database"
	"github.com/mauv0809/swiss-tournament/internal/metrics"
	"github.com/mauv0809/swiss-tournament/internal/pubsub"
	"github.com/mauv0809/swiss-tournament/internal/tournament"
)

const (
	numPlayers = 16
	numRounds  = 4
	// one in drawOdds matches ends in a draw
	drawOdds = 6
)

func main() {
	log.Info("Starting database seeder...")
	cfg := config.Load()

	db, teardown, err := database.InitDB(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer teardown()

	// Seeded events are not worth announcing.
	svc := tournament.New(tournament.NewStore(db), metrics.NewMock(), pubsub.NewDisabled())
	ctx := context.Background()

	if err := svc.DeletePlayers(ctx); err != nil {
		log.Fatalf("Failed to clear players: %s", err)
	}

	for i := 1; i <= numPlayers; i++ {
		if _, err := svc.RegisterPlayer(ctx, fmt.Sprintf("Seeder Player %02d", i)); err != nil {
			log.Fatalf("Failed to register player %d: %s", i, err)
		}
	}
	log.Info("Registered players", "count", numPlayers)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	startTime := time.Now()

	for round := 1; round <= numRounds; round++ {
		pairs, err := svc.SwissPairings(ctx)
		if err != nil {
			log.Fatalf("Failed to pair round %d: %s", round, err)
		}

		for _, pair := range pairs {
			winner, loser := pair.ID1, pair.ID2
			if rng.Intn(2) == 0 {
				winner, loser = loser, winner
			}
			outcome := tournament.OutcomeWinLoss
			if rng.Intn(drawOdds) == 0 {
				outcome = tournament.OutcomeDraw
			}
			if _, err := svc.ReportMatch(ctx, winner, loser, outcome); err != nil {
				log.Fatalf("Failed to report match in round %d: %s", round, err)
			}
		}
		log.Info("Played round", "round", round, "matches", len(pairs))
	}

	standings, err := svc.Standings(ctx)
	if err != nil {
		log.Fatalf("Failed to read standings: %s", err)
	}
	log.Info("Seeding complete", "duration", time.Since(startTime), "leader", standings[0].Name, "wins", standings[0].Wins)
}
