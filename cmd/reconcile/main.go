package main

import (
	"context"
	"flag"
	"log"
	"time"

	"matchmaker-be/internal/bootstrap"
	"matchmaker-be/internal/config"
	"matchmaker-be/pkg/database"
)

// reconcile creates the matches that a crash between a swipe insert and its
// evaluation left behind.
func main() {
	limit := flag.Int("limit", 500, "maximum number of pairs to resolve in one run")
	timeout := flag.Duration("timeout", 5*time.Minute, "overall run timeout")
	flag.Parse()

	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	// new_match pushes go through Redis to whichever instance holds the sockets.
	if err := container.DeliveryService.Consume(ctx); err != nil {
		log.Fatalf("Failed to start delivery consumer: %v", err)
	}

	matches, err := container.MatchDetector.Reconcile(ctx, *limit)
	if err != nil {
		log.Fatalf("Reconcile failed: %v", err)
	}

	log.Printf("✅ Reconcile finished: %d matches resolved", len(matches))
}
