// Command reset clears stored zone progress for the configured backend and
// player so the next session starts from zone 1.
package main

import (
	"context"
	"log"

	"github.com/osse101/WheelOfFortune_Go/internal/bootstrap"
	"github.com/osse101/WheelOfFortune_Go/internal/config"
	"github.com/osse101/WheelOfFortune_Go/internal/repository"
)

func main() {
	// config.Load picks up .env itself
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.StoreBackend == config.StoreBackendMemory {
		log.Println("STORE_BACKEND is memory; nothing is persisted, nothing to reset")
		return
	}

	ctx := context.Background()
	storage, err := bootstrap.InitializeStorage(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open progress store: %v", err)
	}
	defer storage.Close()

	for _, key := range []string{repository.KeyCurrentZone, repository.KeyHighestZone} {
		if err := storage.Progress.Delete(ctx, key); err != nil {
			log.Fatalf("Failed to delete %s: %v", key, err)
		}
		log.Printf("Deleted %s for player %s", key, cfg.PlayerID)
	}

	log.Printf("✅ Progress reset complete (%s backend)", cfg.StoreBackend)
}
