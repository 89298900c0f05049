package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"go.uber.org/zap"

	"capitaluy-backend/internal/cache"
	"capitaluy-backend/internal/config"
	"capitaluy-backend/internal/logger"
	"capitaluy-backend/internal/repositories"
	"capitaluy-backend/internal/store"
	"capitaluy-backend/internal/timeutil"
)

func main() {
	yes := flag.Bool("yes", false, "skip the confirmation prompt")
	flag.Parse()

	cfg := config.Load()

	syncLogs, err := logger.Init(cfg)
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer syncLogs()

	fmt.Println("========================================")
	fmt.Println("   Reset site content to defaults")
	fmt.Println("========================================")
	fmt.Println()
	fmt.Printf("Store driver: %s\n", cfg.Store.Driver)
	fmt.Println("This will overwrite config, about, courses, prices and the contact banner.")
	fmt.Println("The admin account is kept.")
	fmt.Println()

	if !*yes {
		fmt.Print("Type 'yes' to confirm: ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm != "yes" {
			fmt.Println("Reset cancelled.")
			return
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s, err := store.Open(ctx, cfg)
	if err != nil {
		zap.S().Fatalf("[Reset] %v", err)
	}
	defer s.Close()

	docs := repositories.NewDocumentRepository(s, 0)
	if err := repositories.ResetToDefaults(ctx, docs, timeutil.NowStamp()); err != nil {
		zap.S().Fatalf("[Reset] %v", err)
	}

	if cfg.Cache.Enabled {
		if err := cache.Init(cfg.Cache.Addr, cfg.Cache.Password, cfg.Cache.DB); err == nil {
			cache.InvalidateAllDocuments(ctx)
			cache.Close()
		}
	}

	fmt.Println("Content reset complete.")
}
