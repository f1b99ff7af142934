//go:build ignore

// ===========================================================================
// Seeds the demo school into the configured PostgreSQL database
// Run: go run scripts/seed/main.go
// ===========================================================================

package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"classapp-admin/internal/config"
	"classapp-admin/internal/database"
	"classapp-admin/internal/repositories"
	"classapp-admin/internal/seed"
	"classapp-admin/pkg/logger"
)

func main() {
	fmt.Println("Seeding demo data...")

	// Load config
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLog, err := logger.NewLogger(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLog.Sync()

	// Connect database
	db, err := database.NewConnection(&cfg.Database, zapLog)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to migrate: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	res, err := seed.Run(ctx, repositories.NewGormSet(db), time.Now().UTC(), zapLog)
	if err != nil {
		log.Fatalf("Seed failed: %v", err)
	}

	if res.Skipped {
		fmt.Println("Demo data already present, nothing to do")
		return
	}

	fmt.Printf("Seeded %d users, %d groups, %d channels, %d conversations, %d messages, %d labels, %d announcements, %d quick links\n",
		res.Users, res.Groups, res.Channels, res.Conversations, res.Messages, res.Labels, res.Announcements, res.QuickLinks)
	fmt.Printf("Login as admin / %s\n", seed.DemoPassword)
}
