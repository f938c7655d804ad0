package main

import (
	"fmt"
	"log"

	"admindash/config"
	"admindash/database"
	"admindash/logging"
	"admindash/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.Setup(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logger.Sync()

	db, err := database.Open(cfg.StateDB)
	if err != nil {
		logger.Sugar().Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	names, err := migrations.Applied(db)
	if err != nil {
		logger.Sugar().Fatalf("Failed to list migrations: %v", err)
	}
	for _, name := range names {
		fmt.Println("applied:", name)
	}

	fmt.Println("Migrations completed successfully!")
}
