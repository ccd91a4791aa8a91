package main

import (
	"log"

	"github.com/rohanvd/crease/config"
	_ "github.com/rohanvd/crease/docs"
	"github.com/rohanvd/crease/internal/auth"
	"github.com/rohanvd/crease/internal/match"
	"github.com/rohanvd/crease/internal/player"
	"github.com/rohanvd/crease/routes"
)

// @title Crease REST API
// @version 1.0
// @description Ball-by-ball cricket scoring service 🏏
// @host localhost:8088
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&auth.Scorer{},
		&player.Player{},
		&match.MatchRecord{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	r := routes.SetupRoutes()

	// Use port from loaded configuration
	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
