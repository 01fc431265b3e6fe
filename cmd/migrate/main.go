package main

import (
	"poker_tracker/internal/config" // Custom import path (Config)
	"poker_tracker/internal/db"     // Custom import path (Database)
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration

	db.Migrate(cfg.DSN()) // Create tables and seed the starter roster
}
