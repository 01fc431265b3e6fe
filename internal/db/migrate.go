package db

import (
	"poker_tracker/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus"

	"gorm.io/driver/mysql" // MySQL driver for GORM
	"gorm.io/gorm"         // GORM ORM library
)

// Models returns every model managed by the schema, in migration order
func Models() []any {
	return []any{
		&domain.User{},
		&domain.LoginHistory{},
		&domain.Player{},
		&domain.PokerSession{},
		&domain.SessionPlayer{},
		&domain.PlayerResult{},
		&domain.Friendship{},
	}
}

// Migrate performs automatic migration for the database schema
func Migrate(dsn string) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{}) // Open a connection to the database
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Log fatal error if connection fails
	}
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	if err := db.AutoMigrate(Models()...); err != nil {
		logrus.Fatalf("migration failed: %v", err) // Log fatal error if migration fails
	}
	// Seed the leaderboard roster on a fresh database
	if err := SeedPlayers(db); err != nil {
		logrus.Fatalf("seeding failed: %v", err) // Log fatal error if seeding fails
	}
	logrus.Info("Migration completed.") // Log successful migration
}

// SeedPlayers inserts the starter leaderboard players when the table is empty
func SeedPlayers(db *gorm.DB) error {
	var count int64
	if err := db.Model(&domain.Player{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil // Already seeded
	}
	players := []domain.Player{
		{Username: "PokerPro", Score: 1500},
		{Username: "CardShark", Score: 1200},
		{Username: "RiverKing", Score: 1000},
		{Username: "BluffMaster", Score: 800},
		{Username: "AceHigh", Score: 750},
	}
	return db.Create(&players).Error
}
