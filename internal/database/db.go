package database

import (
	"github.com/jobsterhq/jobster-api/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres connection and runs migrations. The process
// cannot serve anything without a store, so a failed connection is fatal.
func Connect(databaseURL string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	log.Info().Msg("database connection established")

	if err := db.AutoMigrate(&models.User{}, &models.Job{}); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}
	return db
}
