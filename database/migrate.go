package database

import (
	"log"

	"github.com/AjayKumbham/ctrl-plus-blog/internal/models"
)

func MigrateDatabase() error {
	log.Println("Running database migrations...")

	err := DB.AutoMigrate(
		&models.BlogPost{},
	)
	if err != nil {
		log.Printf("Error during migration: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}
