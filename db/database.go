package db

import (
	"log"
	"os"
	"path/filepath"

	"comanda/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDatabase opens (creating if needed) the sqlite database named by
// COMANDA_DB and migrates the full schema.
func InitDatabase() {
	dbPath := os.Getenv("COMANDA_DB")
	if dbPath == "" {
		dbPath = "comanda.db"
	}

	dir := filepath.Dir(dbPath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatal("Failed to create database directory:", err)
		}
	}

	Connect(dbPath)
}

// Connect opens the given sqlite DSN and runs migrations. Tests call this
// directly with an in-memory DSN.
func Connect(dsn string) {
	var err error
	DB, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := DB.AutoMigrate(
		&models.User{}, &models.Category{}, &models.Subcategory{}, &models.Product{},
		&models.Order{}, &models.OrderLine{}, &models.Invoice{},
		&models.Route{}, &models.Delivery{}, &models.CustomerRoute{},
		&models.Profile{}, &models.Configuration{},
	); err != nil {
		log.Fatal("Failed to migrate schema:", err)
	}
}
