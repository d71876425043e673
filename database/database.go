package database

import (
	"os"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"animehub-backend/internal/store"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		logrus.Fatal("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.Fatal("Failed to connect to database: ", err)
	}

	DB = db

	if err := DB.AutoMigrate(&store.Record{}); err != nil {
		logrus.Fatal("AutoMigrate error: ", err)
	}

	logrus.Info("✅ Connected and migrated successfully")
}
