package database

import (
	"fmt"
	"time"

	"syncloud/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects to postgres, retrying while the database comes up.
func Open(dsn string, log *zap.Logger) (*gorm.DB, error) {
	const maxAttempts = 10

	var db *gorm.DB
	var err error
	for i := 1; i <= maxAttempts; i++ {
		log.Info("connecting to database", zap.Int("attempt", i), zap.Int("max_attempts", maxAttempts))

		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			log.Info("connected to database")
			return db, nil
		}

		log.Warn("database connection failed", zap.Error(err))
		time.Sleep(2 * time.Second)
	}
	return nil, fmt.Errorf("connect after %d attempts: %w", maxAttempts, err)
}

// Migrate creates or updates every table the sync engine touches.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Firm{},
		&models.Category{},
		&models.Unit{},
		&models.UnitConversion{},
		&models.Item{},
		&models.Group{},
		&models.Party{},
		&models.PartyAdditionalField{},
		&models.Document{},
		&models.DocumentItem{},
		&models.DocumentCharge{},
		&models.DocumentTransportation{},
		&models.DocumentRelationship{},
		&models.StockMovement{},
		&models.BankAccount{},
		&models.BankTransaction{},
		&models.Payment{},
		&models.SharedFirm{},
		&models.SyncLog{},
	)
}
