package engine

import (
	"fmt"
	"testing"

	"syncloud/internal/database"
	"syncloud/internal/models"
	"syncloud/internal/registry"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named shared in-memory database, so every pooled connection sees the
	// same data within one test.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func newTestEngine(t *testing.T) (*Engine, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	e := New(Config{DB: db, Registry: registry.New()})
	return e, db
}

func seedFirm(t *testing.T, db *gorm.DB, id, owner string) {
	t.Helper()
	firm := models.Firm{
		ID:          id,
		Name:        "firm " + id,
		Owner:       owner,
		SyncEnabled: true,
		CreatedAt:   "2025-01-01T00:00:00Z",
		UpdatedAt:   "2025-01-01T00:00:00Z",
	}
	require.NoError(t, db.Create(&firm).Error)
}

func seedGrant(t *testing.T, db *gorm.DB, firmID, sharedWith, role string) {
	t.Helper()
	grant := models.SharedFirm{FirmID: firmID, SharedWith: sharedWith, Role: role}
	require.NoError(t, db.Create(&grant).Error)
}

func categoryRecord(id, firmID, name string) map[string]any {
	return map[string]any{
		"id":        id,
		"firmId":    firmID,
		"name":      name,
		"createdAt": "2025-01-01T00:00:00Z",
		"updatedAt": "2025-01-01T00:00:00Z",
	}
}
