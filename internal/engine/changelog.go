package engine

import (
	"syncloud/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// logChange appends one change-log row for a mutation. Fire-and-forget: a
// failure here is isolated in a savepoint and must never fail the enclosing
// reconciliation. Nothing reads these rows back yet; they exist so a future
// conflict-aware incremental pull has something to work from.
func (e *Engine) logChange(tx *gorm.DB, firmID, owner, table, op string) {
	entry := models.SyncLog{
		CreatedAt: e.now(),
		FirmID:    firmID,
		Owner:     owner,
		Table:     table,
		Operation: op,
	}
	err := tx.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&entry).Error
	})
	if err != nil {
		e.log.Warn("sync log write failed",
			zap.String("table", table),
			zap.String("operation", op),
			zap.String("firm_id", firmID),
			zap.Error(err),
		)
	}
}
