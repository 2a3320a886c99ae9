package models

import "time"

// Change kinds recorded per mutation.
const (
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

// SyncLog is the append-only change log: one row per create/update/delete
// applied by a push. Nothing reads it back yet; Resolved is reserved for a
// future conflict-aware incremental pull.
type SyncLog struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time

	FirmID    string `gorm:"size:100;index"`
	Owner     string `gorm:"size:100"` // acting principal
	Table     string `gorm:"column:table_name;size:50;not null"`
	Operation string `gorm:"size:20;not null"` // create / update / delete
	Resolved  bool
}

func (SyncLog) TableName() string { return "sync_logs" }
