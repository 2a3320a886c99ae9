package models

import "time"

// SharedFirm grants a non-owner principal read/write access to a firm's
// synced tables. The role string is informational only; any grant is
// sufficient for both directions of sync.
type SharedFirm struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	FirmID     string `gorm:"size:100;not null;index:idx_shared_firms_firm_principal,unique" json:"firmId"`
	SharedWith string `gorm:"size:100;not null;index:idx_shared_firms_firm_principal,unique;index" json:"sharedWith"`
	Role       string `gorm:"size:50" json:"role"`
}

func (SharedFirm) TableName() string { return "shared_firms" }
