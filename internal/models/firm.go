package models

// Firm is the tenant root. Every other synced row carries its id, and the
// owner token on the firm scopes access to all of it. Ids are generated on
// the client and never change across devices.
type Firm struct {
	ID           string `gorm:"primaryKey;size:100" json:"id"`
	Country      string `json:"country"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	GSTNumber    string `json:"gstNumber"`
	Owner        string `gorm:"index" json:"owner"`
	OwnerName    string `json:"ownerName"`
	BusinessName string `json:"businessName"`
	BusinessLogo string `json:"businessLogo"`
	Address      string `json:"address"`
	SyncEnabled  bool   `gorm:"default:true" json:"syncEnabled"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

func (Firm) TableName() string { return "firms" }

func (f Firm) RecordID() string { return f.ID }
