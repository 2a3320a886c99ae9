package models

type Party struct {
	ID     string `gorm:"primaryKey;size:100" json:"id"`
	FirmID string `gorm:"index" json:"firmId"`

	Name            string `json:"name"`
	GSTNumber       string `json:"gstNumber"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	GroupID         string `json:"groupId"`
	GSTType         string `json:"gstType"`
	State           string `json:"state"`
	BillingAddress  string `json:"billingAddress"`
	ShippingAddress string `json:"shippingAddress"`
	ShippingEnabled bool   `json:"shippingEnabled"`

	OpeningBalance     float64 `json:"openingBalance"`
	OpeningBalanceType string  `json:"openingBalanceType"`
	CurrentBalance     float64 `json:"currentBalance"`
	CurrentBalanceType string  `json:"currentBalanceType"`
	OpeningBalanceDate string  `json:"openingBalanceDate"`

	CreditLimitType  string  `gorm:"default:none" json:"creditLimitType"`
	CreditLimitValue float64 `json:"creditLimitValue"`

	PaymentReminderEnabled bool `json:"paymentReminderEnabled"`
	PaymentReminderDays    int  `json:"paymentReminderDays"`

	LoyaltyPointsEnabled bool `json:"loyaltyPointsEnabled"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func (Party) TableName() string { return "parties" }

func (p Party) RecordID() string { return p.ID }
func (p Party) TenantID() string { return p.FirmID }

type PartyAdditionalField struct {
	ID         string `gorm:"primaryKey;size:100" json:"id"`
	FirmID     string `gorm:"index" json:"firmId"`
	PartyID    string `json:"partyId"`
	FieldKey   string `json:"fieldKey"`
	FieldValue string `json:"fieldValue"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}

func (PartyAdditionalField) TableName() string { return "party_additional_fields" }

func (p PartyAdditionalField) RecordID() string { return p.ID }
func (p PartyAdditionalField) TenantID() string { return p.FirmID }
