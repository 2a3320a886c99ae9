package models

type StockMovement struct {
	ID             string `gorm:"primaryKey;size:100" json:"id"`
	FirmID         string `gorm:"index" json:"firmId"`
	ItemID         string `json:"itemId"`
	DocumentID     string `json:"documentId"`
	DocumentItemID string `json:"documentItemId"`

	MovementType string `json:"movementType"` // in / out / adjustment / conversion

	PrimaryQuantity float64 `json:"primaryQuantity"`
	PrimaryUnitID   string  `json:"primaryUnitId"`

	SecondaryQuantity float64 `json:"secondaryQuantity"`
	SecondaryUnitID   string  `json:"secondaryUnitId"`

	BatchNumber string `json:"batchNumber"`
	ExpiryDate  string `json:"expiryDate"`
	MfgDate     string `json:"mfgDate"`
	Notes       string `json:"notes"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func (StockMovement) TableName() string { return "stock_movements" }

func (s StockMovement) RecordID() string { return s.ID }
func (s StockMovement) TenantID() string { return s.FirmID }

type BankAccount struct {
	ID     string `gorm:"primaryKey;size:100" json:"id"`
	FirmID string `gorm:"index" json:"firmId"`

	DisplayName       string `json:"displayName"`
	BankName          string `json:"bankName"`
	AccountNumber     string `json:"accountNumber"`
	AccountHolderName string `json:"accountHolderName"`
	IFSCCode          string `json:"ifscCode"`
	UPIID             string `json:"upiId"`

	OpeningBalance float64 `json:"openingBalance"`
	CurrentBalance float64 `json:"currentBalance"`
	AsOfDate       string  `json:"asOfDate"`

	PrintUPIQROnInvoices       bool `json:"printUpiQrOnInvoices"`
	PrintBankDetailsOnInvoices bool `json:"printBankDetailsOnInvoices"`
	IsActive                   bool `gorm:"default:true" json:"isActive"`

	Notes     string `json:"notes"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func (BankAccount) TableName() string { return "bank_accounts" }

func (b BankAccount) RecordID() string { return b.ID }
func (b BankAccount) TenantID() string { return b.FirmID }

type BankTransaction struct {
	ID            string  `gorm:"primaryKey;size:100" json:"id"`
	FirmID        string  `gorm:"index" json:"firmId"`
	BankAccountID string  `json:"bankAccountId"`
	Amount        float64 `json:"amount"`

	TransactionType string `json:"transactionType"` // deposit / withdrawal / ...
	TransactionDate string `json:"transactionDate"`
	Description     string `json:"description"`

	ReferenceNumber   string `json:"referenceNumber"`
	RelatedEntityID   string `json:"relatedEntityId"`
	RelatedEntityType string `json:"relatedEntityType"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func (BankTransaction) TableName() string { return "bank_transactions" }

func (b BankTransaction) RecordID() string { return b.ID }
func (b BankTransaction) TenantID() string { return b.FirmID }

type Payment struct {
	ID     string `gorm:"primaryKey;size:100" json:"id"`
	FirmID string `gorm:"index" json:"firmId"`

	Amount          float64 `json:"amount"`
	PaymentType     string  `json:"paymentType"` // cash / cheque / bank
	PaymentDate     string  `json:"paymentDate"`
	ReferenceNumber string  `json:"referenceNumber"`

	PartyID   string `json:"partyId"`
	PartyName string `json:"partyName"`

	Description   string `json:"description"`
	ReceiptNumber string `json:"receiptNumber"`

	BankAccountID string `json:"bankAccountId"`
	ChequeNumber  string `json:"chequeNumber"`
	ChequeDate    string `json:"chequeDate"`

	ImageURL string `json:"imageUrl"`

	Direction          string `json:"direction"` // in / out
	LinkedDocumentID   string `json:"linkedDocumentId"`
	LinkedDocumentType string `json:"linkedDocumentType"`

	IsReconciled bool `json:"isReconciled"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func (Payment) TableName() string { return "payments" }

func (p Payment) RecordID() string { return p.ID }
func (p Payment) TenantID() string { return p.FirmID }
