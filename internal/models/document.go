package models

// Document covers every business paper the app produces: sale/purchase
// invoices, orders, quotations and so on, discriminated by documentType.
type Document struct {
	ID     string `gorm:"primaryKey;size:100" json:"id"`
	FirmID string `gorm:"index" json:"firmId"`

	DocumentType   string `json:"documentType"`
	DocumentNumber string `json:"documentNumber"`
	DocumentDate   string `json:"documentDate"`
	DocumentTime   string `json:"documentTime"`

	PartyID   string `json:"partyId"`
	PartyName string `json:"partyName"`
	Phone     string `json:"phone"`
	PartyType string `json:"partyType"`

	TransactionType string `json:"transactionType"`
	Status          string `gorm:"default:draft" json:"status"`

	Ewaybill       string  `json:"ewaybill"`
	BillingAddress string  `json:"billingAddress"`
	BillingName    string  `json:"billingName"`
	PODate         string  `json:"poDate"`
	PONumber       string  `json:"poNumber"`
	StateOfSupply  string  `json:"stateOfSupply"`
	RoundOff       float64 `json:"roundOff"`
	Total          float64 `json:"total"`

	TransportName    string `json:"transportName"`
	VehicleNumber    string `json:"vehicleNumber"`
	DeliveryDate     string `json:"deliveryDate"`
	DeliveryLocation string `json:"deliveryLocation"`

	Shipping   float64 `json:"shipping"`
	Packaging  float64 `json:"packaging"`
	Adjustment float64 `json:"adjustment"`

	PaymentType  string `json:"paymentType"`
	BankID       string `json:"bankId"`
	ChequeNumber string `json:"chequeNumber"`
	ChequeDate   string `json:"chequeDate"`

	Description string `json:"description"`
	Image       string `json:"image"`

	DiscountPercentage float64 `json:"discountPercentage"`
	DiscountAmount     float64 `json:"discountAmount"`
	TaxPercentage      float64 `json:"taxPercentage"`
	TaxAmount          float64 `json:"taxAmount"`

	BalanceAmount float64 `json:"balanceAmount"`
	PaidAmount    float64 `json:"paidAmount"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func (Document) TableName() string { return "documents" }

func (d Document) RecordID() string { return d.ID }
func (d Document) TenantID() string { return d.FirmID }

type DocumentItem struct {
	ID         string `gorm:"primaryKey;size:100" json:"id"`
	FirmID     string `gorm:"index" json:"firmId"`
	DocumentID string `gorm:"index" json:"documentId"`
	ItemID     string `json:"itemId"`
	ItemName   string `json:"itemName"`

	PrimaryQuantity   float64 `json:"primaryQuantity"`
	SecondaryQuantity float64 `json:"secondaryQuantity"`

	PrimaryUnitID     string  `json:"primaryUnitId"`
	PrimaryUnitName   string  `json:"primaryUnitName"`
	SecondaryUnitID   string  `json:"secondaryUnitId"`
	SecondaryUnitName string  `json:"secondaryUnitName"`
	UnitConversionID  string  `json:"unit_conversionId"`
	ConversionRate    float64 `json:"conversionRate"`

	PricePerUnit float64 `json:"pricePerUnit"`
	Amount       float64 `json:"amount"`

	MfgDate string `json:"mfgDate"`
	BatchNo string `json:"batchNo"`
	ExpDate string `json:"expDate"`

	TaxType   string  `json:"taxType"`
	TaxRate   string  `json:"taxRate"`
	TaxAmount float64 `json:"taxAmount"`

	CategoryID   string `json:"categoryId"`
	CategoryName string `json:"categoryName"`

	ItemCode        string  `json:"itemCode"`
	HSNCode         string  `json:"hsnCode"`
	SerialNo        string  `json:"serialNo"`
	Description     string  `json:"description"`
	ModelNo         string  `json:"modelNo"`
	MRP             float64 `json:"mrp"`
	Size            string  `json:"size"`
	DiscountPercent float64 `json:"discountPercent"`
	DiscountAmount  float64 `json:"discountAmount"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func (DocumentItem) TableName() string { return "document_items" }

func (d DocumentItem) RecordID() string { return d.ID }
func (d DocumentItem) TenantID() string { return d.FirmID }

type DocumentCharge struct {
	ID         string  `gorm:"primaryKey;size:100" json:"id"`
	FirmID     string  `gorm:"index" json:"firmId"`
	DocumentID string  `json:"documentId"`
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

func (DocumentCharge) TableName() string { return "document_charges" }

func (d DocumentCharge) RecordID() string { return d.ID }
func (d DocumentCharge) TenantID() string { return d.FirmID }

type DocumentTransportation struct {
	ID         string  `gorm:"primaryKey;size:100" json:"id"`
	FirmID     string  `gorm:"index" json:"firmId"`
	DocumentID string  `json:"documentId"`
	Type       string  `json:"type"`
	Detail     string  `json:"detail"`
	Amount     float64 `json:"amount"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

func (DocumentTransportation) TableName() string { return "document_transportation" }

func (d DocumentTransportation) RecordID() string { return d.ID }
func (d DocumentTransportation) TenantID() string { return d.FirmID }

// DocumentRelationship links papers across a workflow, e.g. a quotation
// converted into an invoice.
type DocumentRelationship struct {
	ID               string `gorm:"primaryKey;size:100" json:"id"`
	FirmID           string `gorm:"index" json:"firmId"`
	SourceDocumentID string `json:"sourceDocumentId"`
	TargetDocumentID string `json:"targetDocumentId"`
	RelationshipType string `json:"relationshipType"`
	CreatedAt        string `json:"createdAt"`
	UpdatedAt        string `json:"updatedAt"`
}

func (DocumentRelationship) TableName() string { return "document_relationships" }

func (d DocumentRelationship) RecordID() string { return d.ID }
func (d DocumentRelationship) TenantID() string { return d.FirmID }
