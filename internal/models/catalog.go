package models

type Category struct {
	ID          string `gorm:"primaryKey;size:100" json:"id"`
	Name        string `json:"name"`
	FirmID      string `gorm:"index" json:"firmId"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

func (Category) TableName() string { return "categories" }

func (c Category) RecordID() string { return c.ID }
func (c Category) TenantID() string { return c.FirmID }

type Unit struct {
	ID        string `gorm:"primaryKey;size:100" json:"id"`
	FirmID    string `gorm:"index" json:"firmId"`
	Fullname  string `json:"fullname"`
	Shortname string `json:"shortname"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func (Unit) TableName() string { return "units" }

func (u Unit) RecordID() string { return u.ID }
func (u Unit) TenantID() string { return u.FirmID }

type UnitConversion struct {
	ID              string  `gorm:"primaryKey;size:100" json:"id"`
	FirmID          string  `gorm:"index" json:"firmId"`
	PrimaryUnitID   string  `json:"primaryUnitId"`
	SecondaryUnitID string  `json:"secondaryUnitId"`
	ConversionRate  float64 `json:"conversionRate"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

func (UnitConversion) TableName() string { return "unit_conversions" }

func (u UnitConversion) RecordID() string { return u.ID }
func (u UnitConversion) TenantID() string { return u.FirmID }

// Item is the widest synced row; type is 'PRODUCT' or 'SERVICE'.
type Item struct {
	ID     string `gorm:"primaryKey;size:100" json:"id"`
	FirmID string `gorm:"index" json:"firmId"`

	Name             string `json:"name"`
	Type             string `json:"type"`
	HSNCode          string `json:"hsnCode"`
	ItemCode         string `json:"itemCode"`
	Description      string `json:"description"`
	ImageURL         string `json:"imageUrl"`
	CategoryID       string `json:"categoryId"`
	UnitConversionID string `json:"unit_conversionId"`

	SalePrice             float64 `json:"salePrice"`
	SalePriceTaxInclusive bool    `json:"salePriceTaxInclusive"`
	SaleDiscount          float64 `json:"saleDiscount"`
	SaleDiscountType      string  `json:"saleDiscountType"`
	WholesalePrice        float64 `json:"wholesalePrice"`

	PurchasePrice             float64 `json:"purchasePrice"`
	PurchasePriceTaxInclusive bool    `json:"purchasePriceTaxInclusive"`

	TaxRate                  string  `json:"taxRate"`
	PrimaryQuantity          float64 `json:"primaryQuantity"`
	SecondaryQuantity        float64 `json:"secondaryQuantity"`
	PrimaryOpeningQuantity   float64 `json:"primaryOpeningQuantity"`
	SecondaryOpeningQuantity float64 `json:"secondaryOpeningQuantity"`
	PricePerUnit             float64 `json:"pricePerUnit"`
	MinStockLevel            float64 `json:"minStockLevel"`
	Location                 string  `json:"location"`
	OpeningStockDate         string  `json:"openingStockDate"`

	EnableBatchTracking bool   `json:"enableBatchTracking"`
	BatchNumber         string `json:"batchNumber"`
	ExpiryDate          string `json:"expiryDate"`
	MfgDate             string `json:"mfgDate"`

	IsActive           bool `gorm:"default:true" json:"isActive"`
	AllowNegativeStock bool `json:"allowNegativeStock"`
	IsFavorite         bool `json:"isFavorite"`

	CustomFields string `json:"customFields"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func (Item) TableName() string { return "items" }

func (i Item) RecordID() string { return i.ID }
func (i Item) TenantID() string { return i.FirmID }

type Group struct {
	ID          string `gorm:"primaryKey;size:100" json:"id"`
	FirmID      string `gorm:"index" json:"firmId"`
	GroupName   string `json:"groupName"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

func (Group) TableName() string { return "groups" }

func (g Group) RecordID() string { return g.ID }
func (g Group) TenantID() string { return g.FirmID }
