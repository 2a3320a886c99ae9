package registry

// Wire field names per table, mirroring the json tags on internal/models.
// Anything a client sends outside these lists is dropped on push.

var firmFields = []string{
	"id", "country", "name", "phone", "gstNumber", "owner", "ownerName",
	"businessName", "businessLogo", "address", "syncEnabled",
	"createdAt", "updatedAt",
}

var categoryFields = []string{
	"id", "name", "firmId", "description", "createdAt", "updatedAt",
}

var unitFields = []string{
	"id", "firmId", "fullname", "shortname", "createdAt", "updatedAt",
}

var unitConversionFields = []string{
	"id", "firmId", "primaryUnitId", "secondaryUnitId", "conversionRate",
	"createdAt", "updatedAt",
}

var itemFields = []string{
	"id", "firmId", "name", "type", "hsnCode", "itemCode", "description",
	"imageUrl", "categoryId", "unit_conversionId",
	"salePrice", "salePriceTaxInclusive", "saleDiscount", "saleDiscountType",
	"wholesalePrice", "purchasePrice", "purchasePriceTaxInclusive",
	"taxRate", "primaryQuantity", "secondaryQuantity",
	"primaryOpeningQuantity", "secondaryOpeningQuantity", "pricePerUnit",
	"minStockLevel", "location", "openingStockDate",
	"enableBatchTracking", "batchNumber", "expiryDate", "mfgDate",
	"isActive", "allowNegativeStock", "isFavorite", "customFields",
	"createdAt", "updatedAt",
}

var groupFields = []string{
	"id", "firmId", "groupName", "description", "createdAt", "updatedAt",
}

var partyFields = []string{
	"id", "firmId", "name", "gstNumber", "phone", "email", "groupId",
	"gstType", "state", "billingAddress", "shippingAddress", "shippingEnabled",
	"openingBalance", "openingBalanceType", "currentBalance",
	"currentBalanceType", "openingBalanceDate",
	"creditLimitType", "creditLimitValue",
	"paymentReminderEnabled", "paymentReminderDays", "loyaltyPointsEnabled",
	"createdAt", "updatedAt",
}

var partyAdditionalFieldFields = []string{
	"id", "firmId", "partyId", "fieldKey", "fieldValue",
	"createdAt", "updatedAt",
}

var documentFields = []string{
	"id", "firmId", "documentType", "documentNumber", "documentDate",
	"documentTime", "partyId", "partyName", "phone", "partyType",
	"transactionType", "status", "ewaybill", "billingAddress", "billingName",
	"poDate", "poNumber", "stateOfSupply", "roundOff", "total",
	"transportName", "vehicleNumber", "deliveryDate", "deliveryLocation",
	"shipping", "packaging", "adjustment",
	"paymentType", "bankId", "chequeNumber", "chequeDate",
	"description", "image",
	"discountPercentage", "discountAmount", "taxPercentage", "taxAmount",
	"balanceAmount", "paidAmount",
	"createdAt", "updatedAt",
}

var documentItemFields = []string{
	"id", "firmId", "documentId", "itemId", "itemName",
	"primaryQuantity", "secondaryQuantity",
	"primaryUnitId", "primaryUnitName", "secondaryUnitId", "secondaryUnitName",
	"unit_conversionId", "conversionRate", "pricePerUnit", "amount",
	"mfgDate", "batchNo", "expDate",
	"taxType", "taxRate", "taxAmount", "categoryId", "categoryName",
	"itemCode", "hsnCode", "serialNo", "description", "modelNo", "mrp",
	"size", "discountPercent", "discountAmount",
	"createdAt", "updatedAt",
}

var documentChargeFields = []string{
	"id", "firmId", "documentId", "name", "amount", "createdAt", "updatedAt",
}

var documentTransportationFields = []string{
	"id", "firmId", "documentId", "type", "detail", "amount",
	"createdAt", "updatedAt",
}

var documentRelationshipFields = []string{
	"id", "firmId", "sourceDocumentId", "targetDocumentId",
	"relationshipType", "createdAt", "updatedAt",
}

var stockMovementFields = []string{
	"id", "firmId", "itemId", "documentId", "documentItemId", "movementType",
	"primaryQuantity", "primaryUnitId", "secondaryQuantity", "secondaryUnitId",
	"batchNumber", "expiryDate", "mfgDate", "notes",
	"createdAt", "updatedAt",
}

var bankAccountFields = []string{
	"id", "firmId", "displayName", "bankName", "accountNumber",
	"accountHolderName", "ifscCode", "upiId",
	"openingBalance", "currentBalance", "asOfDate",
	"printUpiQrOnInvoices", "printBankDetailsOnInvoices", "isActive", "notes",
	"createdAt", "updatedAt",
}

var bankTransactionFields = []string{
	"id", "firmId", "bankAccountId", "amount", "transactionType",
	"transactionDate", "description", "referenceNumber",
	"relatedEntityId", "relatedEntityType",
	"createdAt", "updatedAt",
}

var paymentFields = []string{
	"id", "firmId", "amount", "paymentType", "paymentDate", "referenceNumber",
	"partyId", "partyName", "description", "receiptNumber",
	"bankAccountId", "chequeNumber", "chequeDate", "imageUrl",
	"direction", "linkedDocumentId", "linkedDocumentType", "isReconciled",
	"createdAt", "updatedAt",
}
