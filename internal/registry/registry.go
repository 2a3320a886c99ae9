// Package registry maps wire table names to their entity schemas. The set of
// tables is fixed at process start; an unknown name is rejected, never
// silently ignored. Field sets are declared explicitly per table, so nothing
// about an entity is discovered at runtime.
package registry

import "syncloud/internal/models"

// TableFirms is the tenant-root table; it is the only synced table without a
// firmId column and gets special access rules on both push and pull.
const TableFirms = "firms"

// Record is implemented by every synced model.
type Record interface {
	RecordID() string
}

// TenantRecord is implemented by every firm-scoped model.
type TenantRecord interface {
	Record
	TenantID() string
}

// Schema describes one synced table: its declared wire field names, whether
// it carries the tenant key and the update timestamp, and typed constructors
// for single rows and row slices.
type Schema struct {
	Table        string
	HasFirmID    bool
	HasUpdatedAt bool

	// New returns a pointer to a zero row, suitable for gorm queries.
	New func() Record
	// NewSlice returns a pointer to an empty typed slice for Find.
	NewSlice func() any
	// Records converts a slice previously built by NewSlice back to rows.
	Records func(any) []Record

	fields map[string]struct{}
}

// KnownField reports whether name is part of the declared field set.
func (s Schema) KnownField(name string) bool {
	_, ok := s.fields[name]
	return ok
}

// Filter returns a copy of rec narrowed to the declared field set. Unknown
// fields are dropped, never stored and never a reason to reject.
func (s Schema) Filter(rec map[string]any) map[string]any {
	out := make(map[string]any, len(rec))
	for k, v := range rec {
		if _, ok := s.fields[k]; ok {
			out[k] = v
		}
	}
	return out
}

// Registry resolves table names to schemas.
type Registry struct {
	tables map[string]Schema
	order  []string
}

// Resolve looks up the schema for a wire table name.
func (r *Registry) Resolve(table string) (Schema, bool) {
	s, ok := r.tables[table]
	return s, ok
}

// Tables returns all registered table names in registration order.
func (r *Registry) Tables() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

func (r *Registry) add(s Schema) {
	r.tables[s.Table] = s
	r.order = append(r.order, s.Table)
}

func schemaFor[T Record, PT interface {
	Record
	*T
}](table string, hasFirmID bool, fields []string) Schema {
	set := make(map[string]struct{}, len(fields))
	hasUpdatedAt := false
	for _, f := range fields {
		set[f] = struct{}{}
		if f == "updatedAt" {
			hasUpdatedAt = true
		}
	}
	return Schema{
		Table:        table,
		HasFirmID:    hasFirmID,
		HasUpdatedAt: hasUpdatedAt,
		New:          func() Record { return PT(new(T)) },
		NewSlice:     func() any { return new([]T) },
		Records: func(v any) []Record {
			rows := *v.(*[]T)
			out := make([]Record, len(rows))
			for i := range rows {
				out[i] = rows[i]
			}
			return out
		},
		fields: set,
	}
}

// New builds the fixed table registry.
func New() *Registry {
	r := &Registry{tables: make(map[string]Schema)}

	r.add(schemaFor[models.Firm](TableFirms, false, firmFields))
	r.add(schemaFor[models.Category]("categories", true, categoryFields))
	r.add(schemaFor[models.Unit]("units", true, unitFields))
	r.add(schemaFor[models.UnitConversion]("unit_conversions", true, unitConversionFields))
	r.add(schemaFor[models.Item]("items", true, itemFields))
	r.add(schemaFor[models.Group]("groups", true, groupFields))
	r.add(schemaFor[models.Party]("parties", true, partyFields))
	r.add(schemaFor[models.PartyAdditionalField]("party_additional_fields", true, partyAdditionalFieldFields))
	r.add(schemaFor[models.Document]("documents", true, documentFields))
	r.add(schemaFor[models.DocumentItem]("document_items", true, documentItemFields))
	r.add(schemaFor[models.DocumentCharge]("document_charges", true, documentChargeFields))
	r.add(schemaFor[models.DocumentTransportation]("document_transportation", true, documentTransportationFields))
	r.add(schemaFor[models.DocumentRelationship]("document_relationships", true, documentRelationshipFields))
	r.add(schemaFor[models.StockMovement]("stock_movements", true, stockMovementFields))
	r.add(schemaFor[models.BankAccount]("bank_accounts", true, bankAccountFields))
	r.add(schemaFor[models.BankTransaction]("bank_transactions", true, bankTransactionFields))
	r.add(schemaFor[models.Payment]("payments", true, paymentFields))

	return r
}
