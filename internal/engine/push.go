package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"syncloud/internal/models"
	"syncloud/internal/registry"

	"gorm.io/gorm"
)

// PushRequest is one client batch for a single table.
type PushRequest struct {
	Table   string
	Owner   string
	Records []map[string]any
}

// RecordError describes a single record that could not be applied. It rides
// inside a successful push envelope; it is not a request-level failure.
type RecordError struct {
	ID    string `json:"id"`
	Table string `json:"table"`
	Error string `json:"error"`
}

// PushResult tallies what a reconciliation applied.
type PushResult struct {
	Created int
	Updated int
	Deleted int
	Errors  []RecordError
}

// Push reconciles one table against an incoming batch: rows missing from the
// batch (within the touched tenant scope) are deleted, the rest upserted by
// id. Everything runs in one transaction; a record that fails on its own is
// rolled back alone, reported in the result and does not stop its siblings.
func (e *Engine) Push(ctx context.Context, req PushRequest) (*PushResult, error) {
	if req.Table == "" || req.Owner == "" || len(req.Records) == 0 {
		return nil, fmt.Errorf("%w: 'table', 'owner' and 'records' are required", ErrInvalidRequest)
	}
	sch, ok := e.reg.Resolve(req.Table)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTable, req.Table)
	}

	res := &PushResult{}
	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		firmIDs, err := e.checkWriteAccess(tx, sch, req)
		if err != nil {
			return err
		}
		if err := e.reconcileDeletes(tx, sch, req, firmIDs, res); err != nil {
			return err
		}
		e.applyUpserts(tx, sch, req, firmIDs, res)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// checkWriteAccess validates the whole touched tenant set before any
// mutation. For the firms table every record must belong to the calling
// owner; for any other table every record must carry a firmId the caller
// can access. Returns the distinct firm ids referenced by the batch.
func (e *Engine) checkWriteAccess(tx *gorm.DB, sch registry.Schema, req PushRequest) ([]string, error) {
	if sch.Table == registry.TableFirms {
		for _, rec := range req.Records {
			owner, _ := rec["owner"].(string)
			if owner != req.Owner {
				return nil, fmt.Errorf("%w: firm records must belong to the calling owner", ErrForbidden)
			}
		}
		return nil, nil
	}

	seen := make(map[string]struct{})
	var firmIDs []string
	for _, rec := range req.Records {
		firmID, _ := rec["firmId"].(string)
		if firmID == "" {
			return nil, fmt.Errorf("%w: every record needs a 'firmId'", ErrInvalidRequest)
		}
		if _, dup := seen[firmID]; dup {
			continue
		}
		seen[firmID] = struct{}{}
		firmIDs = append(firmIDs, firmID)
	}
	for _, firmID := range firmIDs {
		ok, err := e.canAccess(tx, firmID, req.Owner)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: no access to firm %s", ErrForbidden, firmID)
		}
	}
	return firmIDs, nil
}

// reconcileDeletes removes every stored row, scoped to the tenants touched
// by this batch, whose id is absent from the incoming records. Deletions run
// before upserts so a row recreated under the same id in the same batch is
// never deleted after the fact.
func (e *Engine) reconcileDeletes(tx *gorm.DB, sch registry.Schema, req PushRequest, firmIDs []string, res *PushResult) error {
	scope := func(q *gorm.DB) *gorm.DB {
		if sch.Table == registry.TableFirms {
			return q.Where("owner = ?", req.Owner)
		}
		return q.Where("firm_id IN ?", firmIDs)
	}

	var existing []string
	if err := scope(tx.Model(sch.New())).Pluck("id", &existing).Error; err != nil {
		return err
	}
	incoming := make(map[string]struct{}, len(req.Records))
	for _, rec := range req.Records {
		if id, _ := rec["id"].(string); id != "" {
			incoming[id] = struct{}{}
		}
	}
	var stale []string
	for _, id := range existing {
		if _, keep := incoming[id]; !keep {
			stale = append(stale, id)
		}
	}
	if len(stale) == 0 {
		return nil
	}

	// Fetch first so each deletion can be attributed to its tenant.
	slice := sch.NewSlice()
	if err := scope(tx.Where("id IN ?", stale)).Find(slice).Error; err != nil {
		return err
	}
	if err := scope(tx.Where("id IN ?", stale)).Delete(sch.New()).Error; err != nil {
		return err
	}
	for _, row := range sch.Records(slice) {
		firmID := row.RecordID()
		if tr, ok := row.(registry.TenantRecord); ok {
			firmID = tr.TenantID()
		}
		e.logChange(tx, firmID, req.Owner, sch.Table, models.OpDelete)
		res.Deleted++
	}
	return nil
}

// applyUpserts walks the batch in order. Each record runs inside its own
// savepoint: a failure rolls that record back alone, lands in the envelope
// and leaves the rest of the batch to commit. Ids are client-generated, so a
// stored row found under an incoming id may belong to someone else entirely;
// such a row is left untouched and the record fails on its own.
func (e *Engine) applyUpserts(tx *gorm.DB, sch registry.Schema, req PushRequest, firmIDs []string, res *PushResult) {
	granted := make(map[string]struct{}, len(firmIDs))
	for _, firmID := range firmIDs {
		granted[firmID] = struct{}{}
	}

	for _, rec := range req.Records {
		id, _ := rec["id"].(string)
		if id == "" {
			res.Errors = append(res.Errors, RecordError{Table: sch.Table, Error: "missing id"})
			continue
		}
		fields := sch.Filter(rec)

		var created bool
		err := tx.Transaction(func(tx *gorm.DB) error {
			row := sch.New()
			err := tx.Where("id = ?", id).First(row).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				created = true
				if err := overlay(fields, row); err != nil {
					return err
				}
				return tx.Create(row).Error
			case err != nil:
				return err
			default:
				if err := checkStoredRow(row, req.Owner, granted); err != nil {
					return err
				}
				if err := overlay(fields, row); err != nil {
					return err
				}
				return tx.Save(row).Error
			}
		})
		if err != nil {
			res.Errors = append(res.Errors, RecordError{ID: id, Table: sch.Table, Error: err.Error()})
			continue
		}

		firmID, _ := fields["firmId"].(string)
		if sch.Table == registry.TableFirms {
			firmID = id
		}
		if created {
			res.Created++
			e.logChange(tx, firmID, req.Owner, sch.Table, models.OpCreate)
		} else {
			res.Updated++
			e.logChange(tx, firmID, req.Owner, sch.Table, models.OpUpdate)
		}
	}
}

// checkStoredRow guards the update path against client-generated id
// collisions. The batch-level gate only sees the firm ids the records claim;
// the row already stored under the same id may sit in a tenant the caller was
// never granted, or be a firm owned by a different principal. Overwriting
// either would hand the row to the caller.
func checkStoredRow(row registry.Record, owner string, granted map[string]struct{}) error {
	if firm, ok := row.(*models.Firm); ok {
		if firm.Owner != owner {
			return errors.New("id belongs to a firm owned by another account")
		}
		return nil
	}
	if tr, ok := row.(registry.TenantRecord); ok {
		if _, ok := granted[tr.TenantID()]; !ok {
			return errors.New("id belongs to a record in an inaccessible firm")
		}
	}
	return nil
}

// overlay writes the provided fields onto row, leaving absent fields
// untouched. Going through JSON keeps the transport's coercion rules and
// surfaces type mismatches as record failures.
func overlay(fields map[string]any, row registry.Record) error {
	buf, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	return json.Unmarshal(buf, row)
}
