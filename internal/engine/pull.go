package engine

import (
	"context"
	"fmt"
	"time"

	"syncloud/internal/models"
	"syncloud/internal/registry"
)

// PullRequest asks for a scoped snapshot of one table.
type PullRequest struct {
	Table        string
	Owner        string
	FirmID       string
	UpdatedAfter string
}

// PullResult carries the full row projection of every matching record.
type PullResult struct {
	Table   string
	Records []registry.Record
}

// Pull returns the rows the caller may see. For the firms table that is the
// union of owned and shared firms; for every other table the rows of one
// accessible firm. An RFC3339 UpdatedAfter cursor narrows the snapshot to
// rows changed strictly after it, when the table tracks updatedAt.
func (e *Engine) Pull(ctx context.Context, req PullRequest) (*PullResult, error) {
	if req.Table == "" || req.Owner == "" {
		return nil, fmt.Errorf("%w: 'table' and 'owner' are required", ErrInvalidRequest)
	}
	sch, ok := e.reg.Resolve(req.Table)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTable, req.Table)
	}
	if req.UpdatedAfter != "" {
		if _, err := time.Parse(time.RFC3339, req.UpdatedAfter); err != nil {
			return nil, fmt.Errorf("%w: invalid 'updatedAfter' value", ErrInvalidRequest)
		}
	}

	db := e.db.WithContext(ctx)
	q := db.Model(sch.New())
	if sch.Table == registry.TableFirms {
		// Owned firms plus firms shared with the caller; a single query, so
		// a firm never shows up twice.
		shared := db.Model(&models.SharedFirm{}).
			Select("firm_id").
			Where("shared_with = ?", req.Owner)
		q = q.Where("owner = ? OR id IN (?)", req.Owner, shared)
	} else {
		if req.FirmID == "" {
			return nil, fmt.Errorf("%w: 'firmId' is required for table %s", ErrInvalidRequest, req.Table)
		}
		ok, err := e.canAccess(db, req.FirmID, req.Owner)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: no access to firm %s", ErrForbidden, req.FirmID)
		}
		q = q.Where("firm_id = ?", req.FirmID)
	}
	if req.UpdatedAfter != "" && sch.HasUpdatedAt {
		// updatedAt is stored as ISO-8601 text, so > compares chronologically.
		q = q.Where("updated_at > ?", req.UpdatedAfter)
	}

	slice := sch.NewSlice()
	if err := q.Find(slice).Error; err != nil {
		return nil, err
	}
	return &PullResult{Table: sch.Table, Records: sch.Records(slice)}, nil
}
