package engine

import (
	"context"
	"errors"
	"fmt"

	"syncloud/internal/models"
	"syncloud/internal/registry"

	"gorm.io/gorm"
)

// ownedFirm loads a firm and insists the caller owns it.
func (e *Engine) ownedFirm(tx *gorm.DB, firmID, owner string) (*models.Firm, error) {
	var firm models.Firm
	if err := tx.Where("id = ?", firmID).First(&firm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: firm %s", ErrNotFound, firmID)
		}
		return nil, err
	}
	if firm.Owner != owner {
		return nil, fmt.Errorf("%w: only the firm owner may do this", ErrForbidden)
	}
	return &firm, nil
}

// ToggleSync flips the firm's sync_enabled flag and returns the new value.
// Owner only.
func (e *Engine) ToggleSync(ctx context.Context, firmID, owner string) (bool, error) {
	if firmID == "" || owner == "" {
		return false, fmt.Errorf("%w: 'firmId' and 'owner' are required", ErrInvalidRequest)
	}
	var enabled bool
	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		firm, err := e.ownedFirm(tx, firmID, owner)
		if err != nil {
			return err
		}
		enabled = !firm.SyncEnabled
		return tx.Model(firm).Update("sync_enabled", enabled).Error
	})
	if err != nil {
		return false, err
	}
	return enabled, nil
}

// DeleteFirm removes a firm and everything scoped to it in one transaction:
// sharing grants first, then every registered tenant table, then the firm
// row itself. Owner only.
func (e *Engine) DeleteFirm(ctx context.Context, firmID, owner string) error {
	if firmID == "" || owner == "" {
		return fmt.Errorf("%w: 'firmId' and 'owner' are required", ErrInvalidRequest)
	}
	return e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		firm, err := e.ownedFirm(tx, firmID, owner)
		if err != nil {
			return err
		}
		if err := tx.Where("firm_id = ?", firmID).Delete(&models.SharedFirm{}).Error; err != nil {
			return err
		}
		for _, name := range e.reg.Tables() {
			sch, _ := e.reg.Resolve(name)
			if !sch.HasFirmID {
				continue
			}
			if err := tx.Where("firm_id = ?", firmID).Delete(sch.New()).Error; err != nil {
				return err
			}
		}
		if err := tx.Delete(firm).Error; err != nil {
			return err
		}
		e.logChange(tx, firmID, owner, registry.TableFirms, models.OpDelete)
		return nil
	})
}

// ShareFirm grants sharedWith read/write access to the firm's synced data.
// One grant per firm and principal; sharing again updates the role in place.
func (e *Engine) ShareFirm(ctx context.Context, firmID, owner, sharedWith, role string) error {
	if firmID == "" || owner == "" || sharedWith == "" {
		return fmt.Errorf("%w: 'firmId', 'owner' and 'sharedWith' are required", ErrInvalidRequest)
	}
	if sharedWith == owner {
		return fmt.Errorf("%w: cannot share a firm with its owner", ErrInvalidRequest)
	}
	return e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := e.ownedFirm(tx, firmID, owner); err != nil {
			return err
		}
		var grant models.SharedFirm
		err := tx.Where("firm_id = ? AND shared_with = ?", firmID, sharedWith).First(&grant).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			grant = models.SharedFirm{FirmID: firmID, SharedWith: sharedWith, Role: role}
			return tx.Create(&grant).Error
		case err != nil:
			return err
		default:
			return tx.Model(&grant).Update("role", role).Error
		}
	})
}

// RevokeShare removes a grant. ErrNotFound when none exists.
func (e *Engine) RevokeShare(ctx context.Context, firmID, owner, sharedWith string) error {
	if firmID == "" || owner == "" || sharedWith == "" {
		return fmt.Errorf("%w: 'firmId', 'owner' and 'sharedWith' are required", ErrInvalidRequest)
	}
	return e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := e.ownedFirm(tx, firmID, owner); err != nil {
			return err
		}
		res := tx.Where("firm_id = ? AND shared_with = ?", firmID, sharedWith).Delete(&models.SharedFirm{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: no grant for %s on firm %s", ErrNotFound, sharedWith, firmID)
		}
		return nil
	})
}
