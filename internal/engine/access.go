package engine

import (
	"syncloud/internal/models"

	"gorm.io/gorm"
)

// canAccess reports whether owner may read or write data scoped to firmID:
// either the firm belongs to the principal, or any sharing grant links the
// two. The grant's role string is not consulted beyond its presence.
func (e *Engine) canAccess(tx *gorm.DB, firmID, owner string) (bool, error) {
	var n int64
	if err := tx.Model(&models.Firm{}).
		Where("id = ? AND owner = ?", firmID, owner).
		Count(&n).Error; err != nil {
		return false, err
	}
	if n > 0 {
		return true, nil
	}
	if err := tx.Model(&models.SharedFirm{}).
		Where("firm_id = ? AND shared_with = ?", firmID, owner).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
