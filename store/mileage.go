package store

import (
	"fmt"

	"github.com/jinzhu/gorm"

	"github.com/jikgwan/companion-api/schema"
)

// CreditMileage records a ledger entry and adds its points to the user's
// balance. The ledger is unique per request and user, so replaying a credit
// for the same request returns ErrConflict and leaves the balance untouched.
func (s *MatchingStore) CreditMileage(entry *schema.MileageEntry) error {
	if entry.Points <= 0 {
		return fmt.Errorf("mileage credit must be positive, got %d", entry.Points)
	}

	return s.atomic(func(tx *gorm.DB) error {
		if err := tx.Create(entry).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrConflict
			}
			return err
		}

		result := tx.Model(&schema.User{}).
			Where("id = ?", entry.UserID).
			UpdateColumn("mileage_points", gorm.Expr("mileage_points + ?", entry.Points))
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return ErrNotFound
		}

		return nil
	})
}
