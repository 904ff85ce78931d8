package store

import (
	"gorm.io/gorm"

	"github.com/okbooks/posledger/internal/models"
)

// nextRunningNumber computes 1 + MAX(running_number) over committed
// invoices of the given fiscal year, starting at 1 for a fresh year.
//
// It must run inside the same transaction as the header insert: the
// read-max-then-insert sequence is only safe because the unique index on
// (fiscal_year, running_number) rejects the loser of any interleaving, and
// the whole allocation rolls back with the insert. There is deliberately
// no in-process lock here; correctness must hold across multiple processes
// sharing one store.
func nextRunningNumber(tx *gorm.DB, fiscalYear int) (int, error) {
	var next int
	err := tx.Model(&models.Invoice{}).
		Where("fiscal_year = ?", fiscalYear).
		Select("COALESCE(MAX(running_number), 0) + 1").
		Scan(&next).Error
	if err != nil {
		return 0, err
	}
	if next < 1 {
		next = 1
	}
	return next, nil
}
