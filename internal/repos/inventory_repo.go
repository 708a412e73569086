package repos

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"lifelink/internal/domain"
)

type InventoryRepo struct{ q queryer }

func NewInventoryRepo(db *sqlx.DB) *InventoryRepo { return &InventoryRepo{q: db} }

// ListAll returns every blood type with derived percent and status filled in.
func (r *InventoryRepo) ListAll() ([]domain.InventoryItem, error) {
	rows := []domain.InventoryItem{}
	if err := sqlx.Select(r.q, &rows, `
		SELECT type, units, total
		FROM inventory
		ORDER BY rowid
	`); err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Recompute()
	}
	return rows, nil
}

// ByType returns one item. A missing blood type is domain.ErrNotFound.
func (r *InventoryRepo) ByType(bloodType string) (domain.InventoryItem, error) {
	var it domain.InventoryItem
	err := sqlx.Get(r.q, &it, `SELECT type, units, total FROM inventory WHERE type = ?`, bloodType)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.InventoryItem{}, fmt.Errorf("blood type %s: %w", bloodType, domain.ErrNotFound)
		}
		return domain.InventoryItem{}, err
	}
	it.Recompute()
	return it, nil
}

// SetUnits overwrites the on-hand count for an existing blood type.
func (r *InventoryRepo) SetUnits(bloodType string, units int) error {
	return r.update(bloodType, `
		UPDATE inventory SET units = ?, updated_at = CURRENT_TIMESTAMP
		WHERE type = ?
	`, units, bloodType)
}

// Increment adds "by" units to an existing blood type.
func (r *InventoryRepo) Increment(bloodType string, by int) error {
	return r.update(bloodType, `
		UPDATE inventory SET units = units + ?, updated_at = CURRENT_TIMESTAMP
		WHERE type = ?
	`, by, bloodType)
}

func (r *InventoryRepo) update(bloodType, query string, args ...any) error {
	res, err := r.q.Exec(query, args...)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("blood type %s: %w", bloodType, domain.ErrNotFound)
	}
	return nil
}
