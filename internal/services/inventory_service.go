package services

import (
	"fmt"

	"lifelink/internal/domain"
	"lifelink/internal/repos"
	"lifelink/internal/validate"
)

type InventoryService struct {
	Store *repos.Store
}

func NewInventoryService(store *repos.Store) *InventoryService {
	return &InventoryService{Store: store}
}

func (s *InventoryService) List() ([]domain.InventoryItem, error) {
	return s.Store.Inventory.ListAll()
}

// Update sets the absolute unit count for a blood type (not a delta) and
// returns the item with percent and status recomputed.
func (s *InventoryService) Update(caller *domain.User, bloodType string, units int) (domain.InventoryItem, error) {
	if err := requireHospital(caller); err != nil {
		return domain.InventoryItem{}, err
	}
	if units < 0 {
		return domain.InventoryItem{}, fmt.Errorf("%w: units must not be negative", domain.ErrValidation)
	}
	bt, ok := validate.BloodType(bloodType)
	if !ok {
		return domain.InventoryItem{}, fmt.Errorf("blood type %q: %w", bloodType, domain.ErrNotFound)
	}

	var item domain.InventoryItem
	err := s.Store.Tx(func(tx *repos.Store) error {
		if err := tx.Inventory.SetUnits(bt, units); err != nil {
			return err
		}
		var err error
		if item, err = tx.Inventory.ByType(bt); err != nil {
			return err
		}
		_, err = tx.Activity.Append(caller.Name, fmt.Sprintf("Updated %s inventory to %d units", bt, units), domain.ActivitySystem)
		return err
	})
	return item, err
}
