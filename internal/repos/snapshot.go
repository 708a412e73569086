package repos

import (
	"encoding/json"
	"io"
	"time"

	"lifelink/internal/domain"
)

// Snapshot mirrors every collection in one JSON document.
type Snapshot struct {
	ExportedAt string                   `json:"exportedAt"`
	Users      []domain.User            `json:"users"`
	Donors     []domain.Donor           `json:"donors"`
	Requests   []domain.Request         `json:"requests"`
	Inventory  []domain.InventoryItem   `json:"inventory"`
	History    []domain.DonationHistory `json:"donorHistory"`
	Activities []domain.ActivityEntry   `json:"activities"`
}

// Export reads all collections inside one transaction so the document is consistent.
func (s *Store) Export() (Snapshot, error) {
	snap := Snapshot{ExportedAt: time.Now().UTC().Format(time.RFC3339)}
	err := s.Tx(func(tx *Store) error {
		var err error
		if snap.Users, err = tx.Users.List(); err != nil {
			return err
		}
		if snap.Donors, err = tx.Donors.List(DonorFilter{}); err != nil {
			return err
		}
		if snap.Requests, err = tx.Requests.List(RequestFilter{}); err != nil {
			return err
		}
		if snap.Inventory, err = tx.Inventory.ListAll(); err != nil {
			return err
		}
		if snap.History, err = tx.History.List(); err != nil {
			return err
		}
		snap.Activities, err = tx.Activity.Latest(0)
		return err
	})
	return snap, err
}

// WriteJSON encodes the snapshot with indentation.
func (snap Snapshot) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}
