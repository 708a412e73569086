package services

import (
	"fmt"

	"lifelink/internal/domain"
	"lifelink/internal/repos"
)

type FulfillmentService struct {
	Store *repos.Store
}

func NewFulfillmentService(store *repos.Store) *FulfillmentService {
	return &FulfillmentService{Store: store}
}

type FulfillResult struct {
	History   domain.DonationHistory `json:"history"`
	Inventory domain.InventoryItem   `json:"inventory"`
}

// Fulfill closes a Scheduled donation. The status change, request and donor
// counters, inventory increment and activity entry commit together or not at all.
func (s *FulfillmentService) Fulfill(caller *domain.User, historyID int64) (FulfillResult, error) {
	if err := requireHospital(caller); err != nil {
		return FulfillResult{}, err
	}

	var out FulfillResult
	err := s.Store.Tx(func(tx *repos.Store) error {
		h, err := tx.History.ByID(historyID)
		if err != nil {
			return err
		}
		if h.Status == domain.HistoryCompleted {
			return fmt.Errorf("history %d: %w", historyID, domain.ErrAlreadyFulfilled)
		}

		date := today()
		ok, err := tx.History.Complete(h.ID, date)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("history %d: %w", historyID, domain.ErrAlreadyFulfilled)
		}

		bloodType := h.BloodType
		if h.RequestID != 0 {
			req, err := tx.Requests.ByID(h.RequestID)
			if err != nil {
				return err
			}
			if err := tx.Requests.IncrementCollected(req.ID); err != nil {
				return err
			}
			bloodType = req.BloodType
		}

		donor, err := tx.Donors.ByID(h.DonorID)
		if err != nil {
			return err
		}
		if err := tx.Donors.RecordDonation(donor.ID, date); err != nil {
			return err
		}

		if err := tx.Inventory.Increment(bloodType, 1); err != nil {
			return err
		}
		if out.Inventory, err = tx.Inventory.ByType(bloodType); err != nil {
			return err
		}

		if _, err := tx.Activity.Append(h.Hospital, "Confirmed donation from "+donor.Name, domain.ActivityDonation); err != nil {
			return err
		}

		out.History, err = tx.History.ByID(h.ID)
		return err
	})
	if err != nil {
		return FulfillResult{}, err
	}
	return out, nil
}
