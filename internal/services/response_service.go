package services

import (
	"fmt"

	"lifelink/internal/domain"
	"lifelink/internal/repos"
)

type ResponseService struct {
	Store *repos.Store
}

func NewResponseService(store *repos.Store) *ResponseService {
	return &ResponseService{Store: store}
}

// Respond records a donor's pledge against a request as a Scheduled history
// row. Request.collected is left alone until the donation is fulfilled.
//
// donorID is optional; when given it must match the caller.
func (s *ResponseService) Respond(caller *domain.User, requestID, donorID int64) (domain.DonationHistory, error) {
	if err := requireDonor(caller); err != nil {
		return domain.DonationHistory{}, err
	}
	if donorID != 0 && donorID != *caller.DonorID {
		return domain.DonationHistory{}, fmt.Errorf("respond as donor %d: %w", donorID, domain.ErrForbidden)
	}

	var h domain.DonationHistory
	err := s.Store.Tx(func(tx *repos.Store) error {
		req, err := tx.Requests.ByID(requestID)
		if err != nil {
			return err
		}
		donor, err := tx.Donors.ByID(*caller.DonorID)
		if err != nil {
			return err
		}
		h, err = tx.History.Create(domain.DonationHistory{
			DonorID:   donor.ID,
			RequestID: req.ID,
			Hospital:  req.Hospital,
			BloodType: req.BloodType,
			Date:      today(),
			Amount:    domain.DefaultDonationAmount,
			Type:      domain.DonationType,
			Status:    domain.HistoryScheduled,
		})
		if err != nil {
			return err
		}
		_, err = tx.Activity.Append(donor.Name, "Responded to "+req.Hospital, domain.ActivityDonation)
		return err
	})
	return h, err
}
