package services

import (
	"lifelink/internal/domain"
	"lifelink/internal/repos"
)

type StatsService struct {
	Store *repos.Store
}

func NewStatsService(store *repos.Store) *StatsService {
	return &StatsService{Store: store}
}

// Compute aggregates donor and hospital counters from scratch on every call.
// donorID 0 leaves the donor section zeroed.
func (s *StatsService) Compute(donorID int64) (domain.Stats, error) {
	var st domain.Stats
	err := s.Store.Tx(func(tx *repos.Store) error {
		if donorID != 0 {
			if _, err := tx.Donors.ByID(donorID); err != nil {
				return err
			}
			completed, err := tx.History.Count(donorID, domain.HistoryCompleted)
			if err != nil {
				return err
			}
			scheduled, err := tx.History.Count(donorID, domain.HistoryScheduled)
			if err != nil {
				return err
			}
			last, err := tx.History.LastCompletedDate(donorID)
			if err != nil {
				return err
			}
			st.DonorStats = domain.DonorStats{
				DonorID:      donorID,
				Donations:    completed,
				Scheduled:    scheduled,
				LivesSaved:   completed * domain.LivesSavedPerDonation,
				LastDonation: last,
			}
		}

		totals, err := tx.Requests.Totals()
		if err != nil {
			return err
		}
		responded, err := tx.History.Count(0, "")
		if err != nil {
			return err
		}
		completed, err := tx.History.Count(0, domain.HistoryCompleted)
		if err != nil {
			return err
		}
		st.HospitalStats = domain.HospitalStats{
			ActiveRequests:     totals.Active,
			TotalRequests:      totals.Total,
			DonorsResponded:    responded,
			CompletedDonations: completed,
			UnitsCollected:     totals.Collected,
		}
		return nil
	})
	return st, err
}
