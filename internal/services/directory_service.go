package services

import (
	"lifelink/internal/domain"
	"lifelink/internal/repos"
)

// DirectoryService serves the read-only listings: donors, donation history
// and the activity feed.
type DirectoryService struct {
	Store *repos.Store
}

func NewDirectoryService(store *repos.Store) *DirectoryService {
	return &DirectoryService{Store: store}
}

func (s *DirectoryService) Donors(f repos.DonorFilter) ([]domain.Donor, error) {
	return s.Store.Donors.List(f)
}

// History returns a donor's history newest first. Unknown donors yield an
// empty list, not an error.
func (s *DirectoryService) History(donorID int64) ([]domain.DonationHistory, error) {
	return s.Store.History.ListByDonor(donorID)
}

func (s *DirectoryService) Activity(limit int) ([]domain.ActivityEntry, error) {
	return s.Store.Activity.Latest(limit)
}
