package services

import (
	"fmt"

	"lifelink/internal/domain"
	"lifelink/internal/repos"
	"lifelink/internal/validate"
)

type RequestService struct {
	Store *repos.Store
}

func NewRequestService(store *repos.Store) *RequestService {
	return &RequestService{Store: store}
}

type CreateRequestInput struct {
	Hospital  string `json:"hospital"`
	BloodType string `json:"bloodType"`
	Units     int    `json:"units"`
	Urgency   string `json:"urgency"`
	Reason    string `json:"reason"`
}

// Create broadcasts a new request on behalf of a hospital. Requests are not
// deduplicated.
func (s *RequestService) Create(caller *domain.User, in CreateRequestInput) (domain.Request, error) {
	if err := requireHospital(caller); err != nil {
		return domain.Request{}, err
	}
	hospital := validate.Text(in.Hospital, 80)
	if hospital == "" {
		hospital = caller.Name
	}
	bloodType, ok := validate.BloodType(in.BloodType)
	if !ok {
		return domain.Request{}, fmt.Errorf("%w: bloodType", domain.ErrValidation)
	}
	if !validate.Units(in.Units) {
		return domain.Request{}, fmt.Errorf("%w: units must be 1-%d", domain.ErrValidation, validate.MaxUnits)
	}
	urgency, ok := validate.Urgency(in.Urgency)
	if !ok {
		return domain.Request{}, fmt.Errorf("%w: urgency", domain.ErrValidation)
	}

	var created domain.Request
	err := s.Store.Tx(func(tx *repos.Store) error {
		var err error
		created, err = tx.Requests.Create(domain.Request{
			Hospital:  hospital,
			BloodType: bloodType,
			Units:     in.Units,
			Urgency:   urgency,
			Reason:    validate.Text(in.Reason, 200),
		})
		if err != nil {
			return err
		}
		_, err = tx.Activity.Append(hospital, fmt.Sprintf("Broadcasted %s Request", bloodType), domain.ActivityRequest)
		return err
	})
	return created, err
}

func (s *RequestService) List(f repos.RequestFilter) ([]domain.Request, error) {
	return s.Store.Requests.List(f)
}
