package services

import (
	"time"

	"lifelink/internal/domain"
)

// now is swapped in tests that need a fixed date.
var now = func() time.Time { return time.Now().UTC() }

func today() string { return now().Format("2006-01-02") }

func requireHospital(caller *domain.User) error {
	if caller == nil {
		return domain.ErrUnauthorized
	}
	if !caller.IsHospital() {
		return domain.ErrForbidden
	}
	return nil
}

func requireDonor(caller *domain.User) error {
	if caller == nil {
		return domain.ErrUnauthorized
	}
	if !caller.IsDonor() {
		return domain.ErrForbidden
	}
	return nil
}
