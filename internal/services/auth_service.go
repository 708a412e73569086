package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"lifelink/internal/domain"
	"lifelink/internal/repos"
	"lifelink/internal/validate"
)

var ErrBadCreds = errors.New("invalid email or password")

type AuthService struct {
	Store *repos.Store
	// Cost is the bcrypt work factor; zero means bcrypt.DefaultCost.
	Cost int
}

func NewAuthService(store *repos.Store) *AuthService {
	return &AuthService{Store: store, Cost: bcrypt.DefaultCost}
}

type SignupInput struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	Phone     string `json:"phone"`
	City      string `json:"city"`
	BloodType string `json:"bloodType"`
}

// Signup creates an account (and a donor profile for donors) and binds it to sid.
func (s *AuthService) Signup(sid string, in SignupInput) (*domain.User, error) {
	name, ok := validate.Name(in.Name)
	if !ok {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	email, ok := validate.Email(in.Email)
	if !ok {
		return nil, fmt.Errorf("%w: email", domain.ErrValidation)
	}
	if !validate.Password(in.Password) {
		return nil, fmt.Errorf("%w: password needs 8+ characters with upper, lower, digit and symbol", domain.ErrValidation)
	}
	role, ok := validate.Role(in.Role)
	if !ok {
		return nil, fmt.Errorf("%w: role must be donor or hospital", domain.ErrValidation)
	}
	phone, ok := validate.Phone(in.Phone)
	if !ok {
		return nil, fmt.Errorf("%w: phone", domain.ErrValidation)
	}
	var bloodType string
	if role == domain.RoleDonor {
		if bloodType, ok = validate.BloodType(in.BloodType); !ok {
			return nil, fmt.Errorf("%w: bloodType", domain.ErrValidation)
		}
	}

	cost := s.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), cost)
	if err != nil {
		return nil, err
	}

	u := domain.User{
		Email: email,
		Name:  name,
		Hash:  string(hash),
		Role:  role,
		Phone: phone,
		City:  validate.Text(in.City, 80),
	}

	var created *domain.User
	err = s.Store.Tx(func(tx *repos.Store) error {
		if _, err := tx.Users.ByEmail(email); err == nil {
			return fmt.Errorf("email %s: %w", email, domain.ErrConflict)
		} else if !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		if role == domain.RoleDonor {
			donorID, err := tx.Donors.Create(domain.Donor{
				Name:      name,
				BloodType: bloodType,
				Status:    domain.DonorAvailable,
				City:      u.City,
			})
			if err != nil {
				return err
			}
			u.DonorID = &donorID
		}
		var err error
		if created, err = tx.Users.Create(u); err != nil {
			return err
		}
		return tx.Users.BindSession(sid, created.ID)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *AuthService) Login(sid, email, password string) (*domain.User, error) {
	u, err := s.Store.Users.ByEmail(email)
	if err != nil {
		return nil, ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return nil, ErrBadCreds
	}
	if err := s.Store.Users.BindSession(sid, u.ID); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AuthService) Logout(sid string) error {
	return s.Store.Users.UnbindSession(sid)
}

func (s *AuthService) CurrentUser(sid string) (*domain.User, error) {
	return s.Store.Users.SessionUser(sid)
}
