package domain

const (
	RoleDonor    = "donor"
	RoleHospital = "hospital"
)

type User struct {
	ID      int64  `db:"id" json:"id"`
	Email   string `db:"email" json:"email"`
	Name    string `db:"name" json:"name"`
	Hash    string `db:"password_hash" json:"-"`
	Role    string `db:"role" json:"role"`
	Phone   string `db:"phone" json:"phone,omitempty"`
	City    string `db:"city" json:"city,omitempty"`
	DonorID *int64 `db:"donor_id" json:"donorId,omitempty"`
}

func (u *User) IsDonor() bool    { return u != nil && u.Role == RoleDonor && u.DonorID != nil }
func (u *User) IsHospital() bool { return u != nil && u.Role == RoleHospital }
