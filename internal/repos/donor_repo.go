package repos

import (
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"lifelink/internal/domain"
)

type DonorRepo struct{ q queryer }

func NewDonorRepo(db *sqlx.DB) *DonorRepo { return &DonorRepo{q: db} }

// DonorFilter narrows List; empty fields match everything.
type DonorFilter struct {
	BloodType string
	City      string
}

func donorSelect() sq.SelectBuilder {
	return sq.Select(
		"id", "name", "blood_type",
		`lat AS "location.lat"`, `lng AS "location.lng"`,
		"donations", "status", "last_donation", "city",
	).From("donors")
}

func (r *DonorRepo) List(f DonorFilter) ([]domain.Donor, error) {
	b := donorSelect().OrderBy("id")
	if f.BloodType != "" {
		b = b.Where(sq.Eq{"blood_type": f.BloodType})
	}
	if f.City != "" {
		b = b.Where("LOWER(city) = LOWER(?)", f.City)
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	out := []domain.Donor{}
	err = sqlx.Select(r.q, &out, query, args...)
	return out, err
}

func (r *DonorRepo) ByID(id int64) (domain.Donor, error) {
	query, args, err := donorSelect().Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return domain.Donor{}, err
	}
	var d domain.Donor
	if err := sqlx.Get(r.q, &d, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Donor{}, fmt.Errorf("donor %d: %w", id, domain.ErrNotFound)
		}
		return domain.Donor{}, err
	}
	return d, nil
}

// Create inserts a donor and returns the assigned id.
func (r *DonorRepo) Create(d domain.Donor) (int64, error) {
	res, err := r.q.Exec(`
		INSERT INTO donors(name,blood_type,lat,lng,donations,status,last_donation,city)
		VALUES(?,?,?,?,?,?,?,?)
	`, d.Name, d.BloodType, d.Location.Lat, d.Location.Lng, d.Donations, d.Status, d.LastDonation, d.City)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// RecordDonation bumps the cumulative counter and stamps the last donation date.
func (r *DonorRepo) RecordDonation(id int64, date string) error {
	res, err := r.q.Exec(`
		UPDATE donors SET donations = donations + 1, last_donation = ?
		WHERE id = ?
	`, date, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("donor %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
