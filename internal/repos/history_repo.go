package repos

import (
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"lifelink/internal/domain"
)

type HistoryRepo struct{ q queryer }

func NewHistoryRepo(db *sqlx.DB) *HistoryRepo { return &HistoryRepo{q: db} }

func historySelect() sq.SelectBuilder {
	return sq.Select(
		"id", "donor_id", "COALESCE(request_id,0) AS request_id", "hospital", "blood_type",
		"date", "amount", "type", "status", "COALESCE(completed_at,'') AS completed_at",
	).From("donation_history")
}

func (r *HistoryRepo) ByID(id int64) (domain.DonationHistory, error) {
	query, args, err := historySelect().Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return domain.DonationHistory{}, err
	}
	var h domain.DonationHistory
	if err := sqlx.Get(r.q, &h, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.DonationHistory{}, fmt.Errorf("history %d: %w", id, domain.ErrNotFound)
		}
		return domain.DonationHistory{}, err
	}
	return h, nil
}

// ListByDonor returns a donor's rows newest first.
func (r *HistoryRepo) ListByDonor(donorID int64) ([]domain.DonationHistory, error) {
	query, args, err := historySelect().Where(sq.Eq{"donor_id": donorID}).OrderBy("id DESC").ToSql()
	if err != nil {
		return nil, err
	}
	out := []domain.DonationHistory{}
	err = sqlx.Select(r.q, &out, query, args...)
	return out, err
}

// List returns every row, oldest first.
func (r *HistoryRepo) List() ([]domain.DonationHistory, error) {
	query, args, err := historySelect().OrderBy("id").ToSql()
	if err != nil {
		return nil, err
	}
	out := []domain.DonationHistory{}
	err = sqlx.Select(r.q, &out, query, args...)
	return out, err
}

// Create inserts a history row and returns it with its id.
func (r *HistoryRepo) Create(h domain.DonationHistory) (domain.DonationHistory, error) {
	var reqID any
	if h.RequestID != 0 {
		reqID = h.RequestID
	}
	res, err := r.q.Exec(`
		INSERT INTO donation_history(donor_id,request_id,hospital,blood_type,date,amount,type,status)
		VALUES(?,?,?,?,?,?,?,?)
	`, h.DonorID, reqID, h.Hospital, h.BloodType, h.Date, h.Amount, h.Type, h.Status)
	if err != nil {
		return domain.DonationHistory{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.DonationHistory{}, err
	}
	h.ID = id
	return h, nil
}

// Complete moves a Scheduled row to Completed. It reports false when the row
// was not in Scheduled state, so a second call never changes anything.
func (r *HistoryRepo) Complete(id int64, completedAt string) (bool, error) {
	res, err := r.q.Exec(`
		UPDATE donation_history
		SET status = 'Completed', completed_at = ?
		WHERE id = ? AND status = 'Scheduled'
	`, completedAt, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// Count returns the number of rows matching the optional donor and status.
func (r *HistoryRepo) Count(donorID int64, status string) (int, error) {
	b := sq.Select("COUNT(*)").From("donation_history")
	if donorID != 0 {
		b = b.Where(sq.Eq{"donor_id": donorID})
	}
	if status != "" {
		b = b.Where(sq.Eq{"status": status})
	}
	query, args, err := b.ToSql()
	if err != nil {
		return 0, err
	}
	var n int
	err = sqlx.Get(r.q, &n, query, args...)
	return n, err
}

// LastCompletedDate returns the latest completed donation date for a donor, or "".
func (r *HistoryRepo) LastCompletedDate(donorID int64) (string, error) {
	query, args, err := sq.Select("COALESCE(MAX(COALESCE(completed_at, date)),'')").
		From("donation_history").
		Where(sq.Eq{"donor_id": donorID, "status": domain.HistoryCompleted}).
		ToSql()
	if err != nil {
		return "", err
	}
	var d string
	err = sqlx.Get(r.q, &d, query, args...)
	return d, err
}
