package repos

import (
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"lifelink/internal/domain"
)

type RequestRepo struct{ q queryer }

func NewRequestRepo(db *sqlx.DB) *RequestRepo { return &RequestRepo{q: db} }

// RequestFilter narrows List; zero values match everything.
type RequestFilter struct {
	BloodType string
	Urgency   string
	OpenOnly  bool
}

func requestSelect() sq.SelectBuilder {
	return sq.Select(
		"id", "hospital", "blood_type", "units", "collected",
		"urgency", "reason", "distance", "created_at",
	).From("requests")
}

// List returns requests newest first.
func (r *RequestRepo) List(f RequestFilter) ([]domain.Request, error) {
	b := requestSelect().OrderBy("id DESC")
	if f.BloodType != "" {
		b = b.Where(sq.Eq{"blood_type": f.BloodType})
	}
	if f.Urgency != "" {
		b = b.Where(sq.Eq{"urgency": f.Urgency})
	}
	if f.OpenOnly {
		b = b.Where("collected < units")
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	out := []domain.Request{}
	if err := sqlx.Select(r.q, &out, query, args...); err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Time = displayTime(out[i].CreatedAt)
	}
	return out, nil
}

func (r *RequestRepo) ByID(id int64) (domain.Request, error) {
	query, args, err := requestSelect().Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return domain.Request{}, err
	}
	var req domain.Request
	if err := sqlx.Get(r.q, &req, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Request{}, fmt.Errorf("request %d: %w", id, domain.ErrNotFound)
		}
		return domain.Request{}, err
	}
	req.Time = displayTime(req.CreatedAt)
	return req, nil
}

// Create inserts a request with collected=0 and returns the stored row.
func (r *RequestRepo) Create(req domain.Request) (domain.Request, error) {
	if req.Distance == "" {
		req.Distance = domain.DefaultDistance
	}
	res, err := r.q.Exec(`
		INSERT INTO requests(hospital,blood_type,units,collected,urgency,reason,distance,created_at)
		VALUES(?,?,?,0,?,?,?,CURRENT_TIMESTAMP)
	`, req.Hospital, req.BloodType, req.Units, req.Urgency, req.Reason, req.Distance)
	if err != nil {
		return domain.Request{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Request{}, err
	}
	return r.ByID(id)
}

// IncrementCollected adds one collected unit. There is no cap at units:
// over-collection is allowed.
func (r *RequestRepo) IncrementCollected(id int64) error {
	res, err := r.q.Exec(`UPDATE requests SET collected = collected + 1 WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("request %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// RequestTotals backs the hospital dashboard counters.
type RequestTotals struct {
	Total     int `db:"total"`
	Active    int `db:"active"`
	Collected int `db:"collected"`
}

func (r *RequestRepo) Totals() (RequestTotals, error) {
	query, args, err := sq.Select(
		"COUNT(*) AS total",
		"COALESCE(SUM(CASE WHEN collected < units THEN 1 ELSE 0 END),0) AS active",
		"COALESCE(SUM(collected),0) AS collected",
	).From("requests").ToSql()
	if err != nil {
		return RequestTotals{}, err
	}
	var t RequestTotals
	err = sqlx.Get(r.q, &t, query, args...)
	return t, err
}
