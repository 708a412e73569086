package repos

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"lifelink/internal/domain"
)

type ActivityRepo struct{ q queryer }

func NewActivityRepo(db *sqlx.DB) *ActivityRepo { return &ActivityRepo{q: db} }

// Append adds an entry to the feed. Entries are never updated or removed.
func (r *ActivityRepo) Append(user, action, kind string) (int64, error) {
	res, err := r.q.Exec(`
		INSERT INTO activities(user_name,action,type,created_at)
		VALUES(?,?,?,CURRENT_TIMESTAMP)
	`, user, action, kind)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Latest returns up to limit entries, newest first. limit <= 0 means all.
func (r *ActivityRepo) Latest(limit int) ([]domain.ActivityEntry, error) {
	b := sq.Select("id", "user_name", "action", "type", "created_at").
		From("activities").
		OrderBy("id DESC")
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	out := []domain.ActivityEntry{}
	if err := sqlx.Select(r.q, &out, query, args...); err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Time = displayTime(out[i].CreatedAt)
	}
	return out, nil
}

func (r *ActivityRepo) Count() (int, error) {
	var n int
	err := sqlx.Get(r.q, &n, `SELECT COUNT(*) FROM activities`)
	return n, err
}
