package repos

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"lifelink/internal/domain"
)

type UserRepo struct{ q queryer }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{q: db} }

const userCols = `id,email,name,password_hash,role,phone,city,donor_id`

func (r *UserRepo) get(query string, args ...any) (*domain.User, error) {
	var u domain.User
	if err := sqlx.Get(r.q, &u, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) ByEmail(email string) (*domain.User, error) {
	return r.get(`SELECT `+userCols+` FROM users WHERE LOWER(email)=LOWER(?)`, email)
}

func (r *UserRepo) ByID(id int64) (*domain.User, error) {
	return r.get(`SELECT `+userCols+` FROM users WHERE id=?`, id)
}

// Create inserts a user and returns it with its assigned id.
func (r *UserRepo) Create(u domain.User) (*domain.User, error) {
	res, err := r.q.Exec(`
		INSERT INTO users(email,name,password_hash,role,phone,city,donor_id)
		VALUES(?,?,?,?,?,?,?)
	`, u.Email, u.Name, u.Hash, u.Role, u.Phone, u.City, u.DonorID)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	u.ID = id
	return &u, nil
}

func (r *UserRepo) BindSession(sid string, userID int64) error {
	_, err := r.q.Exec(`INSERT INTO sessions(id,user_id,last_seen)
                        VALUES(?,?,CURRENT_TIMESTAMP)
                        ON CONFLICT(id) DO UPDATE SET user_id=excluded.user_id,last_seen=CURRENT_TIMESTAMP`, sid, userID)
	return err
}

func (r *UserRepo) SessionUser(sid string) (*domain.User, error) {
	return r.get(`
      SELECT u.id,u.email,u.name,u.password_hash,u.role,u.phone,u.city,u.donor_id
      FROM sessions s
      JOIN users u ON u.id=s.user_id
      WHERE s.id=?`, sid)
}

func (r *UserRepo) UnbindSession(sid string) error {
	_, err := r.q.Exec(`UPDATE sessions SET user_id=NULL,last_seen=CURRENT_TIMESTAMP WHERE id=?`, sid)
	return err
}

// List returns every account, used by the snapshot export.
func (r *UserRepo) List() ([]domain.User, error) {
	out := []domain.User{}
	err := sqlx.Select(r.q, &out, `SELECT `+userCols+` FROM users ORDER BY id`)
	return out, err
}
