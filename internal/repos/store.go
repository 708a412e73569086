package repos

import (
	"errors"

	"github.com/jmoiron/sqlx"
)

// queryer is satisfied by both *sqlx.DB and *sqlx.Tx.
type queryer interface {
	sqlx.Queryer
	sqlx.Execer
}

var errNestedTx = errors.New("store: nested transaction")

// Store owns every collection. Handlers and services share one Store for the
// life of the process.
type Store struct {
	db *sqlx.DB

	Users     *UserRepo
	Donors    *DonorRepo
	Requests  *RequestRepo
	History   *HistoryRepo
	Inventory *InventoryRepo
	Activity  *ActivityRepo
}

func NewStore(db *sqlx.DB) *Store { return newStore(db, db) }

func newStore(db *sqlx.DB, q queryer) *Store {
	return &Store{
		db:        db,
		Users:     &UserRepo{q: q},
		Donors:    &DonorRepo{q: q},
		Requests:  &RequestRepo{q: q},
		History:   &HistoryRepo{q: q},
		Inventory: &InventoryRepo{q: q},
		Activity:  &ActivityRepo{q: q},
	}
}

// DB returns the underlying handle, nil inside a transaction.
func (s *Store) DB() *sqlx.DB { return s.db }

// Tx runs fn against a Store bound to a single transaction. The transaction
// commits when fn returns nil and rolls back otherwise.
func (s *Store) Tx(fn func(tx *Store) error) error {
	if s.db == nil {
		return errNestedTx
	}
	tx, err := s.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	txStore := newStore(nil, tx)
	if err := fn(txStore); err != nil {
		return err
	}
	return tx.Commit()
}
