package repos

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"

	applog "lifelink/internal/log"
)

// SeedPassword is the password of every demo account.
const SeedPassword = "Passw0rd!"

// OpenDB opens the store, creates the schema and loads demo data into an empty database.
func OpenDB(dsn string) (*sqlx.DB, error) {
	return Open(dsn, true)
}

// Open is OpenDB with control over demo seeding.
func Open(dsn string, seed bool) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// One connection: ":memory:" databases are per-connection, and SQLite
	// serializes writers anyway.
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	if seed {
		if err := seedIfEmpty(db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("seed: %w", err)
		}
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Donors
CREATE TABLE IF NOT EXISTS donors(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  blood_type TEXT NOT NULL,
  lat REAL NOT NULL DEFAULT 0,
  lng REAL NOT NULL DEFAULT 0,
  donations INTEGER NOT NULL DEFAULT 0 CHECK (donations >= 0),
  status TEXT NOT NULL DEFAULT 'Available',
  last_donation TEXT NOT NULL DEFAULT '',
  city TEXT NOT NULL DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_donors_blood_type ON donors(blood_type);

-- Users & Sessions
CREATE TABLE IF NOT EXISTS users(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  email TEXT NOT NULL,
  name TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL CHECK (role IN ('donor','hospital')),
  phone TEXT NOT NULL DEFAULT '',
  city TEXT NOT NULL DEFAULT '',
  donor_id INTEGER NULL REFERENCES donors(id) ON DELETE SET NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(LOWER(email));

CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,
  user_id INTEGER NULL REFERENCES users(id) ON DELETE SET NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  last_seen TEXT
);
CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id);

-- Requests
CREATE TABLE IF NOT EXISTS requests(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  hospital TEXT NOT NULL,
  blood_type TEXT NOT NULL,
  units INTEGER NOT NULL CHECK (units >= 1),
  collected INTEGER NOT NULL DEFAULT 0 CHECK (collected >= 0),
  urgency TEXT NOT NULL CHECK (urgency IN ('Critical','Urgent','Active','Normal')),
  reason TEXT NOT NULL DEFAULT '',
  distance TEXT NOT NULL DEFAULT 'Calculating...',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_requests_blood_type ON requests(blood_type);

-- Inventory, one row per blood type
CREATE TABLE IF NOT EXISTS inventory(
  type TEXT PRIMARY KEY,
  units INTEGER NOT NULL DEFAULT 0 CHECK (units >= 0),
  total INTEGER NOT NULL DEFAULT 20 CHECK (total >= 0),
  updated_at TEXT
);

-- Donation history
CREATE TABLE IF NOT EXISTS donation_history(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  donor_id INTEGER NOT NULL REFERENCES donors(id),
  request_id INTEGER NULL REFERENCES requests(id),
  hospital TEXT NOT NULL,
  blood_type TEXT NOT NULL DEFAULT '',
  date TEXT NOT NULL,
  amount TEXT NOT NULL DEFAULT '350ml',
  type TEXT NOT NULL DEFAULT 'Donation',
  status TEXT NOT NULL CHECK (status IN ('Scheduled','Completed')),
  completed_at TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_history_donor   ON donation_history(donor_id);
CREATE INDEX IF NOT EXISTS idx_history_request ON donation_history(request_id);

-- Activity feed (append-only)
CREATE TABLE IF NOT EXISTS activities(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  user_name TEXT NOT NULL,
  action TEXT NOT NULL,
  type TEXT NOT NULL CHECK (type IN ('request','donation','system')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM donors`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return seedDemo(db)
}

// Reset wipes every collection and reloads the demo data.
func Reset(db *sqlx.DB) error {
	tx, err := db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"sessions", "users", "activities", "donation_history", "inventory", "requests", "donors"} {
		if _, err := tx.Exec(`DELETE FROM ` + table); err != nil {
			return err
		}
	}
	// restart the max+1 id sequences
	if _, err := tx.Exec(`DELETE FROM sqlite_sequence`); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	return seedDemo(db)
}

func seedDemo(db *sqlx.DB) error {
	applog.Logger().Info("[seed] inserting demo donors/requests/inventory/users")

	hash, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	tx, err := db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmts := []string{
		`INSERT INTO donors(id,name,blood_type,lat,lng,donations,status,last_donation,city) VALUES
		  (1,'Rohit Kumar','O-',28.6139,77.2090,8,'Available','2023-12-10','Delhi'),
		  (2,'Priya Sharma','A+',28.6239,77.2190,12,'In 2 hours','2024-01-15','Noida'),
		  (3,'Amit Patel','B+',28.6339,77.2290,5,'Available','2024-02-01','Gurgaon'),
		  (4,'Sneha Gupta','AB-',28.6439,77.2390,3,'Available','2023-11-20','Delhi')`,

		`INSERT INTO requests(id,hospital,blood_type,units,collected,urgency,reason,distance,created_at) VALUES
		  (1,'St. Mary''s Hospital','O-',4,2,'Critical','Accident victim','2.3km',datetime('now','-12 minutes')),
		  (2,'City General Hospital','A+',2,1,'Active','Surgery','5.1km',datetime('now','-25 minutes'))`,

		`INSERT INTO inventory(type,units,total,updated_at) VALUES
		  ('O-',2,20,CURRENT_TIMESTAMP),
		  ('A+',8,20,CURRENT_TIMESTAMP),
		  ('B+',15,20,CURRENT_TIMESTAMP),
		  ('AB-',3,20,CURRENT_TIMESTAMP)`,

		`INSERT INTO donation_history(id,donor_id,request_id,hospital,blood_type,date,amount,type,status,completed_at) VALUES
		  (1,1,NULL,'City Hospital','O-','2024-01-20','350ml','Donation','Completed','2024-01-20'),
		  (2,1,NULL,'Red Cross Center','O-','2023-11-15','350ml','Donation','Completed','2023-11-15')`,

		`INSERT INTO activities(user_name,action,type,created_at) VALUES
		  ('St. Mary''s','Inventory Updated','system',datetime('now','-1 hour')),
		  ('Rohit Kumar','Donated at Red Cross','donation',datetime('now','-15 minutes')),
		  ('City Hospital','Broadcasted O- Request','request',datetime('now','-2 minutes'))`,
	}
	for _, s := range stmts {
		if _, err := tx.Exec(s); err != nil {
			return err
		}
	}

	type u struct {
		Email, Name, Role, City string
		DonorID                 any
	}
	users := []u{
		{"rohit@lifelink.test", "Rohit Kumar", "donor", "Delhi", 1},
		{"priya@lifelink.test", "Priya Sharma", "donor", "Noida", 2},
		{"amit@lifelink.test", "Amit Patel", "donor", "Gurgaon", 3},
		{"sneha@lifelink.test", "Sneha Gupta", "donor", "Delhi", 4},
		{"stmarys@lifelink.test", "St. Mary's Hospital", "hospital", "Delhi", nil},
		{"citygeneral@lifelink.test", "City General Hospital", "hospital", "Delhi", nil},
	}
	for _, x := range users {
		if _, err := tx.Exec(`
			INSERT INTO users(email,name,password_hash,role,city,donor_id)
			VALUES(?,?,?,?,?,?)
		`, x.Email, x.Name, string(hash), x.Role, x.City, x.DonorID); err != nil {
			return err
		}
	}

	return tx.Commit()
}
