package repository

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/netra/gallery/internal/observability"
)

// defaultSQLiteDSN names a fresh in-memory database, so every store opened
// without a DSN starts empty even when several live in one process
func defaultSQLiteDSN() string {
	return fmt.Sprintf("file:gallery-%s?mode=memory&cache=shared&_foreign_keys=off", uuid.NewString())
}

// NewSQLiteDB opens a SQLite database and creates the schema. An empty dsn
// opens a private in-memory database.
// The pool is limited to one connection so an in-memory database is not
// silently duplicated per connection and writes are serialized.
func NewSQLiteDB(dsn string) (*sql.DB, error) {
	if dsn == "" {
		dsn = defaultSQLiteDSN()
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if err := createTables(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// NewSQLiteStore creates a store backed by SQLite
func NewSQLiteStore(dsn string, clock Clock) (*Store, error) {
	db, err := NewSQLiteDB(dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	tdb, err := observability.NewTraceDB(db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("trace sqlite: %w", err)
	}

	store := newSQLStore(tdb, clock)
	store.closer = db.Close
	store.pinger = db.PingContext
	return store, nil
}

func newSQLStore(db *observability.TraceDB, clock Clock) *Store {
	if clock == nil {
		clock = SystemClock
	}

	return &Store{
		Driver:          DriverSQLite,
		Users:           NewUserRepository(db),
		Photographers:   NewPhotographerRepository(db),
		Categories:      NewCategoryRepository(db),
		Photos:          NewPhotoRepository(db, clock),
		Exhibitions:     NewExhibitionRepository(db, clock),
		Events:          NewEventRepository(db),
		ContactMessages: NewContactMessageRepository(db, clock),
	}
}

func createTables(db *sql.DB) error {
	schema := `
	-- AUTOINCREMENT keeps ids monotonic and never reused
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL,
		password TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_users_username ON users(username);

	CREATE TABLE IF NOT EXISTS photographers (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		bio TEXT NOT NULL,
		profile_image TEXT NOT NULL,
		instagram TEXT,
		email TEXT,
		featured BOOLEAN NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS categories (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		description TEXT
	);

	CREATE TABLE IF NOT EXISTS photos (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		description TEXT,
		image_url TEXT NOT NULL,
		thumbnail_url TEXT NOT NULL,
		photographer_id INTEGER NOT NULL,
		category_id INTEGER NOT NULL,
		featured BOOLEAN NOT NULL DEFAULT 0,
		date_added DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_photos_photographer_id ON photos(photographer_id);
	CREATE INDEX IF NOT EXISTS idx_photos_category_id ON photos(category_id);

	CREATE TABLE IF NOT EXISTS exhibitions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		description TEXT NOT NULL,
		location TEXT NOT NULL,
		start_date DATETIME NOT NULL,
		end_date DATETIME NOT NULL,
		cover_image TEXT NOT NULL,
		map_url TEXT
	);

	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		exhibition_id INTEGER NOT NULL,
		name TEXT NOT NULL,
		description TEXT,
		date DATETIME NOT NULL,
		time TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_events_exhibition_id ON events(exhibition_id);

	CREATE TABLE IF NOT EXISTS contact_messages (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		reference TEXT NOT NULL,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		subject TEXT NOT NULL,
		message TEXT NOT NULL,
		received_at DATETIME NOT NULL
	);
	`

	_, err := db.Exec(schema)
	return err
}

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func nullableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

// scanAll collects every row with scan, returning a non-nil slice
func scanAll[T any](rows *sql.Rows, scan func(rowScanner) (*T, error)) ([]*T, error) {
	defer rows.Close()

	out := make([]*T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}
