package repository

import (
	"context"
	"fmt"
)

// Store drivers
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

// Store groups the repositories of every entity kind. It is built once at
// process start and passed to the services that need it.
type Store struct {
	Driver          string
	Users           UserRepo
	Photographers   PhotographerRepo
	Categories      CategoryRepo
	Photos          PhotoRepo
	Exhibitions     ExhibitionRepo
	Events          EventRepo
	ContactMessages ContactMessageRepo

	closer func() error
	pinger func(ctx context.Context) error
}

// Open builds a store for the configured driver
func Open(driver, dsn string, clock Clock) (*Store, error) {
	switch driver {
	case "", DriverMemory:
		return NewMemoryStore(clock), nil
	case DriverSQLite:
		return NewSQLiteStore(dsn, clock)
	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}
}

// Close releases resources held by the backend
func (s *Store) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer()
}

// Ping reports whether the backend is reachable. The memory backend always is.
func (s *Store) Ping(ctx context.Context) error {
	if s.pinger == nil {
		return nil
	}
	return s.pinger(ctx)
}
