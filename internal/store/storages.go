package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/bloglist/internal/config"
	"github.com/MKhiriev/bloglist/internal/logger"
)

// Storages bundles the repositories of the configured backend. It is
// constructed once at startup and injected into the services.
type Storages struct {
	UserRepository UserRepository
	BlogRepository BlogRepository
	IDFormat       IDFormat

	closer func(ctx context.Context) error
}

// NewStorages connects to the backend selected by cfg.DB.Driver, prepares
// its schema (migrations for SQL, indexes for MongoDB) and builds the
// repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	switch cfg.DB.Driver {
	case config.DriverPostgres:
		db, err := NewConnectPostgres(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		return newSQLStorages(db)

	case config.DriverSQLite:
		db, err := NewConnectSQLite(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		return newSQLStorages(db)

	case config.DriverMongo:
		m, err := NewConnectMongo(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		if err = m.EnsureIndexes(ctx); err != nil {
			_ = m.Close(ctx)
			return nil, err
		}
		return NewMongoStorages(m), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.DB.Driver)
	}
}

func newSQLStorages(db *DB) (*Storages, error) {
	if err := db.Migrate(); err != nil {
		db.logger.Err(err).Str("func", "newSQLStorages").Msg("error applying migrations")
		db.Close()
		return nil, err
	}

	return NewSQLStorages(db), nil
}

// NewSQLStorages builds the SQL repositories over an already migrated db.
func NewSQLStorages(db *DB) *Storages {
	ids := newUUIDFormat()
	return &Storages{
		UserRepository: NewUserRepository(db, ids),
		BlogRepository: NewBlogRepository(db, ids),
		IDFormat:       ids,
		closer: func(context.Context) error {
			return db.Close()
		},
	}
}

// NewMongoStorages builds the document-store repositories over m.
func NewMongoStorages(m *MongoDB) *Storages {
	return &Storages{
		UserRepository: NewMongoUserRepository(m),
		BlogRepository: NewMongoBlogRepository(m),
		IDFormat:       objectIDFormat{},
		closer:         m.Close,
	}
}

// Close releases the backend connection.
func (s *Storages) Close(ctx context.Context) error {
	if s.closer == nil {
		return nil
	}
	return s.closer(ctx)
}
