package repository

import (
	"context"
	"fmt"
)

const (
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

// Store groups the repositories of one storage backend.
type Store struct {
	Users    UsersRepositoryI
	Profiles ProfilesRepositoryI
	Logs     CravingLogsRepositoryI
}

func NewPostgresStore(ctx context.Context, cfg DBConfig) (*Store, error) {
	pool, err := NewPgPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &Store{
		Users:    NewUsersRepoWithConn(pool),
		Profiles: NewProfilesRepoWithConn(pool),
		Logs:     NewCravingLogsRepoWithConn(pool),
	}, nil
}

func NewSQLiteStore(ctx context.Context, path string) (*Store, error) {
	db, err := OpenSQLite(ctx, path)
	if err != nil {
		return nil, err
	}
	return &Store{
		Users:    NewSQLiteUsersRepo(db),
		Profiles: NewSQLiteProfilesRepo(db),
		Logs:     NewSQLiteCravingLogsRepo(db),
	}, nil
}

// NewStore picks the backend by name.
func NewStore(ctx context.Context, backend string, pg DBConfig, sqlitePath string) (*Store, error) {
	switch backend {
	case BackendPostgres:
		return NewPostgresStore(ctx, pg)
	case BackendSQLite:
		return NewSQLiteStore(ctx, sqlitePath)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
