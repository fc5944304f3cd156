package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/craveblock/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/repositories.go -package=mocks

type UsersRepositoryI interface {
	// Creates new user in database. ID is generated when empty
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by email. Used for login
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// Looks up user by uid
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Updates user's info
	Update(ctx context.Context, user *entity.User) error
	// Deletes user together with profile and logs
	Delete(ctx context.Context, uid uuid.UUID) error
}

type ProfilesRepositoryI interface {
	// Returns stored profile of user
	Get(ctx context.Context, uid uuid.UUID) (*entity.Profile, error)
	// Replaces the whole profile record, creating it on first save
	Upsert(ctx context.Context, profile *entity.Profile) error
}

type CravingLogsRepositoryI interface {
	// Stores a new log. ID is generated when empty
	Create(ctx context.Context, log *entity.CravingLog) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.CravingLog, error)
	// Lists user's logs newest first. Requires pagination params provided
	ListByUser(ctx context.Context, uid uuid.UUID, limit, offset int) ([]entity.CravingLog, error)
	// Lists user's logs with from <= timestamp <= to, newest first
	ListByUserInRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.CravingLog, error)
	// Lists every log of user, newest first
	ListAllByUser(ctx context.Context, uid uuid.UUID) ([]entity.CravingLog, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
