package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	errorvalues "github.com/limbo/craveblock/internal/error_values"
	"github.com/limbo/craveblock/pkg/cleanup"
	"github.com/limbo/craveblock/pkg/entity"
)

// Timestamps are kept as UTC text in a fixed-width layout so that string
// comparison in SQL orders them correctly.
const sqliteTimeLayout = "2006-01-02 15:04:05.000000000"

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	email TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL,
	password_hash TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS profiles (
	user_id TEXT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
	answers TEXT NOT NULL,
	plan TEXT NOT NULL,
	notifications TEXT NOT NULL,
	onboarding_completed INTEGER NOT NULL DEFAULT 0,
	updated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS craving_logs (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	created_at TEXT NOT NULL,
	time_of_day TEXT NOT NULL DEFAULT '',
	is_success INTEGER NOT NULL,
	emotion TEXT NOT NULL DEFAULT '',
	craving_trigger TEXT NOT NULL DEFAULT '',
	intensity INTEGER NOT NULL DEFAULT 0,
	notes TEXT NOT NULL DEFAULT '',
	blocked_app TEXT NOT NULL DEFAULT '',
	spending_avoided REAL NOT NULL DEFAULT 0,
	calories_avoided REAL NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_craving_logs_user_created ON craving_logs (user_id, created_at);
`

// OpenSQLite opens (creating if needed) the database file at path and applies
// the schema. The handle is closed by a cleanup job.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("creating sqlite directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}
	// sqlite allows a single writer.
	db.SetMaxOpenConns(1)
	if _, err = db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying sqlite schema: %w", err)
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing sqlite database",
		F:    db.Close,
	})
	return db, nil
}

func sqliteCode(err error) int {
	var se *sqlite.Error
	if errors.As(err, &se) {
		return se.Code()
	}
	return 0
}

// Extended result codes are expected; the primary code plus the message is
// accepted as well.
func isSQLiteUnique(err error) bool {
	switch sqliteCode(err) {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return true
	case sqlite3.SQLITE_CONSTRAINT:
		return strings.Contains(err.Error(), "UNIQUE")
	}
	return false
}

func isSQLiteForeignKey(err error) bool {
	switch sqliteCode(err) {
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return true
	case sqlite3.SQLITE_CONSTRAINT:
		return strings.Contains(err.Error(), "FOREIGN KEY")
	}
	return false
}

func sqliteTime(t time.Time) string {
	return t.UTC().Format(sqliteTimeLayout)
}

func parseSQLiteTime(s string) (time.Time, error) {
	return time.ParseInLocation(sqliteTimeLayout, s, time.UTC)
}

type SQLiteUsersRepository struct {
	db *sql.DB
}

func NewSQLiteUsersRepo(db *sql.DB) *SQLiteUsersRepository {
	return &SQLiteUsersRepository{db: db}
}

func (ur *SQLiteUsersRepository) Create(ctx context.Context, user *entity.User) error {
	if user == nil {
		return errors.New("user is nil")
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	_, err := ur.db.ExecContext(ctx, `INSERT INTO users (id, email, name, password_hash, created_at) VALUES (?, ?, ?, ?, ?);`,
		user.ID.String(), user.Email, user.Name, user.PasswordHash, sqliteTime(user.CreatedAt))
	if err != nil {
		if isSQLiteUnique(err) {
			return errorvalues.ErrUserExists
		}
		return errors.New("creating user db error: " + err.Error())
	}
	return nil
}

func (ur *SQLiteUsersRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	row := ur.db.QueryRowContext(ctx, `SELECT id, email, name, password_hash, created_at FROM users WHERE email = ?;`, email)
	return scanSQLiteUser(row, "searching user by email error: ")
}

func (ur *SQLiteUsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	row := ur.db.QueryRowContext(ctx, `SELECT id, email, name, password_hash, created_at FROM users WHERE id = ?;`, uid.String())
	return scanSQLiteUser(row, "searching user by id error: ")
}

func scanSQLiteUser(row *sql.Row, errPrefix string) (*entity.User, error) {
	var user entity.User
	var created string
	if err := row.Scan(&user.ID, &user.Email, &user.Name, &user.PasswordHash, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New(errPrefix + err.Error())
	}
	t, err := parseSQLiteTime(created)
	if err != nil {
		return nil, errors.New(errPrefix + err.Error())
	}
	user.CreatedAt = t
	return &user, nil
}

func (ur *SQLiteUsersRepository) Update(ctx context.Context, user *entity.User) error {
	res, err := ur.db.ExecContext(ctx, `UPDATE users SET email = ?, name = ?, password_hash = ? WHERE id = ?;`,
		user.Email, user.Name, user.PasswordHash, user.ID.String())
	if err != nil {
		if isSQLiteUnique(err) {
			return errorvalues.ErrUserExists
		}
		return errors.New("updating user error: " + err.Error())
	}
	return requireAffected(res, errorvalues.ErrUserNotFound)
}

func (ur *SQLiteUsersRepository) Delete(ctx context.Context, uid uuid.UUID) error {
	res, err := ur.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?;`, uid.String())
	if err != nil {
		return errors.New("deleting user error: " + err.Error())
	}
	return requireAffected(res, errorvalues.ErrUserNotFound)
}

func requireAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return errors.New("reading affected rows error: " + err.Error())
	}
	if n == 0 {
		return notFound
	}
	return nil
}

type SQLiteProfilesRepository struct {
	db *sql.DB
}

func NewSQLiteProfilesRepo(db *sql.DB) *SQLiteProfilesRepository {
	return &SQLiteProfilesRepository{db: db}
}

func (pr *SQLiteProfilesRepository) Get(ctx context.Context, uid uuid.UUID) (*entity.Profile, error) {
	var answers, plan, notifications, updated string
	profile := entity.Profile{UserID: uid}
	row := pr.db.QueryRowContext(ctx, `SELECT answers, plan, notifications, onboarding_completed, updated_at FROM profiles WHERE user_id = ?;`, uid.String())
	if err := row.Scan(&answers, &plan, &notifications, &profile.OnboardingCompleted, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errorvalues.ErrProfileNotFound
		}
		return nil, errors.New("getting profile error: " + err.Error())
	}
	t, err := parseSQLiteTime(updated)
	if err != nil {
		return nil, errors.New("getting profile error: " + err.Error())
	}
	profile.UpdatedAt = t
	if err = decodeProfile(&profile, []byte(answers), []byte(plan), []byte(notifications)); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (pr *SQLiteProfilesRepository) Upsert(ctx context.Context, profile *entity.Profile) error {
	if profile == nil {
		return errors.New("profile is nil")
	}
	answers, plan, notifications, err := encodeProfile(profile)
	if err != nil {
		return err
	}
	if profile.UpdatedAt.IsZero() {
		profile.UpdatedAt = time.Now()
	}
	_, err = pr.db.ExecContext(ctx, `INSERT INTO profiles (user_id, answers, plan, notifications, onboarding_completed, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET answers = excluded.answers, plan = excluded.plan,
		notifications = excluded.notifications, onboarding_completed = excluded.onboarding_completed,
		updated_at = excluded.updated_at;`,
		profile.UserID.String(), answers, plan, notifications, profile.OnboardingCompleted, sqliteTime(profile.UpdatedAt),
	)
	if err != nil {
		if isSQLiteForeignKey(err) {
			return errorvalues.ErrOwnerNotFound
		}
		return errors.New("saving profile error: " + err.Error())
	}
	return nil
}

type SQLiteCravingLogsRepository struct {
	db *sql.DB
}

func NewSQLiteCravingLogsRepo(db *sql.DB) *SQLiteCravingLogsRepository {
	return &SQLiteCravingLogsRepository{db: db}
}

func (cr *SQLiteCravingLogsRepository) Create(ctx context.Context, l *entity.CravingLog) error {
	if l == nil {
		return errors.New("craving log is nil")
	}
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	_, err := cr.db.ExecContext(ctx, `INSERT INTO craving_logs (`+cravingLogColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`,
		l.ID.String(), l.UserID.String(), sqliteTime(l.Timestamp), l.TimeOfDay, l.IsSuccess, l.Emotion, l.Trigger,
		l.Intensity, l.Notes, l.BlockedApp, l.SpendingAvoided, l.CaloriesAvoided,
	)
	if err != nil {
		switch {
		case isSQLiteUnique(err):
			return errorvalues.ErrLogExists
		case isSQLiteForeignKey(err):
			return errorvalues.ErrOwnerNotFound
		}
		return errors.New("creating craving log error: " + err.Error())
	}
	return nil
}

func (cr *SQLiteCravingLogsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.CravingLog, error) {
	row := cr.db.QueryRowContext(ctx, `SELECT `+cravingLogColumns+` FROM craving_logs WHERE id = ?;`, id.String())
	l, err := scanSQLiteCravingLog(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errorvalues.ErrLogNotFound
		}
		return nil, errors.New("getting craving log by id error: " + err.Error())
	}
	return &l, nil
}

func (cr *SQLiteCravingLogsRepository) ListByUser(ctx context.Context, uid uuid.UUID, limit, offset int) ([]entity.CravingLog, error) {
	rows, err := cr.db.QueryContext(ctx, `SELECT `+cravingLogColumns+` FROM craving_logs
		WHERE user_id = ? ORDER BY created_at DESC LIMIT ? OFFSET ?;`, uid.String(), limit, offset)
	if err != nil {
		return nil, errors.New("listing craving logs error: " + err.Error())
	}
	return collectSQLiteCravingLogs(rows)
}

func (cr *SQLiteCravingLogsRepository) ListByUserInRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.CravingLog, error) {
	rows, err := cr.db.QueryContext(ctx, `SELECT `+cravingLogColumns+` FROM craving_logs
		WHERE user_id = ? AND created_at BETWEEN ? AND ? ORDER BY created_at DESC;`,
		uid.String(), sqliteTime(from), sqliteTime(to))
	if err != nil {
		return nil, errors.New("listing craving logs in range error: " + err.Error())
	}
	return collectSQLiteCravingLogs(rows)
}

func (cr *SQLiteCravingLogsRepository) ListAllByUser(ctx context.Context, uid uuid.UUID) ([]entity.CravingLog, error) {
	rows, err := cr.db.QueryContext(ctx, `SELECT `+cravingLogColumns+` FROM craving_logs
		WHERE user_id = ? ORDER BY created_at DESC;`, uid.String())
	if err != nil {
		return nil, errors.New("listing all craving logs error: " + err.Error())
	}
	return collectSQLiteCravingLogs(rows)
}

func (cr *SQLiteCravingLogsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := cr.db.ExecContext(ctx, `DELETE FROM craving_logs WHERE id = ?;`, id.String())
	if err != nil {
		return errors.New("deleting craving log error: " + err.Error())
	}
	return requireAffected(res, errorvalues.ErrLogNotFound)
}

func scanSQLiteCravingLog(row rowScanner) (entity.CravingLog, error) {
	var l entity.CravingLog
	var created string
	err := row.Scan(&l.ID, &l.UserID, &created, &l.TimeOfDay, &l.IsSuccess, &l.Emotion, &l.Trigger,
		&l.Intensity, &l.Notes, &l.BlockedApp, &l.SpendingAvoided, &l.CaloriesAvoided)
	if err != nil {
		return l, err
	}
	l.Timestamp, err = parseSQLiteTime(created)
	return l, err
}

func collectSQLiteCravingLogs(rows *sql.Rows) ([]entity.CravingLog, error) {
	defer rows.Close()
	logs := make([]entity.CravingLog, 0)
	for rows.Next() {
		l, err := scanSQLiteCravingLog(rows)
		if err != nil {
			return nil, errors.New("unmarshalling craving log error: " + err.Error())
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return logs, nil
}
