package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/craveblock/internal/error_values"
	"github.com/limbo/craveblock/pkg/entity"
)

const cravingLogColumns = `id, user_id, created_at, time_of_day, is_success, emotion, craving_trigger,
	intensity, notes, blocked_app, spending_avoided, calories_avoided`

type CravingLogsRepository struct {
	conn PgConnection
}

func NewCravingLogsRepoWithConn(conn PgConnection) *CravingLogsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for cravingLogsRepo: " + err.Error())
	}
	return &CravingLogsRepository{
		conn: conn,
	}
}

func (cr *CravingLogsRepository) Create(ctx context.Context, l *entity.CravingLog) error {
	if l == nil {
		return errors.New("craving log is nil")
	}
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	_, err := cr.conn.Exec(ctx, `INSERT INTO craving_logs (`+cravingLogColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`,
		l.ID, l.UserID, l.Timestamp, l.TimeOfDay, l.IsSuccess, l.Emotion, l.Trigger,
		l.Intensity, l.Notes, l.BlockedApp, l.SpendingAvoided, l.CaloriesAvoided,
	)
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return errorvalues.ErrLogExists
		case pgForeignKeyViolation:
			return errorvalues.ErrOwnerNotFound
		}
		return errors.New("creating craving log error: " + err.Error())
	}
	return nil
}

func (cr *CravingLogsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.CravingLog, error) {
	row := cr.conn.QueryRow(ctx, `SELECT `+cravingLogColumns+` FROM craving_logs WHERE id = $1;`, id)
	l, err := scanCravingLog(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrLogNotFound
		}
		return nil, errors.New("getting craving log by id error: " + err.Error())
	}
	return &l, nil
}

func (cr *CravingLogsRepository) ListByUser(ctx context.Context, uid uuid.UUID, limit, offset int) ([]entity.CravingLog, error) {
	rows, err := cr.conn.Query(ctx, `SELECT `+cravingLogColumns+` FROM craving_logs
		WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3;`, uid, limit, offset)
	if err != nil {
		return nil, errors.New("listing craving logs error: " + err.Error())
	}
	return collectCravingLogs(rows)
}

func (cr *CravingLogsRepository) ListByUserInRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.CravingLog, error) {
	rows, err := cr.conn.Query(ctx, `SELECT `+cravingLogColumns+` FROM craving_logs
		WHERE user_id = $1 AND created_at BETWEEN $2 AND $3 ORDER BY created_at DESC;`, uid, from, to)
	if err != nil {
		return nil, errors.New("listing craving logs in range error: " + err.Error())
	}
	return collectCravingLogs(rows)
}

func (cr *CravingLogsRepository) ListAllByUser(ctx context.Context, uid uuid.UUID) ([]entity.CravingLog, error) {
	rows, err := cr.conn.Query(ctx, `SELECT `+cravingLogColumns+` FROM craving_logs
		WHERE user_id = $1 ORDER BY created_at DESC;`, uid)
	if err != nil {
		return nil, errors.New("listing all craving logs error: " + err.Error())
	}
	return collectCravingLogs(rows)
}

func (cr *CravingLogsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := cr.conn.Exec(ctx, `DELETE FROM craving_logs WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting craving log error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrLogNotFound
	}
	return nil
}

// rowScanner covers pgx and database/sql rows alike.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCravingLog(row rowScanner) (entity.CravingLog, error) {
	var l entity.CravingLog
	err := row.Scan(&l.ID, &l.UserID, &l.Timestamp, &l.TimeOfDay, &l.IsSuccess, &l.Emotion, &l.Trigger,
		&l.Intensity, &l.Notes, &l.BlockedApp, &l.SpendingAvoided, &l.CaloriesAvoided)
	return l, err
}

func collectCravingLogs(rows pgx.Rows) ([]entity.CravingLog, error) {
	defer rows.Close()
	logs := make([]entity.CravingLog, 0)
	for rows.Next() {
		l, err := scanCravingLog(rows)
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
