package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/craveblock/internal/error_values"
	"github.com/limbo/craveblock/pkg/entity"
)

type ProfilesRepository struct {
	conn PgConnection
}

func NewProfilesRepoWithConn(conn PgConnection) *ProfilesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for profilesRepo: " + err.Error())
	}
	return &ProfilesRepository{
		conn: conn,
	}
}

func (pr *ProfilesRepository) Get(ctx context.Context, uid uuid.UUID) (*entity.Profile, error) {
	var answers, plan, notifications []byte
	profile := entity.Profile{UserID: uid}
	row := pr.conn.QueryRow(ctx, `SELECT answers, plan, notifications, onboarding_completed, updated_at FROM profiles WHERE user_id = $1;`, uid)
	if err := row.Scan(&answers, &plan, &notifications, &profile.OnboardingCompleted, &profile.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrProfileNotFound
		}
		return nil, errors.New("getting profile error: " + err.Error())
	}
	if err := decodeProfile(&profile, answers, plan, notifications); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (pr *ProfilesRepository) Upsert(ctx context.Context, profile *entity.Profile) error {
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
	_, err = pr.conn.Exec(ctx, `INSERT INTO profiles (user_id, answers, plan, notifications, onboarding_completed, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET answers = EXCLUDED.answers, plan = EXCLUDED.plan,
		notifications = EXCLUDED.notifications, onboarding_completed = EXCLUDED.onboarding_completed,
		updated_at = EXCLUDED.updated_at;`,
		profile.UserID, answers, plan, notifications, profile.OnboardingCompleted, profile.UpdatedAt,
	)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return errorvalues.ErrOwnerNotFound
		}
		return errors.New("saving profile error: " + err.Error())
	}
	return nil
}

// Profile parts are stored as JSON text. Key order of schedules matters, so
// the columns are never jsonb.
func encodeProfile(p *entity.Profile) (string, string, string, error) {
	answers, err := sonic.MarshalString(p.Answers)
	if err != nil {
		return "", "", "", errors.New("encoding answers error: " + err.Error())
	}
	plan, err := sonic.MarshalString(p.Plan)
	if err != nil {
		return "", "", "", errors.New("encoding plan error: " + err.Error())
	}
	notifications, err := sonic.MarshalString(p.Notifications)
	if err != nil {
		return "", "", "", errors.New("encoding notifications error: " + err.Error())
	}
	return answers, plan, notifications, nil
}

func decodeProfile(p *entity.Profile, answers, plan, notifications []byte) error {
	if err := sonic.Unmarshal(answers, &p.Answers); err != nil {
		return errors.New("decoding answers error: " + err.Error())
	}
	if err := sonic.Unmarshal(plan, &p.Plan); err != nil {
		return errors.New("decoding plan error: " + err.Error())
	}
	if err := sonic.Unmarshal(notifications, &p.Notifications); err != nil {
		return errors.New("decoding notifications error: " + err.Error())
	}
	return nil
}
