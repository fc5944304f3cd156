package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/craveblock/internal/error_values"
	"github.com/limbo/craveblock/internal/repository"
	"github.com/limbo/craveblock/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProfile() entity.Profile {
	return entity.Profile{
		UserID: uuid.New(),
		Answers: entity.OnboardingAnswers{
			Name:             "Sam",
			TakeoutFrequency: "4-5 times a week",
			Goals:            []string{"save_money"},
		},
		Plan: entity.BlockingPlan{
			LockMode:      entity.LockModeBalanced,
			CheatMealSlot: "Saturday, 11:00 AM-3:00 PM",
			WeekdaySchedule: entity.Schedule{
				{Label: "6:00 PM-9:00 AM", Enabled: true},
				{Label: "12:00 PM-9:00 AM", Enabled: false},
			},
			WeekendSchedule: entity.Schedule{{Label: "12:00 PM-9:00 AM", Enabled: true}},
		},
		Notifications:       entity.NotificationSettings{Enabled: true, DailyReminder: "09:00"},
		OnboardingCompleted: true,
		UpdatedAt:           time.Date(2026, time.March, 11, 9, 0, 0, 0, time.UTC),
	}
}

func TestGetProfile(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewProfilesRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT answers, plan, notifications, onboarding_completed, updated_at FROM profiles WHERE user_id = $1;`)
	p := sampleProfile()
	columns := []string{"answers", "plan", "notifications", "onboarding_completed", "updated_at"}

	t.Run("found, window order kept", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(p.UserID).WillReturnRows(pgxmock.NewRows(columns).AddRow(
			[]byte(`{"name":"Sam","takeoutFrequency":"4-5 times a week","goals":["save_money"],"cravingPatterns":{"cravingTimes":null,"triggers":null},"appPreferences":{"selectedApps":null}}`),
			[]byte(`{"lockMode":"Balanced","cheatMealSlot":"Saturday, 11:00 AM-3:00 PM","weekdaySchedule":{"6:00 PM-9:00 AM":true,"12:00 PM-9:00 AM":false},"weekendSchedule":{"12:00 PM-9:00 AM":true}}`),
			[]byte(`{"enabled":true,"dailyReminder":"09:00","cheatMealReminder":false,"weeklySummary":false}`),
			true, p.UpdatedAt,
		))
		got, err := repo.Get(context.Background(), p.UserID)
		require.NoError(t, err)
		assert.Equal(t, p, *got)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(p.UserID).WillReturnError(pgx.ErrNoRows)
		_, err := repo.Get(context.Background(), p.UserID)
		assert.ErrorIs(t, err, errorvalues.ErrProfileNotFound)
	})
	t.Run("corrupt plan", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(p.UserID).WillReturnRows(pgxmock.NewRows(columns).AddRow(
			[]byte(`{}`), []byte(`{"weekdaySchedule":[1,2]}`), []byte(`{}`), false, p.UpdatedAt,
		))
		_, err := repo.Get(context.Background(), p.UserID)
		assert.Error(t, err)
	})
}

func TestUpsertProfile(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewProfilesRepoWithConn(mock)
	query := regexp.QuoteMeta(`INSERT INTO profiles`)
	p := sampleProfile()

	t.Run("saved", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(p.UserID, pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), true, p.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		assert.NoError(t, repo.Upsert(context.Background(), &p))
	})
	t.Run("unknown user", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(p.UserID, pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), true, p.UpdatedAt).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		assert.ErrorIs(t, repo.Upsert(context.Background(), &p), errorvalues.ErrOwnerNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(p.UserID, pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), true, p.UpdatedAt).
			WillReturnError(errors.New("db error"))
		assert.Error(t, repo.Upsert(context.Background(), &p))
	})
	t.Run("nil profile", func(t *testing.T) {
		assert.Error(t, repo.Upsert(context.Background(), nil))
	})
}
