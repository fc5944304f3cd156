package entity

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type LockMode string

const (
	LockModeGentle           LockMode = "Gentle"
	LockModeBalanced         LockMode = "Balanced"
	LockModeStrict           LockMode = "Strict"
	LockModeCompleteLockdown LockMode = "CompleteLockdown"
)

type CravingPatterns struct {
	CravingTimes []string `json:"cravingTimes"`
	Triggers     []string `json:"triggers"`
}

type AppPreferences struct {
	SelectedApps []string `json:"selectedApps"`
}

// OnboardingAnswers is the aggregate collected across the onboarding screens.
type OnboardingAnswers struct {
	Name                string          `json:"name"`
	Age                 string          `json:"age"`
	Location            string          `json:"location"`
	TakeoutFrequency    string          `json:"takeoutFrequency"`
	SpendRange          string          `json:"spendRange"`
	EstimatedCalories   Calories        `json:"estimatedCalories"`
	EmotionalCheckIn    string          `json:"emotionalCheckIn"`
	HowDoYouFeel        string          `json:"howDoYouFeel"`
	Concerns            string          `json:"concerns"`
	DesiredControl      string          `json:"desiredControl"`
	StartDate           string          `json:"startDate"`
	Goals               []string        `json:"goals"`
	EmotionalAnchor     string          `json:"emotionalAnchor"`
	HealthyRelationship string          `json:"healthyRelationship"`
	CravingPatterns     CravingPatterns `json:"cravingPatterns"`
	AppPreferences      AppPreferences  `json:"appPreferences"`
}

// Calories accepts both a JSON number and a numeric string such as "1,300",
// since the app sends either depending on the screen that filled it.
type Calories int

func (c *Calories) UnmarshalJSON(data []byte) error {
	raw := strings.ReplaceAll(strings.Trim(strings.TrimSpace(string(data)), `"`), ",", "")
	if raw == "" || raw == "null" {
		*c = 0
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid calories value %q", raw)
	}
	*c = Calories(v)
	return nil
}

type BlockingPlan struct {
	LockMode        LockMode `json:"lockMode"`
	CheatMealSlot   string   `json:"cheatMealSlot"`
	WeekdaySchedule Schedule `json:"weekdaySchedule"`
	WeekendSchedule Schedule `json:"weekendSchedule"`
}

type NotificationSettings struct {
	Enabled           bool   `json:"enabled"`
	DailyReminder     string `json:"dailyReminder,omitempty"`
	CheatMealReminder bool   `json:"cheatMealReminder"`
	WeeklySummary     bool   `json:"weeklySummary"`
}

type Profile struct {
	UserID              uuid.UUID            `json:"uid"`
	Answers             OnboardingAnswers    `json:"answers"`
	Plan                BlockingPlan         `json:"blockingPlan"`
	Notifications       NotificationSettings `json:"notifications"`
	OnboardingCompleted bool                 `json:"onboardingCompleted"`
	UpdatedAt           time.Time            `json:"updated_at"`
}

// CravingLog is immutable once created. IsSuccess means the craving was blocked.
type CravingLog struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"uid"`
	Timestamp       time.Time `json:"timestamp"`
	TimeOfDay       string    `json:"timeOfDay"`
	IsSuccess       bool      `json:"isSuccess"`
	Emotion         string    `json:"emotion,omitempty"`
	Trigger         string    `json:"trigger,omitempty"`
	Intensity       int       `json:"intensity,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	BlockedApp      string    `json:"blockedApp"`
	SpendingAvoided float64   `json:"spendingAvoided"`
	CaloriesAvoided float64   `json:"caloriesAvoided"`
}
