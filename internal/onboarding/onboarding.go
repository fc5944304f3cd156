// Package onboarding merges partial onboarding answers without mutating the
// stored record.
package onboarding

import (
	"slices"

	"github.com/limbo/craveblock/pkg/entity"
)

// Patch is a partial update of OnboardingAnswers. Nil fields are left alone;
// a non-nil empty slice clears the list.
type Patch struct {
	Name                *string          `json:"name,omitempty" validate:"omitempty,max=100"`
	Age                 *string          `json:"age,omitempty"`
	Location            *string          `json:"location,omitempty"`
	TakeoutFrequency    *string          `json:"takeoutFrequency,omitempty"`
	SpendRange          *string          `json:"spendRange,omitempty"`
	EstimatedCalories   *entity.Calories `json:"estimatedCalories,omitempty" validate:"omitempty,min=0,max=5000"`
	EmotionalCheckIn    *string          `json:"emotionalCheckIn,omitempty"`
	HowDoYouFeel        *string          `json:"howDoYouFeel,omitempty"`
	Concerns            *string          `json:"concerns,omitempty"`
	DesiredControl      *string          `json:"desiredControl,omitempty"`
	StartDate           *string          `json:"startDate,omitempty"`
	Goals               []string         `json:"goals,omitempty" validate:"omitempty,dive,alphanum_underscore,max=64"`
	EmotionalAnchor     *string          `json:"emotionalAnchor,omitempty"`
	HealthyRelationship *string          `json:"healthyRelationship,omitempty"`
	CravingTimes        []string         `json:"cravingTimes,omitempty"`
	Triggers            []string         `json:"triggers,omitempty"`
	SelectedApps        []string         `json:"selectedApps,omitempty"`
}

// Apply returns a new record with the patch laid over base. Slices are
// copied, so neither base nor the patch share memory with the result.
func Apply(base entity.OnboardingAnswers, p Patch) entity.OnboardingAnswers {
	out := Clone(base)
	setString(&out.Name, p.Name)
	setString(&out.Age, p.Age)
	setString(&out.Location, p.Location)
	setString(&out.TakeoutFrequency, p.TakeoutFrequency)
	setString(&out.SpendRange, p.SpendRange)
	if p.EstimatedCalories != nil {
		out.EstimatedCalories = *p.EstimatedCalories
	}
	setString(&out.EmotionalCheckIn, p.EmotionalCheckIn)
	setString(&out.HowDoYouFeel, p.HowDoYouFeel)
	setString(&out.Concerns, p.Concerns)
	setString(&out.DesiredControl, p.DesiredControl)
	setString(&out.StartDate, p.StartDate)
	setString(&out.EmotionalAnchor, p.EmotionalAnchor)
	setString(&out.HealthyRelationship, p.HealthyRelationship)
	if p.Goals != nil {
		out.Goals = slices.Clone(p.Goals)
	}
	if p.CravingTimes != nil {
		out.CravingPatterns.CravingTimes = slices.Clone(p.CravingTimes)
	}
	if p.Triggers != nil {
		out.CravingPatterns.Triggers = slices.Clone(p.Triggers)
	}
	if p.SelectedApps != nil {
		out.AppPreferences.SelectedApps = slices.Clone(p.SelectedApps)
	}
	return out
}

func Clone(a entity.OnboardingAnswers) entity.OnboardingAnswers {
	a.Goals = slices.Clone(a.Goals)
	a.CravingPatterns.CravingTimes = slices.Clone(a.CravingPatterns.CravingTimes)
	a.CravingPatterns.Triggers = slices.Clone(a.CravingPatterns.Triggers)
	a.AppPreferences.SelectedApps = slices.Clone(a.AppPreferences.SelectedApps)
	return a
}

// Reset is the blank record a user starts over with.
func Reset() entity.OnboardingAnswers {
	return entity.OnboardingAnswers{
		Goals:           []string{},
		CravingPatterns: entity.CravingPatterns{CravingTimes: []string{}, Triggers: []string{}},
		AppPreferences:  entity.AppPreferences{SelectedApps: []string{}},
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
