package onboarding_test

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/limbo/craveblock/internal/onboarding"
	"github.com/limbo/craveblock/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	base := entity.OnboardingAnswers{
		Name:             "Sam",
		TakeoutFrequency: "2-3 times a week",
		Goals:            []string{"save_money"},
		CravingPatterns:  entity.CravingPatterns{CravingTimes: []string{"evening"}},
	}

	t.Run("only set fields change", func(t *testing.T) {
		spend := "20"
		got := onboarding.Apply(base, onboarding.Patch{
			SpendRange: &spend,
			Triggers:   []string{"after_work"},
		})

		assert.Equal(t, "Sam", got.Name)
		assert.Equal(t, "20", got.SpendRange)
		assert.Equal(t, []string{"evening"}, got.CravingPatterns.CravingTimes)
		assert.Equal(t, []string{"after_work"}, got.CravingPatterns.Triggers)
		assert.Empty(t, base.SpendRange)
	})

	t.Run("result does not alias the base", func(t *testing.T) {
		got := onboarding.Apply(base, onboarding.Patch{})
		got.Goals[0] = "changed"

		assert.Equal(t, "save_money", base.Goals[0])
	})

	t.Run("empty slice clears", func(t *testing.T) {
		got := onboarding.Apply(base, onboarding.Patch{Goals: []string{}})
		assert.Empty(t, got.Goals)
	})

	t.Run("later patch wins", func(t *testing.T) {
		first, second := "4-5 times a week", "5+ times a week"
		got := onboarding.Apply(onboarding.Apply(base, onboarding.Patch{TakeoutFrequency: &first}),
			onboarding.Patch{TakeoutFrequency: &second})
		assert.Equal(t, second, got.TakeoutFrequency)
	})
}

func TestPatchFromJSON(t *testing.T) {
	var p onboarding.Patch
	require.NoError(t, sonic.Unmarshal([]byte(`{"estimatedCalories":"1,300","desiredControl":"full"}`), &p))

	got := onboarding.Apply(onboarding.Reset(), p)
	assert.Equal(t, entity.Calories(1300), got.EstimatedCalories)
	assert.Equal(t, "full", got.DesiredControl)
	assert.NotNil(t, got.Goals)
	assert.Empty(t, got.Goals)
}
