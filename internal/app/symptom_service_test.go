package app

import (
	"testing"

	"pinkguard_bot/internal/domain/symptom"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymptomService_ToggleAndAnalyze(t *testing.T) {
	svc := NewSymptomService()

	for _, i := range []int{0, 2, 4, 6} {
		_, err := svc.Toggle(1, "pcos", i)
		require.NoError(t, err)
	}
	list, err := svc.Toggle(1, "pcos", 6)
	require.NoError(t, err)
	assert.Equal(t, 3, list.Count())

	got, err := svc.Analyze(1, "pcos")
	require.NoError(t, err)
	assert.Equal(t, 3, got.Count)
	assert.Equal(t, symptom.TierLow, got.Tier)
	assert.Equal(t, "PCOD / PCOS Check", got.Category.Title)
}

func TestSymptomService_SelectionsAreScoped(t *testing.T) {
	svc := NewSymptomService()
	_, err := svc.Toggle(1, "iron", 0)
	require.NoError(t, err)

	other, err := svc.Checklist(2, "iron")
	require.NoError(t, err)
	assert.Zero(t, other.Count(), "other chat")

	otherCategory, err := svc.Checklist(1, "breast")
	require.NoError(t, err)
	assert.Zero(t, otherCategory.Count(), "other category")
}

func TestSymptomService_Reset(t *testing.T) {
	svc := NewSymptomService()
	for i := 0; i < 8; i++ {
		_, err := svc.Toggle(1, "breast", i)
		require.NoError(t, err)
	}
	got, err := svc.Analyze(1, "breast")
	require.NoError(t, err)
	assert.Equal(t, symptom.TierHigh, got.Tier)

	list, err := svc.Reset(1, "breast")
	require.NoError(t, err)
	assert.Zero(t, list.Count())

	got, err = svc.Analyze(1, "breast")
	require.NoError(t, err)
	assert.Equal(t, symptom.TierNone, got.Tier)
}

func TestSymptomService_Errors(t *testing.T) {
	svc := NewSymptomService()

	_, err := svc.Checklist(1, "flu")
	assert.ErrorIs(t, err, ErrUnknownCategory)

	_, err = svc.Toggle(1, "iron", 8)
	assert.ErrorIs(t, err, ErrUnknownSymptom)

	list, err := svc.Checklist(1, "")
	require.NoError(t, err)
	assert.Equal(t, symptom.DefaultCategory, list.Category.Key)
}
