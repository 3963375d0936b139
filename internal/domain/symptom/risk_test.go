package symptom

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		count int
		want  Tier
	}{
		{0, TierNone},
		{1, TierLow},
		{3, TierLow},
		{4, TierModerate},
		{6, TierModerate},
		{7, TierHigh},
		{8, TierHigh},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d selected", tt.count), func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.count))
		})
	}
}

func TestTier_Message(t *testing.T) {
	assert.Equal(t, "No significant symptoms detected.", TierNone.Message())
	assert.Equal(t, "High Risk - Please consult a doctor immediately.", TierHigh.Message())
}

func TestCatalog(t *testing.T) {
	assert.Equal(t, []string{"breast", "iron", "pcos"}, Keys())

	c, ok := Lookup(DefaultCategory)
	require.True(t, ok)
	assert.Equal(t, "Breast Cancer Screening", c.Title)
	assert.Len(t, c.Symptoms, 8)
	assert.Len(t, c.Foods, 6)

	_, ok = Lookup("unknown")
	assert.False(t, ok)
}
