package app

import (
	"context"
	"testing"

	"pinkguard_bot/internal/domain/cycle"
	"pinkguard_bot/internal/domain/slot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTracker() (*TrackerService, *memorySlots) {
	slots := newMemorySlots()
	return NewTrackerService(NewDateStore(slots, testLogger()), testLogger()), slots
}

func TestTrackerService_OnActivateEmpty(t *testing.T) {
	tracker, _ := newTestTracker()
	p := &recordingPresenter{}

	require.NoError(t, tracker.OnActivate(context.Background(), 1, p))

	view := p.last()
	assert.Equal(t, 28, view.AverageCycleLengthDays)
	assert.False(t, view.HasPrediction)
	assert.False(t, view.HistoryVisible)
	assert.Empty(t, view.History)
}

func TestTrackerService_OnActivateIsIdempotent(t *testing.T) {
	tracker, slots := newTestTracker()
	require.NoError(t, slots.Put(context.Background(), 1, slot.KeyPeriods, `["2024-01-01","2024-01-29","2024-02-26"]`))
	p := &recordingPresenter{}

	require.NoError(t, tracker.OnActivate(context.Background(), 1, p))
	require.NoError(t, tracker.OnActivate(context.Background(), 1, p))

	require.Len(t, p.views, 2)
	assert.Equal(t, p.views[0], p.views[1])
	assert.Equal(t, "2024-03-25", p.views[0].PredictedNextDate.String())
	assert.Equal(t, 0, slots.puts-1, "activation must not write")
}

func TestTrackerService_OnAddDate(t *testing.T) {
	tracker, slots := newTestTracker()
	ctx := context.Background()
	require.NoError(t, slots.Put(ctx, 1, slot.KeyPeriods, `["2024-01-01"]`))
	p := &recordingPresenter{}

	require.NoError(t, tracker.OnAddDate(ctx, 1, " 2024-03-01 ", p))

	assert.Equal(t, `["2024-01-01","2024-03-01"]`, slots.values[slotKey{1, slot.KeyPeriods}])
	assert.Equal(t, 1, p.cleared)

	view := p.last()
	assert.True(t, view.HistoryVisible)
	assert.Equal(t, 60, view.AverageCycleLengthDays)
	assert.Equal(t, "2024-04-30", view.PredictedNextDate.String())
	require.Len(t, view.History, 2)
	assert.Equal(t, "2024-03-01", view.History[0].String(), "most recent first")
}

func TestTrackerService_OnAddDateRejectsBadInput(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{name: "empty", raw: "", wantErr: ErrMissingInput},
		{name: "blank", raw: "   ", wantErr: ErrMissingInput},
		{name: "not a date", raw: "tomorrow", wantErr: cycle.ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker, slots := newTestTracker()
			p := &recordingPresenter{}

			err := tracker.OnAddDate(context.Background(), 1, tt.raw, p)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, slots.values)
			assert.Empty(t, p.views)
			assert.Zero(t, p.cleared)
		})
	}
}

func TestTrackerService_EmptyToPopulated(t *testing.T) {
	tracker, _ := newTestTracker()
	ctx := context.Background()
	p := &recordingPresenter{}

	require.NoError(t, tracker.OnActivate(ctx, 1, p))
	assert.False(t, p.last().HistoryVisible)

	require.NoError(t, tracker.OnAddDate(ctx, 1, "2024-01-01", p))
	assert.True(t, p.last().HistoryVisible)
	assert.Equal(t, "2024-01-29", p.last().PredictedNextDate.String())

	require.NoError(t, tracker.OnActivate(ctx, 1, p))
	assert.True(t, p.last().HistoryVisible)
}
