// internal/app/tracker_service.go
package app

import (
	"context"
	"fmt"
	"strings"

	"pinkguard_bot/internal/domain/cycle"

	"github.com/sirupsen/logrus"
)

var ErrMissingInput = fmt.Errorf("no date was provided")

// TrackerView is everything the presenter needs to draw the tracker.
type TrackerView struct {
	AverageCycleLengthDays int
	PredictedNextDate      cycle.Date
	HasPrediction          bool
	History                []cycle.Date // most recent first
	HistoryVisible         bool
}

// HistoryPresenter projects tracker state onto a view.
type HistoryPresenter interface {
	Render(ctx context.Context, view TrackerView) error
	// ClearInput resets the date input after a successful add.
	ClearInput(ctx context.Context) error
}

// TrackerService orchestrates loading and adding cycle starts for one chat at a time.
type TrackerService struct {
	store  *DateStore
	logger *logrus.Entry
}

func NewTrackerService(store *DateStore, logger *logrus.Entry) *TrackerService {
	return &TrackerService{
		store:  store,
		logger: logger.WithField("component", "tracker_service"),
	}
}

// OnActivate reads the history, computes the prediction and renders it.
// It does not modify state and may be called any number of times.
func (s *TrackerService) OnActivate(ctx context.Context, ownerID int64, p HistoryPresenter) error {
	history, err := s.store.Read(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("failed to load cycle history: %w", err)
	}
	return p.Render(ctx, BuildTrackerView(history))
}

// OnAddDate validates rawInput, stores the date and re-renders. Empty or
// unparseable input leaves the stored history untouched.
func (s *TrackerService) OnAddDate(ctx context.Context, ownerID int64, rawInput string, p HistoryPresenter) error {
	rawInput = strings.TrimSpace(rawInput)
	if rawInput == "" {
		return ErrMissingInput
	}
	d, err := cycle.ParseDate(rawInput)
	if err != nil {
		return err
	}

	history, err := s.store.Append(ctx, ownerID, d)
	if err != nil {
		return fmt.Errorf("failed to add cycle start: %w", err)
	}
	s.logger.WithFields(logrus.Fields{
		"owner_id": ownerID,
		"date":     d.String(),
	}).Info("Cycle start recorded")

	if err := p.ClearInput(ctx); err != nil {
		s.logger.WithError(err).WithField("owner_id", ownerID).Warn("Failed to clear date input")
	}
	return p.Render(ctx, BuildTrackerView(history))
}

// BuildTrackerView derives the view model from an ascending history.
func BuildTrackerView(h cycle.History) TrackerView {
	p := cycle.Compute(h)
	return TrackerView{
		AverageCycleLengthDays: p.AverageCycleLengthDays,
		PredictedNextDate:      p.PredictedNextDate,
		HasPrediction:          p.HasPrediction,
		History:                h.Descending(),
		HistoryVisible:         len(h) > 0,
	}
}
