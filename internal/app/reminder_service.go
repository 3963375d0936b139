// internal/app/reminder_service.go
package app

import (
	"context"
	"fmt"
	"time"

	"pinkguard_bot/internal/domain/cycle"
	"pinkguard_bot/internal/domain/slot"
	domainTelegram "pinkguard_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
)

// ReminderService tells users when their predicted cycle start is near.
type ReminderService struct {
	slots    slot.Repository
	store    *DateStore
	client   domainTelegram.Client
	leadDays int
	logger   *logrus.Entry
}

func NewReminderService(
	slots slot.Repository,
	store *DateStore,
	client domainTelegram.Client,
	leadDays int,
	logger *logrus.Entry,
) *ReminderService {
	return &ReminderService{
		slots:    slots,
		store:    store,
		client:   client,
		leadDays: leadDays,
		logger:   logger.WithField("component", "reminder_service"),
	}
}

// ProcessDueReminders sends a reminder to every chat whose predicted start is
// leadDays away or today. A failure for one chat does not stop the others.
func (s *ReminderService) ProcessDueReminders(ctx context.Context, today cycle.Date) error {
	owners, err := s.slots.ListOwners(ctx, slot.KeyPeriods)
	if err != nil {
		return fmt.Errorf("failed to list tracked chats: %w", err)
	}
	s.logger.WithField("chats", len(owners)).Info("Checking cycle reminders")

	sent := 0
	for _, ownerID := range owners {
		if err := ctx.Err(); err != nil {
			return err
		}
		logCtx := s.logger.WithField("owner_id", ownerID)

		history, err := s.store.Read(ctx, ownerID)
		if err != nil {
			logCtx.WithError(err).Error("Failed to read cycle history")
			continue
		}
		prediction := cycle.Compute(history)
		if !prediction.HasPrediction {
			continue
		}

		text, due := reminderText(today, prediction.PredictedNextDate, s.leadDays)
		if !due {
			continue
		}
		if err := s.client.SendMessage(ownerID, text, nil); err != nil {
			logCtx.WithError(err).Error("Failed to send cycle reminder")
			continue
		}
		sent++
		logCtx.WithField("predicted", prediction.PredictedNextDate.String()).Info("Cycle reminder sent")
	}

	s.logger.WithField("sent", sent).Info("Cycle reminder run finished")
	return nil
}

// ProcessDueRemindersNow runs the check for the current local date.
func (s *ReminderService) ProcessDueRemindersNow(ctx context.Context) error {
	return s.ProcessDueReminders(ctx, cycle.DateOf(time.Now()))
}

func reminderText(today, predicted cycle.Date, leadDays int) (string, bool) {
	switch days := today.DaysUntil(predicted); {
	case days == 0:
		return fmt.Sprintf("🌸 Your next period is predicted to start today (%s).", predicted.Display()), true
	case days == leadDays && leadDays > 0:
		return fmt.Sprintf("🌸 Your next period is predicted in %d day(s), on %s.", days, predicted.Display()), true
	default:
		return "", false
	}
}
