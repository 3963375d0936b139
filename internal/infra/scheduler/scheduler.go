package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// ReminderProcessor runs one reminder pass.
type ReminderProcessor interface {
	ProcessDueRemindersNow(ctx context.Context) error
}

type ReminderScheduler struct {
	cronEngine       *cron.Cron
	reminders        ReminderProcessor
	logger           *logrus.Entry
	cronSpecReminder string
	jobTimeout       time.Duration
}

func NewReminderScheduler(
	reminders ReminderProcessor,
	logger *logrus.Entry,
	cronSpecReminder string, // e.g., "0 9 * * *" (9 AM daily)
) *ReminderScheduler {
	return &ReminderScheduler{
		cronEngine:       cron.New(cron.WithLocation(time.Local)), // Use server's local time for cron
		reminders:        reminders,
		logger:           logger.WithField("component", "scheduler"),
		cronSpecReminder: cronSpecReminder,
		jobTimeout:       5 * time.Minute,
	}
}

// Start registers the jobs and starts the cron engine. An invalid cron spec is
// returned instead of starting.
func (s *ReminderScheduler) Start() error {
	s.logger.Info("Starting reminder scheduler...")

	_, err := s.cronEngine.AddFunc(s.cronSpecReminder, s.runReminders)
	if err != nil {
		return fmt.Errorf("could not add cycle reminder cron job: %w", err)
	}

	s.cronEngine.Start()
	s.logger.WithField("spec", s.cronSpecReminder).Info("Reminder scheduler started")
	return nil
}

func (s *ReminderScheduler) runReminders() {
	s.logger.Info("Cron job triggered for cycle reminders.")
	ctx, cancel := context.WithTimeout(context.Background(), s.jobTimeout)
	defer cancel()
	if err := s.reminders.ProcessDueRemindersNow(ctx); err != nil {
		s.logger.WithError(err).Error("Error during cycle reminder processing")
	}
}

func (s *ReminderScheduler) Stop() {
	s.logger.Info("Stopping reminder scheduler...")
	ctx := s.cronEngine.Stop() // Stops the scheduler from adding new jobs, waits for running jobs.
	<-ctx.Done()
	s.logger.Info("Reminder scheduler gracefully stopped.")
}
