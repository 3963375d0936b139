package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pinkguard_bot/internal/app"
	"pinkguard_bot/internal/infra/auth"
	"pinkguard_bot/internal/infra/config"
	idb "pinkguard_bot/internal/infra/database"
	"pinkguard_bot/internal/infra/logger"
	"pinkguard_bot/internal/infra/scheduler"
	"pinkguard_bot/internal/infra/telegram"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/telebot.v3"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pinkguard",
		Short:         "Cycle tracker and symptom checker Telegram bot",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBot(cmd.Context())
		},
	}
	root.AddCommand(
		&cobra.Command{
			Use:   "run",
			Short: "Start the bot and the reminder scheduler",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runBot(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create the storage tables for the configured driver",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runMigrate(cmd.Context())
			},
		},
	)
	return root
}

func runMigrate(ctx context.Context) error {
	cfg, err := config.LoadStorage()
	if err != nil {
		return fmt.Errorf("could not load configuration: %w", err)
	}
	logger.Init(cfg)
	mainLogger := logger.Component("migrate")

	db, dialect, err := idb.Open(cfg)
	if err != nil {
		return fmt.Errorf("could not connect to database: %w", err)
	}
	defer db.Close()

	if err := idb.Migrate(ctx, db, dialect); err != nil {
		return err
	}
	mainLogger.WithField("driver", dialect.Name).Info("Migrations applied")
	return nil
}

func runBot(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("could not load application configuration: %w", err)
	}
	logger.Init(cfg)
	mainLogger := logger.Component("main")
	mainLogger.WithFields(logrus.Fields{
		"log_level":   cfg.LogLevel,
		"environment": cfg.Environment,
		"storage":     cfg.StorageDriver,
	}).Info("Configuration loaded")

	// Initialize Database Connection
	db, dialect, err := idb.Open(cfg)
	if err != nil {
		return fmt.Errorf("could not connect to database: %w", err)
	}
	defer db.Close()
	if err := idb.Migrate(ctx, db, dialect); err != nil {
		return err
	}
	mainLogger.Info("Database connection established successfully.")

	// Initialize services
	slots := idb.NewSlotRepository(db, dialect)
	dateStore := app.NewDateStore(slots, logger.Log.WithField("layer", "app"))
	tracker := app.NewTrackerService(dateStore, logger.Log.WithField("layer", "app"))
	sessions := app.NewSessionService(slots, auth.NewClient(cfg.AuthBaseURL, cfg.AuthTimeout), logger.Log.WithField("layer", "app"))
	symptoms := app.NewSymptomService()
	inputs := app.NewDateInputs()

	// Initialize Telegram Bot
	pref := telebot.Settings{
		Token:  cfg.TelegramToken,
		Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
		// Updates are handled one at a time so history writes never interleave.
		Synchronous: true,
		OnError: func(err error, c telebot.Context) { // Global error handler
			entry := logger.Component("telebot").WithError(err)
			if c != nil && c.Sender() != nil && c.Chat() != nil {
				entry = entry.WithField("sender_id", c.Sender().ID).WithField("chat_id", c.Chat().ID)
			}
			entry.Error("Update handling failed")
		},
	}
	bot, err := telebot.NewBot(pref)
	if err != nil {
		return fmt.Errorf("could not create Telegram bot: %w", err)
	}

	reminders := app.NewReminderService(slots, dateStore, telegram.NewTelebotAdapter(bot), cfg.ReminderLeadDays, logger.Log.WithField("layer", "app"))
	reminderScheduler := scheduler.NewReminderScheduler(reminders, logger.Log.WithField("layer", "infra"), cfg.CronSpecReminder)
	if err := reminderScheduler.Start(); err != nil {
		return err
	}

	// Register Handlers
	handlerLogger := logger.Component("telegram")
	gate := telegram.RequireSession(ctx, sessions, handlerLogger)
	telegram.RegisterBotCommands(ctx, bot, sessions, handlerLogger)
	telegram.RegisterAuthHandlers(ctx, bot, sessions, handlerLogger)
	telegram.RegisterTrackerHandlers(ctx, bot, tracker, inputs, gate, handlerLogger)
	telegram.RegisterSymptomHandlers(bot, symptoms, gate, handlerLogger)
	mainLogger.Info("Application setup complete. Bot and Scheduler are starting...")

	go bot.Start()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	mainLogger.Info("Shutting down application...")
	bot.Stop()
	reminderScheduler.Stop()
	mainLogger.Info("Application shut down gracefully.")
	return nil
}
