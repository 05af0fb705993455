package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"bluehaven/internal/infra/scheduler"
	"bluehaven/internal/pkg/config"
	"bluehaven/internal/usecase/commands"

	"go.uber.org/fx"
)

const reminderJobTimeout = 2 * time.Minute

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(RegisterReminderJob),
)

// RegisterReminderJob runs DispatchDue on REMINDER_SCHEDULE and, optionally, once at startup.
func RegisterReminderJob(lc fx.Lifecycle, cfg config.Config, reminders commands.ReminderCommands, logger *slog.Logger) error {
	if !cfg.Reminder.Enabled {
		logger.Info("reminder scheduler disabled")
		return nil
	}

	s := scheduler.New(cfg.Property.Location(), reminderJobTimeout, logger)
	job := func(ctx context.Context) error {
		report, err := reminders.DispatchDue(ctx)
		if err != nil {
			return err
		}
		logger.Info("reminders dispatched",
			"check_ins", report.CheckIns,
			"check_outs", report.CheckOuts,
			"skipped", report.Skipped,
			"failed", report.Failed)
		return nil
	}
	if err := s.Add(cfg.Reminder.Schedule, "reminders", job); err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			if cfg.Reminder.RunOnStart {
				go s.Run("reminders", job)
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return s.Stop(ctx)
		},
	})
	return nil
}
