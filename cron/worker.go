package cron

import (
	"context"
	"fmt"

	"vitalguard/config"
	"vitalguard/services/reminder"
	"vitalguard/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StartDispatchLoop runs the reminder dispatcher on a fixed interval in the
// background and returns the scheduler so the caller can stop it on
// shutdown. Ticks run serially; a slow tick delays the next one rather than
// overlapping it.
func StartDispatchLoop(dispatcher *reminder.Dispatcher) *cron.Cron {
	interval := config.AppConfig.DispatchIntervalSec
	if interval <= 0 {
		interval = 60
	}

	c := cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DiscardLogger),
		cron.Recover(cron.DiscardLogger),
	))

	spec := fmt.Sprintf("@every %ds", interval)
	_, err := c.AddFunc(spec, func() {
		dispatcher.ProcessDueReminders(context.Background())
	})
	if err != nil {
		utils.GetLogger().Fatal("Failed to schedule reminder dispatch loop", zap.Error(err))
	}

	c.Start()
	utils.GetLogger().Info("Reminder dispatch loop started", zap.Int("intervalSec", interval))
	return c
}
