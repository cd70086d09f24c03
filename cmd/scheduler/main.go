package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
	"wellness/internal/app/deps"
	"wellness/internal/app/services"
	"wellness/internal/core/domain/logging"
	schedulereminders "wellness/internal/core/services/schedule_reminders"
)

func main() {
	deps, shutdownDeps := deps.InitDeps()
	log := deps.Logger
	defer shutdownDeps()

	services := services.InitServices(deps)

	ticker := time.NewTicker(deps.Config.DispatchSchedulingPeriod)
	defer ticker.Stop()

	stopCh, closeCh := createChannel()
	defer closeCh()

	log.Info(
		context.Background(),
		"Starting periodic dispatch scheduler.",
		logging.Entry("periodMinutes", (deps.Config.DispatchSchedulingPeriod).Minutes()),
	)

loop:
	for {
		select {
		case <-stopCh:
			log.Info(context.Background(), "Stopping periodic dispatch scheduler.")
			break loop
		case <-ticker.C:
			result, err := services.ScheduleReminders.Run(context.Background(), schedulereminders.Input{})
			if err != nil {
				log.Error(context.Background(), "Scheduling service returned an error.", logging.Entry("err", err))
				continue
			}
			log.Info(
				context.Background(),
				"Dispatch scheduling finished.",
				logging.Entry("scheduledCount", result.ScheduledCount),
			)
		}
	}
}

func createChannel() (chan os.Signal, func()) {
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	return stopCh, func() {
		close(stopCh)
	}
}
