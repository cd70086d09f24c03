package schedulereminders

import (
	"context"
	"time"
	e "wellness/internal/core/domain/errors"
	"wellness/internal/core/domain/logging"
	"wellness/internal/core/domain/reminder"
	"wellness/internal/core/services"
)

type Input struct{}

type Result struct {
	ScheduledCount int
}

type service struct {
	log        logging.Logger
	dispatches reminder.DispatchRepository
	scheduler  reminder.Scheduler
	now        func() time.Time
}

func New(
	log logging.Logger,
	dispatches reminder.DispatchRepository,
	scheduler reminder.Scheduler,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if dispatches == nil {
		panic(e.NewNilArgumentError("dispatches"))
	}
	if scheduler == nil {
		panic(e.NewNilArgumentError("scheduler"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{log: log, dispatches: dispatches, scheduler: scheduler, now: now}
}

// Run claims every unclaimed occurrence due within the scheduling window and
// hands it to the scheduler. Claimed rows survive restarts, so a crash after
// claiming leaves at most one sweep's worth of occurrences to re-arm by hand.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	now := s.now()
	claimed, err := s.dispatches.Schedule(ctx, reminder.ScheduleDispatchesInput{
		AtBefore:    now.Add(reminder.DURATION_FOR_SCHEDULING),
		ScheduledAt: now,
	})
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}

	for _, dispatch := range claimed {
		if err := s.scheduler.ScheduleDispatch(ctx, dispatch); err != nil {
			logging.Error(
				ctx,
				s.log,
				err,
				logging.Entry("entryID", dispatch.EntryID),
				logging.Entry("fireAt", dispatch.FireAt),
			)
			return result, err
		}
		result.ScheduledCount++
	}

	if result.ScheduledCount > 0 {
		s.log.Info(
			ctx,
			"Reminder dispatches successfully scheduled.",
			logging.Entry("count", result.ScheduledCount),
		)
	}
	return result, nil
}
