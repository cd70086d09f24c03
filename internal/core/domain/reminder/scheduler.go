package reminder

import (
	"context"
	"time"
)

// Occurrences due within this window are armed immediately; anything later
// is picked up by the periodic scheduling sweep.
const DURATION_FOR_SCHEDULING = 5 * time.Minute

type Scheduler interface {
	ScheduleDispatch(ctx context.Context, d Dispatch) error
}
