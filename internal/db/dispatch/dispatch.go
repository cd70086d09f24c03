package dispatch

import (
	"context"
	"database/sql"
	"errors"
	"time"
	c "wellness/internal/core/domain/common"
	e "wellness/internal/core/domain/errors"
	"wellness/internal/core/domain/reminder"
	"wellness/internal/core/domain/user"
	"wellness/internal/db"

	"github.com/jackc/pgx/v4"
)

type PgxDispatchRepository struct {
	db db.Querier
}

func NewPgxDispatchRepository(querier db.Querier) *PgxDispatchRepository {
	if querier == nil {
		panic(e.NewNilArgumentError("querier"))
	}
	return &PgxDispatchRepository{db: querier}
}

func (r *PgxDispatchRepository) Create(
	ctx context.Context,
	input reminder.CreateDispatchInput,
) (bool, error) {
	tag, err := r.db.Exec(
		ctx,
		`INSERT INTO reminder_dispatches (entry_id, user_id, fire_at, scheduled_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (entry_id, fire_at) DO NOTHING`,
		string(input.EntryID),
		string(input.UserID),
		input.FireAt,
		nullTime(input.ScheduledAt),
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *PgxDispatchRepository) Get(
	ctx context.Context,
	entryID reminder.EntryID,
	fireAt time.Time,
) (d reminder.Dispatch, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT entry_id, user_id, fire_at, scheduled_at, sent_at
		 FROM reminder_dispatches
		 WHERE entry_id = $1 AND fire_at = $2`,
		string(entryID),
		fireAt,
	)
	d, err = decodeDispatch(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return d, reminder.ErrDispatchDoesNotExist
		}
		return d, err
	}
	return d, nil
}

func (r *PgxDispatchRepository) Schedule(
	ctx context.Context,
	input reminder.ScheduleDispatchesInput,
) (dispatches []reminder.Dispatch, err error) {
	rows, err := r.db.Query(
		ctx,
		`UPDATE reminder_dispatches
		 SET scheduled_at = $2
		 WHERE fire_at <= $1 AND scheduled_at IS NULL AND sent_at IS NULL
		 RETURNING entry_id, user_id, fire_at, scheduled_at, sent_at`,
		input.AtBefore,
		input.ScheduledAt,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		d, err := decodeDispatch(rows)
		if err != nil {
			return nil, err
		}
		dispatches = append(dispatches, d)
	}
	return dispatches, rows.Err()
}

func (r *PgxDispatchRepository) MarkSent(
	ctx context.Context,
	entryID reminder.EntryID,
	fireAt time.Time,
	sentAt time.Time,
) (bool, error) {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE reminder_dispatches
		 SET sent_at = $3
		 WHERE entry_id = $1 AND fire_at = $2 AND sent_at IS NULL`,
		string(entryID),
		fireAt,
		sentAt,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *PgxDispatchRepository) DeletePendingByEntry(
	ctx context.Context,
	entryID reminder.EntryID,
) error {
	_, err := r.db.Exec(
		ctx,
		`DELETE FROM reminder_dispatches WHERE entry_id = $1 AND sent_at IS NULL`,
		string(entryID),
	)
	return err
}

func (r *PgxDispatchRepository) DeletePendingByUser(ctx context.Context, userID user.ID) error {
	_, err := r.db.Exec(
		ctx,
		`DELETE FROM reminder_dispatches WHERE user_id = $1 AND sent_at IS NULL`,
		string(userID),
	)
	return err
}

func decodeDispatch(row pgx.Row) (d reminder.Dispatch, err error) {
	var (
		entryID     string
		userID      string
		scheduledAt sql.NullTime
		sentAt      sql.NullTime
	)
	err = row.Scan(&entryID, &userID, &d.FireAt, &scheduledAt, &sentAt)
	if err != nil {
		return d, err
	}
	d.EntryID = reminder.EntryID(entryID)
	d.UserID = user.ID(userID)
	d.ScheduledAt = c.NewOptional(scheduledAt.Time, scheduledAt.Valid)
	d.SentAt = c.NewOptional(sentAt.Time, sentAt.Valid)
	return d, nil
}

func nullTime(t c.Optional[time.Time]) sql.NullTime {
	return sql.NullTime{Time: t.Value, Valid: t.IsPresent}
}
