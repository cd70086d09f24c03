package recipient

import (
	"context"
	"database/sql"
	"errors"
	c "wellness/internal/core/domain/common"
	e "wellness/internal/core/domain/errors"
	"wellness/internal/core/domain/notification"
	"wellness/internal/core/domain/user"
	"wellness/internal/db"

	"github.com/jackc/pgx/v4"
)

type PgxRecipientRepository struct {
	db db.Querier
}

func NewPgxRecipientRepository(querier db.Querier) *PgxRecipientRepository {
	if querier == nil {
		panic(e.NewNilArgumentError("querier"))
	}
	return &PgxRecipientRepository{db: querier}
}

func (r *PgxRecipientRepository) Get(
	ctx context.Context,
	userID user.ID,
) (recipient notification.Recipient, err error) {
	var (
		token sql.NullString
		email sql.NullString
	)
	err = r.db.QueryRow(
		ctx,
		`SELECT device_token, email FROM recipients WHERE user_id = $1`,
		string(userID),
	).Scan(&token, &email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return recipient, notification.ErrRecipientNotRegistered
		}
		return recipient, err
	}

	recipient.UserID = userID
	recipient.Token = c.NewOptional(notification.DeviceToken(token.String), token.Valid)
	recipient.Email = c.NewOptional(email.String, email.Valid)
	return recipient, nil
}

func (r *PgxRecipientRepository) Set(ctx context.Context, recipient notification.Recipient) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO recipients (user_id, device_token, email)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id)
		 DO UPDATE SET device_token = excluded.device_token, email = excluded.email`,
		string(recipient.UserID),
		sql.NullString{String: string(recipient.Token.Value), Valid: recipient.Token.IsPresent},
		sql.NullString{String: recipient.Email.Value, Valid: recipient.Email.IsPresent},
	)
	return err
}
