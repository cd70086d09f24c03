package reminderdoc

import (
	"context"
	"encoding/json"
	"errors"
	e "wellness/internal/core/domain/errors"
	"wellness/internal/core/domain/reminder"
	"wellness/internal/core/domain/user"
	"wellness/internal/db"

	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
)

type PgxDocumentRepository struct {
	db db.Querier
}

func NewPgxDocumentRepository(querier db.Querier) *PgxDocumentRepository {
	if querier == nil {
		panic(e.NewNilArgumentError("querier"))
	}
	return &PgxDocumentRepository{db: querier}
}

func (r *PgxDocumentRepository) Append(
	ctx context.Context,
	userID user.ID,
	entry reminder.Entry,
) (doc reminder.Document, err error) {
	encoded, err := json.Marshal(entry)
	if err != nil {
		return doc, err
	}

	var rawEntries pgtype.JSONB
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO reminder_documents (user_id, entries)
		 VALUES ($1, jsonb_build_array($2::jsonb))
		 ON CONFLICT (user_id)
		 DO UPDATE SET entries = reminder_documents.entries || excluded.entries
		 RETURNING entries`,
		string(userID),
		encoded,
	).Scan(&rawEntries)
	if err != nil {
		return doc, err
	}
	return decodeDocument(userID, rawEntries.Bytes)
}

func (r *PgxDocumentRepository) Get(
	ctx context.Context,
	userID user.ID,
) (doc reminder.Document, err error) {
	var rawEntries pgtype.JSONB
	err = r.db.QueryRow(
		ctx,
		`SELECT entries FROM reminder_documents WHERE user_id = $1`,
		string(userID),
	).Scan(&rawEntries)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return doc, reminder.ErrDocumentDoesNotExist
		}
		return doc, err
	}
	return decodeDocument(userID, rawEntries.Bytes)
}

func (r *PgxDocumentRepository) UpdateEntry(
	ctx context.Context,
	userID user.ID,
	entry reminder.Entry,
) (doc reminder.Document, err error) {
	encoded, err := json.Marshal(entry)
	if err != nil {
		return doc, err
	}

	var rawEntries pgtype.JSONB
	err = r.db.QueryRow(
		ctx,
		`UPDATE reminder_documents
		 SET entries = (
			SELECT jsonb_agg(
				CASE WHEN elem->>'id' = $2 THEN $3::jsonb ELSE elem END
				ORDER BY ord
			)
			FROM jsonb_array_elements(reminder_documents.entries)
				WITH ORDINALITY AS t(elem, ord)
		 )
		 WHERE user_id = $1
			AND entries @> jsonb_build_array(jsonb_build_object('id', $2::text))
		 RETURNING entries`,
		string(userID),
		string(entry.ID),
		encoded,
	).Scan(&rawEntries)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return doc, r.missingUpdateError(ctx, userID)
		}
		return doc, err
	}
	return decodeDocument(userID, rawEntries.Bytes)
}

func (r *PgxDocumentRepository) Delete(ctx context.Context, userID user.ID) error {
	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM reminder_documents WHERE user_id = $1`,
		string(userID),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return reminder.ErrDocumentDoesNotExist
	}
	return nil
}

// missingUpdateError tells a missing document apart from a missing entry
// after an in-place update matched no row.
func (r *PgxDocumentRepository) missingUpdateError(ctx context.Context, userID user.ID) error {
	var exists bool
	err := r.db.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM reminder_documents WHERE user_id = $1)`,
		string(userID),
	).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		return reminder.ErrDocumentDoesNotExist
	}
	return reminder.ErrEntryDoesNotExist
}

func decodeDocument(userID user.ID, rawEntries []byte) (reminder.Document, error) {
	doc := reminder.Document{UserID: userID}
	if len(rawEntries) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(rawEntries, &doc.Entries); err != nil {
		return reminder.Document{}, err
	}
	return doc, nil
}
