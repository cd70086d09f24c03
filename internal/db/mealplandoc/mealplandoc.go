package mealplandoc

import (
	"context"
	"encoding/json"
	"errors"
	e "wellness/internal/core/domain/errors"
	"wellness/internal/core/domain/mealplan"
	"wellness/internal/core/domain/user"
	"wellness/internal/db"

	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
)

type PgxMealPlanRepository struct {
	db db.Querier
}

func NewPgxMealPlanRepository(querier db.Querier) *PgxMealPlanRepository {
	if querier == nil {
		panic(e.NewNilArgumentError("querier"))
	}
	return &PgxMealPlanRepository{db: querier}
}

func (r *PgxMealPlanRepository) Put(
	ctx context.Context,
	userID user.ID,
	details []mealplan.PlanEntry,
) error {
	if details == nil {
		details = make([]mealplan.PlanEntry, 0)
	}
	encoded, err := json.Marshal(details)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO meal_plan_documents (user_id, details)
		 VALUES ($1, $2::jsonb)
		 ON CONFLICT (user_id) DO UPDATE SET details = excluded.details`,
		string(userID),
		encoded,
	)
	return err
}

func (r *PgxMealPlanRepository) Get(
	ctx context.Context,
	userID user.ID,
) (doc mealplan.Document, err error) {
	var rawDetails pgtype.JSONB
	err = r.db.QueryRow(
		ctx,
		`SELECT details FROM meal_plan_documents WHERE user_id = $1`,
		string(userID),
	).Scan(&rawDetails)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return doc, mealplan.ErrDocumentDoesNotExist
		}
		return doc, err
	}

	doc.UserID = userID
	if err := json.Unmarshal(rawDetails.Bytes, &doc.Details); err != nil {
		return mealplan.Document{}, err
	}
	return doc, nil
}
