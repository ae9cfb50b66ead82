package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const listSurveysQuery = `
	SELECT s.id, s.question, s.answers, s.created_at,
		EXISTS (
			SELECT 1 FROM survey_results r
			WHERE r.survey_id = s.id AND r.account_id = $1
		) AS did_answer
	FROM surveys s
	ORDER BY s.created_at DESC, s.id
`

const countSurveysQuery = `SELECT count(*) FROM surveys`

const insertSurveyQuery = `
	INSERT INTO surveys (id, question, answers, created_at)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (id) DO NOTHING
`

// Repository is the Postgres implementation of SurveyRepository.
type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) ListSurveys(ctx context.Context, accountID uuid.UUID) ([]Survey, error) {
	rows, err := r.pool.Query(ctx, listSurveysQuery, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	surveys := make([]Survey, 0)
	for rows.Next() {
		var survey Survey
		if err := rows.Scan(&survey.ID, &survey.Question, &survey.Answers, &survey.Date, &survey.DidAnswer); err != nil {
			return nil, err
		}
		surveys = append(surveys, survey)
	}
	return surveys, rows.Err()
}

// SeedIfEmpty inserts surveys when the table has no rows yet. It returns the
// number of inserted surveys.
func (r *Repository) SeedIfEmpty(ctx context.Context, surveys []Survey) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, countSurveysQuery).Scan(&count); err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, survey := range surveys {
		batch.Queue(insertSurveyQuery, survey.ID, survey.Question, survey.Answers, survey.Date)
	}
	if err := r.pool.SendBatch(ctx, batch).Close(); err != nil {
		return 0, err
	}
	return len(surveys), nil
}
