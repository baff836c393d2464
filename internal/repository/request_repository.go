package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"peerskill/api/internal/models"
)

type RequestRepository struct {
	pool *pgxpool.Pool
}

func NewRequestRepository(pool *pgxpool.Pool) *RequestRepository {
	return &RequestRepository{pool: pool}
}

func (r *RequestRepository) Create(ctx context.Context, request models.SkillRequest) error {
	const query = `
		INSERT INTO skill_requests (id, email, name, skill, status, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`

	_, err := r.pool.Exec(ctx, query,
		request.ID,
		request.Email,
		request.Name,
		request.Skill,
		request.Status,
	)
	return err
}

func (r *RequestRepository) List(ctx context.Context) ([]models.SkillRequest, error) {
	const query = `
		SELECT id, email, name, skill, status, created_at
		FROM skill_requests
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return collectRequests(rows)
}

func (r *RequestRepository) DeleteByEmail(ctx context.Context, email string) error {
	const query = `DELETE FROM skill_requests WHERE LOWER(email) = LOWER($1)`
	_, err := r.pool.Exec(ctx, query, email)
	return err
}

func collectRequests(rows pgx.Rows) ([]models.SkillRequest, error) {
	defer rows.Close()

	var requests []models.SkillRequest
	for rows.Next() {
		var request models.SkillRequest
		if err := rows.Scan(
			&request.ID,
			&request.Email,
			&request.Name,
			&request.Skill,
			&request.Status,
			&request.CreatedAt,
		); err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	return requests, rows.Err()
}
