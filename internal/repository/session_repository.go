package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"peerskill/api/internal/models"
)

type SessionRepository struct {
	pool *pgxpool.Pool
}

func NewSessionRepository(pool *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{pool: pool}
}

func (r *SessionRepository) Create(ctx context.Context, session models.Session) error {
	const query = `
		INSERT INTO sessions (id, scheduler_email, peer_email, skill, date_time, link, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`

	_, err := r.pool.Exec(ctx, query,
		session.ID,
		session.SchedulerEmail,
		session.PeerEmail,
		session.Skill,
		session.DateTime,
		session.Link,
	)
	return err
}

// ListByParticipant returns sessions where the email is either party,
// newest first.
func (r *SessionRepository) ListByParticipant(ctx context.Context, email string) ([]models.Session, error) {
	const query = `
		SELECT id, scheduler_email, peer_email, skill, date_time, link, created_at
		FROM sessions
		WHERE LOWER(scheduler_email) = LOWER($1) OR LOWER(peer_email) = LOWER($1)
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	return collectSessions(rows)
}

func (r *SessionRepository) List(ctx context.Context) ([]models.Session, error) {
	const query = `
		SELECT id, scheduler_email, peer_email, skill, date_time, link, created_at
		FROM sessions
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return collectSessions(rows)
}

// DeleteByParticipant removes sessions referencing the email on either side.
func (r *SessionRepository) DeleteByParticipant(ctx context.Context, email string) error {
	const query = `
		DELETE FROM sessions
		WHERE LOWER(scheduler_email) = LOWER($1) OR LOWER(peer_email) = LOWER($1)
	`
	_, err := r.pool.Exec(ctx, query, email)
	return err
}

func collectSessions(rows pgx.Rows) ([]models.Session, error) {
	defer rows.Close()

	var sessions []models.Session
	for rows.Next() {
		var session models.Session
		if err := rows.Scan(
			&session.ID,
			&session.SchedulerEmail,
			&session.PeerEmail,
			&session.Skill,
			&session.DateTime,
			&session.Link,
			&session.CreatedAt,
		); err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}
