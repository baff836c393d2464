package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		email         TEXT NOT NULL,
		name          TEXT NOT NULL,
		contact       TEXT NOT NULL DEFAULT '',
		password_hash BYTEA NOT NULL,
		teach         TEXT[] NOT NULL DEFAULT '{}',
		learn         TEXT[] NOT NULL DEFAULT '{}',
		study_year    TEXT NOT NULL DEFAULT '',
		branch        TEXT NOT NULL DEFAULT '',
		skill_points  INTEGER NOT NULL DEFAULT 0 CHECK (skill_points >= 0),
		rating        DOUBLE PRECISION NOT NULL DEFAULT 0,
		reviews       INTEGER NOT NULL DEFAULT 0 CHECK (reviews >= 0),
		avatar_url    TEXT,
		role          TEXT NOT NULL DEFAULT 'user',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS users_email_lower_idx ON users (LOWER(email))`,
	`CREATE TABLE IF NOT EXISTS skill_requests (
		id         TEXT PRIMARY KEY,
		email      TEXT NOT NULL,
		name       TEXT NOT NULL,
		skill      TEXT NOT NULL,
		status     TEXT NOT NULL DEFAULT 'Open',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS sessions (
		id              TEXT PRIMARY KEY,
		scheduler_email TEXT NOT NULL,
		peer_email      TEXT NOT NULL,
		skill           TEXT NOT NULL,
		date_time       TEXT NOT NULL,
		link            TEXT NOT NULL,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS notifications (
		id         TEXT PRIMARY KEY,
		email      TEXT NOT NULL,
		message    TEXT NOT NULL,
		read       BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// EnsureSchema creates the four collections if they do not exist yet.
// Referential integrity between them is intentionally absent: records point
// at users by plain email strings and the admin delete handler cascades by
// hand.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
