package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"peerskill/api/internal/models"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
)

const userColumns = `id, email, name, contact, password_hash, teach, learn, study_year, branch,
	       skill_points, rating, reviews, avatar_url, role, created_at, updated_at`

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func scanUser(row pgx.Row) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.Contact,
		&user.PasswordHash,
		&user.Teach,
		&user.Learn,
		&user.StudyYear,
		&user.Branch,
		&user.SkillPoints,
		&user.Rating,
		&user.Reviews,
		&user.AvatarURL,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	return user, err
}

func collectUsers(rows pgx.Rows) ([]models.User, error) {
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *UserRepository) Create(ctx context.Context, user models.User) error {
	const query = `
		INSERT INTO users (
			id, email, name, contact, password_hash, teach, learn, study_year, branch,
			skill_points, rating, reviews, avatar_url, role, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9,
			$10, $11, $12, $13, $14, NOW(), NOW()
		)
	`

	_, err := r.pool.Exec(ctx, query,
		user.ID,
		user.Email,
		user.Name,
		user.Contact,
		user.PasswordHash,
		user.Teach,
		user.Learn,
		user.StudyYear,
		user.Branch,
		user.SkillPoints,
		user.Rating,
		user.Reviews,
		user.AvatarURL,
		user.Role,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrEmailTaken
	}
	return err
}

// FindByEmail folds case: emails are stored as typed at signup but matched
// insensitively everywhere.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1)`
	return scanUser(r.pool.QueryRow(ctx, query, email))
}

func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return collectUsers(rows)
}

// ListOthers returns every user except the given email, in store order.
func (r *UserRepository) ListOthers(ctx context.Context, email string) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) <> LOWER($1) ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	return collectUsers(rows)
}

func (r *UserRepository) TopBySkillPoints(ctx context.Context, limit int) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY skill_points DESC, created_at LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	return collectUsers(rows)
}

func (r *UserRepository) UpdateProfile(ctx context.Context, email string, update models.ProfileUpdate) error {
	const query = `
		UPDATE users SET
			name       = COALESCE($2, name),
			contact    = COALESCE($3, contact),
			teach      = COALESCE($4, teach),
			learn      = COALESCE($5, learn),
			study_year = COALESCE($6, study_year),
			branch     = COALESCE($7, branch),
			avatar_url = COALESCE($8, avatar_url),
			updated_at = NOW()
		WHERE LOWER(email) = LOWER($1)
	`

	cmd, err := r.pool.Exec(ctx, query,
		email,
		update.Name,
		update.Contact,
		update.Teach,
		update.Learn,
		update.StudyYear,
		update.Branch,
		update.AvatarURL,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) SetAvatarURL(ctx context.Context, id string, url string) error {
	const query = `UPDATE users SET avatar_url = $2, updated_at = NOW() WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query, id, url)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// SetSkillPoints replaces the balance outright (admin grant/correction).
func (r *UserRepository) SetSkillPoints(ctx context.Context, email string, points int) error {
	const query = `UPDATE users SET skill_points = $2, updated_at = NOW() WHERE LOWER(email) = LOWER($1)`
	cmd, err := r.pool.Exec(ctx, query, email, points)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// CompareAndSetRating applies one rating event only if the review counter
// still matches the value the caller read. Concurrent raters lose the race
// cleanly and retry instead of clobbering each other.
func (r *UserRepository) CompareAndSetRating(ctx context.Context, id string, seenReviews int, rating float64, pointsDelta int) (bool, error) {
	const query = `
		UPDATE users SET
			rating       = $3,
			reviews      = reviews + 1,
			skill_points = skill_points + $4,
			updated_at   = NOW()
		WHERE id = $1 AND reviews = $2
	`

	cmd, err := r.pool.Exec(ctx, query, id, seenReviews, rating, pointsDelta)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() == 1, nil
}

func (r *UserRepository) DeleteByEmail(ctx context.Context, email string) error {
	const query = `DELETE FROM users WHERE LOWER(email) = LOWER($1)`
	cmd, err := r.pool.Exec(ctx, query, email)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}
