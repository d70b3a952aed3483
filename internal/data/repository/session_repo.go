package repository

import (
	"context"
	"fmt"

	"cinema-api/internal/data/entity"
	"cinema-api/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AuthSessionRepository interface {
	Create(ctx context.Context, session *entity.AuthSession) error
	FindValidByTokenHash(ctx context.Context, tokenHash string) (*entity.AuthSession, error)
	Revoke(ctx context.Context, tokenHash string) error
	RevokeAllForUser(ctx context.Context, userID uuid.UUID) error
	DeleteStale(ctx context.Context) (int64, error)
}

type authSessionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAuthSessionRepository(db database.PgxIface, log *zap.Logger) AuthSessionRepository {
	return &authSessionRepository{
		db:  db,
		log: log.With(zap.String("repository", "auth_session")),
	}
}

func (r *authSessionRepository) Create(ctx context.Context, session *entity.AuthSession) error {
	query := `
		INSERT INTO auth_sessions (id, user_id, token_hash, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		session.ID,
		session.UserID,
		session.TokenHash,
		session.ExpiresAt,
		session.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create auth session",
			zap.Error(err),
			zap.String("user_id", session.UserID.String()),
		)
		return fmt.Errorf("create auth session: %w", err)
	}

	return nil
}

func (r *authSessionRepository) FindValidByTokenHash(ctx context.Context, tokenHash string) (*entity.AuthSession, error) {
	query := `
		SELECT id, user_id, token_hash, expires_at, revoked_at, created_at
		FROM auth_sessions
		WHERE token_hash = $1
		  AND revoked_at IS NULL
		  AND expires_at > NOW()
	`

	var session entity.AuthSession
	err := r.db.QueryRow(ctx, query, tokenHash).Scan(
		&session.ID,
		&session.UserID,
		&session.TokenHash,
		&session.ExpiresAt,
		&session.RevokedAt,
		&session.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find auth session", zap.Error(err))
		return nil, fmt.Errorf("find auth session: %w", err)
	}

	return &session, nil
}

func (r *authSessionRepository) Revoke(ctx context.Context, tokenHash string) error {
	query := `UPDATE auth_sessions SET revoked_at = NOW() WHERE token_hash = $1 AND revoked_at IS NULL`

	_, err := r.db.Exec(ctx, query, tokenHash)
	if err != nil {
		r.log.Error("Failed to revoke auth session", zap.Error(err))
		return fmt.Errorf("revoke auth session: %w", err)
	}

	return nil
}

func (r *authSessionRepository) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	query := `UPDATE auth_sessions SET revoked_at = NOW() WHERE user_id = $1 AND revoked_at IS NULL`

	_, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to revoke user sessions",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return fmt.Errorf("revoke user sessions: %w", err)
	}

	return nil
}

// DeleteStale removes sessions that expired or were revoked. Called by the
// scheduled cleanup job.
func (r *authSessionRepository) DeleteStale(ctx context.Context) (int64, error) {
	query := `DELETE FROM auth_sessions WHERE expires_at <= NOW() OR revoked_at IS NOT NULL`

	tag, err := r.db.Exec(ctx, query)
	if err != nil {
		r.log.Error("Failed to delete stale sessions", zap.Error(err))
		return 0, fmt.Errorf("delete stale sessions: %w", err)
	}

	return tag.RowsAffected(), nil
}
