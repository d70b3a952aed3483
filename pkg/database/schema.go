package database

import (
	"context"
	"fmt"
)

// UniqueSeatConstraint is the index backing the one-ticket-per-seat rule.
// Repositories match it by name when translating unique violations.
const UniqueSeatConstraint = "tickets_session_row_seat_key"

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            UUID PRIMARY KEY,
		username      TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role          TEXT NOT NULL DEFAULT 'user',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS auth_sessions (
		id         UUID PRIMARY KEY,
		user_id    UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		token_hash TEXT NOT NULL UNIQUE,
		expires_at TIMESTAMPTZ NOT NULL,
		revoked_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS genres (
		id         UUID PRIMARY KEY,
		name       TEXT NOT NULL UNIQUE CHECK (name <> ''),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS actors (
		id         UUID PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name  TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS cinema_halls (
		id           UUID PRIMARY KEY,
		name         TEXT NOT NULL,
		rows         INT NOT NULL CHECK (rows > 0),
		seats_in_row INT NOT NULL CHECK (seats_in_row > 0),
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS movies (
		id          UUID PRIMARY KEY,
		title       TEXT NOT NULL,
		description TEXT NOT NULL,
		duration    INT NOT NULL CHECK (duration > 0),
		image       TEXT,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS movie_genres (
		movie_id UUID NOT NULL REFERENCES movies(id) ON DELETE CASCADE,
		genre_id UUID NOT NULL REFERENCES genres(id) ON DELETE CASCADE,
		PRIMARY KEY (movie_id, genre_id)
	)`,
	`CREATE TABLE IF NOT EXISTS movie_actors (
		movie_id UUID NOT NULL REFERENCES movies(id) ON DELETE CASCADE,
		actor_id UUID NOT NULL REFERENCES actors(id) ON DELETE CASCADE,
		PRIMARY KEY (movie_id, actor_id)
	)`,
	`CREATE TABLE IF NOT EXISTS movie_sessions (
		id             UUID PRIMARY KEY,
		show_time      TIMESTAMPTZ NOT NULL,
		movie_id       UUID NOT NULL REFERENCES movies(id),
		cinema_hall_id UUID NOT NULL REFERENCES cinema_halls(id),
		created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id         UUID PRIMARY KEY,
		user_id    UUID NOT NULL REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS tickets (
		id               UUID PRIMARY KEY,
		order_id         UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		movie_session_id UUID NOT NULL REFERENCES movie_sessions(id),
		seat_row         INT NOT NULL CHECK (seat_row > 0),
		seat_number      INT NOT NULL CHECK (seat_number > 0),
		created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT tickets_session_row_seat_key UNIQUE (movie_session_id, seat_row, seat_number)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_movie_sessions_show_time ON movie_sessions(show_time)`,
	`CREATE INDEX IF NOT EXISTS idx_movie_sessions_movie_id ON movie_sessions(movie_id)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_user_id ON orders(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_auth_sessions_expires_at ON auth_sessions(expires_at)`,
}

// CreateDatabaseSchema bootstraps all tables. Statements are idempotent so
// running it on every startup is safe.
func CreateDatabaseSchema(ctx context.Context, db PgxIface) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement: %w", err)
		}
	}
	return nil
}
