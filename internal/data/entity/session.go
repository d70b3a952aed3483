package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuthSession is a stored refresh token. Only the SHA-256 hash of the raw
// token ever touches the database.
type AuthSession struct {
	BaseSimple
	UserID    uuid.UUID  `db:"user_id"`
	TokenHash string     `db:"token_hash"`
	ExpiresAt time.Time  `db:"expires_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}
