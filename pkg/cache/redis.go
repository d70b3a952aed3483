package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cinema-api/pkg/utils"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// SeatTuple identifies a physical place inside a hall.
type SeatTuple struct {
	Row  int `json:"row"`
	Seat int `json:"seat"`
}

// SeatCache keeps the taken-seat map of a movie session in Redis so the
// seats endpoint does not hit Postgres on every poll. Entries are
// short-lived and dropped eagerly whenever a booking lands.
type SeatCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func InitRedis(config utils.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis failed: %w", err)
	}

	return client, nil
}

func NewSeatCache(client *redis.Client, ttlSeconds int, log *zap.Logger) *SeatCache {
	if ttlSeconds <= 0 {
		ttlSeconds = 30
	}
	return &SeatCache{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
		log:    log.With(zap.String("cache", "seats")),
	}
}

func seatKey(sessionID uuid.UUID) string {
	return "session:" + sessionID.String() + ":taken"
}

// GetTakenSeats returns the cached seat map, or (nil, false) on a miss.
// Redis failures degrade to a miss so booking reads never depend on Redis.
func (c *SeatCache) GetTakenSeats(ctx context.Context, sessionID uuid.UUID) ([]SeatTuple, bool) {
	raw, err := c.client.Get(ctx, seatKey(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.log.Warn("Seat cache read failed", zap.Error(err), zap.String("session_id", sessionID.String()))
		return nil, false
	}

	var seats []SeatTuple
	if err := json.Unmarshal(raw, &seats); err != nil {
		c.log.Warn("Seat cache entry corrupt, dropping", zap.Error(err))
		c.client.Del(ctx, seatKey(sessionID))
		return nil, false
	}

	return seats, true
}

func (c *SeatCache) SetTakenSeats(ctx context.Context, sessionID uuid.UUID, seats []SeatTuple) {
	raw, err := json.Marshal(seats)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, seatKey(sessionID), raw, c.ttl).Err(); err != nil {
		c.log.Warn("Seat cache write failed", zap.Error(err), zap.String("session_id", sessionID.String()))
	}
}

// Invalidate drops the seat map after a successful booking.
func (c *SeatCache) Invalidate(ctx context.Context, sessionID uuid.UUID) {
	if err := c.client.Del(ctx, seatKey(sessionID)).Err(); err != nil {
		c.log.Warn("Seat cache invalidation failed", zap.Error(err), zap.String("session_id", sessionID.String()))
	}
}
