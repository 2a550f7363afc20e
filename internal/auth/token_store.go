package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const refreshTokenKeyPrefix = "refresh_token:"

// ErrTokenNotFound is returned when a refresh token is missing or expired.
var ErrTokenNotFound = errors.New("refresh token not found")

// TokenStoreInterface defines the interface for refresh-token storage.
type TokenStoreInterface interface {
	StoreRefreshToken(ctx context.Context, tokenID, userID, username string, ttl time.Duration) error
	GetRefreshToken(ctx context.Context, tokenID string) (userID, username string, err error)
	DeleteRefreshToken(ctx context.Context, tokenID string) error
}

// TokenStore handles storage and retrieval of refresh tokens in Redis.
// Unlike a cache, token state is authoritative: Redis errors propagate.
type TokenStore struct {
	client *redis.Client
}

// Ensure TokenStore implements TokenStoreInterface
var _ TokenStoreInterface = (*TokenStore)(nil)

// NewTokenStore creates a token store on the given Redis connection.
func NewTokenStore(addr, password string, db int) *TokenStore {
	return &TokenStore{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

type tokenRecord struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// StoreRefreshToken stores a refresh token with TTL.
func (s *TokenStore) StoreRefreshToken(ctx context.Context, tokenID, userID, username string, ttl time.Duration) error {
	payload, err := json.Marshal(tokenRecord{UserID: userID, Username: username})
	if err != nil {
		return fmt.Errorf("marshal token record: %w", err)
	}
	return s.client.Set(ctx, refreshTokenKeyPrefix+tokenID, payload, ttl).Err()
}

// GetRefreshToken retrieves refresh token data.
func (s *TokenStore) GetRefreshToken(ctx context.Context, tokenID string) (userID, username string, err error) {
	data, err := s.client.Get(ctx, refreshTokenKeyPrefix+tokenID).Bytes()
	if err == redis.Nil {
		return "", "", ErrTokenNotFound
	}
	if err != nil {
		return "", "", fmt.Errorf("get refresh token: %w", err)
	}

	var record tokenRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return "", "", fmt.Errorf("unmarshal token record: %w", err)
	}
	return record.UserID, record.Username, nil
}

// DeleteRefreshToken removes a refresh token.
func (s *TokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	return s.client.Del(ctx, refreshTokenKeyPrefix+tokenID).Err()
}
