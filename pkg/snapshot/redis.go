// Copyright (c) 2025 Zampapp. All Rights Reserved.
// This is licensed software from Zampapp, for limitations
// and restrictions contact your company contract manager.

package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultTTL bounds how stale a cached snapshot may get before the
	// next refresh must hit the backend.
	DefaultTTL = 15 * time.Minute
	// KeyPrefix is the prefix for all snapshot keys.
	KeyPrefix = "challenge_engine:snapshot:"
)

// Store persists snapshots in Redis, one per user, last write wins.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore creates a snapshot store with the default TTL.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client, ttl: DefaultTTL}
}

// NewStoreWithTTL creates a snapshot store with a custom TTL.
func NewStoreWithTTL(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// InitRedisClient connects to Redis, retrying with exponential backoff.
func InitRedisClient(ctx context.Context, addr, password string, maxRetries uint64) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0, // use default DB
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	b := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries),
		ctx,
	)

	err := backoff.Retry(
		func() error {
			if _, err := client.Ping(ctx).Result(); err != nil {
				logrus.Warnf("Redis connection failed: %v, retrying...", err)
				return err
			}
			return nil
		},
		b,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}

	logrus.Infof("connected to Redis at %s", addr)
	return client, nil
}

func makeKey(userID string) string {
	return KeyPrefix + userID
}

// Get retrieves the cached snapshot for a user. A cache miss returns
// (nil, nil); the caller decides whether to fetch fresh.
func (s *Store) Get(ctx context.Context, userID string) (*Snapshot, error) {
	data, err := s.client.Get(ctx, makeKey(userID)).Result()
	if err == redis.Nil {
		logrus.Debugf("no cached snapshot for user %s", userID)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting snapshot for user %s: %w", userID, err)
	}

	var snap Snapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return nil, fmt.Errorf("unmarshalling snapshot for user %s: %w", userID, err)
	}
	return &snap, nil
}

// Put stores a snapshot for a user, replacing any previous one.
func (s *Store) Put(ctx context.Context, userID string, snap *Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshalling snapshot for user %s: %w", userID, err)
	}

	if err := s.client.Set(ctx, makeKey(userID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("setting snapshot for user %s: %w", userID, err)
	}

	logrus.Debugf("stored snapshot for user %s (%d challenges)", userID, len(snap.Challenges))
	return nil
}

// Delete drops the cached snapshot for a user.
func (s *Store) Delete(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, makeKey(userID)).Err(); err != nil {
		return fmt.Errorf("deleting snapshot for user %s: %w", userID, err)
	}
	return nil
}
