// Copyright (c) 2025 Zampapp. All Rights Reserved.
// This is licensed software from Zampapp, for limitations
// and restrictions contact your company contract manager.

package snapshot

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"

	"github.com/zampapp/challenge-engine/pkg/challenge"
)

// setupTestRedis creates a miniredis instance for testing
func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { _ = client.Close() })

	return client, mr
}

func testSnapshot(now time.Time) *Snapshot {
	remaining := 2
	snap := New(now)
	snap.User = &challenge.User{ID: "u1", PackageType: challenge.PackagePro}
	snap.Challenges = []*challenge.Challenge{
		{
			ID:       "c1",
			Name:     "Reaction Masters",
			GameMode: challenge.ModePro,
			EndDate:  challenge.Timestamp{Time: now.Add(24 * time.Hour), Valid: true},
		},
	}
	snap.Attempts["c1"] = &challenge.AttemptStatus{RemainingAttempts: &remaining}
	return snap
}

func TestStoreMiss(t *testing.T) {
	client, _ := setupTestRedis(t)
	store := NewStore(client)

	snap, err := store.Get(context.Background(), "unknown")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if snap != nil {
		t.Errorf("Get() on miss = %+v, expected nil", snap)
	}
}

func TestStoreRoundTrip(t *testing.T) {
	client, _ := setupTestRedis(t)
	store := NewStore(client)
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	if err := store.Put(ctx, "u1", testSnapshot(now)); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, err := store.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got == nil {
		t.Fatal("Get() returned nil after Put")
	}

	if got.User == nil || got.User.ID != "u1" || got.User.PackageType != challenge.PackagePro {
		t.Errorf("User = %+v", got.User)
	}
	if len(got.Challenges) != 1 || got.Challenges[0].ID != "c1" {
		t.Fatalf("Challenges = %+v", got.Challenges)
	}
	if !got.Challenges[0].EndDate.Valid {
		t.Error("EndDate validity lost in round trip")
	}
	status, ok := got.Attempts["c1"]
	if !ok || status.RemainingAttempts == nil || *status.RemainingAttempts != 2 {
		t.Errorf("Attempts[c1] = %+v", status)
	}
	if !got.FetchedAt.Equal(now) {
		t.Errorf("FetchedAt = %v, expected %v", got.FetchedAt, now)
	}
}

func TestStoreLastWriteWins(t *testing.T) {
	client, _ := setupTestRedis(t)
	store := NewStore(client)
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	if err := store.Put(ctx, "u1", testSnapshot(now)); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	second := New(now.Add(time.Minute))
	second.User = &challenge.User{ID: "u1", PackageType: challenge.PackageFree}
	if err := store.Put(ctx, "u1", second); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, err := store.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(got.Challenges) != 0 {
		t.Errorf("stale challenges survived overwrite: %+v", got.Challenges)
	}
	if got.User.PackageType != challenge.PackageFree {
		t.Errorf("PackageType = %q, expected the newer snapshot", got.User.PackageType)
	}
}

func TestStoreTTL(t *testing.T) {
	client, mr := setupTestRedis(t)
	store := NewStoreWithTTL(client, time.Minute)
	ctx := context.Background()

	if err := store.Put(ctx, "u1", testSnapshot(time.Now())); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	mr.FastForward(2 * time.Minute)

	got, err := store.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != nil {
		t.Error("snapshot survived past its TTL")
	}
}

func TestStoreDelete(t *testing.T) {
	client, _ := setupTestRedis(t)
	store := NewStore(client)
	ctx := context.Background()

	if err := store.Put(ctx, "u1", testSnapshot(time.Now())); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if err := store.Delete(ctx, "u1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	got, err := store.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != nil {
		t.Error("snapshot survived Delete")
	}
}
