// Copyright (c) 2025 Zampapp. All Rights Reserved.
// This is licensed software from Zampapp, for limitations
// and restrictions contact your company contract manager.

// Package snapshot caches the per-user view the engine evaluates over:
// the challenge list, the entitlement snapshot, and the attempt
// statuses. Last write wins; the engine itself never reads this cache,
// the host passes snapshots in by value.
package snapshot

import (
	"time"

	"github.com/zampapp/challenge-engine/pkg/challenge"
)

// Snapshot is one consistent fetch of everything the engine needs for a
// user. Attempts is keyed by challenge id.
type Snapshot struct {
	User       *challenge.User                     `json:"user"`
	Challenges []*challenge.Challenge              `json:"challenges"`
	Attempts   map[string]*challenge.AttemptStatus `json:"attempts"`
	FetchedAt  time.Time                           `json:"fetchedAt"`
}

// New creates an empty snapshot stamped with now.
func New(now time.Time) *Snapshot {
	return &Snapshot{
		Attempts:  make(map[string]*challenge.AttemptStatus),
		FetchedAt: now,
	}
}
