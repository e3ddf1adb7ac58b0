// Copyright (c) 2025 Zampapp. All Rights Reserved.
// This is licensed software from Zampapp, for limitations
// and restrictions contact your company contract manager.

// Package attempt interprets the attempt-status snapshots the
// game-attempt service hands out. The tracker never computes or
// decrements attempt counts itself; the authoritative numbers always
// come from the next fetch.
package attempt

import (
	"time"

	"github.com/zampapp/challenge-engine/pkg/challenge"
)

// CanPlayNow reports whether the user may start an attempt right now.
// An explicit CanPlay flag wins; with no flag the remaining-attempts
// counter decides; with neither present the status carries no blocking
// signal and play is allowed (the server rejects over-play anyway).
func CanPlayNow(status *challenge.AttemptStatus) bool {
	if status == nil {
		return true
	}
	if status.CanPlay != nil {
		return *status.CanPlay
	}
	if status.RemainingAttempts != nil {
		return *status.RemainingAttempts > 0
	}
	return true
}

// TimeUntilReset returns how long until the daily attempt counter
// resets. It reports false when play is already allowed or when the
// reset date is missing or unparseable; a reset date in the past floors
// at zero.
func TimeUntilReset(status *challenge.AttemptStatus, now time.Time) (time.Duration, bool) {
	if CanPlayNow(status) {
		return 0, false
	}
	if !status.NextResetDate.Valid {
		return 0, false
	}
	d := status.NextResetDate.Time.Sub(now)
	if d < 0 {
		d = 0
	}
	return d, true
}
