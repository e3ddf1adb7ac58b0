// Copyright (c) 2025 Zampapp. All Rights Reserved.
// This is licensed software from Zampapp, for limitations
// and restrictions contact your company contract manager.

// Package timewindow evaluates challenge time gates: whether a challenge
// can still be joined, whether it is active, and how much time remains.
// Every function is total; invalid timestamps gate closed rather than
// panic.
package timewindow

import (
	"time"

	"github.com/zampapp/challenge-engine/pkg/challenge"
)

// Joinable reports whether the join window is still open.
// An invalid deadline means the window is closed.
func Joinable(c *challenge.Challenge, now time.Time) bool {
	return c != nil && c.JoinDeadline.After(now)
}

// Active reports whether the challenge has not yet ended. A challenge is
// treated as active any time before its end date, even before its start
// date: the product deliberately shows upcoming challenges early.
// An invalid end date means not active.
func Active(c *challenge.Challenge, now time.Time) bool {
	return c != nil && c.EndDate.After(now)
}

// Expired is the negation of Active.
func Expired(c *challenge.Challenge, now time.Time) bool {
	return !Active(c, now)
}
