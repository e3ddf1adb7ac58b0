// Copyright (c) 2025 Zampapp. All Rights Reserved.
// This is licensed software from Zampapp, for limitations
// and restrictions contact your company contract manager.

package challenge

import (
	"time"
)

// GameMode is the tier/monetization class of a challenge.
type GameMode string

const (
	ModeFree    GameMode = "free"
	ModePro     GameMode = "pro"
	ModePremium GameMode = "premium"
	ModeVIP     GameMode = "vip"
	ModePaid    GameMode = "paid"
)

// PackageType is a user's subscription level.
type PackageType string

const (
	PackageFree    PackageType = "free"
	PackagePro     PackageType = "pro"
	PackagePremium PackageType = "premium"
	PackageVIP     PackageType = "vip"
)

// Timestamp is a parsed backend timestamp. Backend payloads carry dates in
// several formats and occasionally carry garbage; a Timestamp with
// Valid == false represents a missing or unparseable value and every
// consumer must treat it as such instead of reading a zero time.
type Timestamp struct {
	Time  time.Time
	Valid bool
}

// Before reports whether the timestamp is valid and strictly before t.
func (ts Timestamp) Before(t time.Time) bool {
	return ts.Valid && ts.Time.Before(t)
}

// After reports whether the timestamp is valid and strictly after t.
func (ts Timestamp) After(t time.Time) bool {
	return ts.Valid && ts.Time.After(t)
}

// User is the entitlement snapshot of the authenticated session.
// The engine never mutates it.
type User struct {
	ID               string
	PackageType      PackageType
	PackageExpiresAt Timestamp
}

// Participant records a single membership in a challenge.
type Participant struct {
	UserID string
}

// Purchase records a completed purchase of a paid challenge.
type Purchase struct {
	UserID      string
	PricePaid   float64
	PurchasedAt Timestamp
}

// Game describes the minigame a challenge is played with.
type Game struct {
	Type              string
	MaxAttemptsPerDay int
}

// Challenge is an immutable snapshot of a time-boxed competitive event.
// Invariant from the backend: StartDate <= JoinDeadline <= EndDate.
type Challenge struct {
	ID              string
	Name            string
	GameMode        GameMode
	Price           float64
	UserPrice       *float64
	StartDate       Timestamp
	JoinDeadline    Timestamp
	EndDate         Timestamp
	MaxParticipants int
	Participants    []Participant
	PurchasedBy     []Purchase
	Game            Game
	Prize           string
}

// EffectivePrice returns the per-user override when present, the base
// price otherwise.
func (c *Challenge) EffectivePrice() float64 {
	if c.UserPrice != nil {
		return *c.UserPrice
	}
	return c.Price
}

// IsParticipating reports whether userID holds a membership record.
// Empty user ids never participate.
func (c *Challenge) IsParticipating(userID string) bool {
	if userID == "" {
		return false
	}
	for _, p := range c.Participants {
		if p.UserID == userID {
			return true
		}
	}
	return false
}

// IsFull reports whether the participant cap has been reached.
// MaxParticipants <= 0 means unlimited.
func (c *Challenge) IsFull() bool {
	return c.MaxParticipants > 0 && len(c.Participants) >= c.MaxParticipants
}

// AttemptStatus is the per-user, per-challenge daily play-eligibility
// snapshot supplied by the game-attempt service. Optional fields stay
// pointers: the tracker degrades to the best available signal.
type AttemptStatus struct {
	CanPlay           *bool
	RemainingAttempts *int
	NextResetDate     Timestamp
}
