// Copyright (c) 2025 Zampapp. All Rights Reserved.
// This is licensed software from Zampapp, for limitations
// and restrictions contact your company contract manager.

package challenge

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Payload DTOs mirror the backend wire shapes. The backend is externally
// owned and ships inconsistent field encodings (prices as numbers or
// numeric strings, dates in several formats, collections omitted when
// empty), so decoding never fails: every malformed field degrades to its
// defined zero signal and normalization happens exactly once, here,
// before anything reaches the engine.

// flexTime decodes a timestamp that may be an RFC3339 string, a string
// without zone, a bare date, an epoch number, or absent.
type flexTime struct {
	Time  time.Time
	Valid bool
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func (f *flexTime) UnmarshalJSON(data []byte) error {
	f.Valid = false
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				f.Time = t
				f.Valid = true
				return nil
			}
		}
		logrus.Debugf("unparseable timestamp %q, treating as invalid", s)
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil && n > 0 {
		// Values past the year 33658 in seconds are epoch milliseconds.
		if n > 1e12 {
			f.Time = time.UnixMilli(int64(n)).UTC()
		} else {
			f.Time = time.Unix(int64(n), 0).UTC()
		}
		f.Valid = true
	}
	return nil
}

// flexPrice decodes a price that may be a number or a numeric string.
type flexPrice struct {
	Value float64
	Valid bool
}

func (f *flexPrice) UnmarshalJSON(data []byte) error {
	f.Valid = false
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		f.Value = n
		f.Valid = true
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			f.Value = v
			f.Valid = true
			return nil
		}
		logrus.Debugf("unparseable price %q, treating as absent", s)
	}
	return nil
}

// UserPayload is the profile-fetch wire shape.
type UserPayload struct {
	ID               string   `json:"id"`
	Email            string   `json:"email"`
	PackageType      string   `json:"packageType"`
	PackageExpiresAt flexTime `json:"packageExpiresAt"`
}

// ParticipantPayload is a single membership record on the wire.
type ParticipantPayload struct {
	UserID string `json:"userId"`
}

// PurchasePayload is a single purchase-ledger record on the wire.
type PurchasePayload struct {
	UserID      string    `json:"userId"`
	PricePaid   flexPrice `json:"pricePaid"`
	PurchasedAt flexTime  `json:"purchasedAt"`
}

// GamePayload is the game-type descriptor on the wire.
type GamePayload struct {
	Type              string `json:"type"`
	MaxAttemptsPerDay int    `json:"maxAttemptsPerDay"`
}

// ChallengePayload is the challenge list/detail wire shape.
type ChallengePayload struct {
	ID              string               `json:"id"`
	Name            string               `json:"name"`
	GameMode        string               `json:"gameMode"`
	Price           flexPrice            `json:"price"`
	UserPrice       flexPrice            `json:"userPrice"`
	Prize           string               `json:"prize"`
	StartDate       flexTime             `json:"startDate"`
	JoinDeadline    flexTime             `json:"joinDeadline"`
	EndDate         flexTime             `json:"endDate"`
	MaxParticipants int                  `json:"maxParticipants"`
	Participants    []ParticipantPayload `json:"participants"`
	PurchasedBy     []PurchasePayload    `json:"purchasedBy"`
	Game            GamePayload          `json:"game"`
}

// AttemptStatusPayload is the attempt-status wire shape. Any subset of
// the fields may be absent.
type AttemptStatusPayload struct {
	CanPlay           *bool    `json:"canPlay"`
	RemainingAttempts *int     `json:"remainingAttempts"`
	NextResetDate     flexTime `json:"nextResetDate"`
}

// NormalizePackage maps a wire package type onto the known tier set.
// Unknown or absent values rank as free, the most restrictive tier.
func NormalizePackage(raw string) PackageType {
	switch PackageType(strings.ToLower(strings.TrimSpace(raw))) {
	case PackagePro:
		return PackagePro
	case PackagePremium:
		return PackagePremium
	case PackageVIP:
		return PackageVIP
	case PackageFree:
		return PackageFree
	default:
		if raw != "" {
			logrus.Debugf("unknown package type %q, treating as free", raw)
		}
		return PackageFree
	}
}

// NormalizeMode maps a wire game mode onto the known mode set.
// Unknown values are kept lowercased so the filter pipeline's
// case-insensitive match still behaves; access for them falls through
// to the package rank path where they gate as free.
func NormalizeMode(raw string) GameMode {
	return GameMode(strings.ToLower(strings.TrimSpace(raw)))
}

// Normalize converts the wire user into the domain snapshot. A package
// whose expiry has already passed at normalization time downgrades to
// free; the engine itself never consults the clock for entitlements.
func (p *UserPayload) Normalize(now time.Time) *User {
	pkg := NormalizePackage(p.PackageType)
	expires := Timestamp(p.PackageExpiresAt)
	if pkg != PackageFree && expires.Before(now) {
		logrus.Debugf("package %s for user %s expired at %s, downgrading to free",
			pkg, p.ID, expires.Time)
		pkg = PackageFree
	}
	return &User{
		ID:               p.ID,
		PackageType:      pkg,
		PackageExpiresAt: expires,
	}
}

// Normalize converts the wire challenge into the domain snapshot.
// Absent collections become empty slices and the per-user price override
// survives only when it decoded cleanly.
func (p *ChallengePayload) Normalize() *Challenge {
	c := &Challenge{
		ID:              p.ID,
		Name:            p.Name,
		GameMode:        NormalizeMode(p.GameMode),
		Price:           p.Price.Value,
		Prize:           p.Prize,
		StartDate:       Timestamp(p.StartDate),
		JoinDeadline:    Timestamp(p.JoinDeadline),
		EndDate:         Timestamp(p.EndDate),
		MaxParticipants: p.MaxParticipants,
		Participants:    make([]Participant, 0, len(p.Participants)),
		PurchasedBy:     make([]Purchase, 0, len(p.PurchasedBy)),
		Game: Game{
			Type:              p.Game.Type,
			MaxAttemptsPerDay: p.Game.MaxAttemptsPerDay,
		},
	}

	if p.UserPrice.Valid {
		v := p.UserPrice.Value
		c.UserPrice = &v
	}

	for _, part := range p.Participants {
		if part.UserID == "" {
			continue
		}
		c.Participants = append(c.Participants, Participant{UserID: part.UserID})
	}

	for _, pur := range p.PurchasedBy {
		if pur.UserID == "" {
			continue
		}
		c.PurchasedBy = append(c.PurchasedBy, Purchase{
			UserID:      pur.UserID,
			PricePaid:   pur.PricePaid.Value,
			PurchasedAt: Timestamp(pur.PurchasedAt),
		})
	}

	return c
}

// Normalize converts the wire attempt status into the domain snapshot.
func (p *AttemptStatusPayload) Normalize() *AttemptStatus {
	return &AttemptStatus{
		CanPlay:           p.CanPlay,
		RemainingAttempts: p.RemainingAttempts,
		NextResetDate:     Timestamp(p.NextResetDate),
	}
}
