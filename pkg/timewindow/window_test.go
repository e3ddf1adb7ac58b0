// Copyright (c) 2025 Zampapp. All Rights Reserved.
// This is licensed software from Zampapp, for limitations
// and restrictions contact your company contract manager.

package timewindow

import (
	"testing"
	"time"

	"github.com/zampapp/challenge-engine/pkg/challenge"
)

func ts(t time.Time) challenge.Timestamp {
	return challenge.Timestamp{Time: t, Valid: true}
}

func TestJoinable(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		c        *challenge.Challenge
		expected bool
	}{
		{"deadline in the future", &challenge.Challenge{JoinDeadline: ts(now.Add(time.Hour))}, true},
		{"deadline in the past", &challenge.Challenge{JoinDeadline: ts(now.Add(-time.Hour))}, false},
		{"deadline exactly now", &challenge.Challenge{JoinDeadline: ts(now)}, false},
		{"invalid deadline", &challenge.Challenge{}, false},
		{"nil challenge", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Joinable(tt.c, now); got != tt.expected {
				t.Errorf("Joinable() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestActive(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		c        *challenge.Challenge
		expected bool
	}{
		{"ends in the future", &challenge.Challenge{EndDate: ts(now.Add(24 * time.Hour))}, true},
		{"already ended", &challenge.Challenge{EndDate: ts(now.Add(-time.Second))}, false},
		{"ends exactly now", &challenge.Challenge{EndDate: ts(now)}, false},
		{"invalid end date", &challenge.Challenge{}, false},
		// Challenges are visible before their start date on purpose.
		{
			name: "active before start date",
			c: &challenge.Challenge{
				StartDate: ts(now.Add(time.Hour)),
				EndDate:   ts(now.Add(48 * time.Hour)),
			},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Active(tt.c, now); got != tt.expected {
				t.Errorf("Active() = %v, expected %v", got, tt.expected)
			}
			if got := Expired(tt.c, now); got == tt.expected {
				t.Errorf("Expired() = %v, expected %v", got, !tt.expected)
			}
		})
	}
}
