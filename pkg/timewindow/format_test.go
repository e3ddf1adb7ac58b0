// Copyright (c) 2025 Zampapp. All Rights Reserved.
// This is licensed software from Zampapp, for limitations
// and restrictions contact your company contract manager.

package timewindow

import (
	"testing"
	"time"

	"github.com/zampapp/challenge-engine/pkg/challenge"
)

func TestFormatRemaining(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		target   challenge.Timestamp
		labels   Labels
		expected string
	}{
		{"invalid timestamp", challenge.Timestamp{}, Italian, "Data non valida"},
		{"one second ago", ts(now.Add(-time.Second)), Italian, "Terminata"},
		{"exactly now", ts(now), Italian, "Terminata"},
		{"thirty minutes", ts(now.Add(30 * time.Minute)), Italian, "Poche ore"},
		{"five hours", ts(now.Add(5 * time.Hour)), Italian, "5 ore"},
		{"twenty-five hours is one day", ts(now.Add(25 * time.Hour)), Italian, "1 giorni"},
		{"six days", ts(now.Add(6 * 24 * time.Hour)), Italian, "6 giorni"},
		{"exactly seven days stays in days", ts(now.Add(7 * 24 * time.Hour)), Italian, "7 giorni"},
		{"ten days is one week", ts(now.Add(10 * 24 * time.Hour)), Italian, "1 settimane"},
		{"exactly thirty days stays in weeks", ts(now.Add(30 * 24 * time.Hour)), Italian, "4 settimane"},
		{"forty-five days is one month", ts(now.Add(45 * 24 * time.Hour)), Italian, "1 mesi"},
		{"ninety days is three months", ts(now.Add(90 * 24 * time.Hour)), Italian, "3 mesi"},
		{"english expired", ts(now.Add(-time.Hour)), English, "Expired"},
		{"english days", ts(now.Add(3 * 24 * time.Hour)), English, "3 days"},
		{"english invalid", challenge.Timestamp{}, English, "Invalid date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatRemaining(tt.target, now, tt.labels); got != tt.expected {
				t.Errorf("FormatRemaining() = %q, expected %q", got, tt.expected)
			}
		})
	}
}
