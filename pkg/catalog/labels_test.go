// Copyright (c) 2025 Zampapp. All Rights Reserved.
// This is licensed software from Zampapp, for limitations
// and restrictions contact your company contract manager.

package catalog

import (
	"testing"

	"github.com/zampapp/challenge-engine/pkg/challenge"
)

func TestTypeLabel(t *testing.T) {
	tests := []struct {
		name     string
		c        *challenge.Challenge
		expected string
	}{
		{"free mode", &challenge.Challenge{GameMode: challenge.ModeFree, Price: 4.99}, "Gratis"},
		{"zero price counts as free", &challenge.Challenge{GameMode: challenge.ModePro, Price: 0}, "Gratis"},
		{"premium mode", &challenge.Challenge{GameMode: challenge.ModePremium, Price: 1}, "Premium"},
		{"any priced challenge renders premium", &challenge.Challenge{GameMode: challenge.ModePaid, Price: 4.99}, "Premium"},
		{"vip with zero price renders free", &challenge.Challenge{GameMode: challenge.ModeVIP, Price: 0}, "Gratis"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TypeLabel(tt.c); got != tt.expected {
				t.Errorf("TypeLabel() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestGameIcon(t *testing.T) {
	if GameIcon("timer") != "⏱️" {
		t.Errorf("GameIcon(timer) = %q", GameIcon("timer"))
	}
	if GameIcon("unheard-of") != "🎮" {
		t.Errorf("GameIcon fallback = %q", GameIcon("unheard-of"))
	}
}

func TestFormatPrice(t *testing.T) {
	if got := FormatPrice(4.99); got != "€4.99" {
		t.Errorf("FormatPrice(4.99) = %q", got)
	}
	if got := FormatPrice(0); got != "€0.00" {
		t.Errorf("FormatPrice(0) = %q", got)
	}
}

func TestFormatPrize(t *testing.T) {
	if got := FormatPrize("€100"); got != "€100" {
		t.Errorf("FormatPrize = %q", got)
	}
	if got := FormatPrize(""); got != "Da definire" {
		t.Errorf("FormatPrize empty = %q", got)
	}
}
