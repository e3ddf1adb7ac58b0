// Copyright (c) 2025 Zampapp. All Rights Reserved.
// This is licensed software from Zampapp, for limitations
// and restrictions contact your company contract manager.

package catalog

import (
	"fmt"

	"github.com/zampapp/challenge-engine/pkg/challenge"
)

// Presentation buckets. A challenge renders as free when its mode says
// so or its price is zero, as premium when its mode says so or it costs
// anything, as vip on mode alone; everything else falls through to a
// neutral bucket. These rules mirror the product's card badges.

// TypeLabel returns the badge text for a challenge.
func TypeLabel(c *challenge.Challenge) string {
	switch {
	case c.GameMode == challenge.ModeFree || c.EffectivePrice() == 0:
		return "Gratis"
	case c.GameMode == challenge.ModePremium || c.EffectivePrice() > 0:
		return "Premium"
	case c.GameMode == challenge.ModeVIP:
		return "VIP"
	default:
		return string(c.GameMode)
	}
}

// TypeColor returns the badge color for a challenge.
func TypeColor(c *challenge.Challenge) string {
	switch {
	case c.GameMode == challenge.ModeFree || c.EffectivePrice() == 0:
		return "#059669"
	case c.GameMode == challenge.ModePremium || c.EffectivePrice() > 0:
		return "#2563eb"
	case c.GameMode == challenge.ModeVIP:
		return "#7c3aed"
	default:
		return "#6b7280"
	}
}

// TypeIcon returns the badge icon for a challenge.
func TypeIcon(c *challenge.Challenge) string {
	switch {
	case c.GameMode == challenge.ModeFree || c.EffectivePrice() == 0:
		return "🎁"
	case c.GameMode == challenge.ModePremium || c.EffectivePrice() > 0:
		return "⭐"
	case c.GameMode == challenge.ModeVIP:
		return "👑"
	default:
		return "📋"
	}
}

// GameIcon returns the icon for a game type.
func GameIcon(gameType string) string {
	switch gameType {
	case "timer":
		return "⏱️"
	case "steps":
		return "👣"
	case "photo":
		return "📸"
	case "quiz":
		return "🧠"
	default:
		return "🎮"
	}
}

// FormatPrice renders a price in euro.
func FormatPrice(price float64) string {
	return fmt.Sprintf("€%.2f", price)
}

// FormatPrize renders the prize text, falling back to a placeholder
// when the backend left it empty.
func FormatPrize(prize string) string {
	if prize == "" {
		return "Da definire"
	}
	return prize
}
