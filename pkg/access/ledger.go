// Copyright (c) 2025 Zampapp. All Rights Reserved.
// This is licensed software from Zampapp, for limitations
// and restrictions contact your company contract manager.

package access

import (
	"github.com/zampapp/challenge-engine/pkg/challenge"
)

// HasPurchased reports whether userID appears in the challenge's
// purchase ledger. This is the sole access path for paid challenges;
// package rank never unlocks them. Absent ledgers and empty user ids
// report false.
func HasPurchased(c *challenge.Challenge, userID string) bool {
	if c == nil || userID == "" {
		return false
	}
	for _, p := range c.PurchasedBy {
		if p.UserID == userID {
			return true
		}
	}
	return false
}
