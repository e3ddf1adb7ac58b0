// Copyright (c) 2025 Zampapp. All Rights Reserved.
// This is licensed software from Zampapp, for limitations
// and restrictions contact your company contract manager.

// Package access decides whether a user may interact with a challenge:
// the package tier hierarchy, the purchase ledger lookup, and the
// combined access verdict. All of it is pure and total.
package access

import (
	"strings"

	"github.com/zampapp/challenge-engine/pkg/challenge"
)

// Tier ranks. Unknown packages rank as free, the most restrictive.
var packageRank = map[challenge.PackageType]int{
	challenge.PackageFree:    0,
	challenge.PackagePro:     1,
	challenge.PackagePremium: 2,
	challenge.PackageVIP:     3,
}

// Rank returns the position of a package in the tier order.
func Rank(pkg challenge.PackageType) int {
	return packageRank[pkg]
}

// CanPackageAccess reports whether a user package unlocks a tier-gated
// game mode. It is defined only for the tier modes; the paid mode is
// gated exclusively by the purchase ledger and always returns false here.
func CanPackageAccess(pkg challenge.PackageType, mode challenge.GameMode) bool {
	normalized := challenge.GameMode(strings.ToLower(string(mode)))
	if normalized == challenge.ModePaid {
		return false
	}
	required, known := packageRank[challenge.PackageType(normalized)]
	if !known {
		// Unknown modes gate as free.
		required = 0
	}
	return packageRank[pkg] >= required
}
