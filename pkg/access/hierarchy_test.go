// Copyright (c) 2025 Zampapp. All Rights Reserved.
// This is licensed software from Zampapp, for limitations
// and restrictions contact your company contract manager.

package access

import (
	"testing"

	"github.com/zampapp/challenge-engine/pkg/challenge"
)

func TestCanPackageAccess(t *testing.T) {
	tests := []struct {
		name     string
		pkg      challenge.PackageType
		mode     challenge.GameMode
		expected bool
	}{
		{"free user, free mode", challenge.PackageFree, challenge.ModeFree, true},
		{"free user, pro mode", challenge.PackageFree, challenge.ModePro, false},
		{"free user, premium mode", challenge.PackageFree, challenge.ModePremium, false},
		{"free user, vip mode", challenge.PackageFree, challenge.ModeVIP, false},
		{"pro user, free mode", challenge.PackagePro, challenge.ModeFree, true},
		{"pro user, pro mode", challenge.PackagePro, challenge.ModePro, true},
		{"pro user, premium mode", challenge.PackagePro, challenge.ModePremium, false},
		{"premium user, pro mode", challenge.PackagePremium, challenge.ModePro, true},
		{"premium user, vip mode", challenge.PackagePremium, challenge.ModeVIP, false},
		{"vip user, vip mode", challenge.PackageVIP, challenge.ModeVIP, true},
		{"vip user, free mode", challenge.PackageVIP, challenge.ModeFree, true},
		{"paid mode is never rank-gated", challenge.PackageVIP, challenge.ModePaid, false},
		{"unknown package ranks as free", challenge.PackageType("gold"), challenge.ModePro, false},
		{"unknown package still gets free mode", challenge.PackageType("gold"), challenge.ModeFree, true},
		{"unknown mode gates as free", challenge.PackageFree, challenge.GameMode("mystery"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanPackageAccess(tt.pkg, tt.mode); got != tt.expected {
				t.Errorf("CanPackageAccess(%s, %s) = %v, expected %v", tt.pkg, tt.mode, got, tt.expected)
			}
		})
	}
}

// Whenever a lower tier unlocks a mode, every higher tier must unlock it
// too.
func TestPackageAccessMonotonic(t *testing.T) {
	order := []challenge.PackageType{
		challenge.PackageFree,
		challenge.PackagePro,
		challenge.PackagePremium,
		challenge.PackageVIP,
	}
	modes := []challenge.GameMode{
		challenge.ModeFree,
		challenge.ModePro,
		challenge.ModePremium,
		challenge.ModeVIP,
	}

	for i, lower := range order {
		for _, higher := range order[i:] {
			for _, mode := range modes {
				if CanPackageAccess(lower, mode) && !CanPackageAccess(higher, mode) {
					t.Errorf("access not monotonic: %s unlocks %s but %s does not", lower, mode, higher)
				}
			}
		}
	}
}

func TestRank(t *testing.T) {
	if Rank(challenge.PackageFree) != 0 {
		t.Errorf("Rank(free) = %d, expected 0", Rank(challenge.PackageFree))
	}
	if Rank(challenge.PackageVIP) != 3 {
		t.Errorf("Rank(vip) = %d, expected 3", Rank(challenge.PackageVIP))
	}
	if Rank(challenge.PackageType("nonsense")) != 0 {
		t.Errorf("Rank(unknown) = %d, expected 0", Rank(challenge.PackageType("nonsense")))
	}
}
