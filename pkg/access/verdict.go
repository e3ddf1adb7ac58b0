// Copyright (c) 2025 Zampapp. All Rights Reserved.
// This is licensed software from Zampapp, for limitations
// and restrictions contact your company contract manager.

package access

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/zampapp/challenge-engine/pkg/challenge"
)

// Reason explains a denial. ReasonNone accompanies every granted verdict.
type Reason string

const (
	ReasonNone             Reason = "none"
	ReasonNotAuthenticated Reason = "not_authenticated"
	ReasonRequiresPurchase Reason = "requires_purchase"
	ReasonRequiresPackage  Reason = "requires_package"
)

// Verdict is the access decision for one user and one challenge.
// It is derived state, recomputed on every evaluation.
type Verdict struct {
	CanAccess bool
	Reason    Reason

	// RequiredPackage is set when Reason is ReasonRequiresPackage.
	RequiredPackage challenge.PackageType
	// RequiredPrice is set when Reason is ReasonRequiresPurchase.
	RequiredPrice float64
}

// Evaluate combines the purchase ledger and the package hierarchy into
// an access verdict. Paid challenges consult the ledger only; every
// other mode compares package rank. Pure function of its inputs.
func Evaluate(c *challenge.Challenge, user *challenge.User) Verdict {
	if user == nil {
		return Verdict{CanAccess: false, Reason: ReasonNotAuthenticated}
	}
	if c == nil {
		return Verdict{CanAccess: false, Reason: ReasonNone}
	}

	if strings.EqualFold(string(c.GameMode), string(challenge.ModePaid)) {
		if HasPurchased(c, user.ID) {
			return Verdict{CanAccess: true, Reason: ReasonNone}
		}
		logrus.Debugf("access denied for user %s on challenge %s: purchase required (%.2f)",
			user.ID, c.ID, c.EffectivePrice())
		return Verdict{
			CanAccess:     false,
			Reason:        ReasonRequiresPurchase,
			RequiredPrice: c.EffectivePrice(),
		}
	}

	if CanPackageAccess(user.PackageType, c.GameMode) {
		return Verdict{CanAccess: true, Reason: ReasonNone}
	}

	logrus.Debugf("access denied for user %s on challenge %s: package %s required, has %s",
		user.ID, c.ID, c.GameMode, user.PackageType)
	return Verdict{
		CanAccess:       false,
		Reason:          ReasonRequiresPackage,
		RequiredPackage: challenge.PackageType(c.GameMode),
	}
}
