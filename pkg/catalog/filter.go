// Copyright (c) 2025 Zampapp. All Rights Reserved.
// This is licensed software from Zampapp, for limitations
// and restrictions contact your company contract manager.

// Package catalog turns a raw challenge snapshot into the set a user is
// shown: the tab filter pipeline, join gating, and the presentation
// helpers the UI renders from.
package catalog

import (
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/zampapp/challenge-engine/pkg/access"
	"github.com/zampapp/challenge-engine/pkg/challenge"
	"github.com/zampapp/challenge-engine/pkg/timewindow"
)

// Tab identifies an active catalog filter.
type Tab string

const (
	TabAll     Tab = "all"
	TabFree    Tab = "free"
	TabPro     Tab = "pro"
	TabPremium Tab = "premium"
	TabVIP     Tab = "vip"
	TabShop    Tab = "shop"
)

// Filter produces the visible challenge set for one user and one tab.
// It is a stable filter: input order is preserved and the input slice is
// never mutated. Per challenge the checks short-circuit in a fixed
// order:
//
//  1. The shop tab lists paid challenges only and deliberately bypasses
//     the access gate and the mode filter: it exists to show what a user
//     could buy. The activity check still applies.
//  2. Any other tab drops challenges the user cannot access, before the
//     mode filter, so tier counts never include locked entries.
//  3. A non-"all" tab keeps only its own mode (case-insensitive).
//  4. Ended challenges, and challenges whose end date failed to parse,
//     are dropped.
func Filter(challenges []*challenge.Challenge, tab Tab, user *challenge.User, now time.Time) []*challenge.Challenge {
	visible := make([]*challenge.Challenge, 0, len(challenges))

	for _, c := range challenges {
		if c == nil {
			continue
		}

		if tab == TabShop {
			if strings.EqualFold(string(c.GameMode), string(challenge.ModePaid)) && timewindow.Active(c, now) {
				visible = append(visible, c)
			}
			continue
		}

		if !access.Evaluate(c, user).CanAccess {
			continue
		}

		if tab != TabAll && !strings.EqualFold(string(c.GameMode), string(tab)) {
			continue
		}

		if !timewindow.Active(c, now) {
			continue
		}

		visible = append(visible, c)
	}

	logrus.Debugf("filter tab=%s: %d of %d challenges visible", tab, len(visible), len(challenges))
	return visible
}

// CanJoin reports whether the user can join the challenge right now:
// the access gate grants, the join window is open, the participant cap
// is not reached, and the user is not already in.
func CanJoin(c *challenge.Challenge, user *challenge.User, now time.Time) bool {
	if c == nil || user == nil {
		return false
	}
	if !access.Evaluate(c, user).CanAccess {
		return false
	}
	if !timewindow.Joinable(c, now) {
		return false
	}
	if c.IsFull() {
		return false
	}
	return !c.IsParticipating(user.ID)
}
