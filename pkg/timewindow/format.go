// Copyright (c) 2025 Zampapp. All Rights Reserved.
// This is licensed software from Zampapp, for limitations
// and restrictions contact your company contract manager.

package timewindow

import (
	"fmt"
	"time"

	"github.com/zampapp/challenge-engine/pkg/challenge"
)

// Labels holds the strings FormatRemaining buckets into. Count formats
// receive the bucket count via fmt.Sprintf.
type Labels struct {
	Invalid string
	Expired string
	Soon    string
	Hours   string
	Days    string
	Weeks   string
	Months  string
}

// Italian is the product's default label set.
var Italian = Labels{
	Invalid: "Data non valida",
	Expired: "Terminata",
	Soon:    "Poche ore",
	Hours:   "%d ore",
	Days:    "%d giorni",
	Weeks:   "%d settimane",
	Months:  "%d mesi",
}

// English label set.
var English = Labels{
	Invalid: "Invalid date",
	Expired: "Expired",
	Soon:    "A few hours",
	Hours:   "%d hours",
	Days:    "%d days",
	Weeks:   "%d weeks",
	Months:  "%d months",
}

const (
	day   = 24 * time.Hour
	week  = 7 * day
	month = 30 * day
)

// FormatRemaining buckets the time left until target into a human
// readable label. Invalid targets yield the invalid label, zero or
// negative differences the expired label, sub-hour differences the soon
// label; beyond that the difference rounds down to hours, days, weeks
// past seven days, and months past thirty.
func FormatRemaining(target challenge.Timestamp, now time.Time, labels Labels) string {
	if !target.Valid {
		return labels.Invalid
	}

	diff := target.Time.Sub(now)
	switch {
	case diff <= 0:
		return labels.Expired
	case diff > month:
		return fmt.Sprintf(labels.Months, int(diff/month))
	case diff > week:
		return fmt.Sprintf(labels.Weeks, int(diff/week))
	case diff >= day:
		return fmt.Sprintf(labels.Days, int(diff/day))
	case diff >= time.Hour:
		return fmt.Sprintf(labels.Hours, int(diff/time.Hour))
	default:
		return labels.Soon
	}
}
