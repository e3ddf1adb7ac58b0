// Copyright (c) 2025 Zampapp. All Rights Reserved.
// This is licensed software from Zampapp, for limitations
// and restrictions contact your company contract manager.

package attempt

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// ReadyLabel is emitted once when the countdown reaches its target.
const ReadyLabel = "Ora disponibile!"

// Countdown emits the remaining time until a reset once per interval.
// It is scoped to the context that started it: cancellation stops the
// ticker and closes the channel, so a torn-down consumer can never leak
// a repeating task.
type Countdown struct {
	target   time.Time
	interval time.Duration
}

// NewCountdown creates a countdown toward target ticking once per
// second.
func NewCountdown(target time.Time) *Countdown {
	return &Countdown{target: target, interval: time.Second}
}

// NewCountdownWithInterval creates a countdown with a custom tick
// interval. Non-positive intervals fall back to one second.
func NewCountdownWithInterval(target time.Time, interval time.Duration) *Countdown {
	if interval <= 0 {
		interval = time.Second
	}
	return &Countdown{target: target, interval: interval}
}

// Start launches the countdown and returns its output channel. The
// channel receives a formatted HH:MM:SS string per tick, then ReadyLabel
// once the target is reached, then closes. Cancelling ctx closes the
// channel without a final label.
func (c *Countdown) Start(ctx context.Context) <-chan string {
	out := make(chan string, 1)

	go func() {
		defer close(out)

		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		emit := func(now time.Time) bool {
			remaining := c.target.Sub(now)
			if remaining <= 0 {
				select {
				case out <- ReadyLabel:
				case <-ctx.Done():
				}
				return false
			}
			select {
			case out <- FormatClock(remaining):
			case <-ctx.Done():
				return false
			}
			return true
		}

		if !emit(time.Now()) {
			return
		}

		for {
			select {
			case <-ctx.Done():
				logrus.Debugf("countdown for %s cancelled", c.target)
				return
			case now := <-ticker.C:
				if !emit(now) {
					return
				}
			}
		}
	}()

	return out
}

// FormatClock renders a duration as HH:MM:SS. Negative durations render
// as zero.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	h := int(d / time.Hour)
	m := int(d/time.Minute) % 60
	s := int(d/time.Second) % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
