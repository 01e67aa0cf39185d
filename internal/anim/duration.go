// Package anim holds the timing math and shared run state behind the
// playground animations.
package anim

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Base animation duration and the bounds applied to the user multiplier.
// The clamped range keeps every computed duration inside [225ms, 3600ms].
const (
	BaseDuration = 900 * time.Millisecond

	MinMultiplier     = 0.25
	MaxMultiplier     = 4.0
	DefaultMultiplier = 1.0
)

// ParseMultiplier interprets user-entered text as a duration multiplier.
// Empty, unparsable, or non-finite input falls back to DefaultMultiplier
// rather than failing; the playground never surfaces a parse error.
func ParseMultiplier(text string) float64 {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return DefaultMultiplier
	}
	m, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(m) || math.IsInf(m, 0) {
		return DefaultMultiplier
	}
	return m
}

// ClampMultiplier restricts a multiplier to [MinMultiplier, MaxMultiplier].
// Non-finite values clamp to DefaultMultiplier.
func ClampMultiplier(m float64) float64 {
	if math.IsNaN(m) || math.IsInf(m, 0) {
		return DefaultMultiplier
	}
	if m < MinMultiplier {
		return MinMultiplier
	}
	if m > MaxMultiplier {
		return MaxMultiplier
	}
	return m
}

// Duration computes the animation duration for a multiplier: BaseDuration
// scaled by the clamped multiplier, rounded to a whole millisecond.
func Duration(m float64) time.Duration {
	return DurationFrom(BaseDuration, m)
}

// DurationFrom is Duration with a caller-supplied base. The config layer
// feeds a tuned base through here so it still gets the same clamp and
// rounding as the default.
func DurationFrom(base time.Duration, m float64) time.Duration {
	ms := math.Round(float64(base.Milliseconds()) * ClampMultiplier(m))
	return time.Duration(ms) * time.Millisecond
}

// Progress reports how far an animation that started at start with
// duration d has advanced at time now, clamped to [0, 1].
func Progress(start, now time.Time, d time.Duration) float64 {
	if d <= 0 {
		return 1
	}
	f := float64(now.Sub(start)) / float64(d)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
