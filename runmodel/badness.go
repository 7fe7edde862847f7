package runmodel

import "math"

// Penalty is an external break-quality cost, scaled by 1e6 so that, at a
// badness ratio of +-100, |ratio|^3 equals the scaled penalty: a unit
// penalty reads as "as bad as a line stretched/shrunk to twice its
// available space" (spec.md section 4.1's penalty-scaling rule).
type Penalty int64

// PenaltyScale converts an external (unscaled) penalty into the internal
// scaled representation used for comparison against badness values.
const PenaltyScale = 1_000_000

const (
	// ForceBreak is the sentinel penalty meaning "this break is
	// mandatory": every break with this penalty must be taken.
	ForceBreak Penalty = math.MinInt64
	// ProhibitBreak is the sentinel penalty meaning "this break may never
	// be taken".
	ProhibitBreak Penalty = math.MaxInt64
)

// ScalePenalty converts a small external penalty p into its internal,
// comparison-ready scale. Passing ForceBreak or ProhibitBreak through
// ScalePenalty is a mistake; use the sentinels directly.
func ScalePenalty(p int64) Penalty {
	return Penalty(p) * PenaltyScale
}

// BadnessState classifies a line's fit independent of its numeric badness.
type BadnessState uint8

const (
	// Finite means Magnitude holds a meaningful, comparable badness.
	Finite BadnessState = iota
	// QuiteLoose means the line could stretch but the required ratio
	// exceeds 1024 (spec.md's "QuiteLoose" cutoff): treated as
	// less-bad-than-TooTight but worse than any finite badness.
	QuiteLoose
	// TooTight means the line has no room to shrink into the space
	// available (K == 0) or the shrink ratio is <= -100.
	TooTight
	// NotStretchable means the line is short of its ideal width and
	// cannot stretch at all (S == 0).
	NotStretchable
)

// Badness is the line-fit cost computed from a candidate line's total
// width, ideal width, and stretch/shrink capacity.
type Badness struct {
	State BadnessState
	// Magnitude is |ratio|^3, meaningful only when State == Finite. It is
	// always >= 0; Tight records the direction the magnitude came from.
	Magnitude int64
	// Tight is true if the candidate line is shrunk (width > ideal),
	// false if it is exactly right or stretched.
	Tight bool
}

// Ratio computes 100*(ideal-actual)/stretchOrShrink, matching spec.md's
// ratio formula (not clamped here; callers clamp via ComputeBadness).
func Ratio(ideal, actual, stretchOrShrink int) int {
	if stretchOrShrink == 0 {
		return 0
	}
	return 100 * (ideal - actual) / stretchOrShrink
}

// ComputeBadness implements the badness decision tree from spec.md section
// 4.1: given a candidate line's total width W, ideal width I, total
// stretchability S and total shrinkability K, it classifies the line's fit.
func ComputeBadness(w, ideal, stretch, shrink int) Badness {
	switch {
	case w == ideal:
		return Badness{State: Finite, Magnitude: 0}
	case w < ideal:
		if stretch <= 0 {
			return Badness{State: NotStretchable}
		}
		ratio := Ratio(ideal, w, stretch)
		if ratio > 1024 {
			return Badness{State: QuiteLoose}
		}
		return Badness{State: Finite, Magnitude: cube(int64(ratio)), Tight: false}
	default: // w > ideal
		if shrink <= 0 {
			return Badness{State: TooTight}
		}
		ratio := Ratio(ideal, w, shrink)
		if ratio <= -100 {
			return Badness{State: TooTight}
		}
		return Badness{State: Finite, Magnitude: cube(int64(-ratio)), Tight: true}
	}
}

func cube(n int64) int64 {
	if n < 0 {
		n = -n
	}
	return n * n * n
}

// BadnessAndPenalty is the comparable key attached to each run's candidate
// break: a Badness plus two penalty channels (e.g. one for extremes
// computation, one for layout) so different callers can weigh break
// quality differently at the same break site.
type BadnessAndPenalty struct {
	Badness Badness
	Penalty [2]Penalty
}

// level orders the four "infinity levels" from spec.md section 3:
// prohibited > not-stretchable > too-tight > quite-loose > finite. Higher
// is worse.
func (bp BadnessAndPenalty) level(channel int) int {
	if bp.Penalty[channel] == ProhibitBreak {
		return 4
	}
	switch bp.Badness.State {
	case NotStretchable:
		return 3
	case TooTight:
		return 2
	case QuiteLoose:
		return 1
	default:
		return 0
	}
}

// score returns the finite comparison value: badness magnitude plus the
// scaled penalty. Only meaningful when level(channel) == 0.
func (bp BadnessAndPenalty) score(channel int) int64 {
	return bp.Badness.Magnitude + int64(bp.Penalty[channel])
}

// IsMandatory reports whether channel's penalty forces a break here.
func (bp BadnessAndPenalty) IsMandatory(channel int) bool {
	return bp.Penalty[channel] == ForceBreak
}

// IsProhibited reports whether channel's penalty forbids a break here.
func (bp BadnessAndPenalty) IsProhibited(channel int) bool {
	return bp.Penalty[channel] == ProhibitBreak
}

// Less reports whether a is a strictly better break candidate than b on the
// given channel, per the four-level lexicographic order followed by the
// finite score. Equal-quality candidates (including two non-finite
// candidates at the same level) report false; callers resolve ties by
// preferring the rightmost break position, per spec.md section 4.1.
func Less(a, b BadnessAndPenalty, channel int) bool {
	la, lb := a.level(channel), b.level(channel)
	if la != lb {
		return la < lb
	}
	if la != 0 {
		return false
	}
	return a.score(channel) < b.score(channel)
}
