package insettable

import "math"

// Element is one resizable unit in a width distribution. Min and Max bound
// the assignable size, Mid is the size to preserve when no adjustment is
// needed (the preferred width in a forward pass, the current width in an
// inverse pass). Distribute and Allocate write the result into Size.
//
// Well-formed input satisfies 0 <= Min <= Mid <= Max. Violations are not
// detected: Min and Max are used purely as interpolation endpoints, so
// reversed bounds produce a reversed (possibly negative) interpolation
// direction rather than an error.
type Element struct {
	Min  int
	Max  int
	Mid  int
	Size int
}

type span struct {
	low  int
	high int
}

// Distribute assigns a size to every element so that the sizes sum to
// target, interpolating between each element's Mid and the bound the
// required change moves toward. In forward mode (inverse == false) a shrink
// moves toward Min and a growth toward Max; inverse mode swaps the sense,
// which is how preferred widths are back-computed from actual widths after
// a manual resize.
//
// When target equals the midpoint sum, every element receives exactly its
// Mid with no interpolation, so a no-op layout pass introduces no rounding
// drift.
func Distribute(target int64, elems []Element, inverse bool) {
	var totalMid int64
	for i := range elems {
		totalMid += int64(elems[i].Mid)
	}

	if target == totalMid {
		for i := range elems {
			elems[i].Size = elems[i].Mid
		}
		return
	}

	spans := make([]span, len(elems))
	if (target < totalMid) == !inverse {
		for i := range elems {
			spans[i] = span{low: elems[i].Min, high: elems[i].Mid}
		}
	} else {
		for i := range elems {
			spans[i] = span{low: elems[i].Mid, high: elems[i].Max}
		}
	}

	allocate(target, spans, elems, !inverse)
}

// Allocate distributes target over the elements' [Min, Max] ranges without
// consulting Mid. With limitToRange set, target is first clamped into
// [sum(Min), sum(Max)] so that overshoot cannot propagate into the
// assignments; this is the mode used when absorbing an interactive resize
// delta.
func Allocate(target int64, elems []Element, limitToRange bool) {
	spans := make([]span, len(elems))
	for i := range elems {
		spans[i] = span{low: elems[i].Min, high: elems[i].Max}
	}
	allocate(target, spans, elems, limitToRange)
}

// allocate walks the spans in order, interpolating each element inside its
// [low, high] range by the fraction the remaining target occupies in the
// remaining range. Subtracting each assignment from the running totals
// makes later elements interpolate over the residual range, which is what
// guarantees the sizes sum exactly to the (possibly clamped) target instead
// of accumulating independent rounding errors.
func allocate(target int64, spans []span, elems []Element, limitToRange bool) {
	var totalLow, totalHigh int64
	for _, sp := range spans {
		totalLow += int64(sp.low)
		totalHigh += int64(sp.high)
	}

	if limitToRange {
		target = min(max(totalLow, target), totalHigh)
	}

	for i, sp := range spans {
		var size int
		if totalLow == totalHigh {
			// The remaining elements are all pinned (low == high for each),
			// so the distribution finished early; they get their fixed size.
			size = sp.low
		} else {
			f := float64(target-totalLow) / float64(totalHigh-totalLow)
			size = int(math.Round(float64(sp.low) + f*float64(sp.high-sp.low)))
		}
		elems[i].Size = size
		target -= int64(size)
		totalLow -= int64(sp.low)
		totalHigh -= int64(sp.high)
	}
}
