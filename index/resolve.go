// SPDX-License-Identifier: MIT

// Package index - per-axis resolution.
//
// Purpose:
//   - Turn one Selector into the ordered axis positions it denotes.
//   - Dispatch on the selector kind through a small table instead of type
//     switches, so every (axis0, axis1) kind pair shares one code path.
//
// Determinism:
//   - Ranges resolve to an arithmetic sequence start + k*step, k = 0..n-1.

package index

import (
	"github.com/pkg/errors"
)

// resolver maps a selector to axis positions for an axis of the given extent.
// Scalars and lists are returned unchecked; bounds are enforced by
// LinearizeScalar against the matrix shape.
type resolver func(s Selector, extent int) ([]int, error)

// counter returns the number of positions a selector denotes.
type counter func(s Selector, extent int) (int, error)

var resolvers = [kindCount]resolver{
	KindScalar: func(s Selector, _ int) ([]int, error) { return []int{s.elem}, nil },
	KindList: func(s Selector, _ int) ([]int, error) {
		out := make([]int, len(s.elems))
		copy(out, s.elems)
		return out, nil
	},
	KindRange: resolveRange,
}

var counters = [kindCount]counter{
	KindScalar: func(Selector, int) (int, error) { return 1, nil },
	KindList:   func(s Selector, _ int) (int, error) { return len(s.elems), nil },
	KindRange: func(s Selector, extent int) (int, error) {
		_, _, n, err := clampRange(s, extent)
		return n, err
	},
}

// Resolve returns the ordered axis positions denoted by s on an axis of the
// given extent.
//
// Errors:
//   - ErrInvalidArgument for a range with step 0.
//   - ErrTypeMismatch for a selector of unknown kind.
//
// Complexity:
//   - Time O(n), Space O(n) for n resolved positions.
func Resolve(s Selector, extent int) ([]int, error) {
	if s.kind >= kindCount {
		return nil, errors.Wrapf(ErrTypeMismatch, "Resolve: selector kind %s", s.kind)
	}

	return resolvers[s.kind](s, extent)
}

// Count returns len(Resolve(s, extent)) without allocating.
func Count(s Selector, extent int) (int, error) {
	if s.kind >= kindCount {
		return 0, errors.Wrapf(ErrTypeMismatch, "Count: selector kind %s", s.kind)
	}

	return counters[s.kind](s, extent)
}

func resolveRange(s Selector, extent int) ([]int, error) {
	start, step, n, err := clampRange(s, extent)
	if err != nil {
		return nil, err
	}
	out := make([]int, n)
	for k := range out {
		out[k] = start + k*step
	}

	return out, nil
}

// clampRange resolves a range selector against an axis extent, returning the
// first position, the step and the number of positions.
//
// Implementation:
//   - Stage 1: reject step 0.
//   - Stage 2: fill omitted endpoints with the defaults for the step direction
//     (0..extent forward, extent-1..-1 backward).
//   - Stage 3: shift negative endpoints by extent, then clip both endpoints to
//     [0, extent] (forward) or [-1, extent-1] (backward).
//   - Stage 4: count the positions between the clipped endpoints.
//
// Behavior highlights:
//   - Never fails on an endpoint outside the axis; the result is clipped and
//     may be empty.
func clampRange(s Selector, extent int) (start, step, n int, err error) {
	step = s.step
	if step == 0 {
		return 0, 0, 0, errors.Wrapf(ErrInvalidArgument, "range %s: step cannot be zero", s)
	}
	if extent < 0 {
		extent = 0
	}

	var lower, upper int // clip bounds for this direction
	if step > 0 {
		lower, upper = 0, extent
	} else {
		lower, upper = -1, extent-1
	}

	adjust := func(v int, omitted bool, def int) int {
		if omitted {
			return def
		}
		if v < 0 {
			v += extent
			if v < lower {
				v = lower
			}
		} else if v > upper {
			v = upper
		}
		return v
	}

	var stop int
	if step > 0 {
		start = adjust(s.start, s.noStart, 0)
		stop = adjust(s.stop, s.noStop, extent)
		if start < stop {
			n = (stop-start-1)/step + 1
		}
	} else {
		start = adjust(s.start, s.noStart, extent-1)
		stop = adjust(s.stop, s.noStop, -1)
		if stop < start {
			n = (start-stop-1)/(-step) + 1
		}
	}

	return start, step, n, nil
}
