// SPDX-License-Identifier: MIT

package index

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/gomlx/exceptions"
)

// Kind tags the variant held by a Selector.
type Kind uint8

const (
	// KindScalar selects one position.
	KindScalar Kind = iota
	// KindList selects an ordered list of positions (duplicates allowed).
	KindList
	// KindRange selects start:stop:step, resolved against the axis extent.
	KindRange

	kindCount
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindList:
		return "list"
	case KindRange:
		return "range"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Selector specifies the selection along one axis.
//
// Use Elem, Elems, Range, RangeTo or All to build one; the zero value is
// Elem(0).
type Selector struct {
	kind  Kind
	elem  int   // KindScalar
	elems []int // KindList

	// KindRange. noStart/noStop mean "axis default for the step direction".
	start, stop, step int
	noStart, noStop   bool
}

// Elem selects the single position i.
func Elem(i int) Selector {
	return Selector{kind: KindScalar, elem: i}
}

// Elems selects the listed positions in the given order. The slice is copied.
func Elems(indices ...int) Selector {
	return Selector{kind: KindList, elems: slices.Clone(indices)}
}

// Range defines a range to take along an axis.
//
// The indices can have 0, 1 or 2 elements:
//   - len(indices) == 0: the full axis.
//   - len(indices) == 1: from indices[0] to the end of the axis.
//   - len(indices) == 2: from indices[0] up to (excluding) indices[1].
//   - len(indices) > 2 panics.
//
// Negative values count from the end of the axis. Use Stride to set a step.
func Range(indices ...int) Selector {
	s := Selector{kind: KindRange, step: 1, noStart: true, noStop: true}
	switch len(indices) {
	case 0:
	case 1:
		s.start, s.noStart = indices[0], false
	case 2:
		s.start, s.noStart = indices[0], false
		s.stop, s.noStop = indices[1], false
	default:
		exceptions.Panicf("index.Range(%v): more than 2 indices provided, use Stride for the step", indices)
	}

	return s
}

// RangeTo selects from the start of the axis up to (excluding) stop.
func RangeTo(stop int) Selector {
	return Selector{kind: KindRange, step: 1, noStart: true, stop: stop}
}

// All selects the whole axis. Equivalent to Range().
func All() Selector { return Range() }

// Stride returns a copy of the range selector with the given step.
// Negative steps walk the axis backwards; with omitted endpoints they start at
// the last position. A zero step is reported as ErrInvalidArgument when the
// selector is resolved. Stride on a non-range selector panics.
func (s Selector) Stride(step int) Selector {
	if s.kind != KindRange {
		exceptions.Panicf("index.Selector.Stride(%d): stride only applies to ranges, got a %s selector", step, s.kind)
	}
	s.step = step

	return s
}

// Reversed returns the whole axis in reverse order.
func Reversed() Selector { return All().Stride(-1) }

// Kind returns the variant held by s.
func (s Selector) Kind() Kind { return s.kind }

// Scalar returns the position of a scalar selector and whether s is one.
func (s Selector) Scalar() (int, bool) {
	return s.elem, s.kind == KindScalar
}

// List returns a copy of the positions of a list selector and whether s is one.
func (s Selector) List() ([]int, bool) {
	if s.kind != KindList {
		return nil, false
	}

	return slices.Clone(s.elems), true
}

// Bounds returns the raw range parameters. hasStart/hasStop are false for
// omitted endpoints.
func (s Selector) Bounds() (start, stop, step int, hasStart, hasStop bool) {
	return s.start, s.stop, s.step, !s.noStart, !s.noStop
}

// Equal reports whether two selectors have the same variant and parameters.
func (s Selector) Equal(o Selector) bool {
	if s.kind != o.kind {
		return false
	}
	switch s.kind {
	case KindScalar:
		return s.elem == o.elem
	case KindList:
		return slices.Equal(s.elems, o.elems)
	default:
		return s.step == o.step && s.noStart == o.noStart && s.noStop == o.noStop &&
			(s.noStart || s.start == o.start) && (s.noStop || s.stop == o.stop)
	}
}

// String renders s in slice notation: "3", "[0 2]", "1:4", "::-1".
func (s Selector) String() string {
	switch s.kind {
	case KindScalar:
		return strconv.Itoa(s.elem)
	case KindList:
		return fmt.Sprint(s.elems)
	}
	var sb strings.Builder
	if !s.noStart {
		sb.WriteString(strconv.Itoa(s.start))
	}
	sb.WriteByte(':')
	if !s.noStop {
		sb.WriteString(strconv.Itoa(s.stop))
	}
	if s.step != 1 {
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(s.step))
	}

	return sb.String()
}

// Index is a canonical two-axis selection: axis 0 (rows) then axis 1 (columns).
type Index [2]Selector

// At returns the all-scalar Index (i, j).
func At(i, j int) Index { return Index{Elem(i), Elem(j)} }

// IsScalar reports whether both axes are scalar selectors.
func (idx Index) IsScalar() bool {
	return idx[0].kind == KindScalar && idx[1].kind == KindScalar
}

// String renders the index as "(sel0, sel1)".
func (idx Index) String() string {
	return "(" + idx[0].String() + ", " + idx[1].String() + ")"
}
