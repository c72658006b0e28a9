// SPDX-License-Identifier: MIT

// Package index - dynamic selector conversion.
//
// Purpose:
//   - Give embedding layers (scripting bridges, config-driven callers) one
//     place to turn untyped keys into typed Selectors.
//   - Reject non-integer values up front with ErrTypeMismatch, before any
//     offsets are computed.

package index

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// FromAny converts a dynamic value into a Selector.
//
// Accepted values:
//   - Selector: returned as is.
//   - any Go integer: Elem.
//   - a slice of any Go integer type: Elems.
//   - []any whose elements are all Go integers: Elems.
//
// Errors:
//   - ErrTypeMismatch for anything else, including a non-integer list element.
//   - ErrIndexOutOfBounds for an unsigned value that does not fit in int.
func FromAny(v any) (Selector, error) {
	switch x := v.(type) {
	case Selector:
		return x, nil
	case []int:
		return Elems(x...), nil
	case []int8:
		return listOf(x), nil
	case []int16:
		return listOf(x), nil
	case []int32:
		return listOf(x), nil
	case []int64:
		return listOf(x), nil
	case []uint:
		return listOfUnsigned(x)
	case []uint8:
		return listOfUnsigned(x)
	case []uint16:
		return listOfUnsigned(x)
	case []uint32:
		return listOfUnsigned(x)
	case []uint64:
		return listOfUnsigned(x)
	case []any:
		elems := make([]int, len(x))
		for k, e := range x {
			i, err := intOf(e)
			if err != nil {
				return Selector{}, errors.WithMessagef(err, "FromAny: list element %d", k)
			}
			elems[k] = i
		}
		return Selector{kind: KindList, elems: elems}, nil
	}
	i, err := intOf(v)
	if err != nil {
		return Selector{}, errors.WithMessage(err, "FromAny")
	}

	return Elem(i), nil
}

// Parse converts dynamic keys into a canonical Index: one key selects along
// axis 0 (taking the whole of axis 1), two keys select both axes. A single
// Index key is returned unchanged.
//
// Errors:
//   - ErrIndexArity for other key counts.
//   - ErrTypeMismatch / ErrIndexOutOfBounds from FromAny.
func Parse(keys ...any) (Index, error) {
	if len(keys) == 1 {
		if idx, ok := keys[0].(Index); ok {
			return idx, nil
		}
	}
	if len(keys) == 0 || len(keys) > 2 {
		return Index{}, errors.Wrapf(ErrIndexArity, "Parse: got %d keys", len(keys))
	}
	sels := make([]Selector, len(keys))
	for k, key := range keys {
		s, err := FromAny(key)
		if err != nil {
			return Index{}, errors.WithMessagef(err, "Parse: key %d", k)
		}
		sels[k] = s
	}

	return Complete(sels...)
}

func listOf[T constraints.Signed](xs []T) Selector {
	elems := make([]int, len(xs))
	for k, x := range xs {
		elems[k] = int(x)
	}

	return Selector{kind: KindList, elems: elems}
}

func listOfUnsigned[T constraints.Unsigned](xs []T) (Selector, error) {
	elems := make([]int, len(xs))
	for k, x := range xs {
		if uint64(x) > math.MaxInt {
			return Selector{}, errors.Wrapf(ErrIndexOutOfBounds, "list element %d: %d does not fit in int", k, uint64(x))
		}
		elems[k] = int(x)
	}

	return Selector{kind: KindList, elems: elems}, nil
}

// intOf converts a dynamic Go integer into an int.
func intOf(v any) (int, error) {
	switch x := v.(type) {
	case int:
		return x, nil
	case int8:
		return int(x), nil
	case int16:
		return int(x), nil
	case int32:
		return int(x), nil
	case int64:
		return int(x), nil
	case uint:
		return unsignedToInt(uint64(x))
	case uint8:
		return int(x), nil
	case uint16:
		return int(x), nil
	case uint32:
		return unsignedToInt(uint64(x))
	case uint64:
		return unsignedToInt(x)
	default:
		return 0, errors.Wrapf(ErrTypeMismatch, "got %T", v)
	}
}

func unsignedToInt(x uint64) (int, error) {
	if x > math.MaxInt {
		return 0, errors.Wrapf(ErrIndexOutOfBounds, "%d does not fit in int", x)
	}

	return int(x), nil
}
