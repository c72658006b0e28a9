// SPDX-License-Identifier: MIT

// Package index: sentinel error set.
// All functions return these sentinels (wrapped with call-site context via
// github.com/pkg/errors); callers match them with errors.Is.

package index

import "github.com/pkg/errors"

var (
	// ErrIndexOutOfBounds indicates that a scalar or list position lies outside
	// the logical axis extent.
	ErrIndexOutOfBounds = errors.New("index: index out of bounds")

	// ErrTypeMismatch indicates a value that cannot act as an index selector,
	// e.g. a float or string inside a list selector.
	ErrTypeMismatch = errors.New("index: expected an integer, an integer list or a range")

	// ErrIndexArity indicates a selection with other than one or two axes.
	ErrIndexArity = errors.New("index: expected one or two axis selectors")

	// ErrInvalidArgument indicates a malformed selector parameter (a zero step).
	ErrInvalidArgument = errors.New("index: invalid argument")
)
