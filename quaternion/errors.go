// SPDX-License-Identifier: MIT

package quaternion

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvmath/matrix"
)

var (
	// ErrZeroAxis is returned by FromAxisAngle for an axis of length zero.
	ErrZeroAxis = errors.New("quaternion: zero rotation axis")

	// ErrZeroNorm is returned by Normalize for the zero quaternion.
	ErrZeroNorm = errors.New("quaternion: zero norm")

	// ErrDivisionByZero is the matrix sentinel: a divisor component is zero.
	ErrDivisionByZero = matrix.ErrDivisionByZero
)
