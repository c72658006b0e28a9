// SPDX-License-Identifier: MIT

// Package matrix - 4×4 transform builders for rendering pipelines.
//
// All builders return fresh untransposed row-major matrices in the column
// vector convention (p' = M @ p); use T() for a column-major upload layout.
package matrix

import (
	"math"

	"github.com/pkg/errors"
)

// Identity returns the n×n identity matrix.
//
// Errors:
//   - ErrShapeError for n < 1.
func Identity(n int) (*Matrix, error) {
	out, err := Zeros(n, n)
	if err != nil {
		return nil, matrixErrorf("Identity", err)
	}
	d := out.data()
	for i := 0; i < n; i++ {
		d[i*n+i] = 1
	}

	return out, nil
}

// Translation returns the 4×4 homogeneous translation by (x, y, z).
func Translation(x, y, z float32) *Matrix {
	out, _ := Identity(4)
	d := out.data()
	d[3], d[7], d[11] = x, y, z

	return out
}

// Orthographic returns the 4×4 orthographic projection of the box
// [left, right] × [bottom, top] × [near, far] onto the clip cube.
//
// Errors:
//   - ErrInvalidArgument if a pair of opposite planes coincides.
func Orthographic(left, right, bottom, top, near, far float32) (*Matrix, error) {
	if right == left || top == bottom || far == near {
		return nil, errors.Wrapf(ErrInvalidArgument,
			"Orthographic: degenerate box l=%g r=%g b=%g t=%g n=%g f=%g", left, right, bottom, top, near, far)
	}
	rl, tb, fn := right-left, top-bottom, far-near

	return FromData(4, 4, []float32{
		2 / rl, 0, 0, -(right + left) / rl,
		0, 2 / tb, 0, -(top + bottom) / tb,
		0, 0, -2 / fn, -(far + near) / fn,
		0, 0, 0, 1,
	})
}

// Perspective returns the 4×4 perspective projection for a vertical field of
// view fov (radians), a viewport aspect ratio (width/height) and the near and
// far clip distances.
//
// Errors:
//   - ErrInvalidArgument for aspect == 0, near == far, or a fov whose half
//     tangent is zero or infinite.
func Perspective(fov, aspect, near, far float32) (*Matrix, error) {
	tan := math.Tan(float64(fov) / 2)
	if aspect == 0 || near == far || tan == 0 || math.IsInf(tan, 0) || math.IsNaN(tan) {
		return nil, errors.Wrapf(ErrInvalidArgument,
			"Perspective: fov=%g aspect=%g near=%g far=%g", fov, aspect, near, far)
	}
	yScale := float32(1 / tan)
	xScale := yScale / aspect
	zDiff := near - far

	return FromData(4, 4, []float32{
		xScale, 0, 0, 0,
		0, yScale, 0, 0,
		0, 0, (near + far) / zDiff, 2 * near * far / zDiff,
		0, 0, -1, 0,
	})
}
