// SPDX-License-Identifier: MIT

// Package quaternion provides a float32 quaternion value type for rotations,
// with conversions to the 3×3 and 4×4 rotation matrices of package matrix.
//
// Every constructor and operator snaps components whose magnitude is below
// the float64 machine epsilon (about 2.22e-16) to exactly zero, so rotations
// built from sin/cos do not carry rounding residue into comparisons.
//
// Quaternion is a plain comparable value; all methods have value receivers
// and return new values.
package quaternion

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/janpfeifer/must"
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvmath/index"
	"github.com/katalvlaran/lvmath/matrix"
)

// Epsilon is the snapping threshold: components with |x| < Epsilon become 0.
const Epsilon = 2.220446049250313e-16

// Quaternion is r + i·i + j·j + k·k.
type Quaternion struct {
	R, I, J, K float32
}

// snap returns 0 for |v| < Epsilon and v otherwise.
func snap(v float32) float32 {
	if math.Abs(float64(v)) < Epsilon {
		return 0
	}

	return v
}

// New returns the quaternion (r, i, j, k) with tiny components snapped to 0.
func New(r, i, j, k float32) Quaternion {
	return Quaternion{R: snap(r), I: snap(i), J: snap(j), K: snap(k)}
}

// Identity returns the rotation identity (1, 0, 0, 0).
func Identity() Quaternion { return Quaternion{R: 1} }

// FromAxisAngle returns the rotation by angle radians about (x, y, z). The
// axis is normalized first and the angle is reduced into [0, 2π).
//
// Errors:
//   - ErrZeroAxis for a zero-length axis.
func FromAxisAngle(x, y, z, angle float32) (Quaternion, error) {
	axis, err := matrix.Normalize(must.M1(matrix.FromData(3, 1, []float32{x, y, z})), 2)
	if err != nil {
		return Quaternion{}, errors.Wrapf(ErrZeroAxis, "FromAxisAngle(%g, %g, %g): %v", x, y, z, err)
	}
	u := axis.Values()
	for _, c := range u {
		if math.IsNaN(float64(c)) {
			return Quaternion{}, errors.Wrapf(ErrZeroAxis, "FromAxisAngle(%g, %g, %g)", x, y, z)
		}
	}
	a := math.Mod(float64(angle), 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	sin, cos := math.Sincos(a / 2)

	return New(float32(cos), float32(float64(u[0])*sin), float32(float64(u[1])*sin), float32(float64(u[2])*sin)), nil
}

// Components returns (r, i, j, k).
func (q Quaternion) Components() [4]float32 { return [4]float32{q.R, q.I, q.J, q.K} }

// Conjugate returns (r, -i, -j, -k).
func (q Quaternion) Conjugate() Quaternion {
	return New(q.R, -q.I, -q.J, -q.K)
}

// Hamilton returns the quaternion product q·o (not commutative).
func (q Quaternion) Hamilton(o Quaternion) Quaternion {
	return New(
		q.R*o.R-q.I*o.I-q.J*o.J-q.K*o.K,
		q.R*o.I+q.I*o.R+q.J*o.K-q.K*o.J,
		q.R*o.J-q.I*o.K+q.J*o.R+q.K*o.I,
		q.R*o.K+q.I*o.J-q.J*o.I+q.K*o.R,
	)
}

// Norm returns the Euclidean length, sqrt of the real part of q·conj(q).
func (q Quaternion) Norm() float32 {
	return float32(math.Sqrt(float64(q.Hamilton(q.Conjugate()).R)))
}

// Normalize returns q / |q|.
//
// Errors:
//   - ErrZeroNorm for the zero quaternion.
func (q Quaternion) Normalize() (Quaternion, error) {
	n := q.Norm()
	if n == 0 {
		return Quaternion{}, errors.Wrapf(ErrZeroNorm, "Normalize(%s)", q)
	}

	return q.Scale(1 / n), nil
}

// Add returns the componentwise sum.
func (q Quaternion) Add(o Quaternion) Quaternion {
	return New(q.R+o.R, q.I+o.I, q.J+o.J, q.K+o.K)
}

// Sub returns the componentwise difference.
func (q Quaternion) Sub(o Quaternion) Quaternion {
	return New(q.R-o.R, q.I-o.I, q.J-o.J, q.K-o.K)
}

// Mul returns the componentwise product. See Hamilton for the quaternion product.
func (q Quaternion) Mul(o Quaternion) Quaternion {
	return New(q.R*o.R, q.I*o.I, q.J*o.J, q.K*o.K)
}

// Div returns the componentwise quotient.
//
// Errors:
//   - ErrDivisionByZero if any component of o is zero.
func (q Quaternion) Div(o Quaternion) (Quaternion, error) {
	for c, v := range o.Components() {
		if v == 0 {
			return Quaternion{}, errors.Wrapf(ErrDivisionByZero, "Div: component %d of %s", c, o)
		}
	}

	return New(q.R/o.R, q.I/o.I, q.J/o.J, q.K/o.K), nil
}

// AddScalar adds s to every component.
func (q Quaternion) AddScalar(s float32) Quaternion {
	return New(q.R+s, q.I+s, q.J+s, q.K+s)
}

// Scale multiplies every component by s.
func (q Quaternion) Scale(s float32) Quaternion {
	return New(q.R*s, q.I*s, q.J*s, q.K*s)
}

// Equal reports exact componentwise equality.
func (q Quaternion) Equal(o Quaternion) bool { return q == o }

// rotation returns the row-major 3×3 rotation for q, which should be a unit
// quaternion.
func (q Quaternion) rotation() []float32 {
	r, i, j, k := q.R, q.I, q.J, q.K

	return []float32{
		1 - 2*(j*j+k*k), 2 * (i*j - k*r), 2 * (i*k + j*r),
		2 * (i*j + k*r), 1 - 2*(i*i+k*k), 2 * (j*k - i*r),
		2 * (i*k - j*r), 2 * (j*k + i*r), 1 - 2*(i*i+j*j),
	}
}

// Matrix3 returns the 3×3 rotation matrix of q (column-vector convention).
func (q Quaternion) Matrix3() *matrix.Matrix {
	return must.M1(matrix.FromData(3, 3, q.rotation()))
}

// Matrix4 returns Matrix3 embedded in the upper-left block of the 4×4 identity.
func (q Quaternion) Matrix4() *matrix.Matrix {
	m := must.M1(matrix.Identity(4))
	must.M(m.SetValues(q.rotation(), index.RangeTo(3), index.RangeTo(3)))

	return m
}

// Bytes encodes (r, i, j, k) as little-endian float32, 16 bytes.
func (q Quaternion) Bytes() []byte {
	out := make([]byte, 0, 16)
	for _, v := range q.Components() {
		out = binary.LittleEndian.AppendUint32(out, math.Float32bits(v))
	}

	return out
}

// String renders q as "r + ii + jj + kk", e.g. "1 + 0i + 0j + 0k".
func (q Quaternion) String() string {
	return fmt.Sprintf("%v + %vi + %vj + %vk", q.R, q.I, q.J, q.K)
}
