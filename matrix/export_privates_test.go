// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/lvmath/buffer"

// Test bridge (white-box) for unexported state.
//
// Purpose:
//   - Expose buffer reference counts, the resolved construction options and
//     the element formatter to matrix_test ONLY.
//   - Compiled only with the package tests (the file name ends in _test.go),
//     so the production API does not widen.

// RefsOf returns the reference count of m's buffer.
func RefsOf(m *Matrix) int64 { return m.buf.Refs() }

// BufferOf returns the buffer behind m (nil once m was released).
func BufferOf(m *Matrix) *buffer.Buffer { return m.buf }

// OptionsSnapshot is a read-only view of the resolved construction options.
type OptionsSnapshot struct {
	Fill       float32
	Data       []float32
	Transposed bool
}

// GatherOptionsSnapshot resolves opts the way New does.
func GatherOptionsSnapshot(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)
	return OptionsSnapshot{Fill: o.fill, Data: o.data, Transposed: o.transposed}
}

// GatherCloseOptions resolves tolerance options the way AllClose does.
func GatherCloseOptions(opts ...CloseOption) (rel, abs float64, err error) {
	o, err := gatherCloseOptions(opts...)
	return o.rel, o.abs, err
}

// FormatElem exposes the element formatter.
var FormatElem = formatElem

// Panic message exports to avoid magic strings in tests.
const (
	PanicRelTolNaN = panicRelTolNaN
	PanicAbsTolNaN = panicAbsTolNaN
)
