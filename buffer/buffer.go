// SPDX-License-Identifier: MIT

// Package buffer - reference-counted flat float32 storage.
//
// Purpose:
//   - Own the raw element data of one or more matrix handles.
//   - Count handles explicitly so a matrix and its transposed views can share
//     one allocation and drop it when the last handle is released.
//
// Aliasing:
//   - Every holder of a Buffer observes every write. This is how transposed
//     views stay zero-copy; it is not an accident to be "fixed" by copying.
//
// Concurrency:
//   - Retain/Release are atomic. Element reads and writes are not synchronized;
//     callers that share a Buffer across goroutines guard it themselves.
//
// Complexity quicksheet:
//   - New: O(n) zero-init; Retain/Release/Refs/Len: O(1); Clone: O(n).
package buffer

import (
	"sync/atomic"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// ErrInvalidLength is returned by New/FromSlice when the requested length is not positive.
var ErrInvalidLength = errors.New("buffer: length must be > 0")

// Buffer is a fixed-length float32 array shared by reference-counted handles.
//   - data is never resized after creation.
//   - refs starts at 1 for the creating handle.
type Buffer struct {
	data []float32   // flat storage; nil once released
	refs atomic.Int64 // live handles
}

// New allocates a zero-filled Buffer of length n with a reference count of 1.
//
// Errors:
//   - ErrInvalidLength when n <= 0.
//
// Complexity:
//   - Time O(n), Space O(n).
func New(n int) (*Buffer, error) {
	if n <= 0 {
		return nil, errors.Wrapf(ErrInvalidLength, "buffer.New(%d)", n)
	}
	b := &Buffer{data: make([]float32, n)}
	b.refs.Store(1)

	return b, nil
}

// FromSlice wraps data without copying; the Buffer takes ownership of it.
func FromSlice(data []float32) (*Buffer, error) {
	if len(data) == 0 {
		return nil, errors.Wrap(ErrInvalidLength, "buffer.FromSlice")
	}
	b := &Buffer{data: data}
	b.refs.Store(1)

	return b, nil
}

// Len returns the number of elements. Len of a released buffer is 0.
func (b *Buffer) Len() int { return len(b.data) }

// Refs returns the current number of live handles.
func (b *Buffer) Refs() int64 { return b.refs.Load() }

// Released reports whether the last handle has been dropped.
func (b *Buffer) Released() bool { return b.refs.Load() <= 0 }

// Retain registers one more handle and returns b for chaining.
// Retaining a released buffer is a programmer error and panics.
func (b *Buffer) Retain() *Buffer {
	if b.refs.Add(1) <= 1 {
		b.refs.Add(-1)
		exceptions.Panicf("buffer.Retain: buffer of length %d was already released", len(b.data))
	}

	return b
}

// Release drops one handle. When the count reaches zero the data slice is
// dropped; further Data calls panic.
//
// Behavior highlights:
//   - Releasing more times than retained is logged and otherwise ignored.
func (b *Buffer) Release() {
	n := b.refs.Add(-1)
	switch {
	case n == 0:
		klog.V(2).Infof("buffer: releasing %d float32 elements", len(b.data))
		b.data = nil
	case n < 0:
		b.refs.Store(0)
		klog.Warningf("buffer: Release called on an already released buffer")
	}
}

// Data returns the live backing slice. Writes through it are visible to every
// handle. It panics if the buffer was released.
func (b *Buffer) Data() []float32 {
	if b.data == nil {
		exceptions.Panicf("buffer.Data: use of released buffer")
	}

	return b.data
}

// Clone returns an independent copy with its own reference count of 1.
// Complexity: O(n).
func (b *Buffer) Clone() *Buffer {
	src := b.Data()
	dst := make([]float32, len(src))
	copy(dst, src)
	c := &Buffer{data: dst}
	c.refs.Store(1)

	return c
}
