/*
Copyright 2025 Codenotary Inc. All rights reserved.

SPDX-License-Identifier: BUSL-1.1
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://mariadb.com/bsl11/

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package container

import (
	"github.com/codenotary/dequebuf/metrics"
)

const defaultCapacity = 10

// Buffer is a dual-ended, amortized-doubling sequence: O(1) push/pop/peek at
// the top, O(n) push/pop at the bottom, indexed reads from either end.
// Slot 0 is the bottom (oldest), slot Len()-1 the top (most recent).
//
// Out-of-range reads on the bounded accessors return the zero value of T
// rather than an error; At is the strict variant. Capacity only grows.
//
// Buffer is not safe for concurrent use.
type Buffer[T any] struct {
	data []T
	top  int
	gen  uint64

	metrics metrics.BufferMetrics
}

// New returns an empty buffer with the default initial capacity.
func New[T any]() *Buffer[T] {
	return &Buffer[T]{
		data:    make([]T, defaultCapacity),
		metrics: metrics.NewNopBufferMetrics(),
	}
}

// NewWith returns a buffer seeded with a single element.
func NewWith[T any](v T) *Buffer[T] {
	b := New[T]()
	b.PushTop(v)
	return b
}

// Clone returns a buffer with the same capacity, length and element values.
// Elements are copied shallowly.
func (b *Buffer[T]) Clone() *Buffer[T] {
	data := make([]T, len(b.data))
	copy(data, b.data)

	return &Buffer[T]{
		data:    data,
		top:     b.top,
		metrics: metrics.NewNopBufferMetrics(),
	}
}

// WithMetrics attaches a metrics sink to the buffer. The default sink is a
// no-op.
func (b *Buffer[T]) WithMetrics(m metrics.BufferMetrics) *Buffer[T] {
	b.metrics = m
	m.SetCapacity(len(b.data))
	m.SetLen(b.top)
	return b
}

// sink keeps the zero-value Buffer usable: the metrics field is only
// populated by New and WithMetrics.
func (b *Buffer[T]) sink() metrics.BufferMetrics {
	if b.metrics == nil {
		b.metrics = metrics.NewNopBufferMetrics()
	}
	return b.metrics
}

// grow doubles capacity when every slot is occupied. It reallocates the
// backing storage, which detaches any live Section.
func (b *Buffer[T]) grow() {
	if b.top < len(b.data) {
		return
	}

	newCap := 2 * len(b.data)
	if newCap == 0 {
		newCap = defaultCapacity
	}

	newData := make([]T, newCap)
	copy(newData, b.data)

	b.data = newData
	b.gen++

	b.sink().IncGrowths()
	b.sink().SetCapacity(len(b.data))
}

// slot validates a bottom-relative index against the occupied range.
func (b *Buffer[T]) slot(i int) (int, bool) {
	if i < 0 || i >= b.top {
		return 0, false
	}
	return i, true
}

func (b *Buffer[T]) PushTop(v T) {
	b.grow()

	b.data[b.top] = v
	b.top++

	b.sink().SetLen(b.top)
}

// PushAllTop pushes each value in order: the first argument ends up deepest,
// the last one on top.
func (b *Buffer[T]) PushAllTop(values ...T) {
	for _, v := range values {
		b.PushTop(v)
	}
}

// PopTop removes and returns the top element, or the zero value when the
// buffer is empty. The vacated slot is cleared so the buffer does not retain
// the element.
func (b *Buffer[T]) PopTop() T {
	var zero T

	if b.top == 0 {
		return zero
	}

	b.top--
	v := b.data[b.top]
	b.data[b.top] = zero

	b.sink().SetLen(b.top)

	return v
}

// PeekTop returns the element offset slots below the top (0 = top itself),
// or the zero value when out of range.
func (b *Buffer[T]) PeekTop(offset int) T {
	var zero T

	i, ok := b.slot(b.top - 1 - offset)
	if !ok {
		return zero
	}
	return b.data[i]
}

func (b *Buffer[T]) Top() T {
	return b.PeekTop(0)
}

// PushBottom inserts v below all existing elements, shifting them up one
// slot. O(n).
func (b *Buffer[T]) PushBottom(v T) {
	b.grow()

	copy(b.data[1:b.top+1], b.data[:b.top])
	b.data[0] = v
	b.top++

	b.sink().SetLen(b.top)
}

// PopBottom removes and returns the bottom element, shifting the rest down
// one slot, or returns the zero value when the buffer is empty. O(n).
func (b *Buffer[T]) PopBottom() T {
	var zero T

	if b.top == 0 {
		return zero
	}

	v := b.data[0]
	copy(b.data[:b.top-1], b.data[1:b.top])

	b.top--
	b.data[b.top] = zero

	b.sink().SetLen(b.top)

	return v
}

// PeekBottom returns the element n slots above the bottom (0 = bottom), or
// the zero value when out of range.
func (b *Buffer[T]) PeekBottom(n int) T {
	var zero T

	i, ok := b.slot(n)
	if !ok {
		return zero
	}
	return b.data[i]
}

// Get reads the element at bottom-relative index i under the same lenient
// contract as PeekBottom.
func (b *Buffer[T]) Get(i int) T {
	return b.PeekBottom(i)
}

// At is the strict counterpart of Get: the second return value reports
// whether i addresses an occupied slot.
func (b *Buffer[T]) At(i int) (T, bool) {
	var zero T

	j, ok := b.slot(i)
	if !ok {
		return zero, false
	}
	return b.data[j], true
}

// Set writes the raw slot at index i without growing the buffer or moving
// its top: a slot at or above Len() but below Cap() is written in place and
// stays outside the occupied range. Writes beyond the current capacity are
// rejected. This asymmetry with the push paths keeps Section views valid
// across Set calls.
func (b *Buffer[T]) Set(i int, v T) bool {
	if i < 0 || i >= len(b.data) {
		return false
	}
	b.data[i] = v
	return true
}

func (b *Buffer[T]) Len() int {
	return b.top
}

func (b *Buffer[T]) Cap() int {
	return len(b.data)
}

func (b *Buffer[T]) Empty() bool {
	return b.top == 0
}

// ContainsFunc reports whether pred holds for any occupied element.
func (b *Buffer[T]) ContainsFunc(pred func(T) bool) bool {
	for i := 0; i < b.top; i++ {
		if pred(b.data[i]) {
			return true
		}
	}
	return false
}

// Contains reports whether v is present anywhere in the occupied range.
func Contains[T comparable](b *Buffer[T], v T) bool {
	return b.ContainsFunc(func(x T) bool { return x == v })
}
