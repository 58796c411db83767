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

import "errors"

var (
	ErrIllegalArguments = errors.New("illegal arguments")
	ErrSectionDetached  = errors.New("section detached by buffer growth")
)

// Section is a read/write view over a contiguous run of a buffer's
// underlying slots. It aliases the buffer's storage: writes through the
// section are observable through the owning buffer and vice versa.
//
// A section captures the buffer's growth generation at creation time; once
// the buffer reallocates its storage, every access on the section fails with
// ErrSectionDetached.
type Section[T any] struct {
	buf   *Buffer[T]
	start int
	n     int
	gen   uint64
}

// Section returns a view over n underlying slots beginning at absolute slot
// index start. The range may extend past Len() up to Cap(): slots above the
// top are addressable but stay outside the buffer's occupied range.
func (b *Buffer[T]) Section(start, n int) (*Section[T], error) {
	if start < 0 || n < 0 || start+n > len(b.data) {
		return nil, ErrIllegalArguments
	}

	return &Section[T]{
		buf:   b,
		start: start,
		n:     n,
		gen:   b.gen,
	}, nil
}

// SectionAtTop returns a section anchored at the current top slot, a forward
// window of n not-yet-occupied slots.
func (b *Buffer[T]) SectionAtTop(n int) (*Section[T], error) {
	return b.Section(b.top, n)
}

func (s *Section[T]) Len() int {
	return s.n
}

// Start returns the absolute slot index of the section's first slot.
func (s *Section[T]) Start() int {
	return s.start
}

func (s *Section[T]) check(i int) error {
	if i < 0 || i >= s.n {
		return ErrIllegalArguments
	}
	if s.gen != s.buf.gen {
		return ErrSectionDetached
	}
	return nil
}

func (s *Section[T]) Get(i int) (T, error) {
	var zero T

	if err := s.check(i); err != nil {
		return zero, err
	}
	return s.buf.data[s.start+i], nil
}

func (s *Section[T]) Set(i int, v T) error {
	if err := s.check(i); err != nil {
		return err
	}

	s.buf.data[s.start+i] = v
	return nil
}
