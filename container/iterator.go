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

import "iter"

// Snapshot returns a copy of the occupied range in bottom-to-top order.
func (b *Buffer[T]) Snapshot() []T {
	s := make([]T, b.top)
	copy(s, b.data[:b.top])
	return s
}

// All returns a top-to-bottom traversal over a snapshot taken when All is
// called: mutations made to the buffer afterwards are not observed.
func (b *Buffer[T]) All() iter.Seq[T] {
	s := b.Snapshot()

	return func(yield func(T) bool) {
		for i := len(s) - 1; i >= 0; i-- {
			if !yield(s[i]) {
				return
			}
		}
	}
}
