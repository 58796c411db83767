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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBufferIterationOrder(t *testing.T) {
	b := New[string]()
	b.PushAllTop("a", "b", "c")

	var got []string
	for v := range b.All() {
		got = append(got, v)
	}
	require.Equal(t, []string{"c", "b", "a"}, got)
}

func TestBufferIterationSnapshot(t *testing.T) {
	b := New[int]()
	b.PushAllTop(1, 2, 3)

	seq := b.All()

	b.PushTop(4)
	b.Set(0, 10)

	var got []int
	for v := range seq {
		got = append(got, v)
	}
	require.Equal(t, []int{3, 2, 1}, got)
}

func TestBufferIterationEarlyStop(t *testing.T) {
	b := New[int]()
	for i := 0; i < 10; i++ {
		b.PushTop(i)
	}

	var got []int
	for v := range b.All() {
		if len(got) == 3 {
			break
		}
		got = append(got, v)
	}
	require.Equal(t, []int{9, 8, 7}, got)
}

func TestBufferSnapshot(t *testing.T) {
	b := New[int]()
	require.Empty(t, b.Snapshot())

	b.PushAllTop(1, 2, 3)

	s := b.Snapshot()
	require.Equal(t, []int{1, 2, 3}, s)

	s[0] = 10
	require.Equal(t, 1, b.Get(0))
}
