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

func TestSectionAliasesStorage(t *testing.T) {
	b := New[int]()
	b.PushAllTop(1, 2, 3, 4)

	s, err := b.Section(1, 2)
	require.NoError(t, err)
	require.Equal(t, 2, s.Len())
	require.Equal(t, 1, s.Start())

	v, err := s.Get(0)
	require.NoError(t, err)
	require.Equal(t, 2, v)

	require.NoError(t, s.Set(1, 30))
	require.Equal(t, 30, b.Get(2))

	// writes through the buffer are visible through the section
	require.True(t, b.Set(1, 20))
	v, err = s.Get(0)
	require.NoError(t, err)
	require.Equal(t, 20, v)
}

func TestSectionBounds(t *testing.T) {
	b := New[int]()
	b.PushAllTop(1, 2, 3)

	_, err := b.Section(-1, 2)
	require.ErrorIs(t, err, ErrIllegalArguments)

	_, err = b.Section(0, b.Cap()+1)
	require.ErrorIs(t, err, ErrIllegalArguments)

	s, err := b.Section(0, 2)
	require.NoError(t, err)

	_, err = s.Get(2)
	require.ErrorIs(t, err, ErrIllegalArguments)

	err = s.Set(-1, 0)
	require.ErrorIs(t, err, ErrIllegalArguments)
}

func TestSectionDetachedByGrowth(t *testing.T) {
	b := New[int]()
	b.PushAllTop(1, 2, 3)

	s, err := b.Section(0, 3)
	require.NoError(t, err)

	for i := b.Len(); i < b.Cap(); i++ {
		b.PushTop(i)
	}

	// still attached: pushes so far fit the original allocation
	_, err = s.Get(0)
	require.NoError(t, err)

	b.PushTop(99)

	_, err = s.Get(0)
	require.ErrorIs(t, err, ErrSectionDetached)

	err = s.Set(0, 1)
	require.ErrorIs(t, err, ErrSectionDetached)
}

func TestSectionAtTopReservation(t *testing.T) {
	b := New[byte]()
	b.PushAllTop('a', 'b')

	s, err := b.SectionAtTop(4)
	require.NoError(t, err)
	require.Equal(t, b.Len(), s.Start())

	for i := 0; i < s.Len(); i++ {
		require.NoError(t, s.Set(i, byte('w')))
	}

	// the reserved window stays outside the occupied range
	require.Equal(t, 2, b.Len())
	require.Zero(t, b.Get(2))

	v, err := s.Get(0)
	require.NoError(t, err)
	require.Equal(t, byte('w'), v)

	_, err = b.SectionAtTop(b.Cap())
	require.ErrorIs(t, err, ErrIllegalArguments)
}
