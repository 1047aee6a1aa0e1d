// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileStore(t *testing.T) *DiskFileStore {
	t.Helper()

	store, err := NewDiskFileStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestPutAndGet(t *testing.T) {
	t.Run("should round trip content", func(t *testing.T) {
		store := newTestFileStore(t)

		require.NoError(t, store.Put("abc123", []byte("png bytes")))

		content, err := store.Get("abc123")
		require.NoError(t, err)
		assert.Equal(t, []byte("png bytes"), content)
	})

	t.Run("should keep the first write for the same key", func(t *testing.T) {
		store := newTestFileStore(t)

		require.NoError(t, store.Put("abc123", []byte("first")))
		require.NoError(t, store.Put("abc123", []byte("second")))

		content, err := store.Get("abc123")
		require.NoError(t, err)
		assert.Equal(t, []byte("first"), content)
	})

	t.Run("should reject keys that escape the base directory", func(t *testing.T) {
		store := newTestFileStore(t)

		assert.Error(t, store.Put("../escape", []byte("x")))
		assert.Error(t, store.Put("", []byte("x")))
		_, err := store.Get("sub/dir")
		assert.Error(t, err)
	})
}

func TestDelete(t *testing.T) {
	t.Run("should remove the file", func(t *testing.T) {
		store := newTestFileStore(t)
		require.NoError(t, store.Put("abc123", []byte("png bytes")))

		require.NoError(t, store.Delete("abc123"))

		_, err := store.Get("abc123")
		assert.Error(t, err)
	})

	t.Run("should tolerate deleting a missing key", func(t *testing.T) {
		store := newTestFileStore(t)

		assert.NoError(t, store.Delete("missing"))
	})
}
