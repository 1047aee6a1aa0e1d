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
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DiskFileStore stores uploaded files content addressed on the local
// filesystem. Keys are checksums, so identical content maps to the same
// file and writes are idempotent.
type DiskFileStore struct {
	baseDir string
}

func NewDiskFileStore(baseDir string) (*DiskFileStore, error) {
	if err := os.MkdirAll(baseDir, 0o750); err != nil {
		return nil, err
	}
	return &DiskFileStore{baseDir: baseDir}, nil
}

func (store *DiskFileStore) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, "/\\.") {
		return "", fmt.Errorf("invalid storage key: %q", key)
	}
	return filepath.Join(store.baseDir, key), nil
}

func (store *DiskFileStore) Put(key string, content []byte) error {
	path, err := store.path(key)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil {
		// content addressed, already there
		return nil
	}

	tmp, err := os.CreateTemp(store.baseDir, "upload-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func (store *DiskFileStore) Get(key string) ([]byte, error) {
	path, err := store.path(key)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

func (store *DiskFileStore) Delete(key string) error {
	path, err := store.path(key)
	if err != nil {
		return err
	}
	err = os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
