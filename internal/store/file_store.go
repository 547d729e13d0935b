/*
Copyright (c) 2025 Git Tutor Contributors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// FileStore is the literal model spec.md describes: one JSON blob
// written to a single file. sessionID is ignored (the CLI REPL runs
// exactly one implicit session per process); an advisory flock guards
// the file so two CLI invocations against the same path don't race.
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore writing to path, creating its
// parent directory on first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads and validates the state file, returning a fresh
// NewState() if it does not exist yet.
func (s *FileStore) Load(_ string) (AppState, error) {
	lock := flock.New(s.path + ".lock")
	if err := lock.Lock(); err != nil {
		return AppState{}, err
	}
	defer lock.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return NewState(), nil
	}
	if err != nil {
		return AppState{}, err
	}

	var st AppState
	if err := json.Unmarshal(data, &st); err != nil {
		return AppState{}, err
	}
	if st.Version != CurrentVersion {
		return AppState{}, ErrUnsupportedVersion{Got: st.Version}
	}
	fillDefaults(&st)
	return st, nil
}

// Save writes state to the file as pretty-printed JSON, guarded by an
// advisory lock so concurrent CLI processes never interleave writes.
func (s *FileStore) Save(_ string, state AppState) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	lock := flock.New(s.path + ".lock")
	if err := lock.Lock(); err != nil {
		return err
	}
	defer lock.Unlock()

	state.Version = CurrentVersion
	state.SavedAt = time.Now()

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// fillDefaults merges in safe zero values for any field missing from
// an older or hand-edited save, so unknown/missing fields default
// safely rather than producing a nil-map panic downstream.
func fillDefaults(st *AppState) {
	if st.Lessons == nil {
		st.Lessons = NewState().Lessons
	}
	if st.Badges == nil {
		st.Badges = NewState().Badges
	}
	if st.RemoteStore == nil {
		st.RemoteStore = NewState().RemoteStore
	}
}
