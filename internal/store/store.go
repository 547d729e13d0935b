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

// Package store persists the full application state — lesson
// progress, earned badges and the remote store — as one versioned
// JSON document per session, with two interchangeable backends: a
// single flock-guarded file for the CLI REPL, and a SQLite table
// keyed by session for the HTTP server.
package store

import (
	"time"

	git "github.com/git-tutor/tutor"
	"github.com/git-tutor/tutor/internal/achievements"
	"github.com/git-tutor/tutor/internal/lessons"
)

// CurrentVersion is the only schema version this build writes. Import
// rejects anything else rather than guessing at a migration.
const CurrentVersion = 1

// AppState is the single typed object persisted after every command:
// lesson progress, badge state and the shared remote store, the
// shape spec.md's persistence section names verbatim.
type AppState struct {
	Version        int                         `json:"version"`
	ActiveLessonID string                      `json:"activeLessonId"`
	Lessons        map[string]lessons.State    `json:"lessons"`
	Badges         map[string]achievements.State `json:"badges"`
	RemoteStore    map[string]git.RemoteSnapshot `json:"remoteStore"`
	SavedAt        time.Time                   `json:"savedAt"`
}

// NewState builds an empty, current-version AppState, used the first
// time a session is saved.
func NewState() AppState {
	return AppState{
		Version:     CurrentVersion,
		Lessons:     map[string]lessons.State{},
		Badges:      map[string]achievements.State{},
		RemoteStore: map[string]git.RemoteSnapshot{},
	}
}

// Store is the persistence backend contract. Load on a session that
// has never been saved returns a fresh NewState(), not an error, so
// callers never special-case "first run".
type Store interface {
	Load(sessionID string) (AppState, error)
	Save(sessionID string, state AppState) error
}

// ErrUnsupportedVersion is returned when an imported document's
// version field is not CurrentVersion. The persistence format is
// versioned explicitly; it is never inferred from field presence.
type ErrUnsupportedVersion struct{ Got int }

func (e ErrUnsupportedVersion) Error() string {
	return "store: unsupported state version (import validates version == 1)"
}
