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
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// sessionRow is the one-row-per-session table the HTTP server's
// SQLStore persists to. The schema from spec.md is stored verbatim as
// a JSON blob in StateJSON rather than relationally decomposed,
// matching "import/export round-trips this JSON verbatim".
type sessionRow struct {
	SessionID string `gorm:"primaryKey"`
	StateJSON string
	UpdatedAt time.Time
}

// SQLStore persists one AppState per session ID in a SQLite database
// via the pure-Go glebarez/sqlite driver, so multiple browser sessions
// in the HTTP server survive process restarts independently and the
// module stays cgo-free.
type SQLStore struct {
	db *gorm.DB
}

// NewSQLStore opens (creating if necessary) a SQLite database at dsn
// and migrates the session table.
func NewSQLStore(dsn string) (*SQLStore, error) {
	sqliteDSN := strings.TrimPrefix(dsn, "file:")
	if sqliteDSN != ":memory:" {
		if err := ensureDir(filepath.Dir(sqliteDSN)); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(sqlite.Open(sqliteDSN), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout = 5000")

	if err := db.AutoMigrate(&sessionRow{}); err != nil {
		return nil, err
	}
	return &SQLStore{db: db}, nil
}

// Load returns the session's persisted state, or a fresh NewState()
// if no row exists yet for sessionID.
func (s *SQLStore) Load(sessionID string) (AppState, error) {
	var row sessionRow
	err := s.db.First(&row, "session_id = ?", sessionID).Error
	if err == gorm.ErrRecordNotFound {
		return NewState(), nil
	}
	if err != nil {
		return AppState{}, err
	}

	var st AppState
	if err := json.Unmarshal([]byte(row.StateJSON), &st); err != nil {
		return AppState{}, err
	}
	if st.Version != CurrentVersion {
		return AppState{}, ErrUnsupportedVersion{Got: st.Version}
	}
	fillDefaults(&st)
	return st, nil
}

// Save upserts the session's state as a single JSON column.
func (s *SQLStore) Save(sessionID string, state AppState) error {
	state.Version = CurrentVersion
	state.SavedAt = time.Now()

	data, err := json.Marshal(state)
	if err != nil {
		return err
	}

	row := sessionRow{SessionID: sessionID, StateJSON: string(data), UpdatedAt: state.SavedAt}
	return s.db.Save(&row).Error
}

func ensureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
