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

// Package api exposes the engine over HTTP: one learner session per
// browser tab, a command endpoint that dispatches shell lines against
// that session's lessons.Engine, and a WebSocket that pushes the
// resulting snapshot to every connected viewer.
package api

import (
	"sync"

	"github.com/google/uuid"

	git "github.com/git-tutor/tutor"
	"github.com/git-tutor/tutor/internal/achievements"
	"github.com/git-tutor/tutor/internal/lessons"
	"github.com/git-tutor/tutor/internal/logging"
	"github.com/git-tutor/tutor/internal/seed"
	"github.com/git-tutor/tutor/internal/store"
)

// session bundles one learner's engine, achievement tracker and
// subscriber set behind a single mutex, the concurrency unit the
// HTTP handlers and WebSocket hub both lock against.
type session struct {
	mu sync.Mutex

	id      string
	store   *git.RemoteStore
	engine  *lessons.Engine
	badges  *achievements.Tracker
	defs    []achievements.Definition
	subs    map[*subscriber]struct{}
}

// subscriber is one connected WebSocket client waiting for snapshot pushes.
type subscriber struct {
	send chan Snapshot
}

// Snapshot is the JSON payload pushed to WebSocket subscribers and
// returned from command/state endpoints: everything the UI needs to
// re-render after a command runs.
type Snapshot struct {
	SessionID     string                `json:"sessionId"`
	ActiveLesson  string                `json:"activeLesson"`
	LessonIDs     []string              `json:"lessonIds"`
	Repo          git.RepoSnapshot      `json:"repo"`
	LastCommand   string                `json:"lastCommand,omitempty"`
	LastOutput    git.CommandResult     `json:"lastOutput"`
	CompletedStep []string              `json:"completedSteps,omitempty"`
	Finished      bool                  `json:"finished"`
	NewBadges     []string              `json:"newBadges,omitempty"`
	Badges        map[string]achievements.State `json:"badges"`
}

// Manager creates and looks up sessions, persisting each through
// save on every mutating call so a crash never loses more than the
// in-flight command.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*session
	backing  store.Store
	log      *logging.Logger
}

// NewManager builds a Manager backed by backing for persistence.
func NewManager(backing store.Store, log *logging.Logger) *Manager {
	return &Manager{sessions: map[string]*session{}, backing: backing, log: log}
}

// Create allocates a fresh session ID, seeds its remote store and
// lesson engine, and persists its initial state.
func (m *Manager) Create() (*session, error) {
	id := uuid.NewString()

	remote := git.NewRemoteStore()
	seed.Populate(remote)

	defs, err := lessons.BuiltinLessons(remote)
	if err != nil {
		return nil, err
	}

	badgeDefs, err := achievements.LoadDefinitions()
	if err != nil {
		return nil, err
	}

	sess := &session{
		id:     id,
		store:  remote,
		engine: lessons.NewEngine(remote, defs),
		badges: achievements.NewTracker(badgeDefs, nil),
		defs:   badgeDefs,
		subs:   map[*subscriber]struct{}{},
	}

	m.mu.Lock()
	m.sessions[id] = sess
	m.mu.Unlock()

	if err := m.persist(sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Get returns the session with id, or nil if none exists (and no
// backing store has it either — Manager never lazily resurrects a
// session ID a client invented).
func (m *Manager) Get(id string) *session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[id]
}

// Restore loads every session the backing store already knows about,
// used at server startup so a restart doesn't orphan in-progress
// learners. sessionIDs is the full key set the HTTP layer or CLI has
// previously handed out; FileStore callers pass a single well-known
// ID, SQLStore-backed servers pass every row key they track.
func (m *Manager) Restore(sessionIDs []string) error {
	for _, id := range sessionIDs {
		st, err := m.backing.Load(id)
		if err != nil {
			return err
		}

		remote := git.NewRemoteStore()
		remote.Import(st.RemoteStore)
		seed.Populate(remote)

		defs, err := lessons.BuiltinLessons(remote)
		if err != nil {
			return err
		}
		engine := lessons.NewEngine(remote, defs)
		engine.ImportStates(st.ActiveLessonID, st.Lessons)

		badgeDefs, err := achievements.LoadDefinitions()
		if err != nil {
			return err
		}

		sess := &session{
			id:     id,
			store:  remote,
			engine: engine,
			badges: achievements.NewTracker(badgeDefs, st.Badges),
			defs:   badgeDefs,
			subs:   map[*subscriber]struct{}{},
		}

		m.mu.Lock()
		m.sessions[id] = sess
		m.mu.Unlock()
	}
	return nil
}

// persist writes sess's current state through the Manager's backing store.
func (m *Manager) persist(sess *session) error {
	st := store.AppState{
		Version:        store.CurrentVersion,
		ActiveLessonID: sess.engine.Active(),
		Lessons:        sess.engine.ExportStates(),
		Badges:         sess.badges.Snapshot(),
		RemoteStore:    sess.store.Export(),
	}
	return m.backing.Save(sess.id, st)
}

// snapshot builds the JSON view of sess's current state. Caller must
// hold sess.mu.
func (sess *session) snapshot() Snapshot {
	var repoSnap git.RepoSnapshot
	if r := sess.engine.Repo(sess.engine.Active()); r != nil {
		repoSnap = r.Export()
	}
	return Snapshot{
		SessionID:    sess.id,
		ActiveLesson: sess.engine.Active(),
		LessonIDs:    sess.engine.Definitions(),
		Repo:         repoSnap,
		Badges:       sess.badges.Snapshot(),
	}
}

// broadcast pushes snap to every connected subscriber without blocking
// on a slow reader. Caller must hold sess.mu.
func (sess *session) broadcast(snap Snapshot) {
	for sub := range sess.subs {
		select {
		case sub.send <- snap:
		default:
		}
	}
}
