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

// Package achievements awards badges in response to engine events and
// lesson-progress sync points. Badge definitions are data (loaded
// from an embedded YAML fixture); award logic is Go, pattern-matching
// on the git package's Event sum type the way Design Notes direct.
package achievements

import (
	_ "embed"
	"time"

	"gopkg.in/yaml.v3"

	git "github.com/git-tutor/tutor"
)

//go:embed data/badges.yaml
var badgesYAML []byte

// Definition is one badge's static display metadata.
type Definition struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
}

type badgesFile struct {
	Badges []Definition `yaml:"badges"`
}

// LoadDefinitions parses the embedded badge fixture.
func LoadDefinitions() ([]Definition, error) {
	var doc badgesFile
	if err := yaml.Unmarshal(badgesYAML, &doc); err != nil {
		return nil, err
	}
	return doc.Badges, nil
}

// State is a badge's earned/unearned record. Earned is permanent once
// true; awarding an already-earned badge is a no-op, and nothing in
// this package ever flips Earned back to false except an explicit
// reset.
type State struct {
	Earned   bool       `json:"earned"`
	EarnedAt *time.Time `json:"earnedAt,omitempty"`
}

// Tracker holds every badge definition plus the learner's current
// earned/unearned state, and applies event-driven and periodic-sync
// award rules against it.
type Tracker struct {
	defs  []Definition
	state map[string]*State
	now   func() time.Time
}

// NewTracker builds a tracker from defs, seeding state from saved
// (a persisted save's badge map) where present. New badge
// definitions shipped since a save was written start unearned, so old
// saves pick up new badges rather than losing the old ones.
func NewTracker(defs []Definition, saved map[string]State) *Tracker {
	t := &Tracker{defs: defs, state: map[string]*State{}, now: time.Now}
	for _, d := range defs {
		st := State{}
		if s, ok := saved[d.ID]; ok {
			st = s
		}
		stCopy := st
		t.state[d.ID] = &stCopy
	}
	return t
}

// award marks id earned if it is not already, stamping EarnedAt, and
// reports whether this call is what newly earned it.
func (t *Tracker) award(id string) bool {
	st, ok := t.state[id]
	if !ok || st.Earned {
		return false
	}
	st.Earned = true
	when := t.now()
	st.EarnedAt = &when
	return true
}

// OnEvent inspects a single command's resulting Event and awards
// every badge that event qualifies for, returning the IDs newly
// earned (empty if none).
func (t *Tracker) OnEvent(e git.Event) []string {
	var newly []string
	mark := func(id string) {
		if t.award(id) {
			newly = append(newly, id)
		}
	}

	switch e.Kind {
	case git.EventInit:
		mark("first-init")
	case git.EventCommit:
		mark("first-commit")
	case git.EventBranch:
		if e.Name != git.DefaultBranch {
			mark("branch-out")
		}
	case git.EventMerge:
		mark("merge-master")
	case git.EventStashPop:
		mark("stash-stasher")
	case git.EventPush:
		mark("pusher")
	case git.EventPull:
		mark("puller")
	case git.EventClone:
		mark("cloner")
	case git.EventRevert:
		mark("reverter")
	case git.EventResetHard:
		mark("resetter")
	}
	return newly
}

// OnConflictResolved awards the conflict-resolution badge, called by
// the caller when a commit concludes a merge that had conflicts
// pending (the Event sum type alone can't distinguish a plain merge
// commit from a conflict-resolving one, since both emit EventCommit).
func (t *Tracker) OnConflictResolved() []string {
	if t.award("conflict-resolved") {
		return []string{"conflict-resolved"}
	}
	return nil
}

// SyncLessons awards the periodic, non-event-driven badges: graduating
// every lesson and passing every quiz.
func (t *Tracker) SyncLessons(allLessonsComplete, allQuizzesPassed bool) []string {
	var newly []string
	if allLessonsComplete && t.award("all-lessons-complete") {
		newly = append(newly, "all-lessons-complete")
	}
	if allQuizzesPassed && t.award("quiz-ace") {
		newly = append(newly, "quiz-ace")
	}
	return newly
}

// Snapshot returns every badge's current state, keyed by ID, for the
// persistence layer.
func (t *Tracker) Snapshot() map[string]State {
	out := make(map[string]State, len(t.state))
	for id, st := range t.state {
		out[id] = *st
	}
	return out
}

// Definitions returns the static badge metadata this tracker was built from.
func (t *Tracker) Definitions() []Definition {
	return t.defs
}
