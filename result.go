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

package git

// CommandResult is the tagged record every simulated command returns,
// replacing the open "result object" the original tutorial used.
// Stdout and Stderr are line vectors; no entry carries an embedded
// newline.
type CommandResult struct {
	OK       bool
	ExitCode int
	Stdout   []string
	Stderr   []string
}

func ok(lines ...string) CommandResult {
	return CommandResult{OK: true, ExitCode: 0, Stdout: lines}
}

func fail(exitCode int, lines ...string) CommandResult {
	return CommandResult{OK: false, ExitCode: exitCode, Stderr: lines}
}

func failErr(exitCode int, err error) CommandResult {
	return CommandResult{OK: false, ExitCode: exitCode, Stderr: []string{err.Error()}}
}

// EventKind discriminates the Event sum type. Go has no native sum
// types, so EventKind plus the single Event struct (with only the
// fields relevant to Kind populated) models one, the way Design Notes
// call for pattern-matching over lastEvent instead of inspecting an
// open map.
type EventKind string

const (
	EventNone       EventKind = ""
	EventInit       EventKind = "init"
	EventCommit     EventKind = "commit"
	EventBranch     EventKind = "branch"
	EventCheckout   EventKind = "checkout"
	EventMerge      EventKind = "merge"
	EventPush       EventKind = "push"
	EventPull       EventKind = "pull"
	EventClone      EventKind = "clone"
	EventResetHard  EventKind = "reset_hard"
	EventRevert     EventKind = "revert"
	EventStash      EventKind = "stash"
	EventStashPop   EventKind = "stash_pop"
	EventFsWrite    EventKind = "fs_write"
	EventFsTouch    EventKind = "fs_touch"
	EventFsRemove   EventKind = "fs_rm"
	EventFsMkdir    EventKind = "fs_mkdir"
	EventFsEdit     EventKind = "fs_edit"
)

// Event is a single discriminated record describing the last mutation
// applied to a Repo. Achievement logic switches on Kind and reads only
// the fields that kind populates.
type Event struct {
	Kind   EventKind
	Hash   string
	Name   string
	Path   string
	Remote string
	Branch string
}

func (r *Repo) emit(e Event) {
	r.LastEvent = e
}
