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

// Package git is an in-process, side-effect free model of a git
// repository: a working tree, an index, a commit DAG, branches, a
// merge/stash/reset/revert vocabulary, and a collaborating remote
// store. It never shells out and never touches the real filesystem;
// every operation is a pure state transition over a Repo value plus
// a process-wide RemoteStore.
package git

import (
	"math/rand"
	"time"

	"github.com/git-tutor/tutor/internal/vpath"
)

// DefaultBranch is the branch every freshly initialized repository starts on.
const DefaultBranch = "main"

// HeadRef is a pointer to the latest commit of the current branch.
const HeadRef = "HEAD"

// Snapshot is a complete path -> content map, exactly as stored inside
// a Commit. Snapshots are always copied by value between owners so no
// two commits or working trees ever alias the same map.
type Snapshot map[string]string

// Clone returns an independent copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := make(Snapshot, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Commit is an immutable record of a point in history. Commits are
// never mutated after creation; reset --hard can make one unreachable
// from any branch but it remains addressable by hash.
type Commit struct {
	Hash      string
	Message   string
	Parents   []string
	CreatedAt time.Time
	Files     Snapshot
	Lane      int
	Branch    string
}

// Branch is a name bound to a head commit hash, or the empty string for
// an unborn branch that has never been committed to.
type Branch struct {
	Name  string
	Head  string
	Lane  int
	Color string
}

// MergeState describes an in-progress merge that has not yet been
// committed. It is nil whenever no merge is pending.
type MergeState struct {
	Branch    string
	Head      string
	Conflicts []string
}

// IndexEntry is one staged change: either new/updated content, or a
// staged deletion (Deleted is the sentinel the spec calls for instead
// of removing the key, so "staged for deletion" remains distinguishable
// from "never staged").
type IndexEntry struct {
	Content string
	Deleted bool
}

// StashEntry is a single full snapshot of a dirty working tree plus
// whatever was staged at the time it was shelved.
type StashEntry struct {
	WorkingFiles Snapshot
	StagedFiles  map[string]IndexEntry
	Message      string
	CreatedAt    time.Time
}

// Upstream records the default (remote, remote branch) pair a local
// branch pushes to and pulls from when none is given explicitly.
type Upstream struct {
	Remote string
	Branch string
}

// Repo is the full state of one simulated repository: working tree,
// index, commit DAG, branches, HEAD, any pending merge, the stash
// stack, configured remotes and their upstreams, and the descriptor of
// the last mutation applied (LastEvent).
type Repo struct {
	Initialized   bool
	CurrentBranch string
	Cwd           string

	WorkingFiles Snapshot
	Dirs         map[string]bool

	Index map[string]IndexEntry

	Commits     map[string]*Commit
	CommitOrder []string

	Branches map[string]*Branch

	MergeState *MergeState
	Stash      []StashEntry

	Remotes   map[string]string
	Upstreams map[string]Upstream

	LastEvent Event

	store *RemoteStore
	rnd   *rand.Rand
}

// NewRepo returns an uninitialized repository bound to the given
// remote store. Call Init (or Clone) before any other git subcommand.
func NewRepo(store *RemoteStore) *Repo {
	if store == nil {
		store = NewRemoteStore()
	}
	return &Repo{
		Cwd:          "/",
		WorkingFiles: Snapshot{},
		Dirs:         map[string]bool{"/": true},
		Index:        map[string]IndexEntry{},
		Commits:      map[string]*Commit{},
		Branches:     map[string]*Branch{},
		Remotes:      map[string]string{},
		Upstreams:    map[string]Upstream{},
		store:        store,
		rnd:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Store returns the remote store this repository clones from and
// pushes to.
func (r *Repo) Store() *RemoteStore { return r.store }

// requireInit is the single gate every git subcommand except Init and
// Clone must pass through first.
func (r *Repo) requireInit() error {
	if !r.Initialized {
		return ErrNotARepository
	}
	return nil
}

// head returns the current branch's head commit, or nil if unborn.
func (r *Repo) head() *Commit {
	b, ok := r.Branches[r.CurrentBranch]
	if !ok || b.Head == "" {
		return nil
	}
	return r.Commits[b.Head]
}

// headSnapshot returns the file snapshot of HEAD, or an empty snapshot
// for an unborn branch.
func (r *Repo) headSnapshot() Snapshot {
	if c := r.head(); c != nil {
		return c.Files
	}
	return Snapshot{}
}

// rebuildDirs repopulates Dirs from the ancestry of every path in
// WorkingFiles, so "a directory exists if a file lives under it" holds
// after any operation that replaces WorkingFiles wholesale from a
// commit snapshot (checkout, merge fast-forward, reset --hard, stash
// pop, clone) rather than through Mkdir/Touch/Write.
func (r *Repo) rebuildDirs() {
	dirs := map[string]bool{vpath.Root: true}
	for p := range r.WorkingFiles {
		for d := vpath.Dir(p); ; d = vpath.Dir(d) {
			if dirs[d] {
				break
			}
			dirs[d] = true
			if vpath.IsRoot(d) {
				break
			}
		}
	}
	r.Dirs = dirs
}

func laneColor(lane int) string {
	palette := []string{"blue", "green", "purple", "orange", "teal", "pink", "amber", "cyan"}
	return palette[lane%len(palette)]
}

// allocateLane assigns draw metadata to a newly appearing branch: the
// next free lane index.
func (r *Repo) allocateLane() int {
	max := -1
	for _, b := range r.Branches {
		if b.Lane > max {
			max = b.Lane
		}
	}
	return max + 1
}

func (r *Repo) newHash() string {
	const chars = "0123456789abcdef"
	for {
		b := make([]byte, 7)
		for i := range b {
			b[i] = chars[r.rnd.Intn(len(chars))]
		}
		h := string(b)
		if _, exists := r.Commits[h]; !exists {
			return h
		}
	}
}

func shortHash(h string) string {
	if len(h) > 7 {
		return h[:7]
	}
	return h
}

// now is the single place commit timestamps come from, so tests can
// observe monotonically increasing CreatedAt values without the engine
// depending on wall-clock time anywhere else.
func (r *Repo) now() time.Time {
	return time.Now()
}

// dirtyPaths reports every path that differs between HEAD, the index
// and the working tree: staged changes, unstaged modifications and
// untracked files alike. An empty result means the working tree is
// clean in the same sense `git status --porcelain` producing no
// output means clean.
func (r *Repo) dirtyPaths() []string {
	head := r.headSnapshot()
	seen := map[string]bool{}
	var dirty []string

	mark := func(p string) {
		if !seen[p] {
			seen[p] = true
			dirty = append(dirty, p)
		}
	}

	for p, e := range r.Index {
		if e.Deleted {
			if _, stillInHead := head[p]; stillInHead {
				mark(p)
			}
			continue
		}
		if head[p] != e.Content {
			mark(p)
		}
	}

	for p, content := range r.WorkingFiles {
		if e, staged := r.Index[p]; staged {
			if !e.Deleted && e.Content == content {
				continue
			}
		}
		if headContent, inHead := head[p]; !inHead || headContent != content {
			mark(p)
		}
	}

	for p := range head {
		if _, inWorking := r.WorkingFiles[p]; !inWorking {
			if e, staged := r.Index[p]; !staged || !e.Deleted {
				mark(p)
			}
		}
	}

	return dirty
}
