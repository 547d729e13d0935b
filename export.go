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

// RepoSnapshot is the durable, storage-shaped view of a Repo: every
// field persistence needs to round-trip, with the unexported
// RemoteStore handle and random source left out since those are
// process-scoped, not saved state. The lesson engine's checkpoints
// and the persistence layer's save file both hold these rather than
// a live *Repo.
type RepoSnapshot struct {
	Initialized   bool                  `json:"initialized"`
	CurrentBranch string                `json:"currentBranch"`
	Cwd           string                `json:"cwd"`
	WorkingFiles  Snapshot              `json:"workingFiles"`
	Dirs          map[string]bool       `json:"dirs"`
	Index         map[string]IndexEntry `json:"index"`
	Commits       map[string]*Commit    `json:"commits"`
	CommitOrder   []string              `json:"commitOrder"`
	Branches      map[string]*Branch    `json:"branches"`
	MergeState    *MergeState           `json:"mergeState"`
	Stash         []StashEntry          `json:"stash"`
	Remotes       map[string]string     `json:"remotes"`
	Upstreams     map[string]Upstream   `json:"upstreams"`
	LastEvent     Event                 `json:"lastEvent"`
}

// Export captures the repository's full state by value. The returned
// snapshot shares no maps or slices with the live Repo, so later
// mutation of either side cannot alias the other.
func (r *Repo) Export() RepoSnapshot {
	commits := make(map[string]*Commit, len(r.Commits))
	for h, c := range r.Commits {
		cp := *c
		cp.Files = c.Files.Clone()
		cp.Parents = append([]string(nil), c.Parents...)
		commits[h] = &cp
	}

	branches := make(map[string]*Branch, len(r.Branches))
	for n, b := range r.Branches {
		bp := *b
		branches[n] = &bp
	}

	var merge *MergeState
	if r.MergeState != nil {
		mp := *r.MergeState
		mp.Conflicts = append([]string(nil), r.MergeState.Conflicts...)
		merge = &mp
	}

	stash := make([]StashEntry, len(r.Stash))
	for i, e := range r.Stash {
		stash[i] = StashEntry{
			WorkingFiles: e.WorkingFiles.Clone(),
			StagedFiles:  cloneIndex(e.StagedFiles),
			Message:      e.Message,
			CreatedAt:    e.CreatedAt,
		}
	}

	return RepoSnapshot{
		Initialized:   r.Initialized,
		CurrentBranch: r.CurrentBranch,
		Cwd:           r.Cwd,
		WorkingFiles:  r.WorkingFiles.Clone(),
		Dirs:          cloneBoolSet(r.Dirs),
		Index:         cloneIndex(r.Index),
		Commits:       commits,
		CommitOrder:   append([]string(nil), r.CommitOrder...),
		Branches:      branches,
		MergeState:    merge,
		Stash:         stash,
		Remotes:       cloneStringMap(r.Remotes),
		Upstreams:     cloneUpstreams(r.Upstreams),
		LastEvent:     r.LastEvent,
	}
}

// Import replaces every persisted field of r with s's values, keeping
// the receiver's RemoteStore handle and random source untouched since
// those are process-scoped collaborators, not part of saved state.
// Used to restore a checkpoint (lesson "reset repo") or a save file.
func (r *Repo) Import(s RepoSnapshot) {
	r.Initialized = s.Initialized
	r.CurrentBranch = s.CurrentBranch
	r.Cwd = s.Cwd
	r.WorkingFiles = s.WorkingFiles.Clone()
	r.Dirs = cloneBoolSet(s.Dirs)
	r.Index = cloneIndex(s.Index)

	commits := make(map[string]*Commit, len(s.Commits))
	for h, c := range s.Commits {
		cp := *c
		cp.Files = c.Files.Clone()
		cp.Parents = append([]string(nil), c.Parents...)
		commits[h] = &cp
	}
	r.Commits = commits
	r.CommitOrder = append([]string(nil), s.CommitOrder...)

	branches := make(map[string]*Branch, len(s.Branches))
	for n, b := range s.Branches {
		bp := *b
		branches[n] = &bp
	}
	r.Branches = branches

	if s.MergeState != nil {
		mp := *s.MergeState
		mp.Conflicts = append([]string(nil), s.MergeState.Conflicts...)
		r.MergeState = &mp
	} else {
		r.MergeState = nil
	}

	stash := make([]StashEntry, len(s.Stash))
	for i, e := range s.Stash {
		stash[i] = StashEntry{
			WorkingFiles: e.WorkingFiles.Clone(),
			StagedFiles:  cloneIndex(e.StagedFiles),
			Message:      e.Message,
			CreatedAt:    e.CreatedAt,
		}
	}
	r.Stash = stash

	r.Remotes = cloneStringMap(s.Remotes)
	r.Upstreams = cloneUpstreams(s.Upstreams)
	r.LastEvent = s.LastEvent
}

func cloneBoolSet(m map[string]bool) map[string]bool {
	out := make(map[string]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneStringMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneUpstreams(m map[string]Upstream) map[string]Upstream {
	out := make(map[string]Upstream, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// RemoteSnapshot is the durable view of one bare remote repository.
type RemoteSnapshot struct {
	Commits     map[string]*Commit `json:"commits"`
	CommitOrder []string           `json:"commitOrder"`
	Branches    map[string]string  `json:"branches"`
}

// Export captures every remote held by the store, keyed by URL.
func (s *RemoteStore) Export() map[string]RemoteSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]RemoteSnapshot, len(s.remotes))
	for url, rr := range s.remotes {
		commits := make(map[string]*Commit, len(rr.commits))
		for h, c := range rr.commits {
			cp := *c
			cp.Files = c.Files.Clone()
			cp.Parents = append([]string(nil), c.Parents...)
			commits[h] = &cp
		}
		out[url] = RemoteSnapshot{
			Commits:     commits,
			CommitOrder: append([]string(nil), rr.commitOrder...),
			Branches:    cloneStringMap(rr.branches),
		}
	}
	return out
}

// Import replaces the store's contents with snapshots, the inverse of
// Export, used to restore a persisted RemoteStore on process startup.
func (s *RemoteStore) Import(snapshots map[string]RemoteSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	remotes := make(map[string]*remoteRepo, len(snapshots))
	for url, snap := range snapshots {
		commits := make(map[string]*Commit, len(snap.Commits))
		for h, c := range snap.Commits {
			cp := *c
			cp.Files = c.Files.Clone()
			cp.Parents = append([]string(nil), c.Parents...)
			commits[h] = &cp
		}
		remotes[url] = &remoteRepo{
			commits:     commits,
			commitOrder: append([]string(nil), snap.CommitOrder...),
			branches:    cloneStringMap(snap.Branches),
		}
	}
	s.remotes = remotes
}

// EnsureRepo creates an empty remote at url if one does not already
// exist, the exported form of ensure for callers outside the package
// (the seed remote, the persistence layer's pre-population on boot).
func (s *RemoteStore) EnsureRepo(url string) {
	s.ensure(url)
}
