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

// Pull fetches from remote and then merges branch (on remote) into
// the current branch, the same two-step real git performs in one
// command. With remote or branch left empty, the current branch's
// configured upstream is used; with neither an argument nor an
// upstream, "origin" and the current branch name are assumed. It
// refuses to run against a dirty working tree.
func (r *Repo) Pull(remote, branch string) CommandResult {
	if err := r.requireInit(); err != nil {
		return failErr(128, err)
	}
	if len(r.dirtyPaths()) > 0 {
		return failErr(1, ErrDirtyWorkingTree)
	}

	if remote == "" || branch == "" {
		if up, ok := r.GetUpstream(r.CurrentBranch); ok {
			if remote == "" {
				remote = up.Remote
			}
			if branch == "" {
				branch = up.Branch
			}
		}
	}
	if remote == "" {
		remote = "origin"
	}
	if branch == "" {
		branch = r.CurrentBranch
	}

	if res := r.Fetch(remote); !res.OK {
		return res
	}

	url, err := r.remoteURL(remote)
	if err != nil {
		return failErr(128, err)
	}
	rr, exists := r.store.get(url)
	if !exists {
		return ok("Already up to date.")
	}
	remoteHead, hasBranch := rr.branches[branch]
	if !hasBranch || remoteHead == "" {
		return ok("Already up to date.")
	}

	local := r.Branches[r.CurrentBranch]
	if local.Head == remoteHead || r.isAncestor(remoteHead, local.Head) {
		return ok("Already up to date.")
	}

	if local.Head == "" || r.isAncestor(local.Head, remoteHead) {
		local.Head = remoteHead
		r.WorkingFiles = r.headSnapshot().Clone()
		r.rebuildDirs()
		r.Index = map[string]IndexEntry{}
		r.emit(Event{Kind: EventPull, Remote: url, Branch: branch})
		return ok("Fast-forward")
	}

	baseHash := r.lowestCommonAncestor(local.Head, remoteHead)
	var base Snapshot
	if baseHash != "" {
		base = r.Commits[baseHash].Files
	} else {
		base = Snapshot{}
	}

	merged, conflicts := mergeFiles(base, r.Commits[local.Head].Files, r.Commits[remoteHead].Files, branch)
	r.WorkingFiles = merged
	r.rebuildDirs()
	r.Index = map[string]IndexEntry{}

	if len(conflicts) > 0 {
		r.MergeState = &MergeState{Branch: branch, Head: remoteHead, Conflicts: conflicts}
		r.emit(Event{Kind: EventPull, Remote: url, Branch: branch})
		return fail(1, "Automatic merge failed; fix conflicts and then commit the result.")
	}

	hash := r.newHash()
	r.Commits[hash] = &Commit{
		Hash:      hash,
		Message:   "Merge remote-tracking branch '" + remote + "/" + branch + "'",
		Parents:   []string{local.Head, remoteHead},
		CreatedAt: r.now(),
		Files:     merged.Clone(),
		Lane:      local.Lane,
		Branch:    r.CurrentBranch,
	}
	r.CommitOrder = append(r.CommitOrder, hash)
	local.Head = hash

	r.emit(Event{Kind: EventPull, Remote: url, Branch: branch, Hash: hash})
	return ok("Merge made by the 'recursive' strategy.")
}
