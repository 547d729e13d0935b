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

import "fmt"

// Clone resets this repo, then populates it from the named remote:
// every commit is imported verbatim, every remote branch gets a local
// counterpart, "origin" is registered, and the default branch is
// checked out with its upstream already configured. Unlike every
// other git subcommand, Clone may run against an already-initialized
// repo: it discards whatever history and working tree were there and
// replaces them with the remote's, exactly as running `git clone`
// into a repo directory that already holds a clone would.
func (r *Repo) Clone(url string) CommandResult {
	rr, exists := r.store.get(url)
	if !exists {
		return failErr(128, ErrNotFound{Kind: "remote", Name: url})
	}

	r.Initialized = true
	r.Cwd = "/"
	r.WorkingFiles = Snapshot{}
	r.Dirs = map[string]bool{"/": true}
	r.Index = map[string]IndexEntry{}
	r.Commits = map[string]*Commit{}
	r.CommitOrder = nil
	r.Branches = map[string]*Branch{}
	r.MergeState = nil
	r.Stash = nil
	r.Remotes = map[string]string{}
	r.Upstreams = map[string]Upstream{}

	r.Remotes["origin"] = url
	r.importMissingCommits(rr)

	branch := DefaultBranch
	if _, ok := rr.branches[branch]; !ok {
		for name := range rr.branches {
			branch = name
			break
		}
	}

	for name, head := range rr.branches {
		lane := r.allocateLane()
		r.Branches[name] = &Branch{Name: name, Head: head, Lane: lane, Color: laneColor(lane)}
	}
	if _, ok := r.Branches[branch]; !ok {
		lane := r.allocateLane()
		r.Branches[branch] = &Branch{Name: branch, Head: "", Lane: lane, Color: laneColor(lane)}
	}

	r.CurrentBranch = branch
	r.WorkingFiles = r.headSnapshot().Clone()
	r.rebuildDirs()
	_ = r.SetUpstream(branch, "origin", branch)

	r.emit(Event{Kind: EventClone, Remote: url, Branch: branch})
	return ok(fmt.Sprintf("Cloning into '%s'...", branch))
}
