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

// Push uploads the named local branch's commits to remote, failing with
// ErrNonFastForward unless the remote branch is unborn or an ancestor
// of the local head. With remote or branch left empty, the branch's
// configured upstream is used; with neither an argument nor an
// upstream, "origin" and the current branch name are assumed. When
// setUpstream is true the (remote, branch) pair is recorded for next time.
func (r *Repo) Push(remote, branch string, setUpstream bool) CommandResult {
	if err := r.requireInit(); err != nil {
		return failErr(128, err)
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

	url, err := r.remoteURL(remote)
	if err != nil {
		return failErr(128, err)
	}

	local, exists := r.Branches[branch]
	if !exists {
		return failErr(128, ErrNotFound{Kind: "branch", Name: branch})
	}
	rr := r.store.ensure(url)

	remoteHead := rr.branches[branch]
	if remoteHead != "" && !r.isAncestor(remoteHead, local.Head) {
		return failErr(1, ErrNonFastForward)
	}

	for _, h := range r.CommitOrder {
		if !r.isAncestor(h, local.Head) {
			continue
		}
		if _, exists := rr.commits[h]; exists {
			continue
		}
		c := r.Commits[h]
		cp := *c
		cp.Files = c.Files.Clone()
		rr.commits[h] = &cp
		rr.commitOrder = append(rr.commitOrder, h)
	}
	rr.branches[branch] = local.Head

	if setUpstream {
		_ = r.SetUpstream(branch, remote, branch)
	}

	r.emit(Event{Kind: EventPush, Remote: url, Branch: branch})
	return ok(fmt.Sprintf("To %s", url), fmt.Sprintf("   %s -> %s", branch, branch))
}
