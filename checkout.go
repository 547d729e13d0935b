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

// Checkout switches the current branch to branch, refusing to do so
// while the working tree is dirty, even when the switch would not
// touch any changed path (real git allows such a switch). With create
// true, branch is created at HEAD once the working tree is known to be
// clean, matching `git checkout -b`.
func (r *Repo) Checkout(branch string, create bool) CommandResult {
	if err := r.requireInit(); err != nil {
		return failErr(128, err)
	}
	if branch == "" {
		return failErr(128, ErrUsage{Command: "checkout", Usage: "checkout [-b] <branch>"})
	}
	if len(r.dirtyPaths()) > 0 {
		return failErr(1, ErrDirtyWorkingTree)
	}

	if create {
		if res := r.BranchCreate(branch); !res.OK {
			return res
		}
	}

	if _, exists := r.Branches[branch]; !exists {
		return failErr(128, ErrNotFound{Kind: "branch", Name: branch})
	}

	r.CurrentBranch = branch
	r.WorkingFiles = r.headSnapshot().Clone()
	r.rebuildDirs()
	r.Index = map[string]IndexEntry{}
	r.emit(Event{Kind: EventCheckout, Branch: branch})

	if create {
		return ok(fmt.Sprintf("Switched to a new branch '%s'", branch))
	}
	return ok(fmt.Sprintf("Switched to branch '%s'", branch))
}
