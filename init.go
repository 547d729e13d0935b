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

// Init marks the repository initialized and creates the unborn
// DefaultBranch as the current branch, the in-memory equivalent of
// `git init` creating a .git directory with no commits yet. Init is
// idempotent: calling it again against an already initialized
// repository reprints the reinitialized message and touches nothing.
func (r *Repo) Init() CommandResult {
	if r.Initialized {
		r.emit(Event{Kind: EventInit, Branch: r.CurrentBranch})
		return ok(fmt.Sprintf("Reinitialized existing Git repository in %s/.git/", r.Cwd))
	}

	r.Initialized = true
	lane := r.allocateLane()
	r.Branches[DefaultBranch] = &Branch{Name: DefaultBranch, Head: "", Lane: lane, Color: laneColor(lane)}
	r.CurrentBranch = DefaultBranch

	r.emit(Event{Kind: EventInit, Branch: DefaultBranch})
	return ok(fmt.Sprintf("Initialized empty Git repository in %s/.git/", r.Cwd))
}
