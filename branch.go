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

import (
	"fmt"
	"sort"
)

// BranchList returns every branch sorted by name, with the current
// branch flagged the way `git branch` marks it with a leading asterisk.
func (r *Repo) BranchList() CommandResult {
	if err := r.requireInit(); err != nil {
		return failErr(128, err)
	}

	names := make([]string, 0, len(r.Branches))
	for name := range r.Branches {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		if name == r.CurrentBranch {
			lines = append(lines, fmt.Sprintf("* %s", name))
		} else {
			lines = append(lines, fmt.Sprintf("  %s", name))
		}
	}
	return ok(lines...)
}

// BranchCreate points a new branch at HEAD without switching to it.
func (r *Repo) BranchCreate(name string) CommandResult {
	if err := r.requireInit(); err != nil {
		return failErr(128, err)
	}
	if name == "" {
		return failErr(128, ErrUsage{Command: "branch", Usage: "branch <name>"})
	}
	if _, exists := r.Branches[name]; exists {
		return failErr(128, ErrAlreadyExists{Kind: "branch", Name: name})
	}

	head := ""
	if c := r.head(); c != nil {
		head = c.Hash
	}
	lane := r.allocateLane()
	r.Branches[name] = &Branch{Name: name, Head: head, Lane: lane, Color: laneColor(lane)}
	r.emit(Event{Kind: EventBranch, Name: name})
	return ok()
}
