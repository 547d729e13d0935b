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

// FileStatusIndicator contains a single character that represents
// a file's status within the index or working tree, matching the
// characters the porcelain v1 format uses.
type FileStatusIndicator byte

const (
	Added      FileStatusIndicator = 'A'
	Deleted    FileStatusIndicator = 'D'
	Modified   FileStatusIndicator = 'M'
	Unmodified FileStatusIndicator = ' '
	Untracked  FileStatusIndicator = '?'
	Unmerged   FileStatusIndicator = 'U'
)

// FileStatus represents the status of a single file, the first
// indicator describing the index relative to HEAD and the second
// describing the working tree relative to the index.
type FileStatus struct {
	Indicators [2]FileStatusIndicator
	Path       string
}

// String renders a FileStatus the way `git status --porcelain` does,
// with the path shown relative to the root (no leading slash).
func (f FileStatus) String() string {
	path := f.Path
	if len(path) > 1 && path[0] == '/' {
		path = path[1:]
	}
	return fmt.Sprintf("%c%c %s", f.Indicators[0], f.Indicators[1], path)
}

// Untracked reports whether a path has never been staged.
func (f FileStatus) Untracked() bool {
	return f.Indicators[0] == Untracked && f.Indicators[1] == Untracked
}

// Modified reports whether a path has unstaged working tree changes.
func (f FileStatus) Modified() bool {
	return f.Indicators[1] == Modified
}

// Conflicted reports whether a path is an unresolved merge conflict.
func (f FileStatus) Conflicted() bool {
	return f.Indicators[0] == Unmerged && f.Indicators[1] == Unmerged
}

// PorcelainStatus computes the status of every path that differs from
// HEAD across the index and the working tree, sorted by path. Paths
// in the current merge's conflict list are excluded from that
// computation and reported separately as Unmerged, regardless of what
// the ordinary staged/unstaged/untracked diff against them would say.
func (r *Repo) PorcelainStatus() []FileStatus {
	head := r.headSnapshot()
	paths := map[string]bool{}
	for p := range head {
		paths[p] = true
	}
	for p := range r.Index {
		paths[p] = true
	}
	for p := range r.WorkingFiles {
		paths[p] = true
	}

	conflicted := map[string]bool{}
	if r.MergeState != nil {
		for _, p := range r.MergeState.Conflicts {
			conflicted[p] = true
			delete(paths, p)
		}
	}

	sorted := make([]string, 0, len(paths))
	for p := range paths {
		sorted = append(sorted, p)
	}
	sort.Strings(sorted)

	var statuses []FileStatus
	for _, p := range sorted {
		headContent, inHead := head[p]
		entry, staged := r.Index[p]

		indexIndicator := Unmodified
		baseline, haveBaseline := headContent, inHead
		switch {
		case staged && entry.Deleted:
			if inHead {
				indexIndicator = Deleted
			}
			haveBaseline = false
		case staged && !inHead:
			indexIndicator = Added
			baseline, haveBaseline = entry.Content, true
		case staged && entry.Content != headContent:
			indexIndicator = Modified
			baseline, haveBaseline = entry.Content, true
		case staged:
			baseline, haveBaseline = entry.Content, true
		}

		workingContent, inWorking := r.WorkingFiles[p]
		worktreeIndicator := Unmodified
		switch {
		case !inWorking && haveBaseline:
			worktreeIndicator = Deleted
		case inWorking && !haveBaseline:
			worktreeIndicator = Untracked
			indexIndicator = Untracked
		case inWorking && haveBaseline && workingContent != baseline:
			worktreeIndicator = Modified
		}

		if indexIndicator == Unmodified && worktreeIndicator == Unmodified {
			continue
		}

		statuses = append(statuses, FileStatus{
			Indicators: [2]FileStatusIndicator{indexIndicator, worktreeIndicator},
			Path:       p,
		})
	}

	conflictPaths := make([]string, 0, len(conflicted))
	for p := range conflicted {
		conflictPaths = append(conflictPaths, p)
	}
	sort.Strings(conflictPaths)
	for _, p := range conflictPaths {
		statuses = append(statuses, FileStatus{
			Indicators: [2]FileStatusIndicator{Unmerged, Unmerged},
			Path:       p,
		})
	}

	return statuses
}

// Status renders the working tree status as porcelain v1 lines, the
// same vocabulary `git status --porcelain` produces.
func (r *Repo) Status() CommandResult {
	if err := r.requireInit(); err != nil {
		return failErr(128, err)
	}

	statuses := r.PorcelainStatus()
	lines := make([]string, 0, len(statuses))
	for _, s := range statuses {
		lines = append(lines, s.String())
	}
	return ok(lines...)
}

// Clean reports whether the working tree has no staged or unstaged changes.
func (r *Repo) Clean() (bool, error) {
	if err := r.requireInit(); err != nil {
		return false, err
	}
	return len(r.PorcelainStatus()) == 0, nil
}
