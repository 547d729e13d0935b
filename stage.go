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

import "github.com/git-tutor/tutor/internal/vpath"

// Add stages changes to the given pathspecs, ready for inclusion in
// the next commit. Pathspecs are resolved relative to Cwd the same way
// every shell command resolves a path. With no pathspecs, every dirty
// path is staged, matching `git add --all`.
func (r *Repo) Add(pathspecs ...string) CommandResult {
	if err := r.requireInit(); err != nil {
		return failErr(128, err)
	}

	var specs []string
	if len(Trim(pathspecs...)) == 0 {
		specs = r.dirtyPaths()
	} else {
		for _, p := range Trim(pathspecs...) {
			specs = append(specs, vpath.Join(r.Cwd, p))
		}
	}

	head := r.headSnapshot()
	for _, p := range specs {
		content, inWorking := r.WorkingFiles[p]
		if !inWorking {
			if _, inHead := head[p]; inHead {
				r.Index[p] = IndexEntry{Deleted: true}
			}
			continue
		}
		r.Index[p] = IndexEntry{Content: content}
	}

	return ok()
}
