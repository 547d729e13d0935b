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

// Revert creates a new commit whose snapshot equals HEAD with ref's
// changes undone, rather than moving HEAD backwards the way
// ResetHard does. Because commits store full snapshots rather than
// patches, "undoing ref's changes" means starting from HEAD and
// replacing, for every path ref's commit touched relative to its own
// parent, the working copy with ref's parent version (or removing it
// if ref introduced the path). The whole resulting tree is staged and
// committed in one step, matching the Open Question decision to
// revert the full working set rather than synthesize a minimal patch.
func (r *Repo) Revert(ref string) CommandResult {
	if err := r.requireInit(); err != nil {
		return failErr(128, err)
	}
	if len(r.dirtyPaths()) > 0 {
		return failErr(1, ErrDirtyWorkingTree)
	}

	hash, err := r.resolveRef(ref)
	if err != nil {
		return failErr(128, err)
	}
	target := r.Commits[hash]

	var parent Snapshot
	if len(target.Parents) > 0 {
		parent = r.Commits[target.Parents[0]].Files
	} else {
		parent = Snapshot{}
	}

	result := r.headSnapshot().Clone()
	touched := map[string]bool{}
	for p := range target.Files {
		touched[p] = true
	}
	for p := range parent {
		touched[p] = true
	}

	for p := range touched {
		before, hadBefore := parent[p]
		after, hasAfter := target.Files[p]
		if before == after && hadBefore == hasAfter {
			continue
		}
		if hadBefore {
			result[p] = before
		} else {
			delete(result, p)
		}
	}

	r.WorkingFiles = result
	r.Index = map[string]IndexEntry{}
	head := r.headSnapshot()
	for p, content := range result {
		if headContent, inHead := head[p]; !inHead || headContent != content {
			r.Index[p] = IndexEntry{Content: content}
		}
	}
	for p := range head {
		if _, stillThere := result[p]; !stillThere {
			r.Index[p] = IndexEntry{Deleted: true}
		}
	}

	res := r.Commit(fmt.Sprintf("Revert \"%s\"", target.Message), len(r.Index) == 0)
	if !res.OK {
		return res
	}

	r.emit(Event{Kind: EventRevert, Hash: hash})
	return res
}
