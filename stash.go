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

// Stash shelves every staged and unstaged change, resetting the
// working tree back to HEAD, and pushes it onto the stash stack.
func (r *Repo) Stash() CommandResult {
	if err := r.requireInit(); err != nil {
		return failErr(128, err)
	}
	if len(r.dirtyPaths()) == 0 {
		return failErr(1, ErrStashEmpty)
	}

	entry := StashEntry{
		WorkingFiles: r.WorkingFiles.Clone(),
		StagedFiles:  cloneIndex(r.Index),
		Message:      "WIP on " + r.CurrentBranch,
		CreatedAt:    r.now(),
	}
	r.Stash = append(r.Stash, entry)

	r.WorkingFiles = r.headSnapshot().Clone()
	r.rebuildDirs()
	r.Index = map[string]IndexEntry{}
	r.emit(Event{Kind: EventStash})
	return ok("Saved working directory and index state WIP on " + r.CurrentBranch)
}

// StashPop restores the most recently stashed working tree and index
// on top of the current one, then drops it from the stack.
func (r *Repo) StashPop() CommandResult {
	if err := r.requireInit(); err != nil {
		return failErr(128, err)
	}
	if len(r.Stash) == 0 {
		return failErr(1, ErrNoStashEntries)
	}

	top := r.Stash[len(r.Stash)-1]
	r.Stash = r.Stash[:len(r.Stash)-1]

	for p, content := range top.WorkingFiles {
		r.WorkingFiles[p] = content
	}
	r.rebuildDirs()
	for p, e := range top.StagedFiles {
		r.Index[p] = e
	}
	r.emit(Event{Kind: EventStashPop})
	return ok("Dropped refs/stash@{0}")
}

func cloneIndex(idx map[string]IndexEntry) map[string]IndexEntry {
	out := make(map[string]IndexEntry, len(idx))
	for k, v := range idx {
		out[k] = v
	}
	return out
}
