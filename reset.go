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

// ResetHard moves the current branch's head to ref, discarding the
// index and overwriting the working tree with that commit's snapshot.
// Unlike real git, an older commit that reset --hard leaves behind
// stays addressable by its hash; nothing is garbage collected.
func (r *Repo) ResetHard(ref string) CommandResult {
	if err := r.requireInit(); err != nil {
		return failErr(128, err)
	}

	hash, err := r.resolveRef(ref)
	if err != nil {
		return failErr(128, err)
	}

	r.Branches[r.CurrentBranch].Head = hash
	r.WorkingFiles = r.Commits[hash].Files.Clone()
	r.rebuildDirs()
	r.Index = map[string]IndexEntry{}
	r.MergeState = nil

	r.emit(Event{Kind: EventResetHard, Hash: hash})
	return ok(fmt.Sprintf("HEAD is now at %s %s", shortHash(hash), r.Commits[hash].Message))
}
