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

// Commit records the current index as a new commit, describing it
// with msg. An empty msg defaults to "Commit", or to "Merge branch
// '<theirs>'" when concluding a pending merge. With nothing staged,
// and allowEmpty false, it fails with ErrEmptyCommit. Committing while
// a merge is pending with conflicts still open fails with
// ErrUnresolvedMerge; once every conflicted path has been re-staged,
// committing concludes the merge with the two-parent commit the merge
// left waiting.
func (r *Repo) Commit(msg string, allowEmpty bool) CommandResult {
	if err := r.requireInit(); err != nil {
		return failErr(128, err)
	}
	merging := r.MergeState != nil
	if msg == "" {
		if merging {
			msg = fmt.Sprintf("Merge branch '%s'", r.MergeState.Branch)
		} else {
			msg = "Commit"
		}
	}

	if merging {
		for _, p := range r.MergeState.Conflicts {
			if _, resolved := r.Index[p]; !resolved {
				return failErr(128, ErrUnresolvedMerge)
			}
		}
	}

	if !merging && !allowEmpty && len(r.Index) == 0 {
		return failErr(1, ErrEmptyCommit)
	}

	snapshot := r.headSnapshot().Clone()
	for p, e := range r.Index {
		if e.Deleted {
			delete(snapshot, p)
			continue
		}
		snapshot[p] = e.Content
	}

	var parents []string
	branch := r.Branches[r.CurrentBranch]
	if c := r.head(); c != nil {
		parents = append(parents, c.Hash)
	}
	if merging {
		parents = append(parents, r.MergeState.Head)
	}

	hash := r.newHash()
	r.Commits[hash] = &Commit{
		Hash:      hash,
		Message:   msg,
		Parents:   parents,
		CreatedAt: r.now(),
		Files:     snapshot,
		Lane:      branch.Lane,
		Branch:    r.CurrentBranch,
	}
	r.CommitOrder = append(r.CommitOrder, hash)
	branch.Head = hash

	r.Index = map[string]IndexEntry{}
	r.MergeState = nil

	r.emit(Event{Kind: EventCommit, Hash: hash, Branch: r.CurrentBranch})
	return ok(fmt.Sprintf("[%s %s] %s", r.CurrentBranch, shortHash(hash), msg))
}
