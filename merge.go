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

const (
	conflictMarkerOurs   = "<<<<<<< HEAD"
	conflictMarkerSplit  = "======="
	conflictMarkerPrefix = ">>>>>>> "
)

// mergeFiles performs a pure three-way merge of ours and theirs against
// their common base snapshot. It never touches a Repo; all merge state
// mutation is the caller's job, so this function is trivial to test in
// isolation and to reuse from both Merge and any future rebase-style
// command.
//
// A path is conflicted when both sides changed it from base to
// different content, or when one side deleted it and the other
// modified it. Conflicted entries are written back into the result
// with standard conflict markers so the working tree stays a normal
// snapshot.
func mergeFiles(base, ours, theirs Snapshot, theirBranch string) (Snapshot, []string) {
	result := Snapshot{}
	var conflicts []string

	paths := map[string]bool{}
	for p := range base {
		paths[p] = true
	}
	for p := range ours {
		paths[p] = true
	}
	for p := range theirs {
		paths[p] = true
	}

	sorted := make([]string, 0, len(paths))
	for p := range paths {
		sorted = append(sorted, p)
	}
	sort.Strings(sorted)

	for _, p := range sorted {
		baseContent, inBase := base[p]
		ourContent, inOurs := ours[p]
		theirContent, inTheirs := theirs[p]

		ourChanged := inOurs != inBase || ourContent != baseContent
		theirChanged := inTheirs != inBase || theirContent != baseContent

		switch {
		case !ourChanged && !theirChanged:
			if inBase {
				result[p] = baseContent
			}
		case ourChanged && !theirChanged:
			if inOurs {
				result[p] = ourContent
			}
		case !ourChanged && theirChanged:
			if inTheirs {
				result[p] = theirContent
			}
		case inOurs && inTheirs && ourContent == theirContent:
			result[p] = ourContent
		case !inOurs && !inTheirs:
			// both deleted, nothing to keep
		default:
			conflicts = append(conflicts, p)
			result[p] = fmt.Sprintf("%s\n%s\n%s\n%s%s",
				conflictMarkerOurs, ourContent, conflictMarkerSplit, conflictMarkerPrefix, theirBranch)
			if !inOurs {
				result[p] = fmt.Sprintf("%s\n%s\n%s%s", conflictMarkerSplit, theirContent, conflictMarkerPrefix, theirBranch)
			}
		}
	}

	return result, conflicts
}

// Merge merges branch into the current branch. A fast-forward is used
// whenever the current branch's head is an ancestor of branch's head;
// otherwise a merge commit is created, or a MergeState is left pending
// if conflicts were found.
func (r *Repo) Merge(branch string) CommandResult {
	if err := r.requireInit(); err != nil {
		return failErr(128, err)
	}
	if r.MergeState != nil {
		return failErr(128, ErrUnresolvedMerge)
	}
	if len(r.dirtyPaths()) > 0 {
		return failErr(128, ErrDirtyWorkingTree)
	}

	target, exists := r.Branches[branch]
	if !exists {
		return failErr(128, ErrNotFound{Kind: "branch", Name: branch})
	}

	current := r.Branches[r.CurrentBranch]
	ours := current.Head
	theirs := target.Head

	if theirs == "" {
		return ok("Already up to date.")
	}
	if ours == "" || r.isAncestor(ours, theirs) {
		current.Head = theirs
		r.WorkingFiles = r.headSnapshot().Clone()
		r.rebuildDirs()
		r.Index = map[string]IndexEntry{}
		r.emit(Event{Kind: EventMerge, Branch: branch, Hash: theirs})
		return ok(fmt.Sprintf("Fast-forward to %s", shortHash(theirs)))
	}
	if r.isAncestor(theirs, ours) {
		return ok("Already up to date.")
	}

	baseHash := r.lowestCommonAncestor(ours, theirs)
	var base Snapshot
	if baseHash != "" {
		base = r.Commits[baseHash].Files
	} else {
		base = Snapshot{}
	}

	merged, conflicts := mergeFiles(base, r.Commits[ours].Files, r.Commits[theirs].Files, branch)
	r.WorkingFiles = merged
	r.rebuildDirs()
	r.Index = map[string]IndexEntry{}

	if len(conflicts) > 0 {
		r.MergeState = &MergeState{Branch: branch, Head: theirs, Conflicts: conflicts}
		r.emit(Event{Kind: EventMerge, Branch: branch})
		return fail(1, "Automatic merge failed; fix conflicts and then commit the result.")
	}

	hash := r.newHash()
	commit := &Commit{
		Hash:      hash,
		Message:   fmt.Sprintf("Merge branch '%s' into %s", branch, r.CurrentBranch),
		Parents:   []string{ours, theirs},
		CreatedAt: r.now(),
		Files:     merged.Clone(),
		Lane:      current.Lane,
		Branch:    r.CurrentBranch,
	}
	r.Commits[hash] = commit
	r.CommitOrder = append(r.CommitOrder, hash)
	current.Head = hash

	r.emit(Event{Kind: EventMerge, Branch: branch, Hash: hash})
	return ok("Merge made by the 'recursive' strategy.")
}
