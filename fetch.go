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

// importMissingCommits copies every commit object src holds that dst
// does not already have, by hash. It is shared by Fetch, Pull and
// Clone: all three need the same "bring the commit DAG up to date"
// step before they do their own branch-pointer work.
func (r *Repo) importMissingCommits(src *remoteRepo) int {
	imported := 0
	for _, h := range src.commitOrder {
		if _, exists := r.Commits[h]; exists {
			continue
		}
		c := src.commits[h]
		cp := *c
		cp.Files = c.Files.Clone()
		r.Commits[h] = &cp
		r.CommitOrder = append(r.CommitOrder, h)
		imported++
	}
	return imported
}

// Fetch downloads every commit from the named remote (origin by
// default) into the local commit DAG, without moving any local
// branch. It is the read-only half of Pull.
func (r *Repo) Fetch(remote string) CommandResult {
	if err := r.requireInit(); err != nil {
		return failErr(128, err)
	}

	url, err := r.remoteURL(remote)
	if err != nil {
		return failErr(128, err)
	}

	rr, exists := r.store.get(url)
	if !exists {
		return ok("Fetching " + url)
	}

	n := r.importMissingCommits(rr)
	r.emit(Event{Kind: EventNone, Remote: url})
	return ok(fmt.Sprintf("Fetched %d new commit(s) from %s", n, url))
}
