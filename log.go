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

// Log walks the current branch's history from HEAD back through first
// parents, oldest last, the same order `git log` prints in. With
// oneline true, each entry is rendered as "<short-hash> <message>";
// otherwise the full hash, both parents (for merge commits) and the
// message are included.
func (r *Repo) Log(oneline bool) CommandResult {
	if err := r.requireInit(); err != nil {
		return failErr(128, err)
	}

	c := r.head()
	var lines []string
	for c != nil {
		if oneline {
			lines = append(lines, fmt.Sprintf("%s %s", shortHash(c.Hash), c.Message))
		} else {
			lines = append(lines, fmt.Sprintf("commit %s", c.Hash))
			if len(c.Parents) > 1 {
				lines = append(lines, fmt.Sprintf("Merge: %s %s", shortHash(c.Parents[0]), shortHash(c.Parents[1])))
			}
			lines = append(lines, fmt.Sprintf("Date:   %s", c.CreatedAt.Format("Mon Jan 2 15:04:05 2006 -0700")))
			lines = append(lines, "", "    "+c.Message, "")
		}

		if len(c.Parents) == 0 {
			break
		}
		c = r.Commits[c.Parents[0]]
	}

	return ok(lines...)
}

// Graph returns every commit in creation order, including commits no
// branch reaches any more, suitable for rendering the lane-based
// commit graph a tutorial UI draws: each commit already carries the
// Lane and Branch it was authored on.
func (r *Repo) Graph() []*Commit {
	out := make([]*Commit, 0, len(r.CommitOrder))
	for _, h := range r.CommitOrder {
		out = append(out, r.Commits[h])
	}
	return out
}
