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

import "strings"

// resolveRef resolves HEAD, HEAD~1 and unambiguous hash prefixes to a
// full commit hash. Every hash lookup in the engine goes through this
// single resolver so ambiguity is only ever handled in one place.
func (r *Repo) resolveRef(ref string) (string, error) {
	switch ref {
	case "", HeadRef:
		c := r.head()
		if c == nil {
			return "", ErrNotFound{Kind: "ref", Name: HeadRef}
		}
		return c.Hash, nil
	case "HEAD~1":
		c := r.head()
		if c == nil || len(c.Parents) == 0 {
			return "", ErrNotFound{Kind: "ref", Name: "HEAD~1"}
		}
		return c.Parents[0], nil
	}

	if c, exists := r.Commits[ref]; exists {
		return c.Hash, nil
	}

	return r.resolvePrefix(ref)
}

// resolvePrefix looks up a short hash prefix across every known commit,
// failing with ErrAmbiguousRef if more than one commit matches.
func (r *Repo) resolvePrefix(prefix string) (string, error) {
	if prefix == "" {
		return "", ErrNotFound{Kind: "ref", Name: prefix}
	}

	var matches []string
	for _, hash := range r.CommitOrder {
		if strings.HasPrefix(hash, prefix) {
			matches = append(matches, hash)
		}
	}

	switch len(matches) {
	case 0:
		return "", ErrNotFound{Kind: "commit", Name: prefix}
	case 1:
		return matches[0], nil
	default:
		return "", ErrAmbiguousRef{Prefix: prefix, Matches: matches}
	}
}

// snapshotAt returns the file snapshot recorded by a commit, resolving
// ref through resolveRef first.
func (r *Repo) snapshotAt(ref string) (Snapshot, error) {
	hash, err := r.resolveRef(ref)
	if err != nil {
		return nil, err
	}
	return r.Commits[hash].Files, nil
}

// isAncestor reports whether candidate is reachable by walking parent
// edges from descendant (inclusive: a commit is its own ancestor).
func (r *Repo) isAncestor(candidate, descendant string) bool {
	if candidate == "" {
		return true
	}
	if descendant == "" {
		return false
	}

	visited := map[string]bool{}
	queue := []string{descendant}
	for len(queue) > 0 {
		h := queue[0]
		queue = queue[1:]
		if h == candidate {
			return true
		}
		if visited[h] {
			continue
		}
		visited[h] = true

		c, exists := r.Commits[h]
		if !exists {
			continue
		}
		queue = append(queue, c.Parents...)
	}

	return false
}

// lowestCommonAncestor measures breadth-first distances from both heads
// and returns the common ancestor that minimizes the summed distance
// from both, breaking ties by the order a breadth-first walk from a
// discovers them.
func (r *Repo) lowestCommonAncestor(a, b string) string {
	distA := r.distances(a)
	distB := r.distances(b)

	best := ""
	bestCost := -1
	queue := []string{a}
	seen := map[string]bool{}
	for len(queue) > 0 {
		h := queue[0]
		queue = queue[1:]
		if seen[h] {
			continue
		}
		seen[h] = true
		if c, exists := r.Commits[h]; exists {
			queue = append(queue, c.Parents...)
		}
		da, okA := distA[h]
		db, okB := distB[h]
		if !okA || !okB {
			continue
		}
		cost := da + db
		if bestCost == -1 || cost < bestCost {
			best = h
			bestCost = cost
		}
	}
	return best
}

// distances returns, for every commit reachable from start, its BFS
// distance (in parent hops) from start.
func (r *Repo) distances(start string) map[string]int {
	dist := map[string]int{}
	if start == "" {
		return dist
	}

	dist[start] = 0
	queue := []string{start}
	for len(queue) > 0 {
		h := queue[0]
		queue = queue[1:]

		c, exists := r.Commits[h]
		if !exists {
			continue
		}
		for _, p := range c.Parents {
			if _, seen := dist[p]; !seen {
				dist[p] = dist[h] + 1
				queue = append(queue, p)
			}
		}
	}
	return dist
}
