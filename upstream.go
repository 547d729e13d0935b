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

// SetUpstream records the (remote, branch) pair local branch pushes to
// and pulls from by default, the way `git branch --set-upstream-to`
// or the first `git push -u` does.
func (r *Repo) SetUpstream(branch, remote, remoteBranch string) error {
	if _, exists := r.Branches[branch]; !exists {
		return ErrNotFound{Kind: "branch", Name: branch}
	}
	r.Upstreams[branch] = Upstream{Remote: remote, Branch: remoteBranch}
	return nil
}

// GetUpstream returns the configured upstream for branch, if any.
func (r *Repo) GetUpstream(branch string) (Upstream, bool) {
	u, ok := r.Upstreams[branch]
	return u, ok
}
