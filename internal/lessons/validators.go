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

package lessons

import (
	"strings"

	git "github.com/git-tutor/tutor"
	"github.com/git-tutor/tutor/internal/seed"
)

// validatorSet returns the ordered validators for a built-in lesson,
// matched up against that lesson's YAML steps by index. Validators
// are plain Go closures, not data, because the source specification
// requires real control flow here rather than a declarative rule
// format.
func validatorSet(id string) []Validator {
	switch id {
	case "init-commit-basics":
		return []Validator{
			func(_ string, r *git.Repo, _ git.CommandResult, _ map[int]git.RepoSnapshot) bool {
				return r.Initialized
			},
			func(_ string, r *git.Repo, _ git.CommandResult, _ map[int]git.RepoSnapshot) bool {
				content, ok := r.WorkingFiles["/README.md"]
				return ok && strings.Contains(content, "My Project")
			},
			func(_ string, r *git.Repo, _ git.CommandResult, _ map[int]git.RepoSnapshot) bool {
				e, ok := r.Index["/README.md"]
				return ok && !e.Deleted
			},
			func(_ string, r *git.Repo, _ git.CommandResult, _ map[int]git.RepoSnapshot) bool {
				return len(r.Commits) == 1
			},
		}

	case "branching-and-merging":
		return []Validator{
			func(_ string, r *git.Repo, _ git.CommandResult, _ map[int]git.RepoSnapshot) bool {
				return r.CurrentBranch == "feat"
			},
			func(_ string, r *git.Repo, _ git.CommandResult, _ map[int]git.RepoSnapshot) bool {
				return branchFileEquals(r, "feat", "/F", "2")
			},
			func(_ string, r *git.Repo, _ git.CommandResult, _ map[int]git.RepoSnapshot) bool {
				return r.CurrentBranch == "main"
			},
			func(_ string, r *git.Repo, _ git.CommandResult, _ map[int]git.RepoSnapshot) bool {
				return branchFileEquals(r, "main", "/G", "3")
			},
			func(_ string, r *git.Repo, _ git.CommandResult, _ map[int]git.RepoSnapshot) bool {
				b := r.Branches["main"]
				if b == nil || b.Head == "" {
					return false
				}
				return len(r.Commits[b.Head].Parents) >= 2
			},
		}

	case "merge-conflict":
		return []Validator{
			func(_ string, r *git.Repo, _ git.CommandResult, _ map[int]git.RepoSnapshot) bool {
				return r.CurrentBranch == "feat"
			},
			func(_ string, r *git.Repo, _ git.CommandResult, _ map[int]git.RepoSnapshot) bool {
				return branchFileEquals(r, "feat", "/config", "green")
			},
			func(_ string, r *git.Repo, _ git.CommandResult, _ map[int]git.RepoSnapshot) bool {
				return r.CurrentBranch == "main" && branchFileEquals(r, "main", "/config", "red")
			},
			func(_ string, r *git.Repo, _ git.CommandResult, _ map[int]git.RepoSnapshot) bool {
				return r.MergeState != nil && len(r.MergeState.Conflicts) > 0
			},
			func(_ string, r *git.Repo, _ git.CommandResult, _ map[int]git.RepoSnapshot) bool {
				b := r.Branches["main"]
				return r.MergeState == nil && b != nil && b.Head != "" && len(r.Commits[b.Head].Parents) >= 2
			},
		}

	case "stashing-changes":
		return []Validator{
			func(_ string, r *git.Repo, _ git.CommandResult, _ map[int]git.RepoSnapshot) bool {
				_, untracked := r.WorkingFiles["/N"]
				_, staged := r.Index["/N"]
				return untracked && !staged
			},
			func(_ string, r *git.Repo, _ git.CommandResult, _ map[int]git.RepoSnapshot) bool {
				_, stillDirty := r.WorkingFiles["/N"]
				return len(r.Stash) == 1 && !stillDirty
			},
			func(_ string, r *git.Repo, _ git.CommandResult, _ map[int]git.RepoSnapshot) bool {
				_, restored := r.WorkingFiles["/N"]
				return len(r.Stash) == 0 && restored
			},
		}

	case "clone-and-push":
		return []Validator{
			func(_ string, r *git.Repo, _ git.CommandResult, _ map[int]git.RepoSnapshot) bool {
				return r.Initialized && len(r.Commits) == 2
			},
			func(_ string, r *git.Repo, _ git.CommandResult, _ map[int]git.RepoSnapshot) bool {
				return len(r.Commits) == 3
			},
			func(_ string, r *git.Repo, _ git.CommandResult, _ map[int]git.RepoSnapshot) bool {
				return pushedUpToDate(r)
			},
		}

	case "pull-divergence":
		return []Validator{
			func(_ string, r *git.Repo, _ git.CommandResult, _ map[int]git.RepoSnapshot) bool {
				return len(r.Commits) == 3 && pushedUpToDate(r)
			},
			func(_ string, r *git.Repo, _ git.CommandResult, checkpoints map[int]git.RepoSnapshot) bool {
				start, ok := checkpoints[1]
				local := r.Branches[r.CurrentBranch]
				if !ok || local == nil || start.Branches[start.CurrentBranch] == nil {
					return false
				}
				moved := local.Head != start.Branches[start.CurrentBranch].Head
				return moved && len(r.Commits) == 4 && pushedUpToDate(r)
			},
		}
	}
	return nil
}

func branchFileEquals(r *git.Repo, branch, path, want string) bool {
	b := r.Branches[branch]
	if b == nil || b.Head == "" {
		return false
	}
	c := r.Commits[b.Head]
	return c != nil && c.Files[path] == want
}

func pushedUpToDate(r *git.Repo) bool {
	local := r.Branches[r.CurrentBranch]
	if local == nil || local.Head == "" {
		return false
	}
	snap, ok := r.Store().Export()[seed.RemoteURL]
	if !ok {
		return false
	}
	return snap.Branches["main"] == local.Head
}
