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
	"errors"
	"fmt"
)

// Sentinel errors for the categorical failure kinds a simulated command
// can raise. Handlers further up the stack (the dispatcher, the HTTP
// layer) map these to exit codes or status codes with errors.Is, rather
// than string matching.
var (
	// ErrNotARepository is raised when a git subcommand is invoked before init
	ErrNotARepository = errors.New("not a git repository (simulated)")

	// ErrDirtyWorkingTree is raised by checkout, merge and pull when the
	// working tree has staged, unstaged, untracked or conflicting paths
	ErrDirtyWorkingTree = errors.New("working tree has uncommitted changes, commit or stash them first (simulated)")

	// ErrEmptyCommit is raised when commit is invoked with nothing staged
	ErrEmptyCommit = errors.New("nothing to commit, working tree clean (simulated)")

	// ErrUnresolvedMerge is raised when commit is invoked while conflicts remain
	ErrUnresolvedMerge = errors.New("you have not concluded your merge, fix conflicts and commit (simulated)")

	// ErrUnimplemented is raised for any git (or git remote) subcommand
	// the engine does not implement
	ErrUnimplemented = errors.New("not implemented in this tutorial")

	// ErrStashEmpty is raised when stash is invoked against a clean working tree
	ErrStashEmpty = errors.New("no local changes to save (simulated)")

	// ErrNoStashEntries is raised when stash pop is invoked against an empty stash
	ErrNoStashEntries = errors.New("no stash entries found (simulated)")

	// ErrNonFastForward is raised by Push when the remote branch has
	// commits the local branch has not yet incorporated
	ErrNonFastForward = errors.New("updates were rejected, the remote contains work you do not have locally (simulated)")
)

// ErrNotFound is raised when a path, branch, remote or hash reference
// cannot be resolved
type ErrNotFound struct {
	Kind string
	Name string
}

func (e ErrNotFound) Error() string {
	return fmt.Sprintf("%s %q not found (simulated)", e.Kind, e.Name)
}

// ErrAmbiguousRef is raised when a hash prefix resolves to more than one commit
type ErrAmbiguousRef struct {
	Prefix  string
	Matches []string
}

func (e ErrAmbiguousRef) Error() string {
	return fmt.Sprintf("short hash %s is ambiguous, candidates: %v (simulated)", e.Prefix, e.Matches)
}

// ErrUsage is raised when a command is invoked with missing or invalid arguments
type ErrUsage struct {
	Command string
	Usage   string
}

func (e ErrUsage) Error() string {
	return fmt.Sprintf("usage: %s", e.Usage)
}

// ErrAlreadyExists is raised when branch creation targets a name already in use
type ErrAlreadyExists struct {
	Kind string
	Name string
}

func (e ErrAlreadyExists) Error() string {
	return fmt.Sprintf("%s %q already exists (simulated)", e.Kind, e.Name)
}
