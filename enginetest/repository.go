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

// Package enginetest provides repository builders and assertion
// helpers for testing the git package, the way the teacher project's
// gittest package builds real bare/cloned repository pairs for its
// tests, except every repository here lives only in memory.
package enginetest

import (
	"testing"

	git "github.com/git-tutor/tutor"
	"github.com/stretchr/testify/require"
)

const (
	// FileContent is written to any file generated by WithFiles or
	// WithStagedFiles that doesn't specify its own content.
	FileContent = "Lorem ipsum dolor sit amet, consectetur adipiscing elit."

	// InitialCommit is the message of the first commit a freshly
	// built repository contains.
	InitialCommit = "initialized repository"
)

// RepositoryOption customizes a repository built by NewRepo.
type RepositoryOption func(t *testing.T, r *git.Repo)

// WithFiles writes untracked files with default content.
func WithFiles(paths ...string) RepositoryOption {
	return func(t *testing.T, r *git.Repo) {
		t.Helper()
		for _, p := range paths {
			require.True(t, r.Write(p, FileContent).OK)
		}
	}
}

// WithStagedFiles writes and stages files with default content.
func WithStagedFiles(paths ...string) RepositoryOption {
	return func(t *testing.T, r *git.Repo) {
		t.Helper()
		for _, p := range paths {
			require.True(t, r.Write(p, FileContent).OK)
			require.True(t, r.Add(p).OK)
		}
	}
}

// WithCommittedFiles writes, stages and commits files in one commit.
func WithCommittedFiles(paths ...string) RepositoryOption {
	return func(t *testing.T, r *git.Repo) {
		t.Helper()
		WithStagedFiles(paths...)(t, r)
		require.True(t, r.Commit("include test files", false).OK)
	}
}

// WithBranch creates branch at HEAD without switching to it.
func WithBranch(name string) RepositoryOption {
	return func(t *testing.T, r *git.Repo) {
		t.Helper()
		require.True(t, r.BranchCreate(name).OK)
	}
}

// NewRepo builds and initializes an in-memory repository with a
// single initial commit, then applies every option in order.
func NewRepo(t *testing.T, opts ...RepositoryOption) *git.Repo {
	t.Helper()

	r := git.NewRepo(nil)
	require.True(t, r.Init().OK)
	require.True(t, r.Commit(InitialCommit, true).OK)

	for _, opt := range opts {
		opt(t, r)
	}
	return r
}

// NewRemote registers a populated remote repository and returns both
// the origin repo and a freshly cloned local repo that shares the
// same RemoteStore, the in-memory equivalent of the teacher's
// bare-repository-plus-clone pair.
func NewRemote(t *testing.T, url string, opts ...RepositoryOption) (origin, clone *git.Repo) {
	t.Helper()

	store := git.NewRemoteStore()
	origin = git.NewRepo(store)
	require.True(t, origin.Init().OK)
	require.True(t, origin.Commit(InitialCommit, true).OK)
	for _, opt := range opts {
		opt(t, origin)
	}
	require.True(t, origin.RemoteAdd("origin", url).OK)
	require.True(t, origin.Push("origin", "", false).OK)

	clone = git.NewRepo(store)
	require.True(t, clone.Clone(url).OK)
	return origin, clone
}

// MustDispatch runs line against r and requires it to succeed,
// returning stdout.
func MustDispatch(t *testing.T, r *git.Repo, line string) []string {
	t.Helper()
	res := r.Dispatch(line)
	require.True(t, res.OK, "dispatch %q failed: %v", line, res.Stderr)
	return res.Stdout
}
