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

package git_test

import (
	"testing"

	git "github.com/git-tutor/tutor"
	"github.com/git-tutor/tutor/enginetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneImportsCommitsAndChecksOutDefaultBranch(t *testing.T) {
	origin, clone := enginetest.NewRemote(t, "mem://repo.git", enginetest.WithCommittedFiles("README.md"))

	assert.Equal(t, git.DefaultBranch, clone.CurrentBranch)
	assert.Equal(t, origin.Log(true).Stdout, clone.Log(true).Stdout)
}

func TestCloneResetsAnAlreadyInitializedRepo(t *testing.T) {
	store := git.NewRemoteStore()
	origin := git.NewRepo(store)
	require.True(t, origin.Init().OK)
	require.True(t, origin.Write("README.md", "hello").OK)
	require.True(t, origin.Add("README.md").OK)
	require.True(t, origin.Commit("add readme", false).OK)
	require.True(t, origin.RemoteAdd("origin", "mem://reclone.git").OK)
	require.True(t, origin.Push("origin", "", false).OK)

	r := git.NewRepo(store)
	require.True(t, r.Init().OK)
	require.True(t, r.Commit("unrelated work", true).OK)
	require.True(t, r.BranchCreate("scratch").OK)
	require.True(t, r.Write("leftover.txt", "stale").OK)

	res := r.Clone("mem://reclone.git")

	require.True(t, res.OK)
	assert.Equal(t, git.DefaultBranch, r.CurrentBranch)
	assert.Equal(t, origin.Log(true).Stdout, r.Log(true).Stdout)
	assert.Empty(t, r.PorcelainStatus())
	assert.NotContains(t, r.BranchList().Stdout, "  scratch")
}

func TestCloneSeedsDirsFromImportedFiles(t *testing.T) {
	store := git.NewRemoteStore()
	origin := git.NewRepo(store)
	require.True(t, origin.Init().OK)
	require.True(t, origin.Write("src/pkg/main.go", "package main").OK)
	require.True(t, origin.Add("src/pkg/main.go").OK)
	require.True(t, origin.Commit("add nested file", false).OK)
	require.True(t, origin.RemoteAdd("origin", "mem://repo-dirs.git").OK)
	require.True(t, origin.Push("origin", "", false).OK)

	clone := git.NewRepo(store)
	require.True(t, clone.Clone("mem://repo-dirs.git").OK)

	assert.True(t, clone.Cd("src/pkg").OK)
}

func TestCloneFailsForUnknownRemote(t *testing.T) {
	r := git.NewRepo(nil)

	res := r.Clone("mem://never-pushed.git")

	require.False(t, res.OK)
	assert.Contains(t, res.Stderr[0], "not found")
}
