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

func TestPullFastForwardsWhenLocalHasNoNewWork(t *testing.T) {
	origin, clone := enginetest.NewRemote(t, "mem://pull.git", enginetest.WithCommittedFiles("a.txt"))
	require.True(t, origin.Write("b.txt", "more").OK)
	require.True(t, origin.Add("b.txt").OK)
	require.True(t, origin.Commit("add b.txt", false).OK)
	require.True(t, origin.Push("origin", "", false).OK)

	res := clone.Pull("origin", "")

	require.True(t, res.OK)
	assert.Equal(t, origin.Log(true).Stdout, clone.Log(true).Stdout)
}

func TestPullRefusesDirtyWorkingTree(t *testing.T) {
	_, clone := enginetest.NewRemote(t, "mem://pull-dirty.git", enginetest.WithCommittedFiles("a.txt"))
	require.True(t, clone.Write("dirty.txt", "uncommitted").OK)

	res := clone.Pull("origin", "")

	assert.False(t, res.OK)
}

func TestPullExplicitBranchOverridesCurrent(t *testing.T) {
	store := git.NewRemoteStore()
	origin := git.NewRepo(store)
	require.True(t, origin.Init().OK)
	require.True(t, origin.Commit(enginetest.InitialCommit, true).OK)
	require.True(t, origin.BranchCreate("other").OK)
	require.True(t, origin.Checkout("other", false).OK)
	require.True(t, origin.Write("o.txt", "x").OK)
	require.True(t, origin.Add("o.txt").OK)
	require.True(t, origin.Commit("other branch work", false).OK)
	require.True(t, origin.RemoteAdd("origin", "mem://pull-explicit.git").OK)
	require.True(t, origin.Push("origin", "main", false).OK)
	require.True(t, origin.Push("origin", "other", false).OK)

	local := git.NewRepo(store)
	require.True(t, local.Clone("mem://pull-explicit.git").OK)
	require.True(t, local.BranchCreate("other").OK)
	require.True(t, local.Checkout("other", false).OK)

	res := local.Pull("origin", "other")

	require.True(t, res.OK)
	require.True(t, local.Checkout("other", false).OK)
	assert.Equal(t, origin.Log(true).Stdout, local.Log(true).Stdout)
}

func TestPullAlreadyUpToDate(t *testing.T) {
	_, clone := enginetest.NewRemote(t, "mem://pull-clean.git", enginetest.WithCommittedFiles("a.txt"))

	res := clone.Pull("origin", "")

	require.True(t, res.OK)
	assert.Contains(t, res.Stdout, "Already up to date.")
}
