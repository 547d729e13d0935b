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
	"strings"
	"testing"

	"github.com/git-tutor/tutor/enginetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeFastForwards(t *testing.T) {
	r := enginetest.NewRepo(t, enginetest.WithBranch("feature"))
	require.True(t, r.Checkout("feature", false).OK)
	require.True(t, r.Write("a.txt", "hi").OK)
	require.True(t, r.Add("a.txt").OK)
	require.True(t, r.Commit("feature work", false).OK)
	require.True(t, r.Checkout("main", false).OK)

	res := r.Merge("feature")

	require.True(t, res.OK)
	assert.Contains(t, res.Stdout[0], "Fast-forward")
}

func TestMergeCreatesMergeCommitForNonConflictingDivergence(t *testing.T) {
	r := enginetest.NewRepo(t, enginetest.WithBranch("feature"))
	require.True(t, r.Write("main.txt", "m").OK)
	require.True(t, r.Add("main.txt").OK)
	require.True(t, r.Commit("on main", false).OK)

	require.True(t, r.Checkout("feature", false).OK)
	require.True(t, r.Write("feature.txt", "f").OK)
	require.True(t, r.Add("feature.txt").OK)
	require.True(t, r.Commit("on feature", false).OK)
	require.True(t, r.Checkout("main", false).OK)

	res := r.Merge("feature")

	require.True(t, res.OK)
	assert.Contains(t, res.Stdout[0], "recursive")
}

func TestMergeLeavesConflictMarkersWhenBothSidesChangeTheSamePath(t *testing.T) {
	r := enginetest.NewRepo(t, enginetest.WithCommittedFiles("shared.txt"), enginetest.WithBranch("feature"))

	require.True(t, r.Write("shared.txt", "main version").OK)
	require.True(t, r.Add("shared.txt").OK)
	require.True(t, r.Commit("main edits shared.txt", false).OK)

	require.True(t, r.Checkout("feature", false).OK)
	require.True(t, r.Write("shared.txt", "feature version").OK)
	require.True(t, r.Add("shared.txt").OK)
	require.True(t, r.Commit("feature edits shared.txt", false).OK)
	require.True(t, r.Checkout("main", false).OK)

	res := r.Merge("feature")

	assert.False(t, res.OK)
	content := r.Cat("shared.txt")
	joined := strings.Join(content.Stdout, "\n")
	assert.Contains(t, joined, "<<<<<<< HEAD")
	assert.Contains(t, joined, ">>>>>>> feature")

	commit := r.Commit("resolve", false)
	assert.False(t, commit.OK)

	require.True(t, r.Add("shared.txt").OK)
	assert.True(t, r.Commit("resolve", false).OK)
}

func TestMergeUnknownBranchFails(t *testing.T) {
	r := enginetest.NewRepo(t)

	res := r.Merge("nope")

	assert.False(t, res.OK)
	assert.Contains(t, res.Stderr[0], `"nope" not found`)
}
