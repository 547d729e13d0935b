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

	"github.com/git-tutor/tutor/enginetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutExistingBranch(t *testing.T) {
	r := enginetest.NewRepo(t, enginetest.WithBranch("feature"))

	res := r.Checkout("feature", false)

	assert.True(t, res.OK)
	assert.Equal(t, "feature", r.CurrentBranch)
}

func TestCheckoutCreatesBranch(t *testing.T) {
	r := enginetest.NewRepo(t)

	res := r.Checkout("feature", true)

	assert.True(t, res.OK)
	assert.Equal(t, "feature", r.CurrentBranch)
	assert.Contains(t, r.BranchList().Stdout, "* feature")
}

func TestCheckoutUnknownBranchFails(t *testing.T) {
	r := enginetest.NewRepo(t)

	res := r.Checkout("missing", false)

	assert.False(t, res.OK)
	assert.Contains(t, res.Stderr[0], `"missing" not found`)
}

func TestCheckoutRepopulatesDirsFromCommittedPaths(t *testing.T) {
	r := enginetest.NewRepo(t)
	require.True(t, r.BranchCreate("feat").OK)
	require.True(t, r.Checkout("feat", false).OK)
	require.True(t, r.Write("src/main.go", "package main").OK)
	require.True(t, r.Add("src/main.go").OK)
	require.True(t, r.Commit("add src/main.go", false).OK)
	require.True(t, r.Checkout("main", false).OK)

	require.True(t, r.Checkout("feat", false).OK)
	res := r.Cd("src")

	assert.True(t, res.OK)
}

func TestCheckoutRefusesDirtyWorkingTree(t *testing.T) {
	r := enginetest.NewRepo(t, enginetest.WithBranch("feature"))
	r.Write("dirty.txt", "uncommitted")

	res := r.Checkout("feature", false)

	assert.False(t, res.OK)
	assert.Contains(t, res.Stderr[0], "uncommitted changes")
}
