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

func TestResolveRefHeadAndParent(t *testing.T) {
	r := enginetest.NewRepo(t, enginetest.WithCommittedFiles("a.txt"))

	res := r.Log(true)
	require.True(t, res.OK)
	require.Len(t, res.Stdout, 2)

	reset := r.ResetHard("HEAD~1")
	require.True(t, reset.OK)
	assert.Len(t, r.Log(true).Stdout, 1)
}

func TestResolveRefUnknownPrefixFails(t *testing.T) {
	r := enginetest.NewRepo(t, enginetest.WithCommittedFiles("a.txt"))

	reset := r.ResetHard("0000000")

	assert.False(t, reset.OK)
}

func TestLowestCommonAncestorOnDivergentBranches(t *testing.T) {
	r := enginetest.NewRepo(t, enginetest.WithBranch("feature"))
	require.True(t, r.Write("main.txt", "m").OK)
	require.True(t, r.Add("main.txt").OK)
	require.True(t, r.Commit("on main", false).OK)

	require.True(t, r.Checkout("feature", false).OK)
	require.True(t, r.Write("feature.txt", "f").OK)
	require.True(t, r.Add("feature.txt").OK)
	require.True(t, r.Commit("on feature", false).OK)

	merge := r.Merge("main")
	require.True(t, merge.OK)
}
