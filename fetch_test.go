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

func TestFetchImportsNewRemoteCommitsWithoutMovingHead(t *testing.T) {
	origin, clone := enginetest.NewRemote(t, "mem://fetch.git", enginetest.WithCommittedFiles("a.txt"))
	require.True(t, origin.Write("b.txt", "more").OK)
	require.True(t, origin.Add("b.txt").OK)
	require.True(t, origin.Commit("add b.txt", false).OK)
	require.True(t, origin.Push("origin", "", false).OK)

	headBefore := clone.Log(true).Stdout

	res := clone.Fetch("origin")

	require.True(t, res.OK)
	assert.Equal(t, headBefore, clone.Log(true).Stdout)
}

func TestFetchFailsForUnknownRemote(t *testing.T) {
	r := enginetest.NewRepo(t)

	res := r.Fetch("origin")

	assert.False(t, res.OK)
}

func TestFetchAgainstUnpushedURLIsHarmless(t *testing.T) {
	r := git.NewRepo(nil)
	require.True(t, r.Init().OK)
	require.True(t, r.RemoteAdd("origin", "mem://never-pushed.git").OK)

	res := r.Fetch("origin")

	assert.True(t, res.OK)
}
