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

func TestAddStagesNamedPathspec(t *testing.T) {
	r := enginetest.NewRepo(t)
	require.True(t, r.Write("a.txt", "hi").OK)

	res := r.Add("a.txt")

	require.True(t, res.OK)
	assert.True(t, r.Commit("add a.txt", false).OK)
}

func TestAddWithNoPathspecsStagesEverythingDirty(t *testing.T) {
	r := enginetest.NewRepo(t)
	require.True(t, r.Write("a.txt", "hi").OK)
	require.True(t, r.Write("b.txt", "lo").OK)

	res := r.Add()

	require.True(t, res.OK)
	commit := r.Commit("stage all", false)
	require.True(t, commit.OK)
	assert.Empty(t, r.PorcelainStatus())
}

func TestAddStagesDeletionOfTrackedFile(t *testing.T) {
	r := enginetest.NewRepo(t, enginetest.WithCommittedFiles("a.txt"))
	require.True(t, r.Rm("a.txt").OK)

	res := r.Add("a.txt")

	require.True(t, res.OK)
	statuses := r.PorcelainStatus()
	require.Len(t, statuses, 1)
	assert.Equal(t, "/a.txt", statuses[0].Path)
	assert.Equal(t, git.Deleted, statuses[0].Indicators[0])
}
