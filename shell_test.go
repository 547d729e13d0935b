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

func TestMkdirCreatesMissingAncestors(t *testing.T) {
	r := enginetest.NewRepo(t)

	res := r.Mkdir("a/b/c")

	require.True(t, res.OK)
	require.True(t, r.Cd("a/b/c").OK)
	assert.Equal(t, "/a/b/c", r.Pwd().Stdout[0])
}

func TestLsListsDirsBeforeFiles(t *testing.T) {
	r := enginetest.NewRepo(t)
	require.True(t, r.Mkdir("sub").OK)
	require.True(t, r.Touch("z.txt").OK)
	require.True(t, r.Touch("a.txt").OK)

	res := r.Ls("")

	require.True(t, res.OK)
	assert.Equal(t, []string{"sub/", "a.txt", "z.txt"}, res.Stdout)
}

func TestCdRejectsUnknownDirectory(t *testing.T) {
	r := enginetest.NewRepo(t)

	res := r.Cd("missing")

	assert.False(t, res.OK)
}

func TestWriteThenCatRoundTrips(t *testing.T) {
	r := enginetest.NewRepo(t)

	require.True(t, r.Write("notes.txt", "line one").OK)

	res := r.Cat("notes.txt")
	require.True(t, res.OK)
	assert.Equal(t, []string{"line one"}, res.Stdout)
}

func TestAppendAddsNewLine(t *testing.T) {
	r := enginetest.NewRepo(t)
	require.True(t, r.Write("notes.txt", "line one").OK)

	require.True(t, r.Append("notes.txt", "line two").OK)

	res := r.Cat("notes.txt")
	require.True(t, res.OK)
	assert.Equal(t, []string{"line one", "line two"}, res.Stdout)
}

func TestRmRemovesFileFromWorkingTreeOnly(t *testing.T) {
	r := enginetest.NewRepo(t, enginetest.WithCommittedFiles("a.txt"))

	require.True(t, r.Rm("a.txt").OK)

	cat := r.Cat("a.txt")
	assert.False(t, cat.OK)
	statuses := r.PorcelainStatus()
	require.Len(t, statuses, 1)
	assert.Equal(t, git.Deleted, statuses[0].Indicators[1])
}
