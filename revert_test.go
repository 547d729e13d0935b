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

func TestRevertUndoesCommitContent(t *testing.T) {
	r := enginetest.NewRepo(t, enginetest.WithCommittedFiles("a.txt"))
	require.True(t, r.Write("a.txt", "second version").OK)
	require.True(t, r.Add("a.txt").OK)
	require.True(t, r.Commit("second commit", false).OK)

	log := r.Log(true)
	require.Len(t, log.Stdout, 3)
	target := log.Stdout[0][:7]

	res := r.Revert(target)

	require.True(t, res.OK)
	cat := r.Cat("a.txt")
	require.True(t, cat.OK)
	assert.Equal(t, enginetest.FileContent, cat.Stdout[0])
	assert.Len(t, r.Log(true).Stdout, 4)
}

func TestRevertRefusesDirtyWorkingTree(t *testing.T) {
	r := enginetest.NewRepo(t, enginetest.WithCommittedFiles("a.txt"))
	require.True(t, r.Write("dirty.txt", "oops").OK)

	res := r.Revert("HEAD")

	assert.False(t, res.OK)
}

func TestRevertOfCommitThatIntroducedAFileRemovesIt(t *testing.T) {
	r := enginetest.NewRepo(t, enginetest.WithCommittedFiles("a.txt"))

	log := r.Log(true)
	introducing := log.Stdout[0][:7]

	res := r.Revert(introducing)

	require.True(t, res.OK)
	cat := r.Cat("a.txt")
	assert.False(t, cat.OK)
}
