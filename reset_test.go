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

func TestResetHardMovesHeadAndDiscardsWorkingChanges(t *testing.T) {
	r := enginetest.NewRepo(t, enginetest.WithCommittedFiles("a.txt"))
	require.True(t, r.Write("a.txt", "changed").OK)
	require.True(t, r.Add("a.txt").OK)

	res := r.ResetHard("HEAD~1")

	require.True(t, res.OK)
	assert.Empty(t, r.PorcelainStatus())
	assert.Len(t, r.Log(true).Stdout, 1)
}

func TestResetHardToUnknownRefFails(t *testing.T) {
	r := enginetest.NewRepo(t)

	res := r.ResetHard("deadbeef")

	assert.False(t, res.OK)
}

func TestResetHardLeavesOldCommitAddressable(t *testing.T) {
	r := enginetest.NewRepo(t, enginetest.WithCommittedFiles("a.txt"))
	log := r.Log(true)
	require.Len(t, log.Stdout, 2)
	oldHash := log.Stdout[0][:7]

	require.True(t, r.ResetHard("HEAD~1").OK)

	res := r.ResetHard(oldHash)
	assert.True(t, res.OK)
}
