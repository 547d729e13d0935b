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

func TestCommitDefaultsMessageWhenOmitted(t *testing.T) {
	r := enginetest.NewRepo(t, enginetest.WithStagedFiles("a.txt"))

	res := r.Commit("", false)

	require.True(t, res.OK)
	assert.Contains(t, res.Stdout[0], "Commit")
}

func TestCommitRejectsEmptyWithoutAllowEmpty(t *testing.T) {
	r := enginetest.NewRepo(t)

	res := r.Commit("nothing to see", false)

	assert.False(t, res.OK)
	assert.Contains(t, res.Stderr[0], "nothing to commit")
}

func TestCommitAllowsEmptyWhenRequested(t *testing.T) {
	r := enginetest.NewRepo(t)

	res := r.Commit("empty commit", true)

	assert.True(t, res.OK)
}

func TestCommitAdvancesBranchHead(t *testing.T) {
	r := enginetest.NewRepo(t, enginetest.WithStagedFiles("a.txt"))

	res := r.Commit("add a.txt", false)

	require.True(t, res.OK)
	assert.Empty(t, r.PorcelainStatus())
	log := r.Log(true)
	require.True(t, log.OK)
	assert.Len(t, log.Stdout, 2)
}
