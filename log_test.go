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

func TestLogOnelineOrdersNewestFirst(t *testing.T) {
	r := enginetest.NewRepo(t, enginetest.WithCommittedFiles("a.txt"))

	res := r.Log(true)

	require.True(t, res.OK)
	require.Len(t, res.Stdout, 2)
	assert.True(t, strings.HasSuffix(res.Stdout[0], "include test files"))
	assert.True(t, strings.HasSuffix(res.Stdout[1], enginetest.InitialCommit))
}

func TestLogFullFormatIncludesDateAndMessage(t *testing.T) {
	r := enginetest.NewRepo(t)

	res := r.Log(false)

	require.True(t, res.OK)
	joined := strings.Join(res.Stdout, "\n")
	assert.Contains(t, joined, "commit ")
	assert.Contains(t, joined, "Date:")
	assert.Contains(t, joined, enginetest.InitialCommit)
}

func TestGraphReturnsEveryCommit(t *testing.T) {
	r := enginetest.NewRepo(t, enginetest.WithCommittedFiles("a.txt"))

	assert.Len(t, r.Graph(), 2)
}
