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

package seed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	git "github.com/git-tutor/tutor"
	"github.com/git-tutor/tutor/internal/seed"
)

func TestPopulateCreatesTwoCommitsOnMain(t *testing.T) {
	store := git.NewRemoteStore()
	seed.Populate(store)

	snap, ok := store.Export()[seed.RemoteURL]
	require.True(t, ok)
	assert.Len(t, snap.Commits, 2)
	assert.NotEmpty(t, snap.Branches["main"])
}

func TestPopulateIsIdempotent(t *testing.T) {
	store := git.NewRemoteStore()
	seed.Populate(store)
	first := store.Export()[seed.RemoteURL]

	seed.Populate(store)
	second := store.Export()[seed.RemoteURL]

	assert.Equal(t, first.Branches["main"], second.Branches["main"])
	assert.Len(t, second.Commits, 2)
}
