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

//go:build seed_export

// This file only builds with -tags seed_export. It is never imported
// by the engine, the API server or the REPL: materializing a real
// .git directory is a debugging aid for instructors, not part of the
// in-memory simulation the rest of this module implements.
package seed

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	gittutor "github.com/git-tutor/tutor"
)

// Materialize replays every commit in r, in order, onto a brand new
// real git repository rooted at dir using go-git, so a lesson's
// expected end-state can be inspected with ordinary git tooling. dir
// must not already exist.
func Materialize(r *gittutor.Repo, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("materialize: create dir: %w", err)
	}

	repo, err := git.PlainInit(dir, false)
	if err != nil {
		return fmt.Errorf("materialize: git init: %w", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("materialize: worktree: %w", err)
	}

	snap := r.Export()
	for _, hash := range snap.CommitOrder {
		commit := snap.Commits[hash]
		if commit == nil {
			continue
		}

		if err := writeFiles(dir, commit.Files); err != nil {
			return err
		}
		if _, err := wt.Add("."); err != nil {
			return fmt.Errorf("materialize: stage commit %s: %w", hash, err)
		}

		sig := &object.Signature{Name: "Git Tutor", Email: "tutor@git-tutor.example", When: commit.CreatedAt}
		if _, err := wt.Commit(commit.Message, &git.CommitOptions{Author: sig, Committer: sig}); err != nil {
			return fmt.Errorf("materialize: commit %s: %w", hash, err)
		}
	}
	return nil
}

func writeFiles(dir string, files gittutor.Snapshot) error {
	for path, content := range files {
		full := filepath.Join(dir, filepath.FromSlash(path))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			return fmt.Errorf("materialize: mkdir %s: %w", full, err)
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			return fmt.Errorf("materialize: write %s: %w", full, err)
		}
	}
	return nil
}
