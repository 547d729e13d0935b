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

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	git "github.com/git-tutor/tutor"
	"github.com/git-tutor/tutor/internal/lessons"
	"github.com/git-tutor/tutor/internal/seed"
)

var materializeOutDir string

var materializeCmd = &cobra.Command{
	Use:   "materialize <lesson-id>",
	Short: "Replay a lesson's setup onto a real .git directory (instructor tool)",
	Long: `Builds a lesson's starting fixture with the in-memory engine, then
replays every resulting commit onto a real git repository via go-git,
so instructors can inspect a lesson's expected state with ordinary
git tooling. Never used by the engine, server or REPL at runtime.`,
	Args: cobra.ExactArgs(1),
	RunE: runMaterialize,
}

func init() {
	materializeCmd.Flags().StringVar(&materializeOutDir, "out", "", "output directory (required)")
	_ = materializeCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(materializeCmd)
}

func runMaterialize(_ *cobra.Command, args []string) error {
	lessonID := args[0]

	store := git.NewRemoteStore()
	defs, err := lessons.BuiltinLessons(store)
	if err != nil {
		return fmt.Errorf("load lessons: %w", err)
	}

	engine := lessons.NewEngine(store, defs)
	if err := engine.Load(lessonID); err != nil {
		return fmt.Errorf("load lesson %q: %w", lessonID, err)
	}

	r := engine.Repo(lessonID)
	if err := seed.Materialize(r, materializeOutDir); err != nil {
		return err
	}
	fmt.Printf("materialized %q into %s\n", lessonID, materializeOutDir)
	return nil
}
