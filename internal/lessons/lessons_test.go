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

package lessons_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	git "github.com/git-tutor/tutor"
	"github.com/git-tutor/tutor/internal/lessons"
)

func newEngine(t *testing.T) *lessons.Engine {
	t.Helper()
	store := git.NewRemoteStore()
	defs, err := lessons.BuiltinLessons(store)
	require.NoError(t, err)
	return lessons.NewEngine(store, defs)
}

func TestBuiltinLessonsLoadWithMatchedStepsAndValidators(t *testing.T) {
	store := git.NewRemoteStore()
	defs, err := lessons.BuiltinLessons(store)
	require.NoError(t, err)
	require.Len(t, defs, 6)

	for _, def := range defs {
		for i, step := range def.Steps {
			assert.NotNilf(t, step.Validator, "lesson %s step %d has no validator", def.ID, i)
		}
	}
}

func TestLoadUnknownLessonFails(t *testing.T) {
	e := newEngine(t)
	err := e.Load("does-not-exist")
	assert.ErrorAs(t, err, &lessons.ErrUnknownLesson{})
}

func TestDispatchWithoutActiveLessonFails(t *testing.T) {
	e := newEngine(t)
	_, err := e.Dispatch("git init")
	assert.ErrorAs(t, err, &lessons.ErrNoActiveLesson{})
}

func TestInitCommitBasicsCompletesAllSteps(t *testing.T) {
	e := newEngine(t)
	require.NoError(t, e.Load("init-commit-basics"))

	script := []string{
		"git init",
		`echo "# My Project" > README.md`,
		"git add README.md",
		`git commit -m "a"`,
	}

	var last lessons.StepResult
	for _, line := range script {
		res, err := e.Dispatch(line)
		require.NoError(t, err)
		last = res
	}

	assert.True(t, last.Finished)
	assert.True(t, e.State("init-commit-basics").Completed)
}

func TestResetRepoRestoresStepStartCheckpoint(t *testing.T) {
	e := newEngine(t)
	require.NoError(t, e.Load("init-commit-basics"))

	_, err := e.Dispatch("git init")
	require.NoError(t, err)
	_, err = e.Dispatch(`echo "garbage" > scratch.txt`)
	require.NoError(t, err)

	require.NoError(t, e.ResetRepo())

	r := e.Repo("init-commit-basics")
	_, ok := r.WorkingFiles["/scratch.txt"]
	assert.False(t, ok)
}

func TestAnswerQuizTracksCorrectnessAndCompletion(t *testing.T) {
	e := newEngine(t)
	require.NoError(t, e.Load("init-commit-basics"))

	correct, err := e.AnswerQuiz(0, 0)
	require.NoError(t, err)
	assert.True(t, correct)
	assert.False(t, e.AllQuizzesPassed())

	correct, err = e.AnswerQuiz(1, 1)
	require.NoError(t, err)
	assert.True(t, correct)
	assert.True(t, e.State("init-commit-basics").Quiz.Passed)
}

func TestExportImportStatesRoundTrips(t *testing.T) {
	store := git.NewRemoteStore()
	defs, err := lessons.BuiltinLessons(store)
	require.NoError(t, err)
	e := lessons.NewEngine(store, defs)
	require.NoError(t, e.Load("init-commit-basics"))
	_, err = e.Dispatch("git init")
	require.NoError(t, err)

	states := e.ExportStates()

	store2 := git.NewRemoteStore()
	defs2, err := lessons.BuiltinLessons(store2)
	require.NoError(t, err)
	e2 := lessons.NewEngine(store2, defs2)
	e2.ImportStates("init-commit-basics", states)

	assert.Equal(t, "init-commit-basics", e2.Active())
	assert.True(t, e2.Repo("init-commit-basics").Initialized)
}

func TestMergeConflictLessonReachesConflictThenResolves(t *testing.T) {
	e := newEngine(t)
	require.NoError(t, e.Load("merge-conflict"))

	script := []string{
		"git checkout -b feat",
		`echo "green" > config`,
		"git add config",
		`git commit -m "feat config"`,
		"git checkout main",
		`echo "red" > config`,
		"git add config",
		`git commit -m "main config"`,
		"git merge feat",
	}
	var last lessons.StepResult
	for _, line := range script {
		res, err := e.Dispatch(line)
		require.NoError(t, err)
		last = res
	}
	assert.Contains(t, last.Completed, "Attempt the merge")

	r := e.Repo("merge-conflict")
	require.NotNil(t, r.MergeState)

	script2 := []string{
		`echo "purple" > config`,
		"git add config",
		`git commit -m "m"`,
	}
	for _, line := range script2 {
		_, err := e.Dispatch(line)
		require.NoError(t, err)
	}
	assert.True(t, e.State("merge-conflict").Completed)
}
