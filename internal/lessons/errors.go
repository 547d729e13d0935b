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

package lessons

import "fmt"

// ErrUnknownLesson is raised when Load is given an ID with no registered Definition.
type ErrUnknownLesson struct{ ID string }

func (e ErrUnknownLesson) Error() string { return fmt.Sprintf("lesson %q not found", e.ID) }

// ErrNoActiveLesson is raised when Dispatch, ResetRepo or AnswerQuiz
// run before any lesson has been loaded.
type ErrNoActiveLesson struct{}

func (e ErrNoActiveLesson) Error() string { return "no lesson is currently active" }

// ErrNoCheckpoint is raised when ResetRepo cannot find a checkpoint
// for the engine's own recorded step index, which would only happen
// if state was corrupted by a hand-edited save file. AnswerQuiz also
// returns it, with StepIndex holding the question index, when that
// index is out of range.
type ErrNoCheckpoint struct{ StepIndex int }

func (e ErrNoCheckpoint) Error() string {
	return fmt.Sprintf("no checkpoint recorded for step %d", e.StepIndex)
}
