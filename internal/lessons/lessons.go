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

// Package lessons runs the step-by-step tutorial curriculum on top of
// the git package: per-lesson setup, step checkpointing, pure
// validators and completion hooks. Validators never touch the DOM or
// a controller; they are predicates over (command, repo, result,
// checkpoints), exactly as Design Notes in the source specification
// require.
package lessons

import (
	git "github.com/git-tutor/tutor"
)

// Validator inspects the command just dispatched, the repo it ran
// against, the structured result it produced, and every checkpoint
// captured so far, and reports whether the current step is complete.
// Lesson 6 ("pull divergence") is the reason checkpoints are passed
// in: its final step compares the live HEAD against the hash
// recorded at the step's own starting checkpoint.
type Validator func(cmd string, r *git.Repo, res git.CommandResult, checkpoints map[int]git.RepoSnapshot) bool

// Step is one stop along a lesson: display text plus the predicate
// that decides when the learner has completed it.
type Step struct {
	Title     string
	Prompt    string
	Hint      string
	Validator Validator
}

// QuizQuestion is one multiple-choice question in a lesson's optional quiz.
type QuizQuestion struct {
	Prompt  string
	Choices []string
	Answer  int
}

// Definition is the static shape of one lesson: identifier, ordered
// steps, optional quiz, a one-shot setup function and an optional
// per-step completion hook, matching the tuple the source
// specification describes for a lesson.
type Definition struct {
	ID             string
	Title          string
	Steps          []Step
	Quiz           []QuizQuestion
	Setup          func(r *git.Repo)
	OnStepComplete func(st *State, stepIndex int)
}

// QuizState tracks which quiz questions have been answered correctly.
type QuizState struct {
	Answered []bool `json:"answered"`
	Passed   bool   `json:"passed"`
}

// State is the durable, per-lesson progress record: current step,
// completion flag, quiz progress, the lesson's own repo snapshot, and
// a checkpoint captured at the start of every step so "reset repo"
// can restore exactly where the step began.
type State struct {
	StepIndex   int                      `json:"stepIndex"`
	Completed   bool                     `json:"completed"`
	Quiz        QuizState                `json:"quiz"`
	Snapshot    git.RepoSnapshot         `json:"snapshot"`
	Checkpoints map[int]git.RepoSnapshot `json:"checkpoints"`
}

// StepResult describes what happened to one dispatched command:
// the raw engine result plus every step title that completed as a
// consequence (a single command can close out more than one step if
// a validator happens to already hold for the next step too).
type StepResult struct {
	Command   string
	Result    git.CommandResult
	Completed []string
	Finished  bool
}

// Engine owns every lesson's definition, its dedicated Repo instance,
// and its progress state. One Engine corresponds to one learner
// session.
type Engine struct {
	store  *git.RemoteStore
	defs   map[string]*Definition
	order  []string
	repos  map[string]*git.Repo
	states map[string]*State
	active string
}

// NewEngine builds an engine over defs, sharing store across every
// lesson repo so clone/push-based lessons can see the seed remote and
// each other's pushes.
func NewEngine(store *git.RemoteStore, defs []*Definition) *Engine {
	e := &Engine{
		store:  store,
		defs:   map[string]*Definition{},
		repos:  map[string]*git.Repo{},
		states: map[string]*State{},
	}
	for _, d := range defs {
		e.defs[d.ID] = d
		e.order = append(e.order, d.ID)
	}
	return e
}

// Definitions returns every lesson ID in registration order.
func (e *Engine) Definitions() []string {
	return append([]string(nil), e.order...)
}

// Definition returns the static definition for id, or nil.
func (e *Engine) Definition(id string) *Definition {
	return e.defs[id]
}

// Active returns the currently selected lesson ID, or "" if none has
// been loaded yet.
func (e *Engine) Active() string {
	return e.active
}

// State returns the progress record for id, or nil if it has never
// been loaded.
func (e *Engine) State(id string) *State {
	return e.states[id]
}

// Repo returns the dedicated repo instance backing lesson id, or nil
// if the lesson has never been loaded.
func (e *Engine) Repo(id string) *git.Repo {
	return e.repos[id]
}

// Load selects id as the active lesson, running its one-shot setup
// and capturing the initial state as checkpoint 0 on first load. A
// lesson already loaded once simply becomes active again, preserving
// its in-progress state.
func (e *Engine) Load(id string) error {
	def, ok := e.defs[id]
	if !ok {
		return ErrUnknownLesson{ID: id}
	}

	if _, loaded := e.repos[id]; !loaded {
		r := git.NewRepo(e.store)
		if def.Setup != nil {
			def.Setup(r)
		}
		e.repos[id] = r
		e.states[id] = &State{
			StepIndex:   0,
			Checkpoints: map[int]git.RepoSnapshot{0: r.Export()},
		}
	}

	e.active = id
	return nil
}

// Dispatch runs line against the active lesson's repo, then advances
// through however many consecutive steps the resulting state
// satisfies, capturing a fresh checkpoint and invoking OnStepComplete
// for each one that closes.
func (e *Engine) Dispatch(line string) (StepResult, error) {
	if e.active == "" {
		return StepResult{}, ErrNoActiveLesson{}
	}
	def := e.defs[e.active]
	r := e.repos[e.active]
	st := e.states[e.active]

	res := r.Dispatch(line)
	out := StepResult{Command: line, Result: res}

	for !st.Completed && st.StepIndex < len(def.Steps) {
		step := def.Steps[st.StepIndex]
		if step.Validator == nil || !step.Validator(line, r, res, st.Checkpoints) {
			break
		}

		out.Completed = append(out.Completed, step.Title)
		st.StepIndex++
		st.Checkpoints[st.StepIndex] = r.Export()
		if st.StepIndex >= len(def.Steps) {
			st.Completed = true
			out.Finished = true
		}
		if def.OnStepComplete != nil {
			def.OnStepComplete(st, st.StepIndex-1)
		}
	}

	st.Snapshot = r.Export()
	return out, nil
}

// ResetRepo restores the active lesson's repo to the checkpoint
// captured at the start of its current step, the engine's "reset
// repo" affordance.
func (e *Engine) ResetRepo() error {
	if e.active == "" {
		return ErrNoActiveLesson{}
	}
	st := e.states[e.active]
	snap, ok := st.Checkpoints[st.StepIndex]
	if !ok {
		return ErrNoCheckpoint{StepIndex: st.StepIndex}
	}
	e.repos[e.active].Import(snap)
	st.Snapshot = e.repos[e.active].Export()
	return nil
}

// AnswerQuiz records an answer to question idx of the active lesson's
// quiz, marking the quiz passed once every question has a correct
// answer recorded.
func (e *Engine) AnswerQuiz(idx, choice int) (correct bool, err error) {
	if e.active == "" {
		return false, ErrNoActiveLesson{}
	}
	def := e.defs[e.active]
	st := e.states[e.active]
	if idx < 0 || idx >= len(def.Quiz) {
		return false, ErrNoCheckpoint{StepIndex: idx}
	}

	if len(st.Quiz.Answered) != len(def.Quiz) {
		st.Quiz.Answered = make([]bool, len(def.Quiz))
	}
	correct = def.Quiz[idx].Answer == choice
	if correct {
		st.Quiz.Answered[idx] = true
	}

	allAnswered := true
	for _, a := range st.Quiz.Answered {
		allAnswered = allAnswered && a
	}
	st.Quiz.Passed = allAnswered && len(def.Quiz) > 0
	return correct, nil
}

// AllQuizzesPassed reports whether every lesson with a quiz has had
// it passed, the condition the achievements "quiz ace" badge syncs on.
func (e *Engine) AllQuizzesPassed() bool {
	any := false
	for _, id := range e.order {
		def := e.defs[id]
		if len(def.Quiz) == 0 {
			continue
		}
		any = true
		st := e.states[id]
		if st == nil || !st.Quiz.Passed {
			return false
		}
	}
	return any
}

// CompletedCount reports how many lessons have been fully completed.
func (e *Engine) CompletedCount() int {
	n := 0
	for _, st := range e.states {
		if st.Completed {
			n++
		}
	}
	return n
}

// ExportStates snapshots every loaded lesson's progress, keyed by
// lesson ID, for the persistence layer.
func (e *Engine) ExportStates() map[string]State {
	out := make(map[string]State, len(e.states))
	for id, st := range e.states {
		out[id] = *st
	}
	return out
}

// ImportStates restores lesson progress and repo contents from a
// persisted save, rebuilding each lesson's repo from its snapshot
// rather than re-running Setup (the learner's actual history, not the
// lesson's starting fixture, is what must come back).
func (e *Engine) ImportStates(active string, states map[string]State) {
	e.active = active
	for id, st := range states {
		stCopy := st
		e.states[id] = &stCopy
		r := git.NewRepo(e.store)
		r.Import(st.Snapshot)
		e.repos[id] = r
	}
}
