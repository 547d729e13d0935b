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

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	git "github.com/git-tutor/tutor"
	"github.com/git-tutor/tutor/internal/seed"
)

//go:embed data/lessons.yaml
var lessonsYAML []byte

type yamlStep struct {
	Title  string `yaml:"title"`
	Prompt string `yaml:"prompt"`
	Hint   string `yaml:"hint"`
}

type yamlQuiz struct {
	Prompt  string   `yaml:"prompt"`
	Choices []string `yaml:"choices"`
	Answer  int      `yaml:"answer"`
}

type yamlLesson struct {
	ID    string     `yaml:"id"`
	Title string     `yaml:"title"`
	Steps []yamlStep `yaml:"steps"`
	Quiz  []yamlQuiz `yaml:"quiz"`
}

type yamlFile struct {
	Lessons []yamlLesson `yaml:"lessons"`
}

// BuiltinLessons loads the six built-in lessons' display text from
// the embedded YAML fixture, pairs each with its registered
// validators and setup/completion logic, and returns them in
// curriculum order. store is shared with every lesson repo so
// clone/push-based lessons observe the same seed remote and each
// other's pushes.
func BuiltinLessons(store *git.RemoteStore) ([]*Definition, error) {
	var doc yamlFile
	if err := yaml.Unmarshal(lessonsYAML, &doc); err != nil {
		return nil, fmt.Errorf("lessons: parse embedded fixture: %w", err)
	}

	setups := builtinSetups(store)
	hooks := builtinHooks(store)

	defs := make([]*Definition, 0, len(doc.Lessons))
	for _, yl := range doc.Lessons {
		validators := validatorSet(yl.ID)
		if len(validators) != len(yl.Steps) {
			return nil, fmt.Errorf("lessons: %s has %d steps but %d validators", yl.ID, len(yl.Steps), len(validators))
		}

		steps := make([]Step, len(yl.Steps))
		for i, ys := range yl.Steps {
			steps[i] = Step{Title: ys.Title, Prompt: ys.Prompt, Hint: ys.Hint, Validator: validators[i]}
		}

		quiz := make([]QuizQuestion, len(yl.Quiz))
		for i, yq := range yl.Quiz {
			quiz[i] = QuizQuestion{Prompt: yq.Prompt, Choices: yq.Choices, Answer: yq.Answer}
		}

		defs = append(defs, &Definition{
			ID:             yl.ID,
			Title:          yl.Title,
			Steps:          steps,
			Quiz:           quiz,
			Setup:          setups[yl.ID],
			OnStepComplete: hooks[yl.ID],
		})
	}
	return defs, nil
}

func builtinSetups(store *git.RemoteStore) map[string]func(r *git.Repo) {
	return map[string]func(r *git.Repo){
		"init-commit-basics": nil,

		"branching-and-merging": func(r *git.Repo) {
			r.Dispatch("git init")
			r.Dispatch(`echo "1" > F`)
			r.Dispatch("git add F")
			r.Dispatch(`git commit -m "base"`)
		},

		"merge-conflict": func(r *git.Repo) {
			r.Dispatch("git init")
			r.Dispatch(`echo "blue" > config`)
			r.Dispatch("git add config")
			r.Dispatch(`git commit -m "base"`)
		},

		"stashing-changes": func(r *git.Repo) {
			r.Dispatch("git init")
			r.Dispatch(`echo "base" > README.md`)
			r.Dispatch("git add README.md")
			r.Dispatch(`git commit -m "base"`)
		},

		"clone-and-push": nil,
		"pull-divergence": nil,
	}
}

// builtinHooks returns the lesson-6 completion hook that simulates a
// teammate pushing a new commit to the seed remote right after the
// learner's own push lands, so the following "git pull" step has
// something to fast-forward onto.
func builtinHooks(store *git.RemoteStore) map[string]func(st *State, stepIndex int) {
	simulateTeammateCommit := func() {
		teammate := git.NewRepo(store)
		teammate.Dispatch("git clone " + seed.RemoteURL)
		teammate.Dispatch(`echo "from teammate" > TEAMMATE.md`)
		teammate.Dispatch("git add TEAMMATE.md")
		teammate.Dispatch(`git commit -m "teammate change"`)
		teammate.Dispatch("git push origin main")
	}

	return map[string]func(st *State, stepIndex int){
		"pull-divergence": func(_ *State, stepIndex int) {
			if stepIndex == 0 {
				simulateTeammateCommit()
			}
		},
	}
}
