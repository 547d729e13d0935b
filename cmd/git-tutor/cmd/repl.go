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

package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	git "github.com/git-tutor/tutor"
	"github.com/git-tutor/tutor/internal/achievements"
	"github.com/git-tutor/tutor/internal/lessons"
	"github.com/git-tutor/tutor/internal/seed"
	"github.com/git-tutor/tutor/internal/store"
)

var replLessonID string

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Run the lesson engine in an interactive terminal",
	Long: `Start a full-screen terminal session backed by the same lesson
engine the HTTP server uses. Progress is saved to a single local file
on every command.`,
	RunE: runRepl,
}

func init() {
	replCmd.Flags().StringVar(&replLessonID, "lesson", "init-commit-basics", "lesson to load on start")
	rootCmd.AddCommand(replCmd)
}

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("84"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	badgeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true)
)

func runRepl(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if !term.IsTerminal(int(0)) {
		return fmt.Errorf("repl requires an interactive terminal")
	}

	fs := store.NewFileStore(cfg.PersistPath)
	saved, err := fs.Load("repl")
	if err != nil {
		return fmt.Errorf("load saved state: %w", err)
	}

	remote := git.NewRemoteStore()
	remote.Import(saved.RemoteStore)
	seed.Populate(remote)

	defs, err := lessons.BuiltinLessons(remote)
	if err != nil {
		return fmt.Errorf("load lessons: %w", err)
	}
	engine := lessons.NewEngine(remote, defs)
	if saved.ActiveLessonID != "" {
		engine.ImportStates(saved.ActiveLessonID, saved.Lessons)
	} else if err := engine.Load(replLessonID); err != nil {
		return fmt.Errorf("load lesson %q: %w", replLessonID, err)
	}

	badgeDefs, err := achievements.LoadDefinitions()
	if err != nil {
		return fmt.Errorf("load badges: %w", err)
	}
	tracker := achievements.NewTracker(badgeDefs, saved.Badges)

	m := newReplModel(engine, tracker, fs)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// replModel is the bubbletea Model driving the terminal REPL: a
// single text input line plus a scrolling transcript of commands,
// output and lesson prompts.
type replModel struct {
	input      textinput.Model
	engine     *lessons.Engine
	tracker    *achievements.Tracker
	backing    *store.FileStore
	transcript []string
	width      int
	height     int
}

func newReplModel(e *lessons.Engine, tr *achievements.Tracker, fs *store.FileStore) replModel {
	ti := textinput.New()
	ti.Placeholder = "git ..."
	ti.Focus()
	ti.Prompt = "> "

	m := replModel{input: ti, engine: e, tracker: tr, backing: fs}
	m.transcript = append(m.transcript, m.lessonBanner())
	return m
}

func (m replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m replModel) lessonBanner() string {
	def := m.engine.Definition(m.engine.Active())
	if def == nil {
		return "No lesson loaded."
	}
	st := m.engine.State(m.engine.Active())
	if st == nil || st.StepIndex >= len(def.Steps) {
		return promptStyle.Render(def.Title) + "\nAll steps complete."
	}
	step := def.Steps[st.StepIndex]
	return promptStyle.Render(def.Title) + "\n" + step.Prompt + "\n" + hintStyle.Render(step.Hint)
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line == "" {
				return m, nil
			}
			m.runLine(line)
			if line == "quit" || line == "exit" {
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// runLine dispatches line against the active lesson and appends the
// formatted result to the transcript, persisting state afterward.
func (m *replModel) runLine(line string) {
	m.transcript = append(m.transcript, promptStyle.Render("> ")+line)

	res, err := m.engine.Dispatch(line)
	if err != nil {
		m.transcript = append(m.transcript, errStyle.Render(err.Error()))
		return
	}

	for _, out := range res.Result.Stdout {
		m.transcript = append(m.transcript, okStyle.Render(out))
	}
	for _, out := range res.Result.Stderr {
		m.transcript = append(m.transcript, errStyle.Render(out))
	}
	for _, title := range res.Completed {
		m.transcript = append(m.transcript, okStyle.Render("✓ "+title))
	}

	if r := m.engine.Repo(m.engine.Active()); r != nil {
		newly := m.tracker.OnEvent(r.LastEvent)
		for _, id := range newly {
			m.transcript = append(m.transcript, badgeStyle.Render("★ badge earned: "+id))
		}
	}

	if res.Finished {
		m.transcript = append(m.transcript, promptStyle.Render("Lesson complete!"))
	} else {
		m.transcript = append(m.transcript, m.lessonBanner())
	}

	m.persist()
}

func (m *replModel) persist() {
	st := store.AppState{
		Version:        store.CurrentVersion,
		ActiveLessonID: m.engine.Active(),
		Lessons:        m.engine.ExportStates(),
		Badges:         m.tracker.Snapshot(),
		RemoteStore:    m.engine.Repo(m.engine.Active()).Store().Export(),
	}
	_ = m.backing.Save("repl", st)
}

func (m replModel) View() string {
	var b strings.Builder
	start := 0
	maxLines := m.height - 3
	if maxLines > 0 && len(m.transcript) > maxLines {
		start = len(m.transcript) - maxLines
	}
	for _, line := range m.transcript[start:] {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(m.input.View())
	return b.String()
}
