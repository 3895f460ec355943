// Package tui is the Bubble Tea front end for the same four menu actions
// the line shell offers.
package tui

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/studytasks/internal/cli"
	"github.com/idilsaglam/studytasks/internal/model"
	"github.com/idilsaglam/studytasks/internal/tasks"
	"github.com/idilsaglam/studytasks/internal/ui"
)

type state int

const (
	stateMenu state = iota
	stateAddTitle
	stateMarkID
	stateExited
)

type keyMap struct {
	Add, List, Mark, Quit key.Binding
	Submit, Cancel, Abort key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Add:    key.NewBinding(key.WithKeys(cli.ChoiceAdd), key.WithHelp("1", "add")),
		List:   key.NewBinding(key.WithKeys(cli.ChoiceList), key.WithHelp("2", "list")),
		Mark:   key.NewBinding(key.WithKeys(cli.ChoiceMark), key.WithHelp("3", "mark done")),
		Quit:   key.NewBinding(key.WithKeys(cli.ChoiceQuit, "q"), key.WithHelp("4/q", "quit")),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Abort:  key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// Model is the Bubble Tea model. Repository output is captured and shown
// as the status area.
type Model struct {
	repo    *tasks.Repository
	capture *bytes.Buffer
	view    *ui.Printer

	state  state
	input  textinput.Model
	keys   keyMap
	status string
	tasks  model.Collection
	width  int
}

// New builds a model around a repository constructed by build, which
// receives the printer that captures operation messages. view styles the
// frame.
func New(build func(*ui.Printer) *tasks.Repository, view *ui.Printer) Model {
	capture := &bytes.Buffer{}
	captured := ui.NewPrinter(capture, capture, view.Theme(), ui.ColorNever)

	ti := textinput.New()
	ti.CharLimit = 200

	m := Model{
		repo:    build(captured),
		capture: capture,
		view:    view,
		input:   ti,
		keys:    defaultKeys(),
		width:   80,
	}
	m.refresh()
	return m
}

// Run starts the program on the given terminal streams.
func Run(m Model, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithInput(in), tea.WithOutput(out))
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Abort) {
			return m.exit()
		}
		switch m.state {
		case stateMenu:
			return m.updateMenu(msg)
		case stateAddTitle, stateMarkID:
			return m.updateInput(msg)
		}
	}
	if m.state == stateAddTitle || m.state == stateMarkID {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Add):
		return m.beginInput(stateAddTitle, cli.PromptTitle, "")
	case key.Matches(msg, m.keys.List):
		m.tasks = m.repo.List()
		m.status = m.drain()
		return m, nil
	case key.Matches(msg, m.keys.Mark):
		m.tasks = m.repo.List()
		return m.beginInput(stateMarkID, cli.PromptTaskID, m.drain())
	case key.Matches(msg, m.keys.Quit):
		return m.exit()
	}
	m.status = cli.ErrBadOption
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.endInput()
		m.status = ""
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		value := strings.TrimSpace(m.input.Value())
		st := m.state
		m.endInput()
		if st == stateAddTitle {
			m.submitTitle(value)
		} else {
			m.submitID(value)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) submitTitle(title string) {
	if title == "" {
		m.status = cli.ErrEmptyTitle
		return
	}
	m.repo.Add(title)
	m.status = m.drain()
	m.refresh()
}

func (m *Model) submitID(raw string) {
	id, ok := cli.ParseTaskID(raw)
	if !ok {
		m.status = cli.ErrBadNumber
		return
	}
	m.repo.MarkDone(id)
	m.status = m.drain()
	m.refresh()
}

func (m Model) beginInput(st state, prompt, status string) (tea.Model, tea.Cmd) {
	m.state = st
	m.status = status
	m.input.Prompt = prompt
	m.input.SetValue("")
	cmd := m.input.Focus()
	return m, cmd
}

func (m *Model) endInput() {
	m.state = stateMenu
	m.input.SetValue("")
	m.input.Blur()
}

func (m Model) exit() (tea.Model, tea.Cmd) {
	m.state = stateExited
	m.input.Blur()
	m.status = cli.Farewell
	return m, tea.Quit
}

// refresh reloads the collection for the header. A load warning is kept
// in the status area.
func (m *Model) refresh() {
	m.tasks = m.repo.Load()
	if warning := m.drain(); warning != "" {
		m.status = strings.TrimLeft(m.status+"\n"+warning, "\n")
	}
}

func (m *Model) drain() string {
	s := strings.Trim(m.capture.String(), "\n")
	m.capture.Reset()
	return s
}

// View implements tea.Model.
func (m Model) View() string {
	if m.state == stateExited {
		return m.status + "\n"
	}

	done, _ := m.tasks.Stats()
	lines := []string{
		fmt.Sprintf("Study Task Manager   %s", m.view.Counts(m.tasks)),
		m.view.Progress(done, len(m.tasks), 28),
		"",
	}
	for _, l := range cli.MenuLines() {
		lines = append(lines, ui.Truncate(l, m.width-4))
	}
	if m.state == stateAddTitle || m.state == stateMarkID {
		lines = append(lines, "", m.input.View())
	}
	if m.status != "" {
		lines = append(lines, "")
		for _, l := range strings.Split(m.status, "\n") {
			lines = append(lines, ui.Truncate(l, m.width-4))
		}
	}
	lines = append(lines, "", m.view.Muted(m.helpLine()))
	return m.view.Panel(lines)
}

func (m Model) helpLine() string {
	var bindings []key.Binding
	if m.state == stateMenu {
		bindings = []key.Binding{m.keys.Add, m.keys.List, m.keys.Mark, m.keys.Quit}
	} else {
		bindings = []key.Binding{m.keys.Submit, m.keys.Cancel}
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
