package tui

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/studytasks/internal/cli"
	"github.com/idilsaglam/studytasks/internal/model"
	"github.com/idilsaglam/studytasks/internal/store/jsonstore"
	"github.com/idilsaglam/studytasks/internal/tasks"
	"github.com/idilsaglam/studytasks/internal/ui"
)

func newModel(t *testing.T, seed model.Collection) (Model, *jsonstore.Store) {
	t.Helper()
	store := jsonstore.New(filepath.Join(t.TempDir(), jsonstore.DefaultFileName), nil)
	if seed != nil {
		require.NoError(t, store.Save(seed))
	}
	build := func(p *ui.Printer) *tasks.Repository { return tasks.New(store, p, nil) }
	return New(build, ui.Plain(io.Discard)), store
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func stored(t *testing.T, s *jsonstore.Store) model.Collection {
	t.Helper()
	c, _ := s.Load()
	return c
}

func TestModel_AddTask(t *testing.T) {
	m, store := newModel(t, nil)

	m = press(t, m, runes("1"))
	assert.Equal(t, stateAddTitle, m.state)

	m = press(t, m, runes("Read chapter 1"), tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, stateMenu, m.state)
	assert.Equal(t, "Task added: 'Read chapter 1'", m.status)
	assert.Equal(t, model.Collection{{ID: 1, Title: "Read chapter 1"}}, stored(t, store))
	assert.Len(t, m.tasks, 1)
}

func TestModel_EmptyTitleRejected(t *testing.T) {
	m, store := newModel(t, nil)

	m = press(t, m, runes("1"), runes("   "), tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, cli.ErrEmptyTitle, m.status)
	assert.Empty(t, stored(t, store))
}

func TestModel_MarkDoneFlow(t *testing.T) {
	m, store := newModel(t, model.Collection{{ID: 1, Title: "a"}, {ID: 3, Title: "b"}})

	m = press(t, m, runes("3"))
	assert.Equal(t, stateMarkID, m.state)
	assert.Contains(t, m.status, "[✗] 3. b")

	m = press(t, m, runes("3"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "Task 3 marked as done.", m.status)
	assert.True(t, stored(t, store)[1].Done)

	m = press(t, m, runes("3"), runes("3"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, tasks.MsgAlreadyDone, m.status)

	m = press(t, m, runes("3"), runes("99"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, tasks.MsgIDNotFound, m.status)

	m = press(t, m, runes("3"), runes("x"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, cli.ErrBadNumber, m.status)
}

func TestModel_ListAndInvalidOption(t *testing.T) {
	m, _ := newModel(t, nil)

	m = press(t, m, runes("2"))
	assert.Equal(t, tasks.MsgNoTasks, m.status)

	m = press(t, m, runes("9"))
	assert.Equal(t, cli.ErrBadOption, m.status)
	assert.Equal(t, stateMenu, m.state)
}

func TestModel_EscCancelsInput(t *testing.T) {
	m, store := newModel(t, nil)

	m = press(t, m, runes("1"), runes("draft"), tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, stateMenu, m.state)
	assert.Empty(t, m.input.Value())
	assert.Empty(t, stored(t, store))
}

func TestModel_Quit(t *testing.T) {
	for name, msg := range map[string]tea.KeyMsg{
		"four":   runes("4"),
		"q":      runes("q"),
		"ctrl+c": {Type: tea.KeyCtrlC},
	} {
		t.Run(name, func(t *testing.T) {
			m, _ := newModel(t, nil)
			next, cmd := m.Update(msg)
			require.NotNil(t, cmd)
			assert.Equal(t, tea.QuitMsg{}, cmd())
			assert.Equal(t, cli.Farewell+"\n", next.View())
		})
	}
}

func TestModel_View(t *testing.T) {
	m, _ := newModel(t, model.Collection{{ID: 1, Title: "a", Done: true}, {ID: 2, Title: "b"}})

	v := m.View()

	assert.Contains(t, v, "Study Task Manager")
	assert.Contains(t, v, "Total 2")
	assert.Contains(t, v, " 50%")
	assert.Contains(t, v, "3. Mark task as done")
	assert.Contains(t, v, "4/q quit")

	m = press(t, m, runes("1"))
	assert.Contains(t, m.View(), cli.PromptTitle)
	assert.Contains(t, m.View(), "enter submit")
}

func TestModel_ShowsLoadWarning(t *testing.T) {
	path := filepath.Join(t.TempDir(), jsonstore.DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte("{{{"), 0o644))
	store := jsonstore.New(path, nil)
	build := func(p *ui.Printer) *tasks.Repository { return tasks.New(store, p, nil) }

	m := New(build, ui.Plain(io.Discard))

	assert.Equal(t, tasks.MsgLoadWarning, m.status)
	assert.Contains(t, m.View(), jsonstore.LoadWarning)

	m = press(t, m, runes("2"))
	assert.Equal(t, tasks.MsgLoadWarning+"\n"+tasks.MsgNoTasks, m.status)

	m = press(t, m, runes("1"), runes("fresh start"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, tasks.MsgLoadWarning+"\nTask added: 'fresh start'", m.status)
	assert.Equal(t, model.Collection{{ID: 1, Title: "fresh start"}}, stored(t, store))
}
