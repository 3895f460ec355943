// Package cli runs the line-oriented menu shell.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/idilsaglam/studytasks/internal/tasks"
	"github.com/idilsaglam/studytasks/internal/ui"
)

// Console text.
const (
	Welcome       = "Welcome to the Study Task Manager!"
	Farewell      = "Goodbye! Keep studying hard!"
	PromptChoice  = "Choose an option (1-4): "
	PromptTitle   = "Enter task title: "
	PromptTaskID  = "Enter task ID: "
	ErrEmptyTitle = "Error: Task title cannot be empty."
	ErrBadNumber  = "Error: Please enter a valid number."
	ErrBadOption  = "Invalid option. Choose between 1 and 4."
)

// Menu choices.
const (
	ChoiceAdd  = "1"
	ChoiceList = "2"
	ChoiceMark = "3"
	ChoiceQuit = "4"
)

var menuLines = []string{
	"===== Task Manager =====",
	"1. Add task",
	"2. View all tasks",
	"3. Mark task as done",
	"4. Quit",
	"========================",
}

// Shell reads menu choices from in and dispatches to the repository.
type Shell struct {
	in   *bufio.Reader
	out  *ui.Printer
	repo *tasks.Repository
}

// NewShell wires a shell to its input, printer and repository.
func NewShell(in io.Reader, out *ui.Printer, repo *tasks.Repository) *Shell {
	return &Shell{in: bufio.NewReader(in), out: out, repo: repo}
}

// Run loops until the user quits. End of input counts as quitting; any
// other read error is returned.
func (s *Shell) Run() error {
	s.out.Heading(Welcome)

	for {
		s.printMenu()

		choice, err := s.prompt(PromptChoice)
		if err != nil {
			return s.endOfInput(err)
		}

		switch choice {
		case ChoiceAdd:
			title, err := s.prompt(PromptTitle)
			if err != nil {
				return s.endOfInput(err)
			}
			if title == "" {
				s.out.Fail(ErrEmptyTitle)
				continue
			}
			s.repo.Add(title)

		case ChoiceList:
			s.repo.List()

		case ChoiceMark:
			s.repo.List()
			raw, err := s.prompt(PromptTaskID)
			if err != nil {
				return s.endOfInput(err)
			}
			id, ok := ParseTaskID(raw)
			if !ok {
				s.out.Fail(ErrBadNumber)
				continue
			}
			s.repo.MarkDone(id)

		case ChoiceQuit:
			s.out.Println(Farewell)
			return nil

		default:
			s.out.Fail(ErrBadOption)
		}
	}
}

// ParseTaskID parses a trimmed decimal integer, sign allowed.
func ParseTaskID(raw string) (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return id, true
}

// MenuLines returns the menu text, one line per entry.
func MenuLines() []string {
	return append([]string(nil), menuLines...)
}

func (s *Shell) printMenu() {
	s.out.Println("")
	for _, l := range menuLines {
		s.out.Println(l)
	}
}

// prompt prints label and returns the next trimmed line. A final line
// without a trailing newline is still returned.
func (s *Shell) prompt(label string) (string, error) {
	s.out.Print(label)
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (s *Shell) endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		s.out.Println("")
		s.out.Println(Farewell)
		return nil
	}
	return fmt.Errorf("read input: %w", err)
}
