package tui

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Picker is a minimal chooser shown when the CLI is started without a
// MIDI file argument.
type Picker struct {
	files    []string
	cursor   int
	choice   string
	quitting bool
}

func NewPicker(files []string) Picker {
	return Picker{files: files}
}

// Choice returns the selected file, or "" if the user quit.
func (p Picker) Choice() string {
	return p.choice
}

func (p Picker) Init() tea.Cmd {
	return nil
}

func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			p.quitting = true
			return p, tea.Quit

		case "j", "down":
			if p.cursor < len(p.files)-1 {
				p.cursor++
			}

		case "k", "up":
			if p.cursor > 0 {
				p.cursor--
			}

		case "enter", " ":
			p.choice = p.files[p.cursor]
			p.quitting = true
			return p, tea.Quit
		}
	}
	return p, nil
}

func (p Picker) View() string {
	if p.quitting {
		return ""
	}

	var out strings.Builder
	out.WriteString(titleStyle.Render("Select a MIDI file"))
	out.WriteString("\n\n")

	for i, f := range p.files {
		name := filepath.Base(f)
		if i == p.cursor {
			out.WriteString(selectedStyle.Render(fmt.Sprintf("▸ %s", name)))
		} else {
			out.WriteString(fmt.Sprintf("  %s", name))
		}
		out.WriteString("\n")
	}

	out.WriteString("\n")
	out.WriteString(dimStyle.Render("j/k move · enter select · q quit"))
	out.WriteString("\n")
	return out.String()
}

// PickFile lists the MIDI files in dir and runs the picker over them.
func PickFile(dir string) (string, error) {
	var files []string
	for _, pattern := range []string{"*.mid", "*.midi"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return "", errors.Wrapf(err, "list midi files in %s", dir)
		}
		files = append(files, matches...)
	}
	if len(files) == 0 {
		return "", errors.Errorf("no .mid files found in %s", dir)
	}
	sort.Strings(files)

	final, err := tea.NewProgram(NewPicker(files)).Run()
	if err != nil {
		return "", errors.Wrap(err, "file picker")
	}

	choice := final.(Picker).Choice()
	if choice == "" {
		return "", errors.New("no file selected")
	}
	return choice, nil
}
