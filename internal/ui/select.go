package ui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// Select presents a vertical list of options and returns the index of the
// chosen one. The index is returned rather than the label because labels are
// not guaranteed unique. Esc or Ctrl+C cancels.
func Select(title string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, fmt.Errorf("no options to select from")
	}

	m := selectModel{
		title:   title,
		options: options,
	}

	// Use Stderr to avoid polluting stdout
	p := tea.NewProgram(m, tea.WithOutput(os.Stderr))
	finalModel, err := p.Run()
	if err != nil {
		return 0, err
	}

	if m, ok := finalModel.(selectModel); ok && m.complete {
		return m.cursor, nil
	}
	return 0, fmt.Errorf("cancelled")
}

type selectModel struct {
	title    string
	options  []string
	cursor   int
	complete bool
	quitting bool
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.options)-1 {
				m.cursor++
			}
		case "enter":
			m.complete = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m selectModel) View() string {
	if m.complete {
		return ""
	}
	if m.quitting {
		return quitTextStyle.Render("Cancelled.")
	}

	s := "\n" + titleStyle.Render(m.title) + "\n\n"
	for i, option := range m.options {
		if i == m.cursor {
			s += selectedStyle.Render("> "+option) + "\n"
		} else {
			s += itemStyle.Render(option) + "\n"
		}
	}
	s += "\n" + helpStyle.Render("↑/↓ to move • enter to confirm • esc to cancel") + "\n"
	return s
}
