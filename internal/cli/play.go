package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/bracket/pkg/observability"
)

// Play view styles
var (
	playHelpStyle  = lipgloss.NewStyle().Foreground(colorDim)
	playEventStyle = lipgloss.NewStyle().Foreground(colorGreen)
	playErrorStyle = lipgloss.NewStyle().Foreground(colorRed)
)

// playCommand creates the play command, an interactive step-through of a
// tournament.
func (c *CLI) playCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "play [file.toml]",
		Short: "Play a tournament one round at a time",
		Args:  cobra.ExactArgs(1),

		ValidArgsFunction: completeDefinition,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := loadBracket(args[0])
			if err != nil {
				return err
			}
			// Log lines would tear the full-screen view.
			observability.SetBracketHooks(observability.NoopBracketHooks{})

			final, err := tea.NewProgram(newPlayModel(b), tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return err
			}
			if m, ok := final.(playModel); ok && m.err != nil {
				return m.err
			}
			return nil
		},
	}
}

// =============================================================================
// playModel - Interactive round-by-round solving
// =============================================================================

// playModel is the bubbletea model for stepping through a bracket.
type playModel struct {
	b      bracket
	events []string
	err    error
}

// maxEvents bounds the event log shown under the tree.
const maxEvents = 5

func newPlayModel(b bracket) playModel {
	return playModel{b: b}
}

func (m playModel) Init() tea.Cmd {
	return nil
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case " ", "enter", "n":
		if m.err != nil {
			return m, nil
		}
		label, stepped, err := m.b.Step()
		if err != nil {
			m.err = err
			return m, nil
		}
		if stepped {
			m.events = appendEvent(m.events, label)
		}
	case "a":
		if m.err != nil {
			return m, nil
		}
		before := m.b.Complete()
		if err := m.b.Solve(); err != nil {
			m.err = err
			return m, nil
		}
		m.events = appendEvent(m.events, fmt.Sprintf("Solved %d remaining rounds", m.b.Complete()-before))
	}
	return m, nil
}

func appendEvent(events []string, e string) []string {
	events = append(events, e)
	if len(events) > maxEvents {
		events = events[len(events)-maxEvents:]
	}
	return events
}

func (m playModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.b.Title()))
	b.WriteString("\n")
	b.WriteString(playHelpStyle.Render("space/enter: next round  a: solve all  q: quit"))
	b.WriteString("\n\n")

	tree, err := m.b.Tree()
	if err != nil {
		b.WriteString(playErrorStyle.Render(err.Error()))
	} else {
		b.WriteString(tree)
	}
	b.WriteString("\n\n")

	for _, e := range m.events {
		b.WriteString(playEventStyle.Render(iconSuccess+" "+e) + "\n")
	}
	if m.err != nil {
		b.WriteString(playErrorStyle.Render(iconError+" "+m.err.Error()) + "\n")
	}

	b.WriteString(playHelpStyle.Render(fmt.Sprintf("  [%d/%d rounds]", m.b.Complete(), m.b.Rounds())))
	if champion, ok, _ := m.b.Champion(); ok {
		b.WriteString("  " + StyleSuccess.Render("Champion: "+champion))
	}
	b.WriteString("\n")
	return b.String()
}
