package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

// runOpts holds the command-line flags for the run command.
type runOpts struct {
	jsonPath  string // optional JSON report destination
	standings bool   // print the standings table
}

// runCommand creates the run command, which plays a tournament to the end.
func (c *CLI) runCommand() *cobra.Command {
	opts := runOpts{standings: true}

	cmd := &cobra.Command{
		Use:   "run [file.toml]",
		Short: "Solve a tournament and print its bracket",
		Args:  cobra.ExactArgs(1),

		ValidArgsFunction: completeDefinition,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTournament(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.jsonPath, "json", "", "also write a JSON report to this file")
	cmd.Flags().BoolVar(&opts.standings, "standings", opts.standings, "print the standings table")

	return cmd
}

// runTournament loads, solves and prints the tournament defined at path.
func runTournament(ctx context.Context, path string, opts *runOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Loading %s", path)

	b, err := loadBracket(path)
	if err != nil {
		return err
	}
	logger.Infof("Seeded %d entrants (%s system)", b.Entrants(), b.System())

	prog := newProgress(logger)
	if err := b.Solve(); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Solved %d rounds", b.Rounds()))

	tree, err := b.Tree()
	if err != nil {
		return err
	}
	printNewline()
	fmt.Println(StyleTitle.Render(b.Title()))
	fmt.Println(tree)
	printNewline()

	if opts.standings && b.Rounds() > 0 {
		rows, err := b.Standings()
		if err != nil {
			return err
		}
		fmt.Println(standingsTable(rows))
		printNewline()
	}

	if champion, ok, err := b.Champion(); err != nil {
		return err
	} else if ok {
		printKeyValue("Champion", champion)
	}

	if opts.jsonPath != "" {
		if err := b.ExportJSON(opts.jsonPath); err != nil {
			return err
		}
		printSuccess("Wrote report")
		printFile(opts.jsonPath)
	}

	printNextStep("Draw the bracket", appName+" render "+path)
	return nil
}

// standingsTable renders rounds in play order.
func standingsTable(rows []standing) string {
	data := make([][]string, len(rows))
	for i, r := range rows {
		data[i] = []string{strconv.Itoa(int(r.Node)), stageName(r.Depth), r.Winner, r.Result}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Node", "Stage", "Winner", "Result").
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 2 {
				return lipgloss.NewStyle().Foreground(colorGreen)
			}
			return lipgloss.NewStyle()
		})
	return t.Render()
}

// stageName names a round by its distance from the grand finals.
func stageName(depth int) string {
	switch depth {
	case 0:
		return "Final"
	case 1:
		return "Semifinal"
	case 2:
		return "Quarterfinal"
	default:
		return fmt.Sprintf("Round of %d", 1<<(depth+1))
	}
}
