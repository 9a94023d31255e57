package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"goshell/internal/config"
	"goshell/internal/history"
)

func newHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect goshell's submitted-line history",
	}
	cmd.AddCommand(newHistorySearchCommand())
	cmd.AddCommand(newHistoryBrowseCommand())
	return cmd
}

func loadCurrentHistory() ([]string, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	path, err := cfg.HistoryPath()
	if err != nil {
		return nil, err
	}
	return history.FromFile(path).All(), nil
}

func newHistorySearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search",
		Short: "Fuzzy-search history and print the selected line",
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := loadCurrentHistory()
			if err != nil {
				return err
			}
			if len(lines) == 0 {
				fmt.Println("(history is empty)")
				return nil
			}
			idx, err := fuzzyfinder.Find(
				lines,
				func(i int) string { return lines[i] },
				fuzzyfinder.WithPromptString("history> "),
			)
			if err != nil {
				if err == fuzzyfinder.ErrAbort {
					return nil
				}
				return err
			}
			fmt.Println(lines[idx])
			return nil
		},
	}
}

func newHistoryBrowseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse history in a full-screen table",
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := loadCurrentHistory()
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(newHistoryModel(lines)).Run()
			return err
		},
	}
}

var historyRowStyle = lipgloss.NewStyle().Padding(0, 1)

type historyModel struct {
	table table.Model
}

func newHistoryModel(lines []string) historyModel {
	rows := make([]table.Row, len(lines))
	for i, l := range lines {
		rows[i] = table.Row{fmt.Sprint(i + 1), l}
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 6},
			{Title: "COMMAND", Width: 60},
		}),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(20),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true).
		Foreground(lipgloss.Color("99"))
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return historyModel{table: t}
}

func (m historyModel) Init() tea.Cmd { return nil }

func (m historyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m historyModel) View() string {
	return historyRowStyle.Render(m.table.View()) + "\n" +
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("  q to quit")
}
