package main

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"goshell/internal/config"
)

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or initialize goshell's configuration",
	}
	cmd.AddCommand(newConfigInitCommand())
	cmd.AddCommand(newConfigShowCommand())
	return cmd
}

func newConfigInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Interactively create goshell's config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit()
		},
	}
}

// runConfigInit walks the user through the handful of settings goshell
// understands and writes the result to the resolved config file.
func runConfigInit() error {
	cfg := config.Default()
	appendMode := cfg.HistoryAppend

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Prompt string").
				Description("Printed before each line read").
				Value(&cfg.Prompt),
			huh.NewInput().
				Title("History file path").
				Description("Leave blank to use the default under the config directory").
				Value(&cfg.HistoryFile),
			huh.NewConfirm().
				Title("Persist history incrementally after every line?").
				Value(&appendMode),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}
	cfg.HistoryAppend = appendMode

	if err := config.Save(cfg); err != nil {
		return err
	}
	path, _ := config.FilePath()
	fmt.Println(successStyle.Render("wrote " + path))
	return nil
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			histPath, err := cfg.HistoryPath()
			if err != nil {
				return err
			}

			fmt.Println(labelStyle.Render("prompt") + "         " + cfg.Prompt)
			fmt.Println(labelStyle.Render("history file") + "  " + histPath)
			fmt.Println(labelStyle.Render("append mode") + "   " + fmt.Sprint(cfg.HistoryAppend))
			return nil
		},
	}
}

var (
	labelStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)
