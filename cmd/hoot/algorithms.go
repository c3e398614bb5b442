package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var algorithmNames = []string{"hoot", "ld_hoot", "poly_hoot", "t_hoot"}

func newAlgorithmsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the available bandit variants",
		RunE: func(cmd *cobra.Command, args []string) error {
			style := lipgloss.NewStyle().Bold(true)
			for _, name := range algorithmNames {
				fmt.Fprintln(cmd.OutOrStdout(), style.Render(name))
			}
			return nil
		},
	}
}
