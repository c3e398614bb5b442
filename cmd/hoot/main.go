// Command hoot runs the HOOT planner against a registered environment
// and writes the resulting trajectory, and a Prometheus snapshot, to a
// per-environment/per-algorithm output directory.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	// Registers the built-in environments with the simulate package.
	_ "github.com/arboscape/hoot/envs"
)

var (
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "hoot",
		Short: "Run the HOOT planner against a registered environment",
	}
	root.AddCommand(newRunCommand())
	root.AddCommand(newAlgorithmsCommand())
	root.AddCommand(newVersionCommand())
	return root
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}
