// internal/cli/list_commands.go
package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// listCmd represents the 'list' command group.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Group commands for listing resources",
}

// commandsCmd implements 'list commands', which prints the command tree in two columns.
var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List all commands and subcommands in two columns",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeCommandList(cmd.OutOrStdout(), collectCommandData(rootCmd, "", ""))
	},
}

func init() {
	listCmd.AddCommand(commandsCmd)
	rootCmd.AddCommand(listCmd)
}

// commandInfo holds the path and description of a command for display.
type commandInfo struct {
	path        string
	description string
}

// collectCommandData walks the command tree and returns a flattened,
// indented list of path/description pairs. Shell completion and help
// commands are left out.
func collectCommandData(cmd *cobra.Command, currentPath string, indent string) []commandInfo {
	if cmd.Name() == "completion" || cmd.Name() == "help" {
		return nil
	}

	fullPath := cmd.Name()
	if currentPath != "" {
		fullPath = currentPath + " " + cmd.Name()
	}

	allData := []commandInfo{{path: indent + fullPath, description: cmd.Short}}
	for _, subCmd := range cmd.Commands() {
		allData = append(allData, collectCommandData(subCmd, fullPath, indent+"  ")...)
	}
	return allData
}

func writeCommandList(out io.Writer, data []commandInfo) error {
	fmt.Fprintln(out, "Commands and Subcommands:")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, d := range data {
		fmt.Fprintf(w, "  %s\t%s\n", d.path, strings.TrimSpace(d.description))
	}
	return w.Flush()
}
