package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Tiny filesystem fixtures: enough to observe a spawning tool's working
// directory and cleanup behavior without depending on platform coreutils.

// catCmd represents the cat command
var catCmd = &cobra.Command{
	Use:   "cat <file>",
	Short: "Print a file's contents to stdout",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fatal(fmt.Errorf("reading file: %w", err))
		}
		fmt.Printf("%s", data)
	},
}

// rmCmd represents the rm command
var rmCmd = &cobra.Command{
	Use:   "rm <path>",
	Short: "Remove a path and everything below it",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := os.RemoveAll(args[0]); err != nil {
			fatal(fmt.Errorf("removing path: %w", err))
		}
	},
}

// tempdirCmd represents the tempdir command
var tempdirCmd = &cobra.Command{
	Use:   "tempdir",
	Short: "Create a temporary directory and print its path",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		dir, err := os.MkdirTemp("", "sigprobe-tmpdir")
		if err != nil {
			fatal(fmt.Errorf("creating temp dir: %w", err))
		}
		fmt.Print(dir)
	},
}

func init() {
	rootCmd.AddCommand(catCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(tempdirCmd)
}
