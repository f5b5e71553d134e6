package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

// exitCmd represents the exit command
var exitCmd = &cobra.Command{
	Use:   "exit <code>",
	Short: "Exit immediately with the given status code",
	Args:  cobra.ExactArgs(1),
	Run:   runExit,
}

func init() {
	rootCmd.AddCommand(exitCmd)
}

func runExit(cmd *cobra.Command, args []string) {
	code, err := strconv.Atoi(args[0])
	if err != nil {
		fatal(fmt.Errorf("parsing exit code: %w", err))
	}
	os.Exit(code)
}
