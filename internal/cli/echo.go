package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// echoCmd represents the echo command
var echoCmd = &cobra.Command{
	Use:   "echo [args...]",
	Short: "Print the arguments joined by single spaces",
	Args:  cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		echoLine(os.Stdout, args)
	},
}

func init() {
	rootCmd.AddCommand(echoCmd)
}

func echoLine(w io.Writer, args []string) {
	fmt.Fprintln(w, strings.Join(args, " "))
}
