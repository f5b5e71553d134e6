package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// sleepCmd represents the sleep command
var sleepCmd = &cobra.Command{
	Use:   "sleep <duration>",
	Short: "Print \"ready\" and sleep for the given duration",
	Long: `Sleep prints "ready" and then sleeps for a Go duration string
(e.g. "1m", "500ms") before exiting 0. Harnesses use it to exercise
graceful interruption of a quiet child.`,
	Args: cobra.ExactArgs(1),
	Run:  runSleep,
}

func init() {
	rootCmd.AddCommand(sleepCmd)
}

func runSleep(cmd *cobra.Command, args []string) {
	d, err := time.ParseDuration(args[0])
	if err != nil {
		fatal(fmt.Errorf("parsing sleep duration: %w", err))
	}
	fmt.Println("ready")
	time.Sleep(d)
}
