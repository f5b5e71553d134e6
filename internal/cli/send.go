package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// sendCmd represents the send command
var sendCmd = &cobra.Command{
	Use:   "send <signal> <pid>",
	Short: "Deliver a named signal to a process",
	Long: `Send resolves a signal name like "SIGUSR1" and delivers it to the
given pid. It lets harnesses drive fixtures on platforms without a kill(1)
they control. Unix only.`,
	Args: cobra.ExactArgs(2),
	Run:  runSend,
}

func init() {
	rootCmd.AddCommand(sendCmd)
}

func runSend(cmd *cobra.Command, args []string) {
	pid, err := strconv.Atoi(args[1])
	if err != nil {
		fatal(fmt.Errorf("parsing pid: %w", err))
	}
	if err := sendSignal(args[0], pid); err != nil {
		fatal(fmt.Errorf("sending %s to %d: %w", args[0], pid, err))
	}
}
