package cli

import (
	"os"

	"github.com/probekit/sigprobe/internal/sigwait"
	"github.com/spf13/cobra"
)

// waitCmd represents the wait command
var waitCmd = &cobra.Command{
	Use:   "wait",
	Short: "Report every delivered signal by name, forever",
	Long: `Wait takes the interrupt signal (and the other named termination and
user signals) away from its default disposition, prints "ready", and then
prints one line per delivered signal until killed.

Report names come from a closed table (interrupt, SIGHUP, SIGTERM,
SIGQUIT, SIGUSR1, SIGUSR2); any other delivered signal reports as
"(unnamed)". The process never exits on its own: end it with an
unblockable signal such as SIGKILL.`,
	Args: cobra.NoArgs,
	Run:  runWait,
}

func init() {
	rootCmd.AddCommand(waitCmd)
}

func runWait(cmd *cobra.Command, args []string) {
	w := sigwait.New(sigwait.NewSource(), os.Stdout)
	if err := w.Watch(sigwait.Default()...); err != nil {
		fatal(err)
	}
	// Wait only returns on a fatal retrieval failure.
	fatal(w.Wait())
}
