// Package cli wires the fixture commands into the sigprobe command tree.
//
// Every fixture keeps stdout machine-readable (line-oriented report
// protocol polled by harnesses) and puts diagnostics on stderr, formatted
// as "<description>: <cause>." with a trailing period.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sigprobe",
	Short: "Subprocess fixtures for end-to-end signal and process testing",
	Long: `Sigprobe bundles small, single-purpose subprocesses that e2e test
harnesses spawn to verify process management behavior: signal delivery,
graceful and forced termination, file locking, filesystem events.

Each fixture reports on stdout with newline-terminated markers (starting
with "ready" where applicable) so a harness can poll for progress.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads configuration from SIGPROBE_* environment variables.
// Fixtures deliberately have no config files: their behavior must be fully
// determined by argv so test runs are reproducible.
func initConfig() {
	viper.SetEnvPrefix("sigprobe")
	viper.AutomaticEnv()
}

// fatal prints a diagnostic in the fixture wire format and exits non-zero.
func fatal(err error) {
	fmt.Fprintf(os.Stderr, "%v.\n", err)
	os.Exit(1)
}
