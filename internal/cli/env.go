package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gobwas/glob"
	"github.com/spf13/cobra"
)

var envMatchFlag string

// envCmd represents the env command
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Print the process environment",
	Long: `Env prints the environment as NAME=VALUE lines, in process order.
With --match, only variables whose name matches the glob pattern are
printed. Harnesses use it to verify which variables a spawning tool
injects into its children.

Examples:
  # Everything
  sigprobe env

  # Only variables with a given prefix
  sigprobe env --match 'TM_*'
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printEnv(os.Stdout, os.Environ(), envMatchFlag)
	},
}

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().StringVarP(&envMatchFlag, "match", "m", "", "glob pattern filtering variable names")
}

// printEnv writes NAME=VALUE lines from environ, filtered by the optional
// name pattern.
func printEnv(w io.Writer, environ []string, pattern string) error {
	var matcher glob.Glob
	if pattern != "" {
		var err error
		matcher, err = glob.Compile(pattern)
		if err != nil {
			return fmt.Errorf("compiling pattern %q: %w", pattern, err)
		}
	}

	for _, kv := range environ {
		if matcher != nil {
			name, _, _ := strings.Cut(kv, "=")
			if !matcher.Match(name) {
				continue
			}
		}
		fmt.Fprintln(w, kv)
	}
	return nil
}
