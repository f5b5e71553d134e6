package cli

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

// hangCmd represents the hang command
var hangCmd = &cobra.Command{
	Use:   "hang",
	Short: "Hang forever, echoing every catchable signal",
	Long: `Hang subscribes to every catchable signal, prints "ready", and then
prints each received signal's OS description forever. Unlike wait it has
no closed name table, so reports vary by platform ("interrupt",
"urgent I/O condition", ...). Useful to validate forced-kill behavior.`,
	Args: cobra.NoArgs,
	Run:  runHang,
}

func init() {
	rootCmd.AddCommand(hangCmd)
}

func runHang(cmd *cobra.Command, args []string) {
	signals := make(chan os.Signal, 10)
	signal.Notify(signals)

	fmt.Println("ready")

	for s := range signals {
		fmt.Println(s)
	}
}
