package cli

import (
	"bufio"
	"os"

	"github.com/spf13/cobra"
)

// promptCmd represents the prompt command
var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Ask for confirmation on stdin and echo the answer",
	Long: `Prompt writes a question, reads a single line from stdin, and echoes
it back. Harnesses use it to verify stdin wiring of spawned children.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		_, _ = os.Stdout.WriteString("are you sure?\nprompt: ")
		r := bufio.NewReader(os.Stdin)
		text, _ := r.ReadString('\n')
		_, _ = os.Stdout.WriteString("\nyou entered: " + text)
	},
}

func init() {
	rootCmd.AddCommand(promptCmd)
}
