package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch <path>...",
	Short: "Report filesystem events until interrupted",
	Long: `Watch registers the given paths with the OS file notification
facility, prints "ready", and then prints one "<OP> <path>" line per
event (e.g. "WRITE /tmp/x/out.txt") until an interrupt or terminate
signal arrives. Harnesses use it to verify that a tool under test touches
exactly the files it claims to.`,
	Args: cobra.MinimumNArgs(1),
	Run:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		fatal(fmt.Errorf("creating watcher: %w", err))
	}
	defer watcher.Close()

	for _, path := range args {
		if err := watcher.Add(path); err != nil {
			fatal(fmt.Errorf("watching %s: %w", path, err))
		}
	}

	fmt.Println("ready")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			fmt.Println(formatEvent(ev))
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			fatal(fmt.Errorf("watching: %w", err))
		case <-ctx.Done():
			return
		}
	}
}

// formatEvent renders an event as "<OP> <path>"; multi-flag ops keep
// fsnotify's "A|B" form.
func formatEvent(ev fsnotify.Event) string {
	return fmt.Sprintf("%s %s", ev.Op, ev.Name)
}
