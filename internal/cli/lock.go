package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"
)

var lockTryFlag bool

// lockCmd represents the lock command
var lockCmd = &cobra.Command{
	Use:   "lock <path>",
	Short: "Hold a file lock until interrupted",
	Long: `Lock acquires an exclusive file lock on the given path, prints
"locked", and holds it until the process receives an interrupt or
terminate signal. It then releases the lock, prints "released", and exits
0. With --try the lock is attempted without blocking: if another process
holds it, "busy" is printed and the exit status is 1.

Harnesses use it to exercise lock contention between a tool and its
children, and lock release on graceful shutdown.`,
	Args: cobra.ExactArgs(1),
	Run:  runLock,
}

func init() {
	rootCmd.AddCommand(lockCmd)
	lockCmd.Flags().BoolVar(&lockTryFlag, "try", false, "fail with \"busy\" instead of waiting for the lock")
}

func runLock(cmd *cobra.Command, args []string) {
	lock, busy, err := acquireLock(args[0], lockTryFlag)
	if err != nil {
		fatal(fmt.Errorf("acquiring lock: %w", err))
	}
	if busy {
		fmt.Println("busy")
		os.Exit(1)
	}
	fmt.Println("locked")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	if err := lock.Unlock(); err != nil {
		fatal(fmt.Errorf("releasing lock: %w", err))
	}
	fmt.Println("released")
}

// acquireLock takes the exclusive lock on path. In try mode a held lock is
// reported as busy=true rather than waited on.
func acquireLock(path string, try bool) (lock *flock.Flock, busy bool, err error) {
	lock = flock.New(path)
	if try {
		ok, err := lock.TryLock()
		if err != nil {
			return nil, false, err
		}
		return lock, !ok, nil
	}
	if err := lock.Lock(); err != nil {
		return nil, false, err
	}
	return lock, false, nil
}
