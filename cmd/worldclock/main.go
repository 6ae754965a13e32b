// Command worldclock shows the time in Tokyo, Paris, London, Johannesburg
// and Vancouver, refreshed every second, until its window is closed.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	os.Exit(run())
}

// run executes the command and returns the process exit code.
func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return report(os.Stderr, newRootCmd().ExecuteContext(ctx))
}

// report writes a diagnostic for err to w and returns the exit code for it.
func report(w io.Writer, err error) int {
	if err != nil {
		fmt.Fprintf(w, "worldclock: %v\n", err)
	}
	return exitCode(err)
}
