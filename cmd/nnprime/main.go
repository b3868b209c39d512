// Command nnprime checks numbers for primality, finds next likely primes and exposes the underlying natural number
// primitives from the command line.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// cobra prints the error and usage, so we only need a non-zero exit status
	if newRootCmd().ExecuteContext(ctx) != nil {
		os.Exit(1)
	}
}
