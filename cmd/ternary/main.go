// Command ternary analyses ternary scale words from the command line and
// serves the same analyses over HTTP.
//
//	ternary word LmLsLmLsL
//	ternary sig 5 2 2 --mode mos_substitution --complexity 2
//	ternary necklaces 5 2 2 --limit 20
//	ternary qp LLsmsLmsLsLmsLsmLsLsmLsms
//	ternary batch scales.txt --workers 8
//	ternary serve --config ternary.yaml
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// version is stamped at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "ternary:", err)
		os.Exit(1)
	}
}
