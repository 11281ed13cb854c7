// Command watchlist converts a free-form watchlist export into an
// Exchange,Ticker table.
//
// Usage:
//
//	watchlist [-config FILE] [-format auto|csv|xlsx] [-metrics-textfile FILE] <input> <output>
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"watchlistcli/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := app.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
