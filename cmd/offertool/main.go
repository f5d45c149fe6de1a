package main

import (
	"context"
	"delivery-estimate-service/internal/adapters/offers"
	"delivery-estimate-service/internal/config"
	"delivery-estimate-service/internal/platform/obs"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
)

// offertool checks an offers file and lists what the estimator would accept.
// Exit status is 1 when the file cannot be read and 2 when some offers
// were rejected.
func main() {
	_ = godotenv.Load()

	path := config.Get("OFFERS_PATH", "data/offers.json")
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	logger := obs.NewLogger(os.Stderr, config.Get("LOG_FORMAT", "console"), config.Get("LOG_LEVEL", "warn"))
	ctx, _ := obs.WithRun(context.Background(), logger)

	os.Exit(check(ctx, path, os.Stdout))
}

func check(ctx context.Context, path string, out io.Writer) int {
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(out, "cannot read %s: %v\n", path, err)
		return 1
	}

	catalog, err := offers.LoadFile(ctx, path)
	if err != nil {
		fmt.Fprintf(out, "%v\n", err)
		return 1
	}

	fmt.Fprintf(out, "%d offers accepted from %s\n", catalog.Len(), path)
	for _, o := range catalog.Offers() {
		fmt.Fprintf(out, "  %s\n", o)
	}

	var merr *multierror.Error
	if !errors.As(catalog.Warnings(), &merr) {
		return 0
	}
	fmt.Fprintf(out, "%d offers rejected:\n", len(merr.Errors))
	for _, e := range merr.Errors {
		fmt.Fprintf(out, "  %v\n", e)
	}
	return 2
}
