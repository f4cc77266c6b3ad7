// Data client — fetches /api/data from the mini server and stores it.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/example/snippet-lab/go/pkg/config"
	"github.com/example/snippet-lab/go/pkg/dataclient"
	"github.com/example/snippet-lab/go/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer logger.Sync()

	container := dataclient.NewContainer()
	fmt.Printf("dataContainer before: %+v\n", container.Snapshot())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client := dataclient.New(logger)
	if err := dataclient.LoadInto(ctx, client, cfg.DataURL(), container.Write); err != nil {
		logger.Sync()
		os.Exit(1)
	}
	fmt.Printf("dataContainer after: %+v\n", container.Snapshot())
}
