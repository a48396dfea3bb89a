package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/google/subcommands"

	"personalfinance/internal/cli"
	"personalfinance/internal/config"
	"personalfinance/internal/logger"
	"personalfinance/internal/server"
)

var storeDriver = flag.String("store", "", "Store driver (sqlite, postgres, dynamodb, memory). Overrides STORE_DRIVER.")

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(int(subcommands.ExitFailure))
	}

	cli.Register(commander, &cli.Env{
		Open: func(ctx context.Context) (*server.Backend, error) {
			if *storeDriver != "" {
				cfg.StoreDriver = *storeDriver
			}
			return server.Open(ctx, cfg, "cli")
		},
		Out:      os.Stdout,
		Err:      os.Stderr,
		Location: cfg.ReportLocation,
	})

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
