package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"

	"gatetrainer/internal/cli"
	"gatetrainer/internal/config"
	"gatetrainer/internal/trainer"
)

func main() {
	flags := cli.RegisterFlags(flag.CommandLine)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [%s]\n", os.Args[0], cli.Usage)
		flag.PrintDefaults()
	}

	flag.Parse()

	cfg := config.Default()
	if *flags.Config != "" {
		loaded, err := config.Load(*flags.Config)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
		cfg = loaded
	}

	overrides, err := flags.Overrides()
	if err != nil {
		exit(err)
	}
	cfg.ApplyOverrides(overrides)

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	runCfg := trainer.RunConfig{
		Gate:       cfg.GateValue(),
		Rate:       cfg.Rate,
		Iterations: cfg.Iterations,
		Debug:      cfg.Debug,
		Seed:       cfg.Seed,
		LogEvery:   cfg.LogEvery,
	}

	if _, err := trainer.Run(runCfg, os.Stdout); err != nil {
		log.Fatalf("training failed: %v", err)
	}
}

func exit(err error) {
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		fmt.Fprintln(os.Stderr, exitErr)
		os.Exit(exitErr.Code)
	}
	log.Fatal(err)
}
