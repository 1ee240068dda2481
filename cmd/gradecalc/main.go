package main

import (
	"context"
	"fmt"
	"os"

	"github.com/epeers/gradecalc/config"
	"github.com/epeers/gradecalc/internal/cli"
	log "github.com/sirupsen/logrus"
)

func main() {
	os.Exit(run())
}

func run() int {
	appCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	log.SetLevel(appCfg.LogLevel)

	cfg, err := cli.ParseArgs(os.Args[1:], cli.Limits{
		MaxSubjects:  appCfg.MaxSubjects,
		MaxSemesters: appCfg.MaxSemesters,
	}, os.Stderr)
	if err != nil {
		return 2
	}
	// Help requested
	if cfg == nil {
		return 0
	}
	if cfg.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	outcome, err := cli.Run(context.Background(), *cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := cli.PrintOutcome(os.Stdout, outcome, cfg.JSON); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if !outcome.OK {
		return 1
	}
	return 0
}
