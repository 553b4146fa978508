// brokerctl runs operator tasks directly against the broker's Postgres store:
// dispatcher sweeps, PIN imports, pricing, wallet funding and agent registration.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vas-broker/internal/pkg/config"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

type command struct {
	name    string
	summary string
	run     func(ctx context.Context, env *env, args []string) error
}

var commandTable = []command{
	{"sweep", "run one dispatcher pass and print the report", runSweep},
	{"import-pins", "import PIN codes for a pool from a YAML or JSON file", runImportPins},
	{"set-price", "set the fee for a category or PIN pool", runSetPrice},
	{"fund", "credit a user's wallet from a payment reference", runFund},
	{"agents", "manage fulfilling agents (add)", runAgents},
	{"token", "mint a bearer token for local testing", runToken},
}

var errUsage = errors.New("usage")

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found")
	}

	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, errUsage) || errors.Is(err, pflag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" {
		printUsage()
		return errUsage
	}

	var cmd *command
	for i := range commandTable {
		if commandTable[i].name == args[0] {
			cmd = &commandTable[i]
			break
		}
	}
	if cmd == nil {
		printUsage()
		return fmt.Errorf("unknown command %q", args[0])
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	e, cleanup, err := newEnv(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	return cmd.run(ctx, e, args[1:])
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "brokerctl: operator tasks for the VAS broker\n\nUsage:\n  brokerctl <command> [flags]\n\nCommands:\n")
	for _, c := range commandTable {
		fmt.Fprintf(os.Stderr, "  %-12s %s\n", c.name, c.summary)
	}
	fmt.Fprintf(os.Stderr, "\nRun \"brokerctl <command> --help\" for the command's flags.\n")
}

func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet("brokerctl "+name, pflag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	return fs
}
