package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"vas-broker/internal/domain/category"
	"vas-broker/internal/domain/inventory"
	"vas-broker/internal/domain/money"
	"vas-broker/internal/domain/user"
	"vas-broker/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

func runSweep(ctx context.Context, e *env, args []string) error {
	fs := newFlagSet("sweep")
	if err := fs.Parse(args); err != nil {
		return err
	}
	report, err := e.dispatcher.Sweep(ctx)
	if err != nil {
		return err
	}
	return printJSON(report)
}

func runImportPins(ctx context.Context, e *env, args []string) error {
	fs := newFlagSet("import-pins")
	pool := fs.String("pool", "", "PIN pool, e.g. waec (required)")
	file := fs.StringP("file", "f", "", "YAML or JSON list of {code, serial} entries (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *pool == "" || *file == "" {
		return missing(fs, "--pool and --file")
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", *file, err)
	}
	var entries []inventory.Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("failed to parse %s: %w", *file, err)
	}

	report, err := e.inventory.BulkAdd(ctx, *pool, entries)
	if err != nil {
		return err
	}
	return printJSON(report)
}

func runSetPrice(ctx context.Context, e *env, args []string) error {
	fs := newFlagSet("set-price")
	cat := fs.String("category", "", "service category (required)")
	variant := fs.String("variant", "", "PIN pool for pin_order, or an optional category variant")
	amount := fs.String("amount", "", "fee in naira, e.g. 1500 or 1500.50 (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *cat == "" || *amount == "" {
		return missing(fs, "--category and --amount")
	}

	c, err := category.Parse(*cat)
	if err != nil {
		return err
	}
	fee, err := money.Parse(*amount)
	if err != nil {
		return err
	}
	if err := e.inventory.SetPricing(ctx, c, *variant, fee); err != nil {
		return err
	}
	fmt.Printf("%s %s set to %s\n", c, strings.TrimSpace(*variant), fee)
	return nil
}

func runFund(ctx context.Context, e *env, args []string) error {
	fs := newFlagSet("fund")
	userFlag := fs.String("user", "", "user id (required)")
	amount := fs.String("amount", "", "amount in naira (required)")
	reference := fs.String("reference", "", "external payment reference; reusing one is a no-op (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *userFlag == "" || *amount == "" || *reference == "" {
		return missing(fs, "--user, --amount and --reference")
	}

	userID, err := uuid.Parse(*userFlag)
	if err != nil {
		return fmt.Errorf("invalid --user: %w", err)
	}
	a, err := money.Parse(*amount)
	if err != nil {
		return err
	}
	result, err := e.wallet.Fund(ctx, userID, a, *reference)
	if err != nil {
		return err
	}
	if result.Replayed {
		fmt.Fprintln(os.Stderr, "reference already applied, nothing credited")
	}
	fmt.Printf("balance %s\n", result.Entry.BalanceAfter)
	return nil
}

func runAgents(ctx context.Context, e *env, args []string) error {
	if len(args) == 0 || args[0] != "add" {
		fmt.Fprintln(os.Stderr, "usage: brokerctl agents add --name NAME --categories bvn,identity [--max-active N] [--user ID]")
		return errUsage
	}

	fs := newFlagSet("agents add")
	name := fs.String("name", "", "display name (required)")
	cats := fs.StringSlice("categories", nil, "categories the agent serves (required)")
	maxActive := fs.Int("max-active", 3, "concurrent requests the agent may hold")
	userFlag := fs.String("user", "", "existing user id to register as agent; a new id is generated when empty")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}
	if *name == "" || len(*cats) == 0 {
		return missing(fs, "--name and --categories")
	}

	params := commands.RegisterAgentParams{DisplayName: *name, MaxActive: *maxActive}
	for _, s := range *cats {
		c, err := category.Parse(s)
		if err != nil {
			return err
		}
		params.Categories = append(params.Categories, c)
	}
	if *userFlag != "" {
		id, err := uuid.Parse(*userFlag)
		if err != nil {
			return fmt.Errorf("invalid --user: %w", err)
		}
		params.UserID = id
	}

	a, err := e.agents.Register(ctx, params)
	if err != nil {
		return err
	}
	fmt.Println(a.ID())
	return nil
}

func runToken(_ context.Context, e *env, args []string) error {
	fs := newFlagSet("token")
	userFlag := fs.String("user", "", "user id; a new id is generated when empty")
	role := fs.String("role", string(user.RoleCustomer), "customer, agent or admin")
	if err := fs.Parse(args); err != nil {
		return err
	}

	r, err := user.NewRole(*role)
	if err != nil {
		return err
	}
	id := uuid.New()
	if *userFlag != "" {
		if id, err = uuid.Parse(*userFlag); err != nil {
			return fmt.Errorf("invalid --user: %w", err)
		}
	}
	token, err := e.jwt.GenerateToken(id, r)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}

func missing(fs *pflag.FlagSet, what string) error {
	fs.PrintDefaults()
	return fmt.Errorf("%s are required", what)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
