package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/SscSPs/tt99_ledger/internal/core/domain"
	"github.com/SscSPs/tt99_ledger/internal/seed"
	"github.com/google/subcommands"
)

type migrateCmd struct {
	env *env
}

func (*migrateCmd) Name() string     { return "migrate" }
func (*migrateCmd) Synopsis() string { return "apply the database schema migrations" }
func (*migrateCmd) Usage() string {
	return `migrate

  Applies every pending migration to the database named by PGSQL_URL.
`
}

func (*migrateCmd) SetFlags(*flag.FlagSet) {}

func (c *migrateCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.env.migrate(); err != nil {
		c.env.fail("Migration failed", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(c.env.out, "Migrations applied.")
	return subcommands.ExitSuccess
}

type seedChartCmd struct {
	env  *env
	file string
}

func (*seedChartCmd) Name() string     { return "seed-chart" }
func (*seedChartCmd) Synopsis() string { return "load a chart of accounts" }
func (*seedChartCmd) Usage() string {
	return `seed-chart [-file <chart.csv>]

  Inserts the accounts of a chart that are not stored yet. Without -file the
  built-in TT99 chart is used. The CSV header is:
  account_number,name,type,level,parent_account_number,is_summary
`
}

func (c *seedChartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "CSV chart to load instead of the built-in TT99 chart")
}

func (c *seedChartCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	accounts, err := c.loadChart()
	if err != nil {
		c.env.fail("Cannot read chart", err)
		return subcommands.ExitUsageError
	}

	svc, closeFn, err := c.env.open(ctx)
	if err != nil {
		c.env.fail("Cannot open ledger", err)
		return subcommands.ExitFailure
	}
	defer closeFn()

	inserted, err := svc.Account.SeedChart(ctx, accounts)
	if err != nil {
		c.env.fail("Seeding failed", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(c.env.out, "%d of %d accounts inserted.\n", inserted, len(accounts))
	return subcommands.ExitSuccess
}

func (c *seedChartCmd) loadChart() ([]domain.Account, error) {
	if c.file == "" {
		return seed.DefaultChart()
	}
	f, err := os.Open(c.file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return seed.LoadChart(f)
}
