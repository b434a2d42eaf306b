package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/SscSPs/tt99_ledger/internal/core/domain"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type generalLedgerCmd struct {
	env     *env
	start   string
	end     string
	account string
}

func (*generalLedgerCmd) Name() string     { return "general-ledger" }
func (*generalLedgerCmd) Synopsis() string { return "print posted ledger lines for a date range" }
func (*generalLedgerCmd) Usage() string {
	return `general-ledger -start <YYYY-MM-DD> [-end <YYYY-MM-DD>] [-account <number>]

  Prints every posted line dated from start to end, both inclusive, ordered by
  date then entry. -end defaults to today.
`
}

func (c *generalLedgerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "start", "", "First day of the report (required)")
	f.StringVar(&c.end, "end", time.Now().Format(domain.DateLayout), "Last day of the report")
	f.StringVar(&c.account, "account", "", "Restrict the report to one account")
}

func (c *generalLedgerCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	q, err := c.query()
	if err != nil {
		c.env.fail("Invalid arguments", err)
		return subcommands.ExitUsageError
	}

	svc, closeFn, err := c.env.open(ctx)
	if err != nil {
		c.env.fail("Cannot open ledger", err)
		return subcommands.ExitFailure
	}
	defer closeFn()

	rows, err := svc.Reporting.QueryGeneralLedger(ctx, q)
	if err != nil {
		c.env.fail("Cannot build general ledger", err)
		return subcommands.ExitFailure
	}
	writeGeneralLedger(c.env.out, rows)
	return subcommands.ExitSuccess
}

// query turns the inclusive flag range into the report's half-open range.
func (c *generalLedgerCmd) query() (domain.GeneralLedgerQuery, error) {
	if c.start == "" {
		return domain.GeneralLedgerQuery{}, fmt.Errorf("-start is required")
	}
	start, err := domain.ParseDate(c.start)
	if err != nil {
		return domain.GeneralLedgerQuery{}, err
	}
	end, err := domain.ParseDate(c.end)
	if err != nil {
		return domain.GeneralLedgerQuery{}, err
	}
	q := domain.GeneralLedgerQuery{StartDate: start, EndDate: end.AddDate(0, 0, 1)}
	if c.account != "" {
		if err := domain.ValidateAccountNumberFormat(c.account); err != nil {
			return domain.GeneralLedgerQuery{}, err
		}
		acc := c.account
		q.AccountNumber = &acc
	}
	return q, nil
}

func writeGeneralLedger(w io.Writer, rows []domain.GeneralLedgerRow) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "DATE\tVOUCHER\tACCOUNT\tNAME\tDEBIT\tCREDIT\t")
	debit, credit := decimal.Zero, decimal.Zero
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t\n",
			r.TransactionDate.Format(domain.DateLayout), r.VoucherNumber, r.AccountNumber, r.AccountName,
			r.Debit.StringFixed(2), r.Credit.StringFixed(2))
		debit = debit.Add(r.Debit)
		credit = credit.Add(r.Credit)
	}
	fmt.Fprintf(tw, "\t\t\tTOTAL\t%s\t%s\t\n", debit.StringFixed(2), credit.StringFixed(2))
	tw.Flush()
}
