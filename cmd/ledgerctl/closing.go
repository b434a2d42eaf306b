package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/SscSPs/tt99_ledger/internal/core/domain"
	"github.com/google/subcommands"
)

type closeYearCmd struct {
	env   *env
	label string
	date  string
}

func (*closeYearCmd) Name() string     { return "close-year" }
func (*closeYearCmd) Synopsis() string { return "post the year-end closing entries" }
func (*closeYearCmd) Usage() string {
	return `close-year -label <label> -date <YYYY-MM-DD>

  Moves revenue and expense balances of the period covering -date into
  retained earnings. The closing vouchers are KC-DOANH-THU-<label> and
  KC-CHI-PHI-<label>. Running it again posts only what is still open.
`
}

func (c *closeYearCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.label, "label", "", "Closing label appended to the voucher numbers, e.g. FY2025 (required)")
	f.StringVar(&c.date, "date", "", "Closing date, usually the last day of the period (required)")
}

func (c *closeYearCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.label == "" || c.date == "" {
		fmt.Fprintln(c.env.errOut, "Error: -label and -date are required.")
		return subcommands.ExitUsageError
	}
	closingDate, err := domain.ParseDate(c.date)
	if err != nil {
		c.env.fail("Invalid -date", err)
		return subcommands.ExitUsageError
	}

	svc, closeFn, err := c.env.open(ctx)
	if err != nil {
		c.env.fail("Cannot open ledger", err)
		return subcommands.ExitFailure
	}
	defer closeFn()

	entries, err := svc.Closing.CloseFiscalYear(ctx, c.label, closingDate, *actor)
	if err != nil {
		c.env.fail("Cannot close "+c.label, err)
		return subcommands.ExitFailure
	}
	if len(entries) == 0 {
		fmt.Fprintln(c.env.out, "Nothing to close.")
		return subcommands.ExitSuccess
	}
	writeClosingEntries(c.env.out, entries)
	return subcommands.ExitSuccess
}

func writeClosingEntries(w io.Writer, entries []*domain.JournalEntry) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ENTRY\tVOUCHER\tACCOUNT\tDEBIT\tCREDIT")
	for _, e := range entries {
		for _, l := range e.Lines() {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", e.EntryID, e.VoucherNumber, l.AccountNumber,
				l.Debit.StringFixed(2), l.Credit.StringFixed(2))
		}
	}
	tw.Flush()
}
