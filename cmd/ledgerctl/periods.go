package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/SscSPs/tt99_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/tt99_ledger/internal/core/ports/services"
	"github.com/google/subcommands"
)

type createPeriodCmd struct {
	env   *env
	name  string
	start string
	end   string
}

func (*createPeriodCmd) Name() string     { return "create-period" }
func (*createPeriodCmd) Synopsis() string { return "create an open accounting period" }
func (*createPeriodCmd) Usage() string {
	return `create-period -name <name> -start <YYYY-MM-DD> -end <YYYY-MM-DD>

  Creates an unlocked period covering start to end inclusive. The range may not
  overlap an existing period.
`
}

func (c *createPeriodCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Period name, e.g. FY2025 (required)")
	f.StringVar(&c.start, "start", "", "First day of the period (required)")
	f.StringVar(&c.end, "end", "", "Last day of the period (required)")
}

func (c *createPeriodCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.start == "" || c.end == "" {
		fmt.Fprintln(c.env.errOut, "Error: -name, -start and -end are required.")
		return subcommands.ExitUsageError
	}
	start, err := domain.ParseDate(c.start)
	if err != nil {
		c.env.fail("Invalid -start", err)
		return subcommands.ExitUsageError
	}
	end, err := domain.ParseDate(c.end)
	if err != nil {
		c.env.fail("Invalid -end", err)
		return subcommands.ExitUsageError
	}

	svc, closeFn, err := c.env.open(ctx)
	if err != nil {
		c.env.fail("Cannot open ledger", err)
		return subcommands.ExitFailure
	}
	defer closeFn()

	period, err := svc.Period.CreateAccountingPeriod(ctx, c.name, start, end, *actor)
	if err != nil {
		c.env.fail("Cannot create period", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(c.env.out, period.PeriodID)
	return subcommands.ExitSuccess
}

// periodLockCmd is shared by lock-period and unlock-period.
type periodLockCmd struct {
	env *env
}

func (*periodLockCmd) SetFlags(*flag.FlagSet) {}

func (c *periodLockCmd) run(ctx context.Context, f *flag.FlagSet, verb string, apply func(portssvc.PeriodSvcFacade, context.Context, string, string) error) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(c.env.errOut, "Error: %s takes exactly one period id.\n", verb)
		return subcommands.ExitUsageError
	}
	periodID := f.Arg(0)

	svc, closeFn, err := c.env.open(ctx)
	if err != nil {
		c.env.fail("Cannot open ledger", err)
		return subcommands.ExitFailure
	}
	defer closeFn()

	if err := apply(svc.Period, ctx, periodID, *actor); err != nil {
		c.env.fail("Cannot "+verb+" period "+periodID, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(c.env.out, "Period %s %sed.\n", periodID, verb)
	return subcommands.ExitSuccess
}

type lockPeriodCmd struct{ periodLockCmd }

func (*lockPeriodCmd) Name() string     { return "lock-period" }
func (*lockPeriodCmd) Synopsis() string { return "close a period to new postings" }
func (*lockPeriodCmd) Usage() string {
	return `lock-period <period-id>
`
}

func (c *lockPeriodCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.run(ctx, f, "lock", portssvc.PeriodSvcFacade.LockPeriod)
}

type unlockPeriodCmd struct{ periodLockCmd }

func (*unlockPeriodCmd) Name() string     { return "unlock-period" }
func (*unlockPeriodCmd) Synopsis() string { return "reopen a locked period" }
func (*unlockPeriodCmd) Usage() string {
	return `unlock-period <period-id>
`
}

func (c *unlockPeriodCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.run(ctx, f, "unlock", portssvc.PeriodSvcFacade.UnlockPeriod)
}

type periodsCmd struct {
	env  *env
	date string
}

func (*periodsCmd) Name() string     { return "periods" }
func (*periodsCmd) Synopsis() string { return "list accounting periods" }
func (*periodsCmd) Usage() string {
	return `periods [-date <YYYY-MM-DD>]

  Lists every period by start date, or only the period covering -date.
`
}

func (c *periodsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", "", "Only show the period covering this date")
}

func (c *periodsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	svc, closeFn, err := c.env.open(ctx)
	if err != nil {
		c.env.fail("Cannot open ledger", err)
		return subcommands.ExitFailure
	}
	defer closeFn()

	var periods []domain.AccountingPeriod
	if c.date != "" {
		d, err := domain.ParseDate(c.date)
		if err != nil {
			c.env.fail("Invalid -date", err)
			return subcommands.ExitUsageError
		}
		p, err := svc.Period.FindPeriodForDate(ctx, d)
		if err != nil {
			c.env.fail("No postable period", err)
			return subcommands.ExitFailure
		}
		periods = []domain.AccountingPeriod{*p}
	} else {
		periods, err = svc.Period.ListAccountingPeriods(ctx)
		if err != nil {
			c.env.fail("Cannot list periods", err)
			return subcommands.ExitFailure
		}
	}

	writePeriods(c.env.out, periods)
	return subcommands.ExitSuccess
}

func writePeriods(w io.Writer, periods []domain.AccountingPeriod) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSTART\tEND\tSTATE")
	for _, p := range periods {
		state := "open"
		if p.IsLocked {
			state = "locked"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.PeriodID, p.Name,
			p.StartDate.Format(domain.DateLayout), p.EndDate.Format(domain.DateLayout), state)
	}
	tw.Flush()
}
