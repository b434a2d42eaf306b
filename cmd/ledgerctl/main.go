// Command ledgerctl runs ledger operations directly against PostgreSQL.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path"

	"github.com/google/subcommands"
)

var actor = flag.String("user", "ledgerctl", "User id recorded in audit fields")

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	register(commander, newPostgresEnv())

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// register adds every ledgerctl subcommand, bound to e.
func register(c *subcommands.Commander, e *env) {
	c.Register(&migrateCmd{env: e}, "database")
	c.Register(&seedChartCmd{env: e}, "database")

	c.Register(&createPeriodCmd{env: e}, "periods")
	c.Register(&lockPeriodCmd{periodLockCmd{env: e}}, "periods")
	c.Register(&unlockPeriodCmd{periodLockCmd{env: e}}, "periods")
	c.Register(&periodsCmd{env: e}, "periods")

	c.Register(&closeYearCmd{env: e}, "periods")

	c.Register(&generalLedgerCmd{env: e}, "reports")
}
