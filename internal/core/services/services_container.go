package services

import (
	portsrepo "github.com/SscSPs/tt99_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tt99_ledger/internal/core/ports/services"
	"github.com/SscSPs/tt99_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// chart may be nil, in which case account existence is checked inside the posting transaction.
// A layered chart such as the Redis cache answers hits itself and misses inside that transaction.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, chart portsrepo.ChartOfAccounts) (*portssvc.ServiceContainer, error) {
	rules, err := PostingRulesFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	journalOpts := []JournalServiceOption{WithPostingRules(rules...)}
	accountOpts := []AccountServiceOption{}
	if chart != nil {
		journalOpts = append(journalOpts, WithChartOfAccounts(chart))
		accountOpts = append(accountOpts, WithAccountLookup(chart))
	}

	journal := NewJournalService(repos.UnitOfWork, repos.JournalRepo, journalOpts...)
	closing := NewClosingService(repos.PeriodRepo, repos.ReportingRepo, journal,
		WithClosingAccounts(cfg.ClosingRevenueAccounts, cfg.ClosingExpenseAccounts, cfg.RetainedEarningsAccount))

	return &portssvc.ServiceContainer{
		Account:   NewAccountService(repos.AccountRepo, accountOpts...),
		Period:    NewPeriodService(repos.PeriodRepo, repos.UnitOfWork),
		Journal:   journal,
		Reporting: NewReportingService(repos.ReportingRepo),
		Closing:   closing,
	}, nil
}

// PostingRulesFromConfig builds the posting rules and their configured policies.
func PostingRulesFromConfig(cfg *config.Config) ([]PostingRule, error) {
	policy, err := ParseRulePolicy(cfg.EquityDebitPolicy)
	if err != nil {
		return nil, err
	}
	return []PostingRule{NewEquityDebitRule(policy, cfg.EquityAccounts...)}, nil
}
