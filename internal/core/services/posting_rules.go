package services

import (
	"fmt"
	"strings"

	"github.com/SscSPs/tt99_ledger/internal/core/domain"
)

// RulePolicy says what a violated posting rule does to the posting.
type RulePolicy string

const (
	// PolicyBlocking rejects the entry with domain.ErrRuleViolation.
	PolicyBlocking RulePolicy = "blocking"
	// PolicyAdvisory logs a warning and lets the entry through.
	PolicyAdvisory RulePolicy = "advisory"
)

// ParseRulePolicy parses a configured policy name.
func ParseRulePolicy(s string) (RulePolicy, error) {
	switch RulePolicy(strings.ToLower(strings.TrimSpace(s))) {
	case PolicyBlocking:
		return PolicyBlocking, nil
	case PolicyAdvisory, "":
		return PolicyAdvisory, nil
	}
	return "", fmt.Errorf("unknown posting rule policy %q", s)
}

// PostingRule is a business constraint checked after the balance and account checks.
type PostingRule interface {
	Name() string
	Policy() RulePolicy
	// Evaluate returns a non-empty reason when entry breaks the rule.
	Evaluate(entry *domain.JournalEntry) string
}

// EquityDebitRule flags direct debits to owner's equity accounts, which
// normally go through a capital withdrawal workflow instead.
type EquityDebitRule struct {
	accounts []string
	policy   RulePolicy
}

// NewEquityDebitRule watches the given account numbers and their sub-accounts.
func NewEquityDebitRule(policy RulePolicy, accounts ...string) *EquityDebitRule {
	if len(accounts) == 0 {
		accounts = []string{"411"}
	}
	return &EquityDebitRule{accounts: accounts, policy: policy}
}

func (r *EquityDebitRule) Name() string       { return "equity_direct_debit" }
func (r *EquityDebitRule) Policy() RulePolicy { return r.policy }

func (r *EquityDebitRule) Evaluate(entry *domain.JournalEntry) string {
	for _, l := range entry.Lines() {
		if !l.IsDebit() {
			continue
		}
		for _, acc := range r.accounts {
			if strings.HasPrefix(l.AccountNumber, acc) {
				return fmt.Sprintf("direct debit of %s to equity account %s", l.Debit.String(), l.AccountNumber)
			}
		}
	}
	return ""
}
