// Package seed ships the Circular 99/2025 (TT99) chart of accounts.
package seed

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/SscSPs/tt99_ledger/internal/apperrors"
	"github.com/SscSPs/tt99_ledger/internal/core/domain"
)

//go:embed chart_tt99.csv
var chartTT99 []byte

var chartHeader = []string{"account_number", "name", "type", "level", "parent_account_number", "is_summary"}

// DefaultChart returns the embedded TT99 chart.
func DefaultChart() ([]domain.Account, error) {
	return LoadChart(bytes.NewReader(chartTT99))
}

// LoadChart parses a chart CSV with the columns
// account_number,name,type,level,parent_account_number,is_summary.
func LoadChart(r io.Reader) ([]domain.Account, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(chartHeader)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: chart file is empty", apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("%w: reading chart header: %v", apperrors.ErrValidation, err)
	}
	for i, col := range chartHeader {
		if strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff")) != col {
			return nil, fmt.Errorf("%w: chart column %d is %q, want %q", apperrors.ErrValidation, i+1, header[i], col)
		}
	}

	var accounts []domain.Account
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		line, _ := reader.FieldPos(0)

		level, err := strconv.Atoi(record[3])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: level %q is not a number", apperrors.ErrValidation, line, record[3])
		}
		isSummary, err := strconv.ParseBool(record[5])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: is_summary %q is not a boolean", apperrors.ErrValidation, line, record[5])
		}
		account, err := domain.NewAccount(record[0], record[1], domain.AccountType(strings.ToUpper(record[2])), level, record[4], isSummary)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		accounts = append(accounts, *account)
	}
	return accounts, nil
}
