// Package payables holds the domain model: the validated fetch request and
// the fixed projection of one yearly statement record.
package payables

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Fiscal years outside this window are rejected before any network call.
const (
	MinFiscalYear = 1900
	MaxFiscalYear = 2100
)

// ErrInvalidArgument tags every pre-flight validation failure.
var ErrInvalidArgument = errors.New("invalid argument")

// Request carries the validated inputs for one fetch. It is built fresh per
// invocation and never persisted.
type Request struct {
	Ticker     string
	FiscalYear int
	APIKey     string
}

// Validate checks the request shape without side effects. The boundary years
// MinFiscalYear and MaxFiscalYear are both valid.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Ticker) == "" {
		return fmt.Errorf("%w: ticker must be a non-empty string", ErrInvalidArgument)
	}
	if r.FiscalYear < MinFiscalYear || r.FiscalYear > MaxFiscalYear {
		return fmt.Errorf("%w: year must be a valid integer between %d and %d",
			ErrInvalidArgument, MinFiscalYear, MaxFiscalYear)
	}
	if strings.TrimSpace(r.APIKey) == "" {
		return fmt.Errorf("%w: API key must be a non-empty string", ErrInvalidArgument)
	}
	return nil
}

// Summary is the fixed projection of one statement record. Fields absent from
// the upstream record stay at their zero value; HasAmount distinguishes a
// missing accountPayables from a genuine zero balance.
type Summary struct {
	Ticker          string
	CompanyName     string
	FiscalYear      int
	Period          string
	FilingDate      string
	AcceptedDate    string
	AccountPayables decimal.Decimal
	HasAmount       bool
	Currency        string
}

// Select scans records in order and returns the projection of the first one
// whose calendarYear equals year exactly. Integer equality only: a float or
// string year field never matches. First match wins when the upstream carries
// duplicate years.
func Select(records []map[string]any, year int) (*Summary, bool) {
	for _, record := range records {
		if !yearMatches(record["calendarYear"], year) {
			continue
		}
		s := &Summary{
			Ticker:       stringField(record, "symbol"),
			CompanyName:  stringField(record, "company_name"),
			FiscalYear:   year,
			Period:       stringField(record, "period"),
			FilingDate:   stringField(record, "fillingDate"),
			AcceptedDate: stringField(record, "acceptedDate"),
			Currency:     stringField(record, "reportedCurrency"),
		}
		s.AccountPayables, s.HasAmount = amountField(record, "accountPayables")
		return s, true
	}
	return nil, false
}

func yearMatches(v any, year int) bool {
	n, ok := v.(json.Number)
	if !ok {
		return false
	}
	i, err := n.Int64()
	if err != nil {
		return false
	}
	return i == int64(year)
}

func stringField(record map[string]any, key string) string {
	if s, ok := record[key].(string); ok {
		return s
	}
	return ""
}

func amountField(record map[string]any, key string) (decimal.Decimal, bool) {
	n, ok := record[key].(json.Number)
	if !ok {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}
