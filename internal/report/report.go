// Package report renders a payables summary as a fixed-width bordered report.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"payablesfetcher/internal/payables"
)

const width = 70

var (
	banner  = strings.Repeat("=", width)
	divider = strings.Repeat("-", width)
)

// Write renders the summary to w. A nil summary produces a one-line notice.
// Output depends only on the summary contents, so identical inputs always
// render byte-identical reports.
func Write(w io.Writer, s *payables.Summary) {
	if s == nil {
		fmt.Fprintln(w, "No data to display")
		return
	}
	amount := "n/a"
	if s.HasAmount {
		amount = Comma(s.AccountPayables)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w, "ACCOUNT PAYABLES INFORMATION")
	fmt.Fprintln(w, banner)
	fmt.Fprintf(w, "%-20s %s\n", "Company:", s.CompanyName)
	fmt.Fprintf(w, "%-20s %s\n", "Ticker:", s.Ticker)
	fmt.Fprintf(w, "%-20s %d\n", "Year:", s.FiscalYear)
	fmt.Fprintf(w, "%-20s %s\n", "Period:", s.Period)
	fmt.Fprintf(w, "%-20s %s\n", "Filing Date:", s.FilingDate)
	fmt.Fprintf(w, "%-20s %s\n", "Currency:", s.Currency)
	fmt.Fprintln(w, divider)
	fmt.Fprintf(w, "%-20s %s %s\n", "Account Payables:", amount, s.Currency)
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w)
}

// Comma formats the amount with thousands separators on the integer part,
// keeping any fractional digits as reported.
func Comma(d decimal.Decimal) string {
	abs := d.Abs()
	out := humanize.BigComma(abs.BigInt())
	if parts := strings.SplitN(abs.String(), ".", 2); len(parts) == 2 {
		out += "." + parts[1]
	}
	if d.IsNegative() {
		out = "-" + out
	}
	return out
}
