// Command fetch interactively prompts for a company ticker and a fiscal year,
// fetches the company's statement records from the disclosure server and
// prints the account-payables report for the matching year.
//
// Exit status is 1 for a missing API key or invalid input, and 0 otherwise;
// "no matching record" is an expected outcome, not an application error.
package main

import (
    "bufio"
    "context"
    "errors"
    "flag"
    "fmt"
    "io"
    "log"
    "net/http"
    "os"
    "strconv"
    "strings"
    "time"

    "payablesfetcher/internal/config"
    "payablesfetcher/internal/disclosure"
    "payablesfetcher/internal/httpx"
    "payablesfetcher/internal/payables"
    "payablesfetcher/internal/report"
)

var banner = strings.Repeat("=", 70)

func main() {
    var configPath string
    flag.StringVar(&configPath, "config", os.Getenv("CONFIG_FILE"), "path to config.json (optional)")
    flag.Parse()

    // Everything goes to stdout: the report and the diagnostics around it.
    logger := log.New(os.Stdout, "", 0)

    cfg, err := config.Load(configPath)
    if err != nil {
        logger.Printf("config: %v", err)
        os.Exit(1)
    }
    if cfg.API.APIKey == "" {
        logger.Println("Error: API key not set.")
        logger.Println("Set PAYABLES_API_KEY in the environment (or .env), or api.api_key in config.json.")
        os.Exit(1)
    }

    fmt.Println()
    fmt.Println(banner)
    fmt.Println("COMPANY ACCOUNT PAYABLES FETCHER")
    fmt.Println(banner)

    in := bufio.NewReader(os.Stdin)

    ticker := strings.ToUpper(prompt(in, "Enter company ticker (e.g., RELIANCE.NS): "))
    if ticker == "" {
        logger.Println("Error: Ticker cannot be empty")
        os.Exit(1)
    }

    year, err := strconv.Atoi(prompt(in, "Enter the year (e.g., 2025): "))
    if err != nil {
        logger.Println("Error: Year must be a valid integer")
        os.Exit(1)
    }

    req := payables.Request{Ticker: ticker, FiscalYear: year, APIKey: cfg.API.APIKey}
    if err := req.Validate(); err != nil {
        logger.Printf("Error: %v", err)
        os.Exit(1)
    }

    hc := httpx.New(time.Duration(cfg.API.TimeoutSec) * time.Second)
    client, err := disclosure.NewAPIClient(
        req.APIKey,
        disclosure.WithBaseURL(cfg.API.Endpoint),
        disclosure.WithHTTPClient(hc),
    )
    if err != nil {
        logger.Printf("client: %v", err)
        os.Exit(1)
    }

    ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.API.TimeoutSec)*time.Second)
    defer cancel()

    summary := fetchAndDisplay(ctx, client, logger, os.Stdout, req)
    if summary != nil {
        amount := "n/a"
        if summary.HasAmount {
            amount = report.Comma(summary.AccountPayables)
        }
        fmt.Printf("✓ Successfully retrieved Account Payables: %s\n", amount)
    } else {
        fmt.Printf("✗ Failed to retrieve data for %s in year %d\n", req.Ticker, req.FiscalYear)
    }
}

// fetchAndDisplay runs the fetch -> select -> present pipeline and returns the
// selected summary, or nil when any stage ends in "no data". Each failure is
// logged once with its category and then collapses into the absent result.
func fetchAndDisplay(ctx context.Context, client *disclosure.APIClient, logger *log.Logger, out io.Writer, req payables.Request) *payables.Summary {
    logger.Printf("Fetching data for %s...", req.Ticker)

    envelope, err := client.CompanyStatements(ctx, req.Ticker)
    if err != nil {
        var fe *disclosure.FetchError
        if errors.As(err, &fe) {
            switch fe.Kind {
            case disclosure.KindTimeout:
                logger.Printf("Request timed out while fetching data for %s", req.Ticker)
            case disclosure.KindConnection:
                logger.Printf("Connection error while fetching data for %s", req.Ticker)
            case disclosure.KindHTTPStatus:
                logger.Printf("HTTP Error: %d - %s", fe.StatusCode, http.StatusText(fe.StatusCode))
            case disclosure.KindParse:
                logger.Println("Error: Could not parse API response as JSON")
            case disclosure.KindAPIStatus:
                logger.Printf("API Error: %s", fe.Status)
            default:
                logger.Printf("Unexpected error: %v", err)
            }
        } else {
            logger.Printf("Unexpected error: %v", err)
        }
        report.Write(out, nil)
        return nil
    }

    records, err := envelope.Records()
    if err != nil {
        logger.Println("Error: Expected data to be a list of records")
        report.Write(out, nil)
        return nil
    }

    summary, ok := payables.Select(records, req.FiscalYear)
    if !ok {
        logger.Printf("No data found for year %d", req.FiscalYear)
        report.Write(out, nil)
        return nil
    }

    report.Write(out, summary)
    return summary
}

func prompt(in *bufio.Reader, msg string) string {
    fmt.Print(msg)
    line, _ := in.ReadString('\n')
    return strings.TrimSpace(line)
}
