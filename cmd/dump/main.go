// Command dump fetches the raw statement payload for one ticker and writes it
// unparsed to a file or stdout. It is a debugging aid for inspecting what the
// disclosure server actually returns before the selector projects it.
package main

import (
    "bytes"
    "context"
    "encoding/json"
    "flag"
    "fmt"
    "io"
    "log"
    "net/http"
    "net/url"
    "os"
    "strings"
    "time"

    "payablesfetcher/internal/config"
    "payablesfetcher/internal/httpx"
)

func main() {
    var (
        ticker     string
        outPath    string
        cfgPath    string
        timeoutSec int
        pretty     bool
    )
    flag.StringVar(&ticker, "ticker", "", "company ticker symbol (required)")
    flag.StringVar(&outPath, "out", "", "output file path (default: stdout)")
    flag.StringVar(&cfgPath, "config", "", "path to config.json (optional)")
    flag.IntVar(&timeoutSec, "timeout", 0, "HTTP timeout seconds (default: config value)")
    flag.BoolVar(&pretty, "pretty", true, "indent the payload when it is valid JSON")
    flag.Parse()

    log.SetOutput(os.Stdout)

    ticker = strings.ToUpper(strings.TrimSpace(ticker))
    if ticker == "" {
        log.Fatal("missing -ticker")
    }

    cfg, err := config.Load(cfgPath)
    if err != nil {
        log.Fatalf("config: %v", err)
    }
    if cfg.API.APIKey == "" {
        log.Fatal("PAYABLES_API_KEY missing (set in .env, env or config.json)")
    }
    if timeoutSec <= 0 {
        timeoutSec = cfg.API.TimeoutSec
    }

    hc := httpx.New(time.Duration(timeoutSec) * time.Second)
    hc.Headers = map[string]string{
        "x-api-key":    cfg.API.APIKey,
        "Content-Type": "application/json",
    }

    ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
    defer cancel()

    u := fmt.Sprintf("%s/server/company/%s", cfg.API.Endpoint, url.PathEscape(ticker))
    req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
    if err != nil {
        log.Fatalf("request: %v", err)
    }
    resp, err := hc.Do(req)
    if err != nil {
        log.Fatalf("fetch: %v", err)
    }
    defer resp.Body.Close()

    body, err := io.ReadAll(resp.Body)
    if err != nil {
        log.Fatalf("read body: %v", err)
    }
    if resp.StatusCode < 200 || resp.StatusCode >= 300 {
        log.Fatalf("http %d: %s", resp.StatusCode, string(body[:min(len(body), 2<<10)]))
    }

    if pretty {
        var buf bytes.Buffer
        if err := json.Indent(&buf, body, "", "  "); err == nil {
            body = append(buf.Bytes(), '\n')
        }
    }

    if outPath == "" {
        _, _ = os.Stdout.Write(body)
        return
    }
    if err := os.WriteFile(outPath, body, 0o644); err != nil {
        log.Fatalf("write out: %v", err)
    }
    log.Printf("done: wrote %s (%d bytes)", outPath, len(body))
}
