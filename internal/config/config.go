package config

import (
    "encoding/json"
    "errors"
    "fmt"
    "os"

    "github.com/joho/godotenv"
)

type API struct {
    // Endpoint is the disclosure server base URL without a trailing slash.
    Endpoint string `json:"endpoint"`
    // APIKey authenticates every request via the x-api-key header.
    // Prefer setting it through the environment or a .env file rather
    // than checking it into config.json.
    APIKey     string `json:"api_key"`
    TimeoutSec int    `json:"request_timeout_sec"`
}

type Config struct {
    API API `json:"api"`
}

func Default() Config {
    return Config{
        API: API{
            Endpoint:   "https://ac-api-server.vercel.app",
            TimeoutSec: 10,
        },
    }
}

// Load reads JSON config from path. If path is empty or file does not exist,
// it returns defaults. A .env file in the working directory is folded into the
// environment first, and environment variables override file values so the
// key never has to live in source or in a committed config file.
func Load(path string) (Config, error) {
    _ = godotenv.Load()

    cfg := Default()
    if path == "" {
        if _, err := os.Stat("config.json"); err == nil {
            path = "config.json"
        }
    }
    if path != "" {
        b, err := os.ReadFile(path)
        if err != nil && !errors.Is(err, os.ErrNotExist) {
            return cfg, fmt.Errorf("read config: %w", err)
        }
        if err == nil {
            if err := json.Unmarshal(b, &cfg); err != nil {
                return cfg, fmt.Errorf("parse config: %w", err)
            }
        }
    }
    applyEnv(&cfg)
    if cfg.API.TimeoutSec <= 0 {
        cfg.API.TimeoutSec = Default().API.TimeoutSec
    }
    return cfg, nil
}

func applyEnv(cfg *Config) {
    if v := os.Getenv("PAYABLES_API_KEY"); v != "" { cfg.API.APIKey = v }
    if v := os.Getenv("PAYABLES_ENDPOINT"); v != "" { cfg.API.Endpoint = v }
    if v := os.Getenv("REQUEST_TIMEOUT_SEC"); v != "" {
        var x int; fmt.Sscanf(v, "%d", &x); if x > 0 { cfg.API.TimeoutSec = x }
    }
}
