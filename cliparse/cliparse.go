package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/leads-report/sheet"
)

// Defaults
const (
	DefaultPort          = 3318
	DefaultSheetName     = "Leads"
	DefaultSessionMaxAge = 12 * time.Hour
	DefaultCacheTTL      = time.Minute
	DefaultFetchTimeout  = 15 * time.Second
)

type Config struct {
	Port int

	// Data source: SheetURL wins over SheetID/SheetName
	SheetID   string
	SheetName string
	SheetURL  string

	Password      string
	PasswordHash  string
	SessionSalt   string
	SessionMaxAge time.Duration

	CacheTTL     time.Duration
	FetchTimeout time.Duration
	LayoutPath   string

	// HashPassword asks main to print a bcrypt hash and exit
	HashPassword string
}

// SourceURL returns the CSV export URL the dashboard reads
func (c Config) SourceURL() string {
	if c.SheetURL != "" {
		return c.SheetURL
	}
	return sheet.ExportURL(c.SheetID, c.SheetName)
}

// ParseFlags validates flags and fills the rest from the environment.
// A .env file in the working directory is loaded first if present.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	// Existing environment variables are not overridden
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	fs := flag.NewFlagSet("leads-report", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")

	// Data source
	fs.StringVar(&cfg.SheetID, "sheet-id", "", "Google Sheets document ID")
	fs.StringVar(&cfg.SheetName, "sheet-name", "", "Sheet tab name (default Leads)")
	fs.StringVar(&cfg.SheetURL, "sheet-url", "", "Full CSV URL, overrides sheet ID and name")
	fs.StringVar(&cfg.LayoutPath, "layout", "", "YAML file with column layout overrides")
	fs.DurationVar(&cfg.CacheTTL, "cache-ttl", -1, "How long a fetched sheet is reused (0 disables)")
	fs.DurationVar(&cfg.FetchTimeout, "fetch-timeout", 0, "Sheet download timeout")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.Password, "password", "", "Dashboard password (prefer env)")
	fs.StringVar(&cfg.PasswordHash, "password-hash", "", "Bcrypt hash of the dashboard password (prefer env)")
	fs.StringVar(&cfg.SessionSalt, "session-salt", "", "Session cookie signing salt (prefer env)")
	fs.DurationVar(&cfg.SessionMaxAge, "session-max-age", 0, "How long a login lasts")

	fs.StringVar(&cfg.HashPassword, "hash-password", "", "Print a bcrypt hash of the given password and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Hashing needs no other settings
	if cfg.HashPassword != "" {
		return cfg, nil
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}

	if cfg.SheetURL == "" {
		cfg.SheetURL = os.Getenv("SHEET_URL")
	}
	if cfg.SheetID == "" {
		cfg.SheetID = os.Getenv("SHEET_ID")
	}
	if cfg.SheetName == "" {
		cfg.SheetName = os.Getenv("SHEET_NAME")
		if cfg.SheetName == "" {
			cfg.SheetName = DefaultSheetName
		}
	}
	if cfg.SheetURL == "" && cfg.SheetID == "" {
		return Config{}, errors.New("sheet required (use -sheet-id or SHEET_ID, or -sheet-url or SHEET_URL)")
	}

	if cfg.LayoutPath == "" {
		cfg.LayoutPath = os.Getenv("LAYOUT_PATH")
	}

	var err error
	if cfg.CacheTTL, err = durationSetting(cfg.CacheTTL, -1, "CACHE_TTL", DefaultCacheTTL); err != nil {
		return Config{}, err
	}
	if cfg.FetchTimeout, err = durationSetting(cfg.FetchTimeout, 0, "FETCH_TIMEOUT", DefaultFetchTimeout); err != nil {
		return Config{}, err
	}
	if cfg.SessionMaxAge, err = durationSetting(cfg.SessionMaxAge, 0, "SESSION_MAX_AGE", DefaultSessionMaxAge); err != nil {
		return Config{}, err
	}

	// Secrets - MUST be provided
	if cfg.Password == "" {
		cfg.Password = os.Getenv("DASHBOARD_PASSWORD")
	}
	if cfg.PasswordHash == "" {
		cfg.PasswordHash = os.Getenv("DASHBOARD_PASSWORD_HASH")
	}
	if cfg.Password == "" && cfg.PasswordHash == "" {
		return Config{}, errors.New("DASHBOARD_PASSWORD or DASHBOARD_PASSWORD_HASH required")
	}

	if cfg.SessionSalt == "" {
		cfg.SessionSalt = os.Getenv("SESSION_SALT")
	}
	if cfg.SessionSalt == "" {
		return Config{}, errors.New("SESSION_SALT required")
	}

	return cfg, nil
}

// durationSetting keeps a flag value unless it equals unset,
// then tries env and finally the default
func durationSetting(flagValue, unset time.Duration, env string, def time.Duration) (time.Duration, error) {
	if flagValue != unset {
		return flagValue, nil
	}
	s := os.Getenv(env)
	if s == "" {
		return def, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable: %w", env, err)
	}
	return d, nil
}
