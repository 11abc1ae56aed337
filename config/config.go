package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"
)

// Row source kinds selectable via ROW_SOURCE.
const (
	SourceSheets   = "sheets"
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken    string
	DiscordGuildID  string
	ReportChannelID string

	// Row source configuration
	RowSource          string // "sheets", "csv" or "postgres"
	SpreadsheetID      string
	SheetName          string
	SheetRange         string // optional A1 override
	ServiceAccountFile string
	CSVPath            string
	DatabaseURL        string

	// Snapshot cache and scheduling
	CacheTTL   time.Duration
	ReportHour int // hour in UTC when the daily report posts (0-23)

	// Environment
	Environment string // "development", "production" or "test"
}

var (
	instance *Config
	once     sync.Once
)

// Get returns the global configuration instance
func Get() *Config {
	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		// Discord
		DiscordToken:    os.Getenv("DISCORD_TOKEN"),
		DiscordGuildID:  os.Getenv("DISCORD_GUILD_ID"),
		ReportChannelID: os.Getenv("REPORT_CHANNEL_ID"),

		// Row source
		RowSource:          os.Getenv("ROW_SOURCE"),
		SpreadsheetID:      os.Getenv("SPREADSHEET_ID"),
		SheetName:          os.Getenv("SHEET_NAME"),
		SheetRange:         os.Getenv("SHEET_RANGE"),
		ServiceAccountFile: os.Getenv("SERVICE_ACCOUNT_FILE"),
		CSVPath:            os.Getenv("CSV_PATH"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),

		// Defaults
		CacheTTL:   5 * time.Minute,
		ReportHour: 9, // 09:00 UTC

		// Environment
		Environment: os.Getenv("ENVIRONMENT"),
	}

	// Override defaults if environment variables are set
	if ttl := os.Getenv("CACHE_TTL_SECONDS"); ttl != "" {
		if parsedTTL, err := strconv.Atoi(ttl); err == nil {
			config.CacheTTL = time.Duration(parsedTTL) * time.Second
		}
	}
	if hour := os.Getenv("REPORT_HOUR"); hour != "" {
		if parsedHour, err := strconv.Atoi(hour); err == nil && parsedHour >= 0 && parsedHour <= 23 {
			config.ReportHour = parsedHour
		}
	}

	if config.RowSource == "" {
		config.RowSource = SourceSheets
	}
	if config.SheetName == "" {
		config.SheetName = "bot"
	}

	// Set default environment if not specified
	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		// Validate required configuration
		if config.DiscordToken == "" {
			return nil, fmt.Errorf("DISCORD_TOKEN is required")
		}
		switch config.RowSource {
		case SourceSheets:
			if config.SpreadsheetID == "" {
				return nil, fmt.Errorf("SPREADSHEET_ID is required for the sheets row source")
			}
			if config.ServiceAccountFile == "" {
				return nil, fmt.Errorf("SERVICE_ACCOUNT_FILE is required for the sheets row source")
			}
		case SourceCSV:
			if config.CSVPath == "" {
				return nil, fmt.Errorf("CSV_PATH is required for the csv row source")
			}
		case SourcePostgres:
			if config.DatabaseURL == "" {
				return nil, fmt.Errorf("DATABASE_URL is required for the postgres row source")
			}
		default:
			return nil, fmt.Errorf("unknown ROW_SOURCE %q", config.RowSource)
		}
	}

	return config, nil
}
