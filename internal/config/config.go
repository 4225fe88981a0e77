package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

const (
	DefaultAPIBaseURL         = "https://api.alquran.cloud/v1"
	DefaultLanguage           = "en"
	DefaultTranslationEdition = "en.sahih"
	DefaultOriginalEdition    = "quran-uthmani"
	DefaultCacheTTLSeconds    = 300
	DefaultInitialResults     = 1
	DefaultMoreResults        = 3
	DefaultRequestTimeoutSecs = 15
)

// Config holds the application configuration
type Config struct {
	APIBaseURL         string
	Language           string
	TranslationEdition string
	OriginalEdition    string
	CacheTTL           time.Duration
	InitialResults     int
	MoreResults        int
	RequestTimeout     time.Duration
	LogLevel           string
	LogFile            string
	DBPath             string
	ConfigPath         string
	GoalverseDir       string
}

type fileConfig struct {
	API struct {
		BaseURL            string `toml:"base_url"`
		Language           string `toml:"language"`
		TranslationEdition string `toml:"translation_edition"`
		OriginalEdition    string `toml:"original_edition"`
		TimeoutSeconds     int    `toml:"timeout_seconds"`
	} `toml:"api"`
	Guidance struct {
		CacheTTLSeconds int `toml:"cache_ttl_seconds"`
		InitialResults  int `toml:"initial_results"`
		MoreResults     int `toml:"more_results"`
	} `toml:"guidance"`
	Logging struct {
		Level string `toml:"level"`
		File  string `toml:"file"`
	} `toml:"logging"`
	Database struct {
		Path string `toml:"path"`
	} `toml:"database"`
}

// LoadConfig loads configuration from file, environment variables, and defaults
func LoadConfig() (*Config, error) {
	dir, err := goalverseDir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Join(dir, "logs"), 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(dir, "config.toml")

	cfg := &Config{
		APIBaseURL:         DefaultAPIBaseURL,
		Language:           DefaultLanguage,
		TranslationEdition: DefaultTranslationEdition,
		OriginalEdition:    DefaultOriginalEdition,
		CacheTTL:           DefaultCacheTTLSeconds * time.Second,
		InitialResults:     DefaultInitialResults,
		MoreResults:        DefaultMoreResults,
		RequestTimeout:     DefaultRequestTimeoutSecs * time.Second,
		LogLevel:           "info",
		LogFile:            filepath.Join(dir, "logs", "goalverse.log"),
		DBPath:             filepath.Join(dir, "goals.sqlite3"),
		ConfigPath:         configPath,
		GoalverseDir:       dir,
	}

	// Overlay config file values if the file exists
	if _, err := os.Stat(configPath); err == nil {
		fileData, err := os.ReadFile(configPath)
		if err != nil {
			return nil, err
		}

		var parsed fileConfig
		if err := toml.Unmarshal(fileData, &parsed); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
		}

		if parsed.API.BaseURL != "" {
			cfg.APIBaseURL = parsed.API.BaseURL
		}
		if parsed.API.Language != "" {
			cfg.Language = parsed.API.Language
		}
		if parsed.API.TranslationEdition != "" {
			cfg.TranslationEdition = parsed.API.TranslationEdition
		}
		if parsed.API.OriginalEdition != "" {
			cfg.OriginalEdition = parsed.API.OriginalEdition
		}
		if parsed.API.TimeoutSeconds > 0 {
			cfg.RequestTimeout = time.Duration(parsed.API.TimeoutSeconds) * time.Second
		}
		if parsed.Guidance.CacheTTLSeconds > 0 {
			cfg.CacheTTL = time.Duration(parsed.Guidance.CacheTTLSeconds) * time.Second
		}
		if parsed.Guidance.InitialResults > 0 {
			cfg.InitialResults = parsed.Guidance.InitialResults
		}
		if parsed.Guidance.MoreResults > 0 {
			cfg.MoreResults = parsed.Guidance.MoreResults
		}
		if parsed.Logging.Level != "" {
			cfg.LogLevel = parsed.Logging.Level
		}
		if parsed.Logging.File != "" {
			cfg.LogFile = parsed.Logging.File
			if !filepath.IsAbs(cfg.LogFile) {
				cfg.LogFile = filepath.Join(dir, cfg.LogFile)
			}
		}
		if parsed.Database.Path != "" {
			cfg.DBPath = parsed.Database.Path
			if !filepath.IsAbs(cfg.DBPath) {
				cfg.DBPath = filepath.Join(dir, cfg.DBPath)
			}
		}
	}

	applyEnvOverrides(cfg)

	cfg.APIBaseURL = normalizeBaseURL(cfg.APIBaseURL)

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if baseURL := os.Getenv("GOALVERSE_API_BASE_URL"); baseURL != "" {
		cfg.APIBaseURL = baseURL
	}
	if lang := os.Getenv("GOALVERSE_LANGUAGE"); lang != "" {
		cfg.Language = lang
	}
	if edition := os.Getenv("GOALVERSE_TRANSLATION_EDITION"); edition != "" {
		cfg.TranslationEdition = edition
	}
	if edition := os.Getenv("GOALVERSE_ORIGINAL_EDITION"); edition != "" {
		cfg.OriginalEdition = edition
	}
	if ttl := os.Getenv("GOALVERSE_CACHE_TTL_SECONDS"); ttl != "" {
		if seconds, err := strconv.Atoi(ttl); err == nil && seconds > 0 {
			cfg.CacheTTL = time.Duration(seconds) * time.Second
		}
	}
	if timeout := os.Getenv("GOALVERSE_API_TIMEOUT_SECONDS"); timeout != "" {
		if seconds, err := strconv.Atoi(timeout); err == nil && seconds > 0 {
			cfg.RequestTimeout = time.Duration(seconds) * time.Second
		}
	}
	if level := os.Getenv("GOALVERSE_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}
	if logFile := os.Getenv("GOALVERSE_LOG_FILE"); logFile != "" {
		cfg.LogFile = logFile
	}
	if dbPath := os.Getenv("GOALVERSE_DB_PATH"); dbPath != "" {
		cfg.DBPath = dbPath
	}
}

// goalverseDir resolves the per-user application directory, honoring
// GOALVERSE_DIR for tests and portable installs.
func goalverseDir() (string, error) {
	if dir := os.Getenv("GOALVERSE_DIR"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".goalverse"), nil
}

func normalizeBaseURL(baseURL string) string {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return baseURL
	}
	return strings.TrimRight(baseURL, "/")
}

// Validate verifies the configuration is usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIBaseURL) == "" {
		return fmt.Errorf("API base URL is empty")
	}
	if strings.TrimSpace(c.Language) == "" {
		return fmt.Errorf("search language is empty")
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("cache TTL must be positive")
	}
	if c.InitialResults <= 0 {
		return fmt.Errorf("initial results must be positive")
	}
	if c.MoreResults <= 0 {
		return fmt.Errorf("more results must be positive")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive")
	}
	return nil
}
