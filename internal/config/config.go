package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Version is the sawmill release version, overridable at build time.
var Version = "0.1.0"

// Config holds all sawmill configuration.
type Config struct {
	API     APIConfig
	Resolve ResolveConfig
	Output  OutputConfig

	ShowVersion bool
}

// APIConfig holds settings for the data-views and settings API client.
type APIConfig struct {
	Endpoint string
	APIKey   string
	Timeout  time.Duration
}

// ResolveConfig holds settings for log view resolution.
type ResolveConfig struct {
	StorePath     string   // YAML file holding stored log views; empty for defaults only
	LogViewID     string   // which stored view to resolve
	MessageFields []string // overrides the default message field list
	StaticSources []string // when set, log sources are served in-process instead of from the API
	Persist       bool     // save the resolved ad-hoc data view through the API
}

// OutputConfig holds logging and localization settings.
type OutputConfig struct {
	LogLevel string
	Locale   string // BCP 47 tag for localized display names, e.g. "es-MX"
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		API: APIConfig{
			Endpoint: getenv("SAWMILL_ENDPOINT", "http://localhost:5601"),
			APIKey:   os.Getenv("SAWMILL_API_KEY"),
			Timeout:  getenvDuration("SAWMILL_TIMEOUT", 30*time.Second),
		},
		Resolve: ResolveConfig{
			StorePath:     os.Getenv("SAWMILL_STORE_PATH"),
			LogViewID:     getenv("SAWMILL_LOG_VIEW", "default"),
			MessageFields: getenvList("SAWMILL_MESSAGE_FIELDS"),
			StaticSources: getenvList("SAWMILL_LOG_SOURCES"),
			Persist:       getenvBool("SAWMILL_PERSIST", false),
		},
		Output: OutputConfig{
			LogLevel: getenv("SAWMILL_LOG_LEVEL", "info"),
			Locale:   os.Getenv("SAWMILL_LOCALE"),
		},
		ShowVersion: getenvBool("SAWMILL_VERSION", false),
	}
}

// Validate checks the loaded configuration and reports all problems at once.
func (c Config) Validate() error {
	var problems []string

	if c.API.Endpoint == "" {
		problems = append(problems, "SAWMILL_ENDPOINT must not be empty")
	}
	if c.API.APIKey == "" {
		problems = append(problems, "SAWMILL_API_KEY is required")
	}
	if c.API.Timeout <= 0 {
		problems = append(problems, fmt.Sprintf("timeout must be positive, got %v", c.API.Timeout))
	}
	if c.Resolve.LogViewID == "" {
		problems = append(problems, "log view ID must not be empty")
	}
	if c.Resolve.StorePath != "" {
		if _, err := os.Stat(c.Resolve.StorePath); err != nil {
			problems = append(problems, fmt.Sprintf("store file not readable: %v", err))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getenvList splits a comma-separated env var, dropping empty entries.
func getenvList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
