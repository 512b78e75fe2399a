// Package config loads the TOML configuration and resolves the news
// API base URL for the client.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Base URLs by environment key. The emulator entries exist because the
// Android emulator reaches the host machine via 10.0.2.2 while the iOS
// simulator shares the host loopback.
var baseURLs = map[string]string{
	"android-emulator": "http://10.0.2.2:5000/api",
	"ios-simulator":    "http://localhost:5000/api",
}

// Placeholder until a production deployment exists.
const defaultBaseURL = "http://your-production-server.com/api"

// ResolveBaseURL picks the news API base URL once at startup. An
// explicit override wins; otherwise the environment key selects from
// the table, falling back to the production default.
func ResolveBaseURL(environment, override string) string {
	if override != "" {
		return override
	}
	if url, ok := baseURLs[environment]; ok {
		return url
	}
	return defaultBaseURL
}

// ServerConfig configures the serve command.
type ServerConfig struct {
	Port            int    `toml:"port"`
	Database        string `toml:"database"`
	RefreshInterval string `toml:"refresh_interval"`
	CacheAddr       string `toml:"cache_addr"`
	CacheTTL        string `toml:"cache_ttl"`
}

// ProviderConfig configures the upstream market-news provider.
type ProviderConfig struct {
	BaseURL   string   `toml:"base_url"`
	Token     string   `toml:"token"`
	Symbols   []string `toml:"symbols"`
	Limit     int      `toml:"limit"`
	Budget    int      `toml:"budget"`
	UsageFile string   `toml:"usage_file"`
}

// Config is the top-level configuration.
type Config struct {
	Environment string         `toml:"environment"`
	BaseURL     string         `toml:"base_url,omitempty"`
	Feeds       []string       `toml:"feeds"`
	Languages   []string       `toml:"languages"`
	Server      ServerConfig   `toml:"server"`
	Provider    ProviderConfig `toml:"provider"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Environment: "production",
		Languages:   []string{"en"},
		Server: ServerConfig{
			Port:            5000,
			Database:        "finshorts.db",
			RefreshInterval: "6h",
			CacheTTL:        "24h",
		},
		Provider: ProviderConfig{
			BaseURL:   "https://api.marketaux.com",
			Symbols:   []string{"AAPL", "GOOGL", "TSLA"},
			Limit:     50,
			Budget:    100,
			UsageFile: "api_usage.json",
		},
	}
}

// LoadConfig reads the TOML configuration at path, applied on top of
// the defaults.
func LoadConfig(path string) (*Config, error) {
	config := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return config, nil
}

// Save writes the configuration as TOML.
func (c *Config) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}
	return nil
}
