package config

import (
	"fmt"
	"os"

	"dexscreener"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config holds the overall configuration for the pairwatch service.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	DEXScreener DEXScreenerConfig `yaml:"dexScreener"`
	PairService PairServiceConfig `yaml:"pairService"`
	Logging     LoggingConfig     `yaml:"logging"`
	Networks    []Network         `yaml:"networks"`
}

// ServerConfig holds the HTTP server configuration. Timeouts are in seconds.
type ServerConfig struct {
	Port         string `yaml:"port"`
	ReadTimeout  int    `yaml:"readTimeout"`
	WriteTimeout int    `yaml:"writeTimeout"`
	IdleTimeout  int    `yaml:"idleTimeout"`
}

// Network describes one chain whose tokens the service tracks and warms.
type Network struct {
	Name           string   `yaml:"name"`
	DEXScreenerID  string   `yaml:"dexScreenerChainID"`
	Kind           string   `yaml:"kind"` // "evm" enables address validation
	TokenAddresses []string `yaml:"tokenAddresses"`
}

// DEXScreenerConfig holds the configuration for the DEX Screener client.
type DEXScreenerConfig struct {
	BaseURL              string `yaml:"baseURL"`
	RequestTimeoutMillis int64  `yaml:"requestTimeoutMillis"`
}

// PairServiceConfig holds configuration for the pair service.
type PairServiceConfig struct {
	CacheTTLSeconds          int `yaml:"cacheTTLSeconds"`
	RequestsPerMinute        int `yaml:"requestsPerMinute"`
	MaxTokensPerBatchRequest int `yaml:"maxTokensPerBatchRequest"`
	WarmConcurrency          int `yaml:"warmConcurrency"`
}

// LoggingConfig holds the configuration for logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // e.g., "debug", "info", "warn", "error"
	File  string `yaml:"file"`
}

// LoadConfig loads configuration from a YAML file and fills in defaults for
// anything left unset.
func LoadConfig(path string) (*Config, error) {
	logrus.Infof("Loading configuration from path: %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		logrus.Errorf("Failed to read config file %s: %v", path, err)
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		logrus.Errorf("Failed to unmarshal config data from %s: %v", path, err)
		return nil, fmt.Errorf("failed to unmarshal config data from %s: %w", path, err)
	}

	if cfg.Server.Port == "" {
		cfg.Server.Port = ":8080"
		logrus.Infof("Server.Port not set, defaulting to %s", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 15
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}

	if cfg.DEXScreener.BaseURL == "" {
		cfg.DEXScreener.BaseURL = dexscreener.DefaultBaseURL
		logrus.Infof("DEXScreener.BaseURL not set, defaulting to %s", cfg.DEXScreener.BaseURL)
	}
	if cfg.DEXScreener.RequestTimeoutMillis == 0 {
		cfg.DEXScreener.RequestTimeoutMillis = 10000
		logrus.Infof("DEXScreener.RequestTimeoutMillis not set, defaulting to %d ms", cfg.DEXScreener.RequestTimeoutMillis)
	}

	if cfg.PairService.CacheTTLSeconds == 0 {
		cfg.PairService.CacheTTLSeconds = 60
		logrus.Infof("PairService.CacheTTLSeconds not set, defaulting to %d seconds", cfg.PairService.CacheTTLSeconds)
	}
	if cfg.PairService.RequestsPerMinute == 0 {
		cfg.PairService.RequestsPerMinute = 300
		logrus.Infof("PairService.RequestsPerMinute not set, defaulting to the documented ceiling of %d", cfg.PairService.RequestsPerMinute)
	}
	if cfg.PairService.MaxTokensPerBatchRequest == 0 {
		cfg.PairService.MaxTokensPerBatchRequest = dexscreener.MaxAddressesPerRequest
		logrus.Infof("PairService.MaxTokensPerBatchRequest not set, defaulting to %d", cfg.PairService.MaxTokensPerBatchRequest)
	}
	if cfg.PairService.MaxTokensPerBatchRequest > dexscreener.MaxAddressesPerRequest {
		logrus.Warnf("PairService.MaxTokensPerBatchRequest %d exceeds the API batch cap, clamping to %d",
			cfg.PairService.MaxTokensPerBatchRequest, dexscreener.MaxAddressesPerRequest)
		cfg.PairService.MaxTokensPerBatchRequest = dexscreener.MaxAddressesPerRequest
	}
	if cfg.PairService.WarmConcurrency == 0 {
		cfg.PairService.WarmConcurrency = 4
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	for _, network := range cfg.Networks {
		if network.DEXScreenerID == "" {
			logrus.Warnf("Network '%s' is missing dexScreenerChainID in config. Pair warming for this network will be skipped.", network.Name)
		}
	}

	logrus.Info("Configuration loaded successfully.")
	return &cfg, nil
}
