package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/finlab/finance-lab/internal/app"
	"github.com/finlab/finance-lab/internal/domain"
	"gopkg.in/yaml.v3"
)

var validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// InputParser handles parsing of configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML or JSON file. Missing fields take the
// values of the example configuration.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes a YAML document over the defaults and validates the result
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	config := ip.CreateExampleConfiguration()
	// surfaces are replaced, not merged, when the document lists them
	config.Surfaces = nil
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if config.Surfaces == nil {
		config.Surfaces = app.AllSurfaces()
	}

	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

// ValidateConfiguration validates the loaded configuration. Projection defaults are not
// validated: the simulator accepts whatever numbers it is given.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.validateServer(&config.Server); err != nil {
		return fmt.Errorf("server validation failed: %w", err)
	}

	level := strings.ToLower(config.Logging.Level)
	if !validLogLevels[level] {
		return fmt.Errorf("log level must be one of debug, info, warn, error; got %q", config.Logging.Level)
	}

	if config.Chat.ReplyDelay < 0 || config.Chat.TagDelay < 0 {
		return fmt.Errorf("chat delays cannot be negative")
	}

	known := map[string]bool{}
	for _, s := range app.AllSurfaces() {
		known[s] = true
	}
	for _, s := range config.Surfaces {
		if !known[s] {
			return fmt.Errorf("unknown surface %q", s)
		}
	}

	return nil
}

// validateServer validates the HTTP listener settings
func (ip *InputParser) validateServer(server *domain.ServerConfig) error {
	if server.Addr == "" {
		return fmt.Errorf("listen address is required")
	}
	timeouts := map[string]time.Duration{
		"read_timeout":     server.ReadTimeout,
		"write_timeout":    server.WriteTimeout,
		"idle_timeout":     server.IdleTimeout,
		"shutdown_timeout": server.ShutdownTimeout,
		"request_timeout":  server.RequestTimeout,
	}
	for name, d := range timeouts {
		if d < 0 {
			return fmt.Errorf("%s cannot be negative", name)
		}
	}
	return nil
}

// CreateExampleConfiguration creates the default configuration: every component
// mounted, chat replies slightly delayed like a typing bot.
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Server: domain.ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			RequestTimeout:  60 * time.Second,
		},
		Logging: domain.LoggingConfig{
			Level: "info",
		},
		Chat: domain.ChatConfig{
			ReplyDelay: 400 * time.Millisecond,
			TagDelay:   300 * time.Millisecond,
		},
		Surfaces: app.AllSurfaces(),
		Defaults: domain.ProjectionInput{
			Capital:             1000,
			MonthlyContribution: 100,
			Years:               10,
			AnnualRatePercent:   5,
		},
	}
}
