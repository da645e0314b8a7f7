package domain

import "time"

// Configuration represents the complete application configuration
type Configuration struct {
	Server   ServerConfig    `yaml:"server" json:"server"`
	Logging  LoggingConfig   `yaml:"logging" json:"logging"`
	Chat     ChatConfig      `yaml:"chat" json:"chat"`
	Surfaces []string        `yaml:"surfaces" json:"surfaces"`
	Defaults ProjectionInput `yaml:"defaults" json:"defaults"`
}

// ServerConfig holds the HTTP listener settings
type ServerConfig struct {
	Addr            string        `yaml:"addr" json:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout" json:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout" json:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" json:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" json:"shutdown_timeout"`
	RequestTimeout  time.Duration `yaml:"request_timeout" json:"request_timeout"`
}

// LoggingConfig selects the log level and encoding
type LoggingConfig struct {
	Level       string `yaml:"level" json:"level"`
	Development bool   `yaml:"development" json:"development"`
}

// ChatConfig holds the cosmetic reply delays of the chatbot.
// A zero delay answers immediately.
type ChatConfig struct {
	ReplyDelay time.Duration `yaml:"reply_delay" json:"reply_delay"`
	TagDelay   time.Duration `yaml:"tag_delay" json:"tag_delay"`
}
