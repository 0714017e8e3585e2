package server

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/cardtable/hearts/internal/game"
	"github.com/cardtable/hearts/internal/strategy"
)

// Config is the complete server configuration.
type Config struct {
	Server  Settings       `hcl:"server,block"`
	Session SessionConfig  `hcl:"session,block"`
	Redis   *RedisSettings `hcl:"redis,block"`
}

// Settings contains the listener-level configuration.
type Settings struct {
	Address  string `hcl:"address,optional"`
	Port     int    `hcl:"port,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// SessionConfig controls how games are created and kept.
type SessionConfig struct {
	// Opponents are the strategy kinds for the three computer seats.
	Opponents []string `hcl:"opponents,optional"`
	// TTLMinutes is how long an idle session survives before the store
	// drops it.
	TTLMinutes int `hcl:"ttl_minutes,optional"`
}

// RedisSettings configures the optional Redis session backend. With no
// redis block, sessions live in process memory.
type RedisSettings struct {
	Address  string `hcl:"address"`
	Password string `hcl:"password,optional"`
	DB       int    `hcl:"db,optional"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Server: Settings{
			Address:  "localhost",
			Port:     8099,
			LogLevel: "info",
		},
		Session: SessionConfig{
			Opponents:  []string{strategy.KindCounting, strategy.KindCounting, strategy.KindCounting},
			TTLMinutes: 120,
		},
	}
}

// LoadConfig loads the configuration from an HCL file, falling back to
// defaults for anything unset. A missing file yields the defaults.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config: %s", diags.Error())
	}

	defaults := DefaultConfig()
	if config.Server.Address == "" {
		config.Server.Address = defaults.Server.Address
	}
	if config.Server.Port == 0 {
		config.Server.Port = defaults.Server.Port
	}
	if config.Server.LogLevel == "" {
		config.Server.LogLevel = defaults.Server.LogLevel
	}
	if len(config.Session.Opponents) == 0 {
		config.Session.Opponents = defaults.Session.Opponents
	}
	if config.Session.TTLMinutes == 0 {
		config.Session.TTLMinutes = defaults.Session.TTLMinutes
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks the configuration for values the server cannot run
// with.
func (c *Config) Validate() error {
	if n := len(c.Session.Opponents); n != game.NumPlayers-1 {
		return fmt.Errorf("session.opponents needs %d strategies, got %d", game.NumPlayers-1, n)
	}
	for i, kind := range c.Session.Opponents {
		if kind == strategy.KindHuman {
			return fmt.Errorf("session.opponents[%d]: computer seats cannot be %q", i, kind)
		}
		valid := false
		for _, known := range strategy.Kinds() {
			if kind == known {
				valid = true
			}
		}
		if !valid {
			return fmt.Errorf("session.opponents[%d]: unknown strategy %q", i, kind)
		}
	}
	if c.Session.TTLMinutes < 0 {
		return fmt.Errorf("session.ttl_minutes cannot be negative")
	}
	return nil
}

// Lineup returns the full four-seat strategy lineup: the human seat
// followed by the configured opponents.
func (c *Config) Lineup() [game.NumPlayers]string {
	var lineup [game.NumPlayers]string
	lineup[game.HumanSeat] = strategy.KindHuman
	for i, kind := range c.Session.Opponents {
		lineup[i+1] = kind
	}
	return lineup
}
