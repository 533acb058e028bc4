// Package config loads game configuration from HCL files
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete game configuration
type Config struct {
	Table   *TableSettings   `hcl:"table,block"`
	Gambler *GamblerSettings `hcl:"gambler,block"`
	Server  *ServerSettings  `hcl:"server,block"`
}

// TableSettings configures the shoe and dealer pacing
type TableSettings struct {
	Decks       int    `hcl:"decks,optional"`
	Seed        int64  `hcl:"seed,optional"`
	DealerDelay string `hcl:"dealer_delay,optional"`
}

// GamblerSettings configures the player seat
type GamblerSettings struct {
	Name      string  `hcl:"name,optional"`
	Bankroll  float64 `hcl:"bankroll,optional"`
	AutoWager float64 `hcl:"auto_wager,optional"`
}

// ServerSettings configures the websocket spectator feed
type ServerSettings struct {
	Address string `hcl:"address,optional"`
	Port    int    `hcl:"port,optional"`
}

// DefaultConfig returns the default game configuration
func DefaultConfig() *Config {
	return &Config{
		Table: &TableSettings{
			Decks:       6,
			DealerDelay: "1s",
		},
		Gambler: &GamblerSettings{
			Name:      "Player",
			Bankroll:  500,
			AutoWager: 10,
		},
		Server: &ServerSettings{
			Address: "localhost",
			Port:    8080,
		},
	}
}

// Load loads configuration from an HCL file. A missing file yields the
// defaults; blocks and attributes absent from the file are filled in
// with defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing blocks and values
	defaults := DefaultConfig()
	if config.Table == nil {
		config.Table = defaults.Table
	}
	if config.Table.Decks == 0 {
		config.Table.Decks = defaults.Table.Decks
	}
	if config.Table.DealerDelay == "" {
		config.Table.DealerDelay = defaults.Table.DealerDelay
	}

	if config.Gambler == nil {
		config.Gambler = defaults.Gambler
	}
	if config.Gambler.Name == "" {
		config.Gambler.Name = defaults.Gambler.Name
	}
	if config.Gambler.Bankroll == 0 {
		config.Gambler.Bankroll = defaults.Gambler.Bankroll
	}
	if config.Gambler.AutoWager == 0 {
		config.Gambler.AutoWager = defaults.Gambler.AutoWager
	}

	if config.Server == nil {
		config.Server = defaults.Server
	}
	if config.Server.Address == "" {
		config.Server.Address = defaults.Server.Address
	}
	if config.Server.Port == 0 {
		config.Server.Port = defaults.Server.Port
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Table.Decks < 1 || c.Table.Decks > 8 {
		return fmt.Errorf("decks must be between 1 and 8, got %d", c.Table.Decks)
	}
	if _, err := c.DealerDelay(); err != nil {
		return fmt.Errorf("invalid dealer_delay: %w", err)
	}
	if c.Gambler.Bankroll <= 0 {
		return fmt.Errorf("bankroll must be positive, got %v", c.Gambler.Bankroll)
	}
	if c.Gambler.AutoWager <= 0 {
		return fmt.Errorf("auto_wager must be positive, got %v", c.Gambler.AutoWager)
	}
	if c.Gambler.AutoWager > c.Gambler.Bankroll {
		return fmt.Errorf("auto_wager %v exceeds bankroll %v", c.Gambler.AutoWager, c.Gambler.Bankroll)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	return nil
}

// DealerDelay returns the dealer pacing delay as a duration
func (c *Config) DealerDelay() (time.Duration, error) {
	return time.ParseDuration(c.Table.DealerDelay)
}

// ServerAddress returns the full listen address for the spectator feed
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}
