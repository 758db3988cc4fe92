// Package config loads the optional HCL session file describing the table
// and its seats.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/cardroom/holdemgen/internal/provider"
)

// SessionConfig is the complete generation session configuration.
type SessionConfig struct {
	Session SessionSettings `hcl:"session,block"`
	Seats   []SeatConfig    `hcl:"seat,block"`
}

// SessionSettings contains table-level settings.
type SessionSettings struct {
	Players        int `hcl:"players,optional"`
	SmallBlind     int `hcl:"small_blind,optional"`
	BigBlind       int `hcl:"big_blind,optional"`
	StartingStack  int `hcl:"starting_stack,optional"`
	Workers        int `hcl:"workers,optional"`
	TimeoutSeconds int `hcl:"timeout_seconds,optional"`
}

// SeatConfig assigns a personality to one seat.
type SeatConfig struct {
	Name        string `hcl:"name,label"`
	Personality string `hcl:"personality"`
	Stack       int    `hcl:"stack,optional"`
}

// DefaultSessionConfig returns the configuration used when no file is given.
func DefaultSessionConfig() *SessionConfig {
	return &SessionConfig{
		Session: SessionSettings{
			Players:        4,
			SmallBlind:     5,
			BigBlind:       10,
			StartingStack:  1000,
			Workers:        4,
			TimeoutSeconds: 5,
		},
	}
}

// LoadSessionConfig loads the session configuration from an HCL file,
// falling back to defaults when the file does not exist.
func LoadSessionConfig(filename string) (*SessionConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultSessionConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config SessionConfig
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := DefaultSessionConfig().Session
	if config.Session.Players == 0 {
		config.Session.Players = defaults.Players
	}
	if len(config.Seats) > 0 {
		config.Session.Players = len(config.Seats)
	}
	if config.Session.SmallBlind == 0 {
		config.Session.SmallBlind = defaults.SmallBlind
	}
	if config.Session.BigBlind == 0 {
		config.Session.BigBlind = config.Session.SmallBlind * 2
	}
	if config.Session.StartingStack == 0 {
		config.Session.StartingStack = config.Session.BigBlind * 100
	}
	if config.Session.Workers == 0 {
		config.Session.Workers = defaults.Workers
	}
	if config.Session.TimeoutSeconds == 0 {
		config.Session.TimeoutSeconds = defaults.TimeoutSeconds
	}

	return &config, nil
}

// Validate checks the configuration for values the engine would reject.
func (c *SessionConfig) Validate() error {
	if c.Session.Players < 2 || c.Session.Players > 10 {
		return fmt.Errorf("players must be between 2 and 10, got %d", c.Session.Players)
	}
	if c.Session.SmallBlind <= 0 {
		return fmt.Errorf("small blind must be positive")
	}
	if c.Session.BigBlind < c.Session.SmallBlind {
		return fmt.Errorf("big blind must be at least the small blind")
	}
	if c.Session.StartingStack <= c.Session.BigBlind {
		return fmt.Errorf("starting stack must exceed the big blind")
	}
	for _, seat := range c.Seats {
		if _, ok := provider.Profiles[seat.Personality]; !ok {
			return fmt.Errorf("seat %s: unknown personality %q", seat.Name, seat.Personality)
		}
		if seat.Stack < 0 {
			return fmt.Errorf("seat %s: negative stack", seat.Name)
		}
	}
	return nil
}

// Personalities returns the per-seat personality names, empty when no seat
// blocks were configured.
func (c *SessionConfig) Personalities() []string {
	names := make([]string, 0, len(c.Seats))
	for _, seat := range c.Seats {
		names = append(names, seat.Personality)
	}
	return names
}
