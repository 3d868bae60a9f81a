// Package config provides targets-file parsing and the target registry.
package config

import (
	"strings"

	"github.com/fgeck/pihub/internal/models"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Parser handles targets-file parsing.
type Parser struct {
	v      *viper.Viper
	logger zerolog.Logger
}

// NewParser creates a new targets-file parser.
func NewParser(logger zerolog.Logger) *Parser {
	v := viper.New()
	v.SetConfigType("json")
	return &Parser{v: v, logger: logger}
}

// LoadFile loads the targets file from a path. Load failures are never
// fatal: the hub must still serve direct-MAC wakes, so a missing or
// malformed file degrades to an empty registry with a logged warning.
func (p *Parser) LoadFile(path string) *Registry {
	p.v.SetConfigFile(path)

	if err := p.v.ReadInConfig(); err != nil {
		p.logger.Warn().Err(err).Str("file", path).Msg("targets file unavailable, starting with empty registry")
		return NewRegistry(nil)
	}

	return p.parse()
}

// LoadReader loads targets from a string (useful for testing).
func (p *Parser) LoadReader(content string) *Registry {
	if err := p.v.ReadConfig(strings.NewReader(content)); err != nil {
		p.logger.Warn().Err(err).Msg("targets unreadable, starting with empty registry")
		return NewRegistry(nil)
	}

	return p.parse()
}

func (p *Parser) parse() *Registry {
	var raw map[string]models.Target
	if err := p.v.Unmarshal(&raw); err != nil {
		p.logger.Warn().Err(err).Msg("targets file malformed, starting with empty registry")
		return NewRegistry(nil)
	}

	targets := make(map[string]models.Target, len(raw))
	for name, t := range raw {
		if t.MAC == "" {
			p.logger.Warn().Str("target", name).Msg("target has no mac address, skipping")
			continue
		}
		t.Name = name
		targets[name] = t
	}

	return NewRegistry(targets)
}
