// Package config loads the YAML configuration shared by the dicegame
// binaries.
package config

import (
	"errors"
	"fmt"
	"math/big"
	"os"

	"gopkg.in/yaml.v2"

	"dicegame/pkg/dice"
	"dicegame/pkg/utils"
)

// Environment variables
const (
	ENV_CONFIG_FILE_PATH = "DICEGAME_CONFIG"
)

type GameConfig struct {
	Rounds int     `json:"rounds" yaml:"rounds"`
	Dice   int     `json:"dice" yaml:"dice"`
	Faces  uint32  `json:"faces" yaml:"faces"`
	Target int64   `json:"target" yaml:"target"`
	Seed   *uint64 `json:"seed,omitempty" yaml:"seed,omitempty"`
}

type ServerConfig struct {
	Port                string   `json:"port" yaml:"port"`
	DebugMode           bool     `json:"debug_mode" yaml:"debug_mode"`
	AllowOrigins        []string `json:"allow_origins" yaml:"allow_origins"`
	MaxExpressionLength int      `json:"max_expression_length" yaml:"max_expression_length"`
}

type Config struct {
	Logging utils.LoggerConfig `json:"logging" yaml:"logging"`
	Game    GameConfig         `json:"game" yaml:"game"`
	Server  ServerConfig       `json:"server" yaml:"server"`
}

// Default returns the settings of the classic game: five rounds of four
// six-sided dice, target 1.
func Default() *Config {
	return &Config{
		Logging: utils.LoggerConfig{
			LogLevel:   "info",
			MaxSize:    10,
			MaxAge:     28,
			MaxBackups: 3,
		},
		Game: GameConfig{
			Rounds: 5,
			Dice:   dice.DefaultCount,
			Faces:  dice.DefaultFaces,
			Target: 1,
		},
		Server: ServerConfig{
			Port:                "8080",
			MaxExpressionLength: 256,
		},
	}
}

// Load reads path over the defaults. An empty path falls back to
// $DICEGAME_CONFIG; when both are empty the defaults are returned as is.
// Unknown keys are rejected. A relative log filename is resolved against
// the directory of the config file.
func Load(path string) (*Config, error) {
	conf := Default()
	if path == "" {
		path = os.Getenv(ENV_CONFIG_FILE_PATH)
	}
	if path == "" {
		return conf, nil
	}

	fullPath, baseDir, err := utils.GetPathInfo(path)
	if err != nil {
		return nil, err
	}
	yamlFile, err := os.ReadFile(fullPath)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.UnmarshalStrict(yamlFile, conf); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	conf.Logging.Filename = utils.ResolveFrom(baseDir, conf.Logging.Filename)

	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return conf, nil
}

// Validate reports the first setting the binaries cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Game.Rounds < 0:
		return errors.New("game.rounds must not be negative")
	case c.Game.Dice < 1:
		return errors.New("game.dice must be at least 1")
	case c.Game.Faces < 1:
		return errors.New("game.faces must be at least 1")
	case c.Server.MaxExpressionLength < 1:
		return errors.New("server.max_expression_length must be at least 1")
	}
	return nil
}

// TargetRat returns the target as an exact rational.
func (g GameConfig) TargetRat() *big.Rat {
	return new(big.Rat).SetInt64(g.Target)
}

// NewDealer builds the dealer described by g.
func (g GameConfig) NewDealer() (*dice.Dealer, error) {
	return dice.NewDealer(g.Dice, g.Faces, g.Seed)
}
