package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/tatianab/ghost-hunt/internal/engine"
	"github.com/tatianab/ghost-hunt/internal/models"
)

// Config holds the application configuration.
type Config struct {
	GeminiAPIKey string `env:"GEMINI_API_KEY"`

	Hunters           int           `env:"GHOSTHUNT_HUNTERS"`
	FearMax           int           `env:"GHOSTHUNT_FEAR_MAX"`
	BoredomMax        int           `env:"GHOSTHUNT_BOREDOM_MAX"`
	EvidenceThreshold int           `env:"GHOSTHUNT_EVIDENCE_THRESHOLD"`
	HunterTick        time.Duration `env:"GHOSTHUNT_HUNTER_TICK"`
	GhostTick         time.Duration `env:"GHOSTHUNT_GHOST_TICK"`
	Seed              uint64        `env:"GHOSTHUNT_SEED"`
	ReportDir         string        `env:"GHOSTHUNT_REPORT_DIR"`
	LogLevel          string        `env:"GHOSTHUNT_LOG_LEVEL"`
	ConfigFile        string        `env:"GHOSTHUNT_CONFIG"`
}

// Default returns the classic four-hunter setup.
func Default() Config {
	rules := engine.DefaultRules()
	return Config{
		Hunters:           4,
		FearMax:           rules.FearMax,
		BoredomMax:        rules.BoredomMax,
		EvidenceThreshold: rules.EvidenceThreshold,
		HunterTick:        rules.HunterTick,
		GhostTick:         rules.GhostTick,
		ReportDir:         models.DefaultReportDir,
		LogLevel:          "info",
	}
}

// LoadConfig loads defaults, then environment variables, then the TOML file
// named by GHOSTHUNT_CONFIG if any.
func LoadConfig() (*Config, error) {
	cfg := Default()
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.ConfigFile != "" {
		if err := cfg.LoadFile(cfg.ConfigFile); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type fileConfig struct {
	Hunters           int    `toml:"hunters"`
	FearMax           int    `toml:"fear_max"`
	BoredomMax        int    `toml:"boredom_max"`
	EvidenceThreshold int    `toml:"evidence_threshold"`
	HunterTick        string `toml:"hunter_tick"`
	GhostTick         string `toml:"ghost_tick"`
	Seed              uint64 `toml:"seed"`
	ReportDir         string `toml:"report_dir"`
	LogLevel          string `toml:"log_level"`
}

// LoadFile overrides cfg with every key present in the TOML file at path.
func (c *Config) LoadFile(path string) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
	}

	if meta.IsDefined("hunters") {
		c.Hunters = raw.Hunters
	}
	if meta.IsDefined("fear_max") {
		c.FearMax = raw.FearMax
	}
	if meta.IsDefined("boredom_max") {
		c.BoredomMax = raw.BoredomMax
	}
	if meta.IsDefined("evidence_threshold") {
		c.EvidenceThreshold = raw.EvidenceThreshold
	}
	if meta.IsDefined("hunter_tick") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.HunterTick))
		if err != nil {
			return fmt.Errorf("parse hunter_tick: %w", err)
		}
		c.HunterTick = d
	}
	if meta.IsDefined("ghost_tick") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.GhostTick))
		if err != nil {
			return fmt.Errorf("parse ghost_tick: %w", err)
		}
		c.GhostTick = d
	}
	if meta.IsDefined("seed") {
		c.Seed = raw.Seed
	}
	if meta.IsDefined("report_dir") {
		c.ReportDir = strings.TrimSpace(raw.ReportDir)
	}
	if meta.IsDefined("log_level") {
		c.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	return nil
}

// Rules converts the configured thresholds for the engine.
func (c *Config) Rules() engine.Rules {
	return engine.Rules{
		FearMax:           c.FearMax,
		BoredomMax:        c.BoredomMax,
		EvidenceThreshold: c.EvidenceThreshold,
		HunterTick:        c.HunterTick,
		GhostTick:         c.GhostTick,
	}
}

func (c *Config) Validate() error {
	if c.Hunters < 1 {
		return fmt.Errorf("hunters must be at least 1, got %d", c.Hunters)
	}
	if c.ReportDir == "" {
		return fmt.Errorf("report dir is empty")
	}
	return c.Rules().Validate()
}
