package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/evananthony17/discord-ask-bot-sub000/internal/domain"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".askbot"
	envPrefix  = "ASKBOT"
)

const (
	KeyRosterPath           = "roster.path"
	KeyNicknamesPath        = "nicknames.path"
	KeyHistoryPath          = "history.path"
	KeyHistoryRatePerSecond = "history.rate_per_second"
	KeyHistoryBurst         = "history.burst"
	KeyRecencyWindow        = "recency.window"
	KeyRecencyMaxMessages   = "recency.max_messages"
	KeyMaxResults           = "engine.max_results"
	KeyMaxChoices           = "engine.max_choices"
	KeySessionTimeout       = "session.timeout"
)

// Config is the resolved configuration. The viper instance it came from is
// kept so adapters can read their own keys.
type Config struct {
	RosterPath           string
	NicknamesPath        string
	HistoryPath          string
	HistoryRatePerSecond float64
	HistoryBurst         int
	RecencyWindow        time.Duration
	RecencyMaxMessages   int
	MaxResults           int
	MaxChoices           int
	SessionTimeout       time.Duration
	Thresholds           domain.Thresholds

	Viper *viper.Viper
}

// Load reads homeDir/.askbot/config.toml when present, applies ASKBOT_
// environment overrides and fills defaults for everything else.
func Load(v *viper.Viper, homeDir string) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	dir := filepath.Join(homeDir, configDir)
	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(dir)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, dir)

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		RosterPath:           v.GetString(KeyRosterPath),
		NicknamesPath:        v.GetString(KeyNicknamesPath),
		HistoryPath:          v.GetString(KeyHistoryPath),
		HistoryRatePerSecond: v.GetFloat64(KeyHistoryRatePerSecond),
		HistoryBurst:         v.GetInt(KeyHistoryBurst),
		RecencyWindow:        v.GetDuration(KeyRecencyWindow),
		RecencyMaxMessages:   v.GetInt(KeyRecencyMaxMessages),
		MaxResults:           v.GetInt(KeyMaxResults),
		MaxChoices:           v.GetInt(KeyMaxChoices),
		SessionTimeout:       v.GetDuration(KeySessionTimeout),
		Thresholds: domain.Thresholds{
			SubstantialFraction:  v.GetFloat64("thresholds.substantial_fraction"),
			SubstringInside:      v.GetFloat64("thresholds.substring_inside"),
			SubstringContaining:  v.GetFloat64("thresholds.substring_containing"),
			SingleVsMulti:        v.GetFloat64("thresholds.single_vs_multi"),
			SingleVsMultiRelax:   v.GetFloat64("thresholds.single_vs_multi_relax"),
			LastNameRelaxTrigger: v.GetFloat64("thresholds.last_name_relax_trigger"),
			MultiToken:           v.GetFloat64("thresholds.multi_token"),
			Default:              v.GetFloat64("thresholds.default"),
			Problematic:          v.GetFloat64("thresholds.problematic"),
			ValidatorFloor:       v.GetFloat64("thresholds.validator_floor"),
		},
		Viper: v,
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if err := c.Thresholds.Validate(); err != nil {
		return fmt.Errorf("invalid thresholds: %w", err)
	}
	if c.MaxResults < 1 {
		return fmt.Errorf("%s must be at least 1", KeyMaxResults)
	}
	if c.MaxChoices < 1 || c.MaxChoices > domain.MaxSessionChoices {
		return fmt.Errorf("%s must be between 1 and %d", KeyMaxChoices, domain.MaxSessionChoices)
	}
	if c.SessionTimeout <= 0 {
		return fmt.Errorf("%s must be positive", KeySessionTimeout)
	}
	if c.RecencyWindow <= 0 {
		return fmt.Errorf("%s must be positive", KeyRecencyWindow)
	}

	return nil
}

func setDefaults(v *viper.Viper, dir string) {
	defaults := domain.DefaultThresholds()

	v.SetDefault(KeyRosterPath, filepath.Join(dir, "roster.toml"))
	v.SetDefault(KeyNicknamesPath, filepath.Join(dir, "nicknames.yaml"))
	v.SetDefault(KeyHistoryPath, filepath.Join(dir, "history.toml"))
	v.SetDefault(KeyHistoryRatePerSecond, 5)
	v.SetDefault(KeyHistoryBurst, 5)
	v.SetDefault(KeyRecencyWindow, "72h")
	v.SetDefault(KeyRecencyMaxMessages, 200)
	v.SetDefault(KeyMaxResults, 8)
	v.SetDefault(KeyMaxChoices, 5)
	v.SetDefault(KeySessionTimeout, "30s")
	v.SetDefault("thresholds.substantial_fraction", defaults.SubstantialFraction)
	v.SetDefault("thresholds.substring_inside", defaults.SubstringInside)
	v.SetDefault("thresholds.substring_containing", defaults.SubstringContaining)
	v.SetDefault("thresholds.single_vs_multi", defaults.SingleVsMulti)
	v.SetDefault("thresholds.single_vs_multi_relax", defaults.SingleVsMultiRelax)
	v.SetDefault("thresholds.last_name_relax_trigger", defaults.LastNameRelaxTrigger)
	v.SetDefault("thresholds.multi_token", defaults.MultiToken)
	v.SetDefault("thresholds.default", defaults.Default)
	v.SetDefault("thresholds.problematic", defaults.Problematic)
	v.SetDefault("thresholds.validator_floor", defaults.ValidatorFloor)
}
