package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/akyairhashvil/zenith/internal/util"
)

// Config is the resolved runtime configuration.
type Config struct {
	TargetYear   int
	DataDir      string
	DBFile       string
	ShareBaseURL string
	Theme        string
	LogLevel     string
	LogFile      string
}

// Overrides carries command-line flag values. Zero values are ignored.
type Overrides struct {
	TargetYear int
	DataDir    string
	DBFile     string
	Theme      string
	LogLevel   string
}

// DBPath is the SQLite file location. Absolute DBFile values win.
func (c *Config) DBPath() string {
	if filepath.IsAbs(c.DBFile) {
		return c.DBFile
	}
	return filepath.Join(c.DataDir, c.DBFile)
}

// Validate reports values that would make the application misbehave.
func (c *Config) Validate() error {
	if c.TargetYear < 1970 || c.TargetYear > 9999 {
		return fmt.Errorf("target_year out of range: %d", c.TargetYear)
	}
	if strings.TrimSpace(c.DBFile) == "" {
		return errors.New("db_file must not be empty")
	}
	if !strings.HasPrefix(c.ShareBaseURL, "http://") && !strings.HasPrefix(c.ShareBaseURL, "https://") {
		return fmt.Errorf("share_base_url must be an http(s) URL: %q", c.ShareBaseURL)
	}
	return nil
}

// Load reads configuration from defaults, the config file and ZENITH_*
// environment variables, in increasing priority.
func Load() (*Config, error) {
	return LoadWithOverrides(Overrides{})
}

// LoadWithOverrides is Load with flag values applied last.
func LoadWithOverrides(o Overrides) (*Config, error) {
	v := newBaseViper()
	path := ConfigPath()
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	cfg := &Config{
		TargetYear:   v.GetInt("target_year"),
		DataDir:      v.GetString("data_dir"),
		DBFile:       v.GetString("db_file"),
		ShareBaseURL: v.GetString("share_base_url"),
		Theme:        v.GetString("theme"),
		LogLevel:     v.GetString("log_level"),
		LogFile:      v.GetString("log_file"),
	}

	if o.TargetYear != 0 {
		cfg.TargetYear = o.TargetYear
	}
	if o.DataDir != "" {
		cfg.DataDir = o.DataDir
	}
	if o.DBFile != "" {
		cfg.DBFile = o.DBFile
	}
	if o.Theme != "" {
		cfg.Theme = o.Theme
	}
	if o.LogLevel != "" {
		cfg.LogLevel = o.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newBaseViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault("target_year", DefaultTargetYear)
	v.SetDefault("data_dir", util.DataDir(AppName))
	v.SetDefault("db_file", DBFileName)
	v.SetDefault("share_base_url", DefaultShareBaseURL)
	v.SetDefault("theme", DefaultTheme)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", filepath.Join(util.DataDir(AppName), "zenith.log"))
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// ConfigPath returns $XDG_CONFIG_HOME/zenith/config.yaml, falling back to
// ~/.config.
func ConfigPath() string {
	return filepath.Join(util.ConfigDir(AppName), ConfigFileName)
}

// Save writes cfg to the config file, creating its directory.
func Save(cfg *Config) error {
	path := ConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	v := viper.New()
	v.SetConfigType("yaml")
	v.Set("target_year", cfg.TargetYear)
	v.Set("data_dir", cfg.DataDir)
	v.Set("db_file", cfg.DBFile)
	v.Set("share_base_url", cfg.ShareBaseURL)
	v.Set("theme", cfg.Theme)
	v.Set("log_level", cfg.LogLevel)
	v.Set("log_file", cfg.LogFile)
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}
