package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"rhystmorgan/veContacts/internal/storage"
	"rhystmorgan/veContacts/internal/validation"
)

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"

	AudioBell = "bell"
	AudioOff  = "off"

	configFileName = "config.yaml"
	logFileName    = "vecontacts.log"
)

type Config struct {
	DataDir    string        `yaml:"data_dir"`
	Backend    string        `yaml:"backend"`
	StorageKey string        `yaml:"storage_key"`
	FormRule   string        `yaml:"form_rule"`
	Audio      string        `yaml:"audio"`
	LoadDelay  time.Duration `yaml:"load_delay"`
	CloseDelay time.Duration `yaml:"close_delay"`
	Debug      bool          `yaml:"debug"`
}

func GetDefaultConfig() *Config {
	dataDir, err := storage.DefaultDataDir()
	if err != nil {
		dataDir = ".vecontacts"
	}

	return &Config{
		DataDir:    dataDir,
		Backend:    BackendFile,
		StorageKey: storage.DefaultContactsKey,
		FormRule:   string(validation.RuleNameAndEmailOrPhone),
		Audio:      AudioBell,
		LoadDelay:  800 * time.Millisecond,
		CloseDelay: 300 * time.Millisecond,
	}
}

// Load builds the configuration from defaults, then the YAML file at path
// (or <data dir>/config.yaml when path is empty and that file exists), then
// VECONTACTS_* environment variables.
func Load(path string) (*Config, error) {
	config := GetDefaultConfig()
	config.DataDir = getEnvOrDefault("VECONTACTS_DATA_DIR", config.DataDir)

	explicit := path != ""
	if !explicit {
		path = filepath.Join(config.DataDir, configFileName)
	}

	if err := config.loadFile(path, explicit); err != nil {
		return nil, err
	}
	config.applyEnvOverrides()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) loadFile(path string, mustExist bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !mustExist {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	c.DataDir = getEnvOrDefault("VECONTACTS_DATA_DIR", c.DataDir)
	c.Backend = getEnvOrDefault("VECONTACTS_BACKEND", c.Backend)
	c.StorageKey = getEnvOrDefault("VECONTACTS_STORAGE_KEY", c.StorageKey)
	c.FormRule = getEnvOrDefault("VECONTACTS_FORM_RULE", c.FormRule)
	c.Audio = getEnvOrDefault("VECONTACTS_AUDIO", c.Audio)
	c.LoadDelay = parseDurationOrDefault("VECONTACTS_LOAD_DELAY", c.LoadDelay)
	c.CloseDelay = parseDurationOrDefault("VECONTACTS_CLOSE_DELAY", c.CloseDelay)
	if IsDebugEnabled() {
		c.Debug = true
	}
}

func (c *Config) Validate() error {
	switch c.Backend {
	case BackendFile, BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("invalid backend: %s (must be 'file', 'sqlite' or 'memory')", c.Backend)
	}

	if strings.TrimSpace(c.DataDir) == "" {
		return fmt.Errorf("data directory must not be empty")
	}

	if strings.TrimSpace(c.StorageKey) == "" {
		return fmt.Errorf("storage key must not be empty")
	}

	if _, err := validation.ParseRule(c.FormRule); err != nil {
		return err
	}

	switch c.Audio {
	case AudioBell, AudioOff:
	default:
		return fmt.Errorf("invalid audio mode: %s (must be 'bell' or 'off')", c.Audio)
	}

	if c.LoadDelay < 0 {
		return fmt.Errorf("load delay must be non-negative, got: %v", c.LoadDelay)
	}

	if c.CloseDelay < 0 {
		return fmt.Errorf("close delay must be non-negative, got: %v", c.CloseDelay)
	}

	return nil
}

// Rule returns the parsed form validation rule. Call after Validate.
func (c *Config) Rule() validation.Rule {
	rule, err := validation.ParseRule(c.FormRule)
	if err != nil {
		return validation.RuleNameAndEmailOrPhone
	}
	return rule
}

func (c *Config) LogFile() string {
	return filepath.Join(c.DataDir, logFileName)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func IsDebugEnabled() bool {
	return os.Getenv("VECONTACTS_DEBUG") == "true" || os.Getenv("VECONTACTS_DEBUG") == "1"
}
