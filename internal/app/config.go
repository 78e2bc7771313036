package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	DefaultFoodLookupURL = "https://world.openfoodfacts.org"

	FoodProviderOpenFoodFacts = "openfoodfacts"
	FoodProviderUSDA          = "usda"
)

// Config is the on-disk TOML configuration. Empty values mean "use the
// built-in default".
type Config struct {
	DBPath               string `toml:"db_path"`
	LogLevel             string `toml:"log_level"`
	LogFile              string `toml:"log_file"`
	LogToStderr          bool   `toml:"log_to_stderr"`
	DefaultActivityLevel string `toml:"default_activity_level"`
	DefaultMacroGoal     string `toml:"default_macro_goal"`
	FoodProvider         string `toml:"food_provider"`
	FoodLookupURL        string `toml:"food_lookup_url"`
	USDAAPIKey           string `toml:"usda_api_key"`
}

func DefaultConfig() Config {
	return Config{
		LogLevel:             "warn",
		DefaultActivityLevel: "moderate",
		DefaultMacroGoal:     "maintain",
		FoodProvider:         FoodProviderOpenFoodFacts,
		FoodLookupURL:        DefaultFoodLookupURL,
	}
}

// LoadConfig reads path on top of the defaults. A missing file is not an
// error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	return cfg, nil
}

func SaveConfig(path string, cfg Config) error {
	if err := EnsureDir(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config %s: %w", path, err)
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		_ = f.Close()
		return fmt.Errorf("write config %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close config %s: %w", path, err)
	}
	return nil
}

// Values lists the config as key/value pairs keyed by TOML name.
func (c Config) Values() map[string]string {
	return map[string]string{
		"db_path":                c.DBPath,
		"log_level":              c.LogLevel,
		"log_file":               c.LogFile,
		"log_to_stderr":          strconv.FormatBool(c.LogToStderr),
		"default_activity_level": c.DefaultActivityLevel,
		"default_macro_goal":     c.DefaultMacroGoal,
		"food_provider":          c.FoodProvider,
		"food_lookup_url":        c.FoodLookupURL,
		"usda_api_key":           maskSecret(c.USDAAPIKey),
	}
}

func ConfigKeys() []string {
	keys := make([]string, 0)
	for k := range (Config{}).Values() {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Set assigns one value by TOML key.
func (c *Config) Set(key, value string) error {
	key = strings.TrimSpace(strings.ToLower(key))
	value = strings.TrimSpace(value)
	switch key {
	case "db_path":
		c.DBPath = value
	case "log_level":
		c.LogLevel = value
	case "log_file":
		if value == "default" {
			path, err := DefaultLogPath()
			if err != nil {
				return err
			}
			value = path
		}
		c.LogFile = value
	case "log_to_stderr":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("parse %s: %w", key, err)
		}
		c.LogToStderr = b
	case "default_activity_level":
		c.DefaultActivityLevel = value
	case "default_macro_goal":
		c.DefaultMacroGoal = value
	case "food_provider":
		value = strings.ToLower(value)
		if value != FoodProviderOpenFoodFacts && value != FoodProviderUSDA {
			return fmt.Errorf("invalid food_provider %q (use %s or %s)", value, FoodProviderOpenFoodFacts, FoodProviderUSDA)
		}
		c.FoodProvider = value
	case "food_lookup_url":
		c.FoodLookupURL = value
	case "usda_api_key":
		c.USDAAPIKey = value
	default:
		return fmt.Errorf("unknown config key %q (known: %s)", key, strings.Join(ConfigKeys(), ", "))
	}
	return nil
}

func maskSecret(v string) string {
	if len(v) <= 4 {
		return strings.Repeat("*", len(v))
	}
	return strings.Repeat("*", len(v)-4) + v[len(v)-4:]
}
