package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"expenses/domain"
)

// Config is the caller-owned configuration: the allowed category set and the file
// paths. The budget is deliberately absent, it lives only in the session.
type Config struct {
	Categories []string `yaml:"categories"`
	LedgerPath string   `yaml:"ledger_path"`
	MenuPath   string   `yaml:"menu_path"`
	LogLevel   string   `yaml:"log_level"`
}

func Default() *Config {
	return &Config{
		Categories: []string{"Food", "Transportation", "Entertainment", "Utilities", "Health", "Other"},
		LedgerPath: "expenses.csv",
		MenuPath:   "menu/menu.json",
		LogLevel:   "info",
	}
}

// Load reads the YAML config at path over the defaults, then applies environment
// overrides. A missing file is fine: the defaults make the program runnable as-is.
func Load(path string) (*Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// first run, defaults only
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if v := os.Getenv("LEDGER_PATH"); v != "" {
		cfg.LedgerPath = v
	}
	if v := os.Getenv("MENU_PATH"); v != "" {
		cfg.MenuPath = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("CATEGORIES"); v != "" {
		cfg.Categories = splitList(v)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if len(c.Categories) == 0 {
		return fmt.Errorf("config: %w", domain.ErrNoCategories)
	}
	if strings.TrimSpace(c.LedgerPath) == "" {
		return fmt.Errorf("config: ledger path is empty")
	}
	return nil
}

// CategorySet builds the allowed set handed to the ledger operations.
func (c *Config) CategorySet() domain.CategorySet {
	return domain.NewCategorySet(c.Categories...)
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
