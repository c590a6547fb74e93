// Package config loads settings from an optional yaml file, with environment
// variables taking precedence over both the file and the defaults.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr          string `yaml:"addr"`
	CMSBaseURL    string `yaml:"cms_base_url"`
	DBPath        string `yaml:"db_path"`
	ContactFormID string `yaml:"contact_form_id"`
	TemplateDir   string `yaml:"template_dir"`
	SessionHours  int    `yaml:"session_hours"`
}

func Default() Config {
	return Config{
		Addr:         ":8080",
		CMSBaseURL:   "http://localhost:3000",
		DBPath:       "blogfront.db",
		TemplateDir:  "web/templates",
		SessionHours: 24,
	}
}

// Load reads path when it is non-empty and exists, then applies env overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return cfg, fmt.Errorf("read config: %w", err)
			}
		} else if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}
	cfg.applyEnv()
	if cfg.SessionHours <= 0 {
		cfg.SessionHours = 24
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("BLOGFRONT_ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("BLOGFRONT_CMS_URL"); v != "" {
		c.CMSBaseURL = v
	}
	if v := os.Getenv("BLOGFRONT_DB"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("BLOGFRONT_CONTACT_FORM_ID"); v != "" {
		c.ContactFormID = v
	}
	if v := os.Getenv("BLOGFRONT_TEMPLATES"); v != "" {
		c.TemplateDir = v
	}
	if v := os.Getenv("BLOGFRONT_SESSION_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.SessionHours = n
		}
	}
}

func (c Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionHours) * time.Hour
}
