package cmd

import (
	"log"
	"os"
	"path/filepath"

	"github.com/litekite/litekite/api"
	"gopkg.in/yaml.v3"
)

// Config holds the server endpoints. Resolution order is flags, then
// environment, then the config file, then the built-in defaults.
type Config struct {
	Server   string `yaml:"server"`
	AIServer string `yaml:"ai_server"`
}

func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "litekite", "config.yaml")
}

func loadConfig() Config {
	cfg := Config{
		Server:   api.DefaultBaseURL,
		AIServer: api.DefaultAIBaseURL,
	}

	if path := configPath(); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				log.Printf("warning: ignoring malformed config %s: %v", path, err)
			}
		}
	}
	if cfg.Server == "" {
		cfg.Server = api.DefaultBaseURL
	}
	if cfg.AIServer == "" {
		cfg.AIServer = api.DefaultAIBaseURL
	}

	if v := os.Getenv("LITEKITE_SERVER"); v != "" {
		cfg.Server = v
	}
	if v := os.Getenv("LITEKITE_AI_SERVER"); v != "" {
		cfg.AIServer = v
	}
	return cfg
}
