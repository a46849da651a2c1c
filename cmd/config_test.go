package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/litekite/litekite/api"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("LITEKITE_SERVER", "")
	t.Setenv("LITEKITE_AI_SERVER", "")

	cfg := loadConfig()
	if cfg.Server != api.DefaultBaseURL {
		t.Errorf("Server = %q, want %q", cfg.Server, api.DefaultBaseURL)
	}
	if cfg.AIServer != api.DefaultAIBaseURL {
		t.Errorf("AIServer = %q, want %q", cfg.AIServer, api.DefaultAIBaseURL)
	}
}

func TestLoadConfig_File(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("LITEKITE_SERVER", "")
	t.Setenv("LITEKITE_AI_SERVER", "")

	dir := filepath.Join(home, "litekite")
	if err := os.MkdirAll(dir, 0700); err != nil {
		t.Fatal(err)
	}
	content := "server: http://localhost:8080/api\nai_server: http://localhost:9090/api\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg := loadConfig()
	if cfg.Server != "http://localhost:8080/api" {
		t.Errorf("Server = %q", cfg.Server)
	}
	if cfg.AIServer != "http://localhost:9090/api" {
		t.Errorf("AIServer = %q", cfg.AIServer)
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	dir := filepath.Join(home, "litekite")
	if err := os.MkdirAll(dir, 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server: http://from-file\n"), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LITEKITE_SERVER", "http://from-env")
	t.Setenv("LITEKITE_AI_SERVER", "")

	if cfg := loadConfig(); cfg.Server != "http://from-env" {
		t.Errorf("Server = %q, want the environment value", cfg.Server)
	}
}
