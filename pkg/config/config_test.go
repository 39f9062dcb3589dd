package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Goden-Gun/fault-lib/pkg/config"
)

type testConfig struct {
	Log      config.LogConfig      `yaml:"log" mapstructure:"log"`
	Messages config.MessagesConfig `yaml:"messages" mapstructure:"messages"`
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("APP_ENV", "unittest")

	content := `log:
  format: text
  level: debug
  report_caller: true
messages:
  locale: de
`
	if err := os.WriteFile(filepath.Join(dir, "config_unittest.yaml"), []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := &testConfig{}
	if err := config.LoadConfig(cfg, config.LoadOptions{ConfigPath: dir}); err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.Log.Format != "text" || cfg.Log.Level != "debug" || !cfg.Log.ReportCaller {
		t.Fatalf("log config=%+v", cfg.Log)
	}

	if cfg.Messages.Locale != "de" {
		t.Fatalf("messages config=%+v", cfg.Messages)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("APP_ENV", "nowhere")

	cfg := &testConfig{}
	if err := config.LoadConfig(cfg, config.LoadOptions{ConfigPath: dir}); err == nil {
		t.Fatalf("expected error for missing config file")
	}

	if err := config.LoadConfig(cfg, config.LoadOptions{ConfigPath: dir, AllowNoConfig: true}); err != nil {
		t.Fatalf("AllowNoConfig should tolerate a missing file: %v", err)
	}
}

func TestApplyDefaults(t *testing.T) {
	lc := config.LogConfig{}
	lc.ApplyDefaults()
	if lc.Format != "json" || lc.Level != "info" {
		t.Fatalf("log defaults=%+v", lc)
	}

	mc := config.MessagesConfig{}
	mc.ApplyDefaults()
	if mc.TableDir != "./locales" {
		t.Fatalf("messages defaults=%+v", mc)
	}
	if mc.Locale != "" {
		t.Fatalf("locale must default to the base catalog")
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("APP_ENV", "")
	if got := config.GetEnv(); got != "dev" {
		t.Fatalf("GetEnv=%q want dev", got)
	}

	t.Setenv("APP_ENV", "production")
	if got := config.GetEnv(); got != "production" {
		t.Fatalf("GetEnv=%q", got)
	}
}
