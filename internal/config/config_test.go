package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "charon.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFromTOML(t *testing.T) {
	path := writeConfig(t, `
[api]
listen = ":9999"

[logging]
default = "all2"
thread_ids = true
`)

	opts := &Options{Config: path, Listen: ":4500", LogDefault: "all1"}
	if err := Load(opts, nil); err != nil {
		t.Fatal(err)
	}

	if opts.Listen != ":9999" {
		t.Errorf("Listen = %q, want %q", opts.Listen, ":9999")
	}
	if opts.LogDefault != "all2" {
		t.Errorf("LogDefault = %q, want %q", opts.LogDefault, "all2")
	}
	if !opts.LogThreadIDs {
		t.Error("LogThreadIDs should be true")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
[logging]
default = "all2"
`)
	t.Setenv("CHARON_LOG_DEFAULT", "control3")

	opts := &Options{Config: path}
	if err := Load(opts, nil); err != nil {
		t.Fatal(err)
	}

	if opts.LogDefault != "control3" {
		t.Errorf("LogDefault = %q, want env override %q", opts.LogDefault, "control3")
	}
}

func TestLoadMissingFileIsFine(t *testing.T) {
	opts := &Options{Config: filepath.Join(t.TempDir(), "missing.toml"), LogDefault: "all1"}
	if err := Load(opts, nil); err != nil {
		t.Fatal(err)
	}
	if opts.LogDefault != "all1" {
		t.Errorf("LogDefault = %q, want default kept", opts.LogDefault)
	}
}

func TestLoadLoggingTable(t *testing.T) {
	path := writeConfig(t, `
[logging]
default = "all1"

[logging.loggers]
net = "raw3"
ike = "control2,error2"
`)

	opts := &Options{LogDefault: "all1", LogOutput: "stderr"}
	cfg, err := LoadLogging(path, opts)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Default != "all1" || cfg.Output != "stderr" {
		t.Errorf("unexpected base config: %+v", cfg)
	}
	if cfg.Loggers["net"] != "raw3" || cfg.Loggers["ike"] != "control2,error2" {
		t.Errorf("unexpected logger table: %v", cfg.Loggers)
	}
}

func TestLoadLoggingBadTOML(t *testing.T) {
	path := writeConfig(t, "not [valid")
	if _, err := LoadLogging(path, &Options{}); err == nil {
		t.Error("expected parse error")
	}
}

func TestFieldNameToFlag(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Listen", "listen"},
		{"LogDefault", "log-default"},
		{"Config", "config"},
	}
	for _, tt := range tests {
		if got := fieldNameToFlag(tt.in); got != tt.want {
			t.Errorf("fieldNameToFlag(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
