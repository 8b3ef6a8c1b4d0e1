package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := Default()
	if cfg.IP != want.IP || cfg.Port != want.Port || cfg.SerialDevice != want.SerialDevice || cfg.SerialBaud != want.SerialBaud {
		t.Fatalf("got %+v, want defaults %+v", cfg, want)
	}
}

func TestLoadOverridesFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := `
ip = "0.0.0.0"
port = 9090
automato_ids = [1, 2, 3]
serial_device = "/dev/ttyUSB3"
serial_baud = 57600
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.IP != "0.0.0.0" || cfg.Port != 9090 || cfg.SerialDevice != "/dev/ttyUSB3" || cfg.SerialBaud != 57600 {
		t.Fatalf("got %+v", cfg)
	}
	ids := cfg.AutomatoIDBytes()
	if len(ids) != 3 || ids[0] != 1 || ids[1] != 2 || ids[2] != 3 {
		t.Fatalf("automato ids = %v, want [1 2 3]", ids)
	}
}

func TestLoadMissingFileStillAppliesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.IP != Default().IP {
		t.Fatalf("got %+v", cfg)
	}
}

func TestStaticPathEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv(staticPathEnvVar, "/srv/static")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.StaticPath != "/srv/static" {
		t.Fatalf("static path = %q, want /srv/static", cfg.StaticPath)
	}
}

func TestStaticPathFileWins(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(`static_path = "/from/file"`), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv(staticPathEnvVar, "/from/env")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.StaticPath != "/from/file" {
		t.Fatalf("static path = %q, want the file's value to win", cfg.StaticPath)
	}
}
