package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
frames:
  - a.png
  - b.png
delay_ms: 0
output: out.png
debug: true
`))
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Frames) != 2 || cfg.Frames[1] != "b.png" {
		t.Errorf("frames = %v", cfg.Frames)
	}
	if cfg.Delay() != 0 {
		t.Errorf("delay = %d, want 0", cfg.Delay())
	}
	if cfg.Output != "out.png" || !cfg.Debug {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]byte("frames: [a.png]\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Delay() != DefaultDelayMs {
		t.Errorf("delay = %d, want %d", cfg.Delay(), DefaultDelayMs)
	}
	if cfg.DelayMs == nil || *cfg.DelayMs != DefaultDelayMs {
		t.Error("Validate did not fill in delay_ms")
	}
}

func TestParseInvalid(t *testing.T) {
	tests := map[string]string{
		"no frames":   "delay_ms: 10\n",
		"empty frame": "frames: [a.png, '']\n",
		"negative":    "frames: [a.png]\ndelay_ms: -1\n",
		"too long":    "frames: [a.png]\ndelay_ms: 70000\n",
		"not yaml":    "frames: [a.png\n",
		"wrong type":  "frames: {a: b}\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(data)); err == nil {
				t.Error("accepted")
			}
		})
	}
}

func TestLoadResolvesPaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "job.yaml")
	abs := filepath.Join(dir, "abs.png")
	data := "frames: [a.png, " + abs + "]\noutput: out/anim.png\n"
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "a.png"); cfg.Frames[0] != want {
		t.Errorf("frames[0] = %q, want %q", cfg.Frames[0], want)
	}
	if cfg.Frames[1] != abs {
		t.Errorf("frames[1] = %q, want %q", cfg.Frames[1], abs)
	}
	if want := filepath.Join(dir, "out", "anim.png"); cfg.Output != want {
		t.Errorf("output = %q, want %q", cfg.Output, want)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "failed to read config file") {
		t.Errorf("got %v", err)
	}
}
