package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tangzhangming/arbor/internal/render"
)

func TestGenerateDefault(t *testing.T) {
	c := GenerateDefault()
	if c.Render.Style != "tree" {
		t.Errorf("expected default style tree, got %s", c.Render.Style)
	}
	if c.Render.Indent != "  " || c.Render.Bullet != "* " {
		t.Errorf("unexpected defaults: indent %q, bullet %q", c.Render.Indent, c.Render.Bullet)
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)

	saved := GenerateDefault()
	saved.Render.Style = "bullet"
	saved.Render.Bullet = "- "
	if err := saved.Save(path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Render.Style != "bullet" {
		t.Errorf("expected style bullet, got %s", loaded.Render.Style)
	}
	if loaded.Render.Bullet != "- " {
		t.Errorf("expected bullet %q, got %q", "- ", loaded.Render.Bullet)
	}
	if loaded.Render.Indent != "  " {
		t.Errorf("expected indent %q, got %q", "  ", loaded.Render.Indent)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}

func TestLoadConfigInvalidToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	if err := os.WriteFile(path, []byte("[render\nstyle = "), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected parse error, got nil")
	}
}

func TestOptions(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		style render.Style
	}{
		{"tree", Config{Render: RenderConfig{Style: "tree"}}, render.StyleTree},
		{"indent", Config{Render: RenderConfig{Style: "indent"}}, render.StyleIndent},
		{"bullet", Config{Render: RenderConfig{Style: "bullet"}}, render.StyleBullet},
		{"unknown falls back", Config{Render: RenderConfig{Style: "folder"}}, render.StyleTree},
		{"empty falls back", Config{}, render.StyleTree},
	}

	for _, tt := range tests {
		opts := tt.cfg.Options()
		if opts.Style != tt.style {
			t.Errorf("%s: expected style %v, got %v", tt.name, tt.style, opts.Style)
		}
		if opts.Indent == "" || opts.Bullet == "" {
			t.Errorf("%s: empty settings must fall back to defaults", tt.name)
		}
	}
}
