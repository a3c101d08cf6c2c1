package fonts

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/gomono"

	"github.com/matzehuels/inspiration/pkg/errors"
)

func TestResolveBuiltin(t *testing.T) {
	path, err := Resolve(Builtin)
	if err != nil {
		t.Fatalf("Resolve(Builtin) error: %v", err)
	}
	if path != Builtin {
		t.Errorf("Resolve(Builtin) = %q, want %q", path, Builtin)
	}
}

func TestResolveExistingPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mono.ttf")
	if err := os.WriteFile(path, gomono.TTF, 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := Resolve(path)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if got != path {
		t.Errorf("Resolve() = %q, want %q", got, path)
	}
}

func TestResolveMissing(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"missing path", filepath.Join(t.TempDir(), "nope.ttf")},
		{"unknown name", "definitely-not-installed-4f1c2a.ttf"},
		{"directory", t.TempDir() + "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.input)
			if !errors.Is(err, errors.ErrCodeFontNotFound) {
				t.Errorf("Resolve(%q) error = %v, want FONT_NOT_FOUND", tt.input, err)
			}
		})
	}
}

func TestLoadBuiltin(t *testing.T) {
	face, err := Load(Builtin, 25)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	defer face.Close()

	m := face.Metrics()
	if m.Height.Ceil() < 25 {
		t.Errorf("line height = %d px, want at least the font size", m.Height.Ceil())
	}
	if _, ok := face.GlyphAdvance('M'); !ok {
		t.Error("builtin face should have a glyph for 'M'")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mono.ttf")
	if err := os.WriteFile(path, gomono.TTF, 0o644); err != nil {
		t.Fatal(err)
	}
	face, err := Load(path, 12)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	face.Close()
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.ttf")
	if err := os.WriteFile(path, []byte("not a font"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path, 12)
	if !errors.Is(err, errors.ErrCodeFontNotFound) {
		t.Errorf("Load() error = %v, want FONT_NOT_FOUND", err)
	}
}
