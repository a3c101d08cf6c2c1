// Package fonts locates TrueType fonts and turns them into drawable faces.
//
// A font is named either by a file path, by a bare file name that is looked
// up in the system font directories, or by [Builtin], which selects the
// Go Mono font compiled into the binary. Resolution happens once, before any
// network traffic, so a missing font fails the run immediately.
package fonts

import (
	"os"
	"strings"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/matzehuels/inspiration/pkg/errors"
)

// Builtin names the embedded Go Mono font.
const Builtin = "gomono"

// Parsed builtin font (computed once on first access).
var (
	builtinFont     *truetype.Font
	builtinFontErr  error
	builtinFontOnce sync.Once
)

// Resolve returns the file path for name.
//
// An existing file path is returned as is. A bare file name such as
// "cmtt10.ttf" is searched for in the system font directories. [Builtin]
// resolves to itself. Anything else is a FONT_NOT_FOUND error.
func Resolve(name string) (string, error) {
	if name == "" {
		return "", errors.New(errors.ErrCodeFontNotFound, "no font configured")
	}
	if name == Builtin {
		return Builtin, nil
	}
	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		return name, nil
	}
	if strings.ContainsAny(name, `/\`) {
		return "", errors.New(errors.ErrCodeFontNotFound, "font file %s does not exist", name)
	}
	path, err := findfont.Find(name)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeFontNotFound, err, "font %s not found", name)
	}
	return path, nil
}

// Load resolves name and returns a face rendering at size pixels.
func Load(name string, size float64) (font.Face, error) {
	path, err := Resolve(name)
	if err != nil {
		return nil, err
	}
	if path == Builtin {
		f, err := builtin()
		if err != nil {
			return nil, err
		}
		return NewFace(f, size), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFontNotFound, err, "read font %s", path)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFontNotFound, err, "font %s", path)
	}
	return NewFace(f, size), nil
}

// Parse parses TrueType font data.
func Parse(data []byte) (*truetype.Font, error) {
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse truetype data")
	}
	return f, nil
}

// NewFace returns a face for f at size pixels (72 DPI, so points equal pixels).
// Faces are not safe for concurrent use.
func NewFace(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}

func builtin() (*truetype.Font, error) {
	builtinFontOnce.Do(func() {
		builtinFont, builtinFontErr = Parse(gomono.TTF)
	})
	return builtinFont, builtinFontErr
}
