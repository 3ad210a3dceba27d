// Package fonts locates a TrueType font able to render Hangul labels.
package fonts

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/golang/freetype/truetype"
)

// Font is a font file loaded into memory.
type Font struct {
	Path string
	Data []byte
}

// Name returns the file name of the font.
func (f *Font) Name() string {
	return filepath.Base(f.Path)
}

// TrueType parses the font for use by the chart renderer.
func (f *Font) TrueType() (*truetype.Font, error) {
	parsed, err := truetype.Parse(f.Data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", f.Path, err)
	}
	return parsed, nil
}

// Resolve loads the configured font, or the first platform candidate that
// exists when configured is empty. It returns nil without error when no
// candidate is installed.
func Resolve(configured string) (*Font, error) {
	if configured != "" {
		return read(configured)
	}

	for _, candidate := range Candidates(runtime.GOOS) {
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		return read(candidate)
	}
	return nil, nil
}

// Candidates lists the platform font files tried in order.
func Candidates(goos string) []string {
	switch goos {
	case "darwin":
		return []string{
			"/System/Library/Fonts/Supplemental/AppleGothic.ttf",
			"/Library/Fonts/AppleGothic.ttf",
		}
	case "windows":
		windir := os.Getenv("WINDIR")
		if windir == "" {
			windir = `C:\Windows`
		}
		return []string{
			filepath.Join(windir, "Fonts", "malgun.ttf"),
		}
	default:
		return []string{
			"/usr/share/fonts/truetype/nanum/NanumGothic.ttf",
			"/usr/share/fonts/nanum/NanumGothic.ttf",
			"/usr/share/fonts/TTF/NanumGothic.ttf",
		}
	}
}

func read(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	return &Font{Path: path, Data: data}, nil
}
