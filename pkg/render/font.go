package render

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// Label metrics shared by every sink. The SVG sink sizes text with these
// and the PNG sink rasterizes with the matching face, so labels occupy
// the same canvas space in both outputs.
const (
	fontSize   = 12.0
	charWidth  = 8.0
	lineHeight = 16.0
)

// FontFamily is the CSS font-family the SVG sink declares for labels.
const FontFamily = "Go Mono, Menlo, Consolas, monospace"

// Cache for the parsed label face (computed once on first access).
var (
	faceOnce sync.Once
	face     font.Face
	faceErr  error
)

// labelFace returns the monospace face used for PNG label rasterization.
// The result is cached after first parse.
func labelFace() (font.Face, error) {
	faceOnce.Do(func() {
		f, err := truetype.Parse(gomono.TTF)
		if err != nil {
			faceErr = fmt.Errorf("parse label font: %w", err)
			return
		}
		face = truetype.NewFace(f, &truetype.Options{
			Size:    fontSize,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	})
	return face, faceErr
}
