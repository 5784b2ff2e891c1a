package assets

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const (
	RegularSize = 12
	TitleSize   = 18
	LargeSize   = 40
)

// Fonts — набор шрифтов интерфейса
type Fonts struct {
	Regular font.Face
	Title   font.Face
	Large   font.Face
}

// LoadFonts loads the UI faces from a TTF/OTF file. An empty path uses the
// bundled Go Regular font. Any failure falls back to the fixed 7x13 bitmap
// face, so the caller always gets usable fonts.
func LoadFonts(path string) *Fonts {
	data := goregular.TTF
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			log.Printf("Assets: %v, using bitmap font", err)
			return bitmapFonts()
		}
		data = b
	}

	fonts, err := parseFonts(data)
	if err != nil {
		log.Printf("Assets: %v, using bitmap font", err)
		return bitmapFonts()
	}
	return fonts
}

func parseFonts(data []byte) (*Fonts, error) {
	tt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face := func(size float64) (font.Face, error) {
		return opentype.NewFace(tt, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}

	fonts := &Fonts{}
	if fonts.Regular, err = face(RegularSize); err != nil {
		return nil, fmt.Errorf("failed to create face: %w", err)
	}
	if fonts.Title, err = face(TitleSize); err != nil {
		return nil, fmt.Errorf("failed to create face: %w", err)
	}
	if fonts.Large, err = face(LargeSize); err != nil {
		return nil, fmt.Errorf("failed to create face: %w", err)
	}
	return fonts, nil
}

func bitmapFonts() *Fonts {
	return &Fonts{
		Regular: basicfont.Face7x13,
		Title:   basicfont.Face7x13,
		Large:   basicfont.Face7x13,
	}
}
