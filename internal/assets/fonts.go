package assets

import (
	"fmt"
	"log"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// LoadFontFace создаёт шрифт заданного размера из встроенного Go Regular
func LoadFontFace(size float64) (font.Face, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	return face, nil
}

// FontFaceOrDefault при ошибке возвращает моноширинный bitmap-шрифт
func FontFaceOrDefault(size float64) font.Face {
	face, err := LoadFontFace(size)
	if err != nil {
		log.Printf("WARNING: %v, falling back to basicfont", err)
		return basicfont.Face7x13
	}
	return face
}
