package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	HUD   FontName = "hud"
	Title FontName = "title"
	Big   FontName = "big"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

// Face returns the font wrapped for ebiten's text/v2 renderer.
func (f FontName) Face() text.Face {
	getFont(f)
	return textFaces[f]
}

var (
	fonts     = map[FontName]font.Face{}
	textFaces = map[FontName]text.Face{}
)

// LoadDefaults registers the built-in Go Regular face at the HUD sizes.
func LoadDefaults(hudSize, titleSize, bigSize float64) error {
	for name, size := range map[FontName]float64{HUD: hudSize, Title: titleSize, Big: bigSize} {
		if err := LoadFontWithSize(name, goregular.TTF, size); err != nil {
			return err
		}
	}
	return nil
}

func LoadFont(name FontName, ttf []byte) error {
	return LoadFontWithSize(name, ttf, 10)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	face := truetype.NewFace(fontData, &truetype.Options{Size: size})
	fonts[name] = face
	textFaces[name] = text.NewGoXFace(face)
	return nil
}

// Loaded reports whether a face has been registered under name.
func Loaded(name FontName) bool {
	_, ok := fonts[name]
	return ok
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
