package fonts

import (
	"fmt"
	"log"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Body  FontName = "body"
	Title FontName = "title"
	Popup FontName = "popup"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts     = map[FontName]font.Face{}
	popupData *truetype.Font

	// popup text animates its size every frame; faces are cached per
	// quantized size so we don't rebuild glyph caches constantly.
	sizedFaces = map[int]font.Face{}
)

func LoadFont(name FontName, ttf []byte) {
	LoadFontWithSize(name, ttf, 10)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		log.Printf("Warning: Could not parse font %s: %v", name, err)
		return
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	if name == Popup {
		popupData = fontData
	}
}

// LoadDefaults installs the bundled Go Regular face for every role.
func LoadDefaults() {
	LoadFontWithSize(Body, goregular.TTF, 16)
	LoadFontWithSize(Title, goregular.TTF, 42)
	LoadFontWithSize(Popup, goregular.TTF, 18)
}

// FaceForSize returns a popup face at the given size, rounding to whole
// points and caching the result.
func FaceForSize(size float64) font.Face {
	if popupData == nil {
		return getFont(Popup)
	}
	key := int(size)
	if key < 1 {
		key = 1
	}
	if face, ok := sizedFaces[key]; ok {
		return face
	}
	face := truetype.NewFace(popupData, &truetype.Options{Size: float64(key)})
	sizedFaces[key] = face
	return face
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
