package render

import (
	"sync"

	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Faces hands out Go Regular faces by point size. A font that fails to load
// is logged once; Face then returns nil and callers skip the text.
type Faces struct {
	once  sync.Once
	font  *opentype.Font
	mu    sync.Mutex
	cache map[float64]font.Face
}

func (f *Faces) load() {
	ft, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.WithError(err).Error("parse font")
		return
	}
	f.font = ft
}

// Face returns a face of the given size, or nil if no font is available.
func (f *Faces) Face(size float64) font.Face {
	f.once.Do(f.load)
	if f.font == nil {
		return nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if face, ok := f.cache[size]; ok {
		return face
	}
	if f.cache == nil {
		f.cache = make(map[float64]font.Face)
	}
	face, err := opentype.NewFace(f.font, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		log.WithError(err).Errorf("font face %.1fpt", size)
		face = nil
	}
	f.cache[size] = face
	return face
}
