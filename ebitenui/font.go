package ebitenui

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/pkg/errors"
)

// LoadFont parses the bundled arcade font.
func LoadFont() (*text.GoTextFaceSource, error) {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		return nil, errors.Wrap(err, "load arcade font")
	}
	return s, nil
}
