// internal/ui/overlay.go
package ui

import (
	"image/color"

	"github.com/Millie-beep/MillieStarDefender/internal/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const overlayLineGap = 28

// Overlay — затемнение экрана с заголовком и подсказками
type Overlay struct {
	titleFace font.Face
	textFace  font.Face
}

func NewOverlay(titleFace, textFace font.Face) *Overlay {
	return &Overlay{titleFace: titleFace, textFace: textFace}
}

// Draw рисует оверлей по центру экрана
func (o *Overlay) Draw(screen *ebiten.Image, title string, titleColor color.Color, lines ...string) {
	b := screen.Bounds()
	w, h := b.Dx(), b.Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), config.OverlayColor, false)

	y := h/2 - overlayLineGap*len(lines)/2
	drawCentered(screen, o.titleFace, title, w/2, y-overlayLineGap, titleColor)
	for i, line := range lines {
		drawCentered(screen, o.textFace, line, w/2, y+overlayLineGap*(i+1), config.TextLightColor)
	}
}

func drawCentered(screen *ebiten.Image, face font.Face, str string, x, y int, c color.Color) {
	if face == nil || str == "" {
		return
	}
	bounds := text.BoundString(face, str)
	text.Draw(screen, str, face, x-(bounds.Max.X-bounds.Min.X)/2, y, c)
}
