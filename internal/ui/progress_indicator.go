// internal/ui/progress_indicator.go
package ui

import (
	"image/color"

	"github.com/Millie-beep/MillieStarDefender/internal/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ProgressIndicator показывает продвижение к цели уровня и номер раунда.
type ProgressIndicator struct {
	X, Y float32
}

const (
	goalBarWidth    = 160
	goalBarHeight   = 12
	roundRectWidth  = 16
	roundRectHeight = 12
	roundRectGap    = 9
	maxRoundMarks   = 6
	borderWidth     = 1
)

var (
	goalBarColorFill = color.RGBA{70, 130, 180, 220}
	borderColor      = color.White
)

// NewProgressIndicator создает новый индикатор.
func NewProgressIndicator(x, y float32) *ProgressIndicator {
	return &ProgressIndicator{X: x, Y: y}
}

// Draw отрисовывает индикатор. levelStart и levelGoal — границы счёта текущего уровня.
func (i *ProgressIndicator) Draw(screen *ebiten.Image, score, levelStart, levelGoal, round int) {
	// 1. Обводка полосы цели
	vector.StrokeRect(screen, i.X, i.Y, goalBarWidth, goalBarHeight, borderWidth, borderColor, true)

	// 2. Заполненная часть полосы
	fillRatio := 0.0
	if span := levelGoal - levelStart; span > 0 {
		fillRatio = float64(score-levelStart) / float64(span)
	}
	fillRatio = utils.Clamp(fillRatio, 0, 1)
	fillWidth := float32(float64(goalBarWidth-borderWidth*2) * fillRatio)
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, fillWidth, goalBarHeight-borderWidth*2, goalBarColorFill, true)
	}

	// 3. Отметки раундов
	rectY := i.Y + goalBarHeight + 8
	for j := 0; j < maxRoundMarks; j++ {
		rectX := i.X + float32(j)*(roundRectWidth+roundRectGap)
		vector.StrokeRect(screen, rectX, rectY, roundRectWidth, roundRectHeight, borderWidth, borderColor, true)
		if j < round {
			vector.DrawFilledRect(screen, rectX+borderWidth, rectY+borderWidth, roundRectWidth-borderWidth*2, roundRectHeight-borderWidth*2, goalBarColorFill, true)
		}
	}
}
