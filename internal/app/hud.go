// internal/app/hud.go
package app

import (
	"fmt"
	"image/color"

	"github.com/Millie-beep/MillieStarDefender/internal/component"
	"github.com/Millie-beep/MillieStarDefender/internal/config"
)

// Banner — текст оверлея поверх поля в нетиповых фазах
type Banner struct {
	Title string
	Color color.RGBA
	Lines []string
}

// StatusLine — строка HUD со счётом и прогрессом
func (g *Game) StatusLine() string {
	return fmt.Sprintf("Score %d/%d  Level %d  Round %d  Ammo %d",
		g.Score(), g.LevelGoal(), g.Level(), g.Round(), g.ECS.RemainingAmmo())
}

// LevelStart — счёт, с которого начинается текущий уровень
func (g *Game) LevelStart() int {
	return g.Tuning.LevelGoal(g.Level() - 1)
}

// PhaseColor — цвет индикатора фазы
func (g *Game) PhaseColor() color.RGBA {
	switch g.Phase() {
	case component.PhasePaused:
		return config.PausedColor
	case component.PhaseLost:
		return config.LostColor
	case component.PhaseWon:
		return config.WonColor
	case component.PhaseRoundEnd:
		return config.RoundEndColor
	case component.PhasePlaying:
		return config.InterceptorColor
	}
	return config.TextLightColor
}

// Banner возвращает оверлей для текущей фазы; ok=false во время игры
func (g *Game) Banner() (Banner, bool) {
	switch g.Phase() {
	case component.PhaseStart:
		return Banner{
			Title: "STAR DEFENDER",
			Color: config.TextLightColor,
			Lines: []string{"Space or click to start", "P to pause"},
		}, true
	case component.PhasePaused:
		return Banner{
			Title: "PAUSED",
			Color: config.PausedColor,
			Lines: []string{"P to resume"},
		}, true
	case component.PhaseLost:
		return Banner{
			Title: "GAME OVER",
			Color: config.LostColor,
			Lines: []string{fmt.Sprintf("Score %d  Level %d", g.Score(), g.Level()), "Enter to play again"},
		}, true
	case component.PhaseWon:
		return Banner{
			Title: "YOU WON",
			Color: config.WonColor,
			Lines: []string{fmt.Sprintf("Final score %d", g.Score()), "Enter to play again"},
		}, true
	case component.PhaseRoundEnd:
		if g.RoundEndReason() == component.RoundEndLevelGoal {
			return Banner{
				Title: fmt.Sprintf("LEVEL %d COMPLETE", g.Level()),
				Color: config.RoundEndColor,
				Lines: []string{"Enter or L for next level", "R to replay previous level"},
			}, true
		}
		return Banner{
			Title: fmt.Sprintf("ROUND %d OVER", g.Round()),
			Color: config.RoundEndColor,
			Lines: []string{fmt.Sprintf("Bonus +%d", g.LastBonus()), "Enter or N for next round", "R to replay previous level"},
		}, true
	}
	return Banner{}, false
}

// Continue — действие по умолчанию в конце раунда (Enter)
func (g *Game) Continue() error {
	if g.RoundEndReason() == component.RoundEndLevelGoal {
		return g.NextLevel()
	}
	return g.NextRound()
}
