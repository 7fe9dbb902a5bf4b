// internal/utils/coords.go
package utils

import "github.com/Millie-beep/MillieStarDefender/internal/config"

// ScreenToWorld переводит координаты поверхности в мировые
// линейным масштабированием worldSize / surfaceSize.
func ScreenToWorld(sx, sy float64, surfaceW, surfaceH int) (float64, float64) {
	if surfaceW <= 0 || surfaceH <= 0 {
		return sx, sy
	}
	return sx * config.WorldWidth / float64(surfaceW), sy * config.WorldHeight / float64(surfaceH)
}

// WorldToScreen — обратное преобразование
func WorldToScreen(wx, wy float64, surfaceW, surfaceH int) (float64, float64) {
	return wx * float64(surfaceW) / config.WorldWidth, wy * float64(surfaceH) / config.WorldHeight
}
