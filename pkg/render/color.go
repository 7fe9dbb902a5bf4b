package render

import (
	"image/color"

	"github.com/Millie-beep/MillieStarDefender/internal/utils"
)

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha возвращает тот же цвет с другой прозрачностью
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
}

// LerpColor интерполирует цвета покомпонентно
func LerpColor(from, to color.RGBA, t float32) color.RGBA {
	if t <= 0 {
		return from
	}
	if t >= 1 {
		return to
	}
	return color.RGBA{
		R: uint8(utils.Lerp(float32(from.R), float32(to.R), t)),
		G: uint8(utils.Lerp(float32(from.G), float32(to.G), t)),
		B: uint8(utils.Lerp(float32(from.B), float32(to.B), t)),
		A: uint8(utils.Lerp(float32(from.A), float32(to.A), t)),
	}
}

// GradientAt возвращает цвет градиента в точке t от 0 до 1
func GradientAt(stops []GradientStop, t float32) color.RGBA {
	if len(stops) == 0 {
		return color.RGBA{}
	}
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		if t <= stops[i].Offset {
			prev := stops[i-1]
			span := stops[i].Offset - prev.Offset
			if span <= 0 {
				return stops[i].Color
			}
			return LerpColor(prev.Color, stops[i].Color, (t-prev.Offset)/span)
		}
	}
	return stops[len(stops)-1].Color
}

// EvenStops раскладывает цвета равномерно от центра к краю
func EvenStops(colors []color.RGBA) []GradientStop {
	stops := make([]GradientStop, len(colors))
	for i, c := range colors {
		offset := float32(0)
		if len(colors) > 1 {
			offset = float32(i) / float32(len(colors)-1)
		}
		stops[i] = GradientStop{Offset: offset, Color: c}
	}
	return stops
}
