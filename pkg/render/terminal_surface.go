package render

import (
	"image"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// Клетка терминала примерно вдвое выше своей ширины
const cellAspect = 2.0

// TerminalSurface — реализация Surface поверх экрана tcell.
// Единица поверхности — одна клетка.
type TerminalSurface struct {
	screen tcell.Screen
}

func NewTerminalSurface(screen tcell.Screen) *TerminalSurface {
	return &TerminalSurface{screen: screen}
}

func (s *TerminalSurface) Size() (int, int) {
	return s.screen.Size()
}

func (s *TerminalSurface) Fill(c color.Color) {
	style := tcell.StyleDefault.Background(toTcell(c))
	w, h := s.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			s.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// DrawImage берёт цвет изображения в центре каждой клетки
func (s *TerminalSurface) DrawImage(img image.Image) {
	if img == nil {
		return
	}
	w, h := s.Size()
	b := img.Bounds()
	if w == 0 || h == 0 || b.Empty() {
		return
	}
	for y := 0; y < h; y++ {
		iy := b.Min.Y + (2*y+1)*b.Dy()/(2*h)
		for x := 0; x < w; x++ {
			ix := b.Min.X + (2*x+1)*b.Dx()/(2*w)
			s.paint(x, y, img.At(ix, iy))
		}
	}
}

func (s *TerminalSurface) FillRect(x, y, w, h float32, c color.Color) {
	x0, y0 := int(math.Floor(float64(x))), int(math.Floor(float64(y)))
	x1, y1 := int(math.Ceil(float64(x+w))), int(math.Ceil(float64(y+h)))
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			s.paint(cx, cy, c)
		}
	}
}

func (s *TerminalSurface) FillCircle(cx, cy, r float32, c color.Color) {
	s.eachInCircle(cx, cy, r, func(x, y int, _ float32) {
		s.paint(x, y, c)
	})
}

func (s *TerminalSurface) StrokeCircle(cx, cy, r, width float32, c color.Color) {
	s.StrokeArc(cx, cy, r, 0, 2*math.Pi, width, c)
}

func (s *TerminalSurface) StrokeArc(cx, cy, r, start, end, width float32, c color.Color) {
	if r <= 0 || end <= start {
		return
	}
	steps := int(float64(r)*float64(end-start)*cellAspect) + 8
	for i := 0; i <= steps; i++ {
		a := float64(start) + float64(end-start)*float64(i)/float64(steps)
		x := float64(cx) + float64(r)*cellAspect*math.Cos(a)
		y := float64(cy) + float64(r)*math.Sin(a)
		s.glyph(int(math.Round(x)), int(math.Round(y)), 'o', c)
	}
}

func (s *TerminalSurface) StrokeLine(x0, y0, x1, y1, width float32, c color.Color) {
	r := lineRune(x1-x0, y1-y0)
	ix0, iy0 := int(math.Round(float64(x0))), int(math.Round(float64(y0)))
	ix1, iy1 := int(math.Round(float64(x1))), int(math.Round(float64(y1)))

	// Брезенхем
	dx := abs(ix1 - ix0)
	dy := -abs(iy1 - iy0)
	sx, sy := 1, 1
	if ix0 > ix1 {
		sx = -1
	}
	if iy0 > iy1 {
		sy = -1
	}
	err := dx + dy
	for {
		s.glyph(ix0, iy0, r, c)
		if ix0 == ix1 && iy0 == iy1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			ix0 += sx
		}
		if e2 <= dx {
			err += dx
			iy0 += sy
		}
	}
}

func (s *TerminalSurface) FillPolygon(pts []Point, c color.Color) {
	if len(pts) < 3 {
		return
	}
	minX, minY, maxX, maxY := pts[0].X, pts[0].Y, pts[0].X, pts[0].Y
	for _, p := range pts[1:] {
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y)
	}
	painted := false
	for y := int(math.Floor(float64(minY))); y <= int(math.Ceil(float64(maxY))); y++ {
		for x := int(math.Floor(float64(minX))); x <= int(math.Ceil(float64(maxX))); x++ {
			if pointInPolygon(float32(x)+0.5, float32(y)+0.5, pts) {
				s.paint(x, y, c)
				painted = true
			}
		}
	}
	// Многоугольник меньше клетки — хотя бы одна точка
	if !painted {
		s.glyph(int(pts[0].X), int(pts[0].Y), '^', c)
	}
}

func (s *TerminalSurface) FillRadialGradient(cx, cy, r float32, stops []GradientStop) {
	if len(stops) == 0 {
		return
	}
	s.eachInCircle(cx, cy, r, func(x, y int, t float32) {
		s.paint(x, y, GradientAt(stops, t))
	})
}

func (s *TerminalSurface) Text(str string, x, y float32, c color.Color) {
	runes := []rune(str)
	start := int(math.Round(float64(x))) - len(runes)/2
	row := int(math.Round(float64(y)))
	for i, ch := range runes {
		s.glyph(start+i, row, ch, c)
	}
}

// eachInCircle обходит клетки внутри окружности с поправкой на форму клетки.
// t — нормированное расстояние от центра.
func (s *TerminalSurface) eachInCircle(cx, cy, r float32, fn func(x, y int, t float32)) {
	if r <= 0 {
		return
	}
	rx := float64(r) * cellAspect
	for y := int(math.Floor(float64(cy - r))); y <= int(math.Ceil(float64(cy+r))); y++ {
		for x := int(math.Floor(float64(cx) - rx)); x <= int(math.Ceil(float64(cx)+rx)); x++ {
			dx := (float64(x) + 0.5 - float64(cx)) / cellAspect
			dy := float64(y) + 0.5 - float64(cy)
			d := math.Hypot(dx, dy)
			if d <= float64(r) {
				fn(x, y, float32(d/float64(r)))
			}
		}
	}
}

// paint закрашивает фон клетки
func (s *TerminalSurface) paint(x, y int, c color.Color) {
	if !s.inside(x, y) || transparent(c) {
		return
	}
	s.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(toTcell(c)))
}

// glyph рисует символ, сохраняя фон клетки
func (s *TerminalSurface) glyph(x, y int, r rune, c color.Color) {
	if !s.inside(x, y) || transparent(c) {
		return
	}
	_, _, style, _ := s.screen.GetContent(x, y)
	s.screen.SetContent(x, y, r, nil, style.Foreground(toTcell(c)))
}

func (s *TerminalSurface) inside(x, y int) bool {
	w, h := s.Size()
	return x >= 0 && y >= 0 && x < w && y < h
}

func toTcell(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

func transparent(c color.Color) bool {
	_, _, _, a := c.RGBA()
	return a < 0x2000
}

func lineRune(dx, dy float32) rune {
	if dx == 0 && dy == 0 {
		return '*'
	}
	angle := math.Atan2(float64(dy), float64(dx)*cellAspect)
	switch a := math.Abs(angle); {
	case a < math.Pi/8 || a > 7*math.Pi/8:
		return '-'
	case a > 3*math.Pi/8 && a < 5*math.Pi/8:
		return '|'
	case (angle > 0) == (a < math.Pi/2):
		return '\\'
	default:
		return '/'
	}
}

func pointInPolygon(x, y float32, pts []Point) bool {
	inside := false
	j := len(pts) - 1
	for i := range pts {
		pi, pj := pts[i], pts[j]
		if (pi.Y > y) != (pj.Y > y) && x < (pj.X-pi.X)*(y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
