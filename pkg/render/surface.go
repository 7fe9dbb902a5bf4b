package render

import (
	"image"
	"image/color"
)

// Point — точка на поверхности, в пикселях (или клетках) поверхности
type Point struct {
	X, Y float32
}

// GradientStop — опорная точка радиального градиента, Offset от 0 (центр) до 1 (край)
type GradientStop struct {
	Offset float32
	Color  color.RGBA
}

// Surface — абстрактная 2D-поверхность. Ядро только рисует на ней
// и никогда не читает её содержимое обратно.
type Surface interface {
	Size() (width, height int)
	Fill(c color.Color)
	// DrawImage растягивает изображение на всю поверхность
	DrawImage(img image.Image)
	FillRect(x, y, w, h float32, c color.Color)
	FillCircle(cx, cy, r float32, c color.Color)
	StrokeCircle(cx, cy, r, width float32, c color.Color)
	// StrokeArc рисует дугу по часовой стрелке от start до end (радианы, y вниз)
	StrokeArc(cx, cy, r, start, end, width float32, c color.Color)
	StrokeLine(x0, y0, x1, y1, width float32, c color.Color)
	FillPolygon(pts []Point, c color.Color)
	FillRadialGradient(cx, cy, r float32, stops []GradientStop)
	// Text рисует строку с центром в (x, y)
	Text(s string, x, y float32, c color.Color)
}
