// pkg/render/ebitensurface/surface.go
// Package ebitensurface реализует render.Surface поверх Ebitengine.
package ebitensurface

import (
	"image"
	"image/color"
	"math"

	"github.com/Millie-beep/MillieStarDefender/pkg/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const gradientRings = 14

var _ render.Surface = (*Surface)(nil)

// Surface рисует кадр на ebiten.Image
type Surface struct {
	dst      *ebiten.Image
	fontFace font.Face
	fillImg  *ebiten.Image
	images   map[image.Image]*ebiten.Image // кэш загруженных в GPU изображений
	vs       []ebiten.Vertex
	is       []uint16
}

func New(fontFace font.Face) *Surface {
	// Белая текстура 3x3, берём центральный пиксель, чтобы не было артефактов на краях
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)

	return &Surface{
		fontFace: fontFace,
		fillImg:  white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		images:   make(map[image.Image]*ebiten.Image),
		vs:       make([]ebiten.Vertex, 0, 64),
		is:       make([]uint16, 0, 96),
	}
}

// SetTarget задаёт изображение, на котором рисуется текущий кадр
func (s *Surface) SetTarget(dst *ebiten.Image) {
	s.dst = dst
}

func (s *Surface) Size() (int, int) {
	if s.dst == nil {
		return 0, 0
	}
	b := s.dst.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Surface) Fill(c color.Color) {
	s.dst.Fill(c)
}

func (s *Surface) DrawImage(img image.Image) {
	if img == nil {
		return
	}
	eimg, ok := s.images[img]
	if !ok {
		eimg = ebiten.NewImageFromImage(img)
		s.images[img] = eimg
	}
	w, h := s.Size()
	b := eimg.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w)/float64(b.Dx()), float64(h)/float64(b.Dy()))
	op.Filter = ebiten.FilterLinear
	s.dst.DrawImage(eimg, op)
}

func (s *Surface) FillRect(x, y, w, h float32, c color.Color) {
	vector.DrawFilledRect(s.dst, x, y, w, h, c, true)
}

func (s *Surface) FillCircle(cx, cy, r float32, c color.Color) {
	if r <= 0 {
		return
	}
	vector.DrawFilledCircle(s.dst, cx, cy, r, c, true)
}

func (s *Surface) StrokeCircle(cx, cy, r, width float32, c color.Color) {
	if r <= 0 {
		return
	}
	vector.StrokeCircle(s.dst, cx, cy, r, width, c, true)
}

func (s *Surface) StrokeArc(cx, cy, r, start, end, width float32, c color.Color) {
	if r <= 0 || end <= start {
		return
	}
	path := vector.Path{}
	path.MoveTo(cx+r*float32(math.Cos(float64(start))), cy+r*float32(math.Sin(float64(start))))
	path.Arc(cx, cy, r, start, end, vector.Clockwise)

	s.vs, s.is = path.AppendVerticesAndIndicesForStroke(s.vs[:0], s.is[:0], &vector.StrokeOptions{
		Width:    width,
		LineCap:  vector.LineCapRound,
		LineJoin: vector.LineJoinRound,
	})
	s.drawTriangles(c)
}

func (s *Surface) StrokeLine(x0, y0, x1, y1, width float32, c color.Color) {
	vector.StrokeLine(s.dst, x0, y0, x1, y1, width, c, true)
}

func (s *Surface) FillPolygon(pts []render.Point, c color.Color) {
	if len(pts) < 3 {
		return
	}
	path := vector.Path{}
	for i, p := range pts {
		if i == 0 {
			path.MoveTo(p.X, p.Y)
		} else {
			path.LineTo(p.X, p.Y)
		}
	}
	path.Close()

	s.vs, s.is = path.AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
	s.drawTriangles(c)
}

// FillRadialGradient приближает градиент набором концентрических кругов от края к центру
func (s *Surface) FillRadialGradient(cx, cy, r float32, stops []render.GradientStop) {
	if r <= 0 || len(stops) == 0 {
		return
	}
	for i := gradientRings; i >= 1; i-- {
		t := float32(i) / gradientRings
		vector.DrawFilledCircle(s.dst, cx, cy, r*t, render.GradientAt(stops, t), true)
	}
}

func (s *Surface) Text(str string, x, y float32, c color.Color) {
	if s.fontFace == nil || str == "" {
		return
	}
	bounds := text.BoundString(s.fontFace, str)
	textWidth := bounds.Max.X - bounds.Min.X
	textHeight := bounds.Max.Y - bounds.Min.Y
	text.Draw(s.dst, str, s.fontFace, int(x)-textWidth/2, int(y)+textHeight/2, c)
}

func (s *Surface) drawTriangles(c color.Color) {
	r, g, b, a := c.RGBA()
	// Цвета вершин — в прямой (не предумноженной) альфе
	var rf, gf, bf, af float32
	if a > 0 {
		rf = float32(r) / float32(a)
		gf = float32(g) / float32(a)
		bf = float32(b) / float32(a)
		af = float32(a) / 0xffff
	}
	for i := range s.vs {
		s.vs[i].SrcX = 1
		s.vs[i].SrcY = 1
		s.vs[i].ColorR = rf
		s.vs[i].ColorG = gf
		s.vs[i].ColorB = bf
		s.vs[i].ColorA = af
	}
	s.dst.DrawTriangles(s.vs, s.is, s.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}
