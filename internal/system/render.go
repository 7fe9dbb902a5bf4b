// internal/system/render.go
package system

import (
	"fmt"
	"image"
	"math"

	"github.com/Millie-beep/MillieStarDefender/internal/component"
	"github.com/Millie-beep/MillieStarDefender/internal/config"
	"github.com/Millie-beep/MillieStarDefender/internal/entity"
	"github.com/Millie-beep/MillieStarDefender/internal/utils"
	"github.com/Millie-beep/MillieStarDefender/pkg/render"
)

// RenderSystem рисует снимок мира. Своего состояния почти нет:
// только закэшированный фон и неподвижные звёзды.
type RenderSystem struct {
	background image.Image
	stars      []component.Star
	explosion  []render.GradientStop
}

// NewRenderSystem принимает фон; nil означает заливку сплошным цветом
func NewRenderSystem(background image.Image) *RenderSystem {
	return &RenderSystem{
		background: background,
		explosion:  render.EvenStops(config.ExplosionStops),
	}
}

// ResetStars генерирует звёздное небо заново, один раз на сброс игры
func (s *RenderSystem) ResetStars(rng *utils.PRNGService) {
	s.stars = s.stars[:0]
	for i := 0; i < config.StarCount; i++ {
		s.stars = append(s.stars, component.Star{
			X:      rng.Range(0, config.WorldWidth),
			Y:      rng.Range(0, config.GroundY-config.CityHeight*3),
			Radius: float32(rng.Range(0.5, 1.6)),
			Alpha:  uint8(rng.Range(80, 255)),
		})
	}
}

// Stars — текущие позиции звёзд
func (s *RenderSystem) Stars() []component.Star {
	return s.stars
}

// viewport переводит мировые координаты в координаты поверхности
type viewport struct {
	sx, sy float64
}

func (v viewport) pt(p component.Position) (float32, float32) {
	return float32(p.X * v.sx), float32(p.Y * v.sy)
}

func (v viewport) x(x float64) float32 { return float32(x * v.sx) }
func (v viewport) y(y float64) float32 { return float32(y * v.sy) }

// r масштабирует длину, не зависящую от направления
func (v viewport) r(r float64) float32 { return float32(r * math.Min(v.sx, v.sy)) }

func (s *RenderSystem) Draw(dst render.Surface, snap entity.Snapshot) {
	w, h := dst.Size()
	if w == 0 || h == 0 || snap.Width == 0 || snap.Height == 0 {
		return
	}
	vp := viewport{sx: float64(w) / snap.Width, sy: float64(h) / snap.Height}

	s.drawBackground(dst, vp, snap)
	for i := range snap.Cities {
		s.drawCity(dst, vp, snap.GroundY, &snap.Cities[i])
	}
	for i := range snap.Batteries {
		s.drawBattery(dst, vp, snap, &snap.Batteries[i])
	}
	for i := range snap.Projectiles {
		s.drawProjectile(dst, vp, &snap.Projectiles[i])
	}
	for i := range snap.Interceptors {
		s.drawInterceptor(dst, vp, &snap.Interceptors[i])
	}
}

func (s *RenderSystem) drawBackground(dst render.Surface, vp viewport, snap entity.Snapshot) {
	if s.background != nil {
		dst.DrawImage(s.background)
	} else {
		dst.Fill(config.BackgroundColor)
	}

	for _, star := range s.stars {
		c := render.WithAlpha(config.StarColor, star.Alpha)
		dst.FillCircle(vp.x(star.X), vp.y(star.Y), star.Radius, c)
	}

	dst.FillRect(0, vp.y(snap.GroundY), vp.x(snap.Width), vp.y(snap.Height-snap.GroundY), config.GroundColor)
}

func (s *RenderSystem) drawCity(dst render.Surface, vp viewport, groundY float64, city *component.City) {
	left := city.X - config.CityWidth/2
	if !city.Active {
		// Развалины
		dst.FillRect(vp.x(left), vp.y(groundY-config.CityHeight/3), vp.x(config.CityWidth), vp.y(config.CityHeight/3), config.RubbleColor)
		return
	}

	dst.FillRect(vp.x(left), vp.y(groundY-config.CityHeight), vp.x(config.CityWidth), vp.y(config.CityHeight), config.CityColor)
	// Башенка посередине
	dst.FillRect(vp.x(city.X-config.CityWidth/8), vp.y(groundY-config.CityHeight*1.6), vp.x(config.CityWidth/4), vp.y(config.CityHeight*0.6), config.CityColor)

	// Дуга щита над городом, длина пропорциональна оставшимся щитам
	if frac := city.ShieldFraction(); frac > 0 {
		start := float32(math.Pi)
		end := start + float32(math.Pi*frac)
		dst.StrokeArc(vp.x(city.X), vp.y(groundY), vp.r(config.ShieldArcRadius), start, end, vp.r(config.ShieldArcWidth), config.ShieldColor)
	}
}

func (s *RenderSystem) drawBattery(dst render.Surface, vp viewport, snap entity.Snapshot, b *component.Battery) {
	base := snap.GroundY
	top := base - config.BatteryHeight
	half := config.BatteryWidth / 2

	c := config.BatteryColor
	if !b.Active {
		c = render.DarkenColor(render.DarkenColor(c))
	}
	dst.FillPolygon([]render.Point{
		{X: vp.x(b.X - half), Y: vp.y(base)},
		{X: vp.x(b.X - half/3), Y: vp.y(top)},
		{X: vp.x(b.X + half/3), Y: vp.y(top)},
		{X: vp.x(b.X + half), Y: vp.y(base)},
	}, c)

	label := config.TextLightColor
	if !b.Active {
		label = render.DarkenColor(label)
	}
	dst.Text(fmt.Sprintf("%d", b.Ammo), vp.x(b.X), vp.y(base+(snap.Height-base)/2), label)
}

func (s *RenderSystem) drawProjectile(dst render.Surface, vp viewport, p *component.Projectile) {
	if p.Destroyed {
		return
	}
	ox, oy := vp.pt(p.Origin)
	px, py := vp.pt(p.Pos)
	dst.StrokeLine(ox, oy, px, py, 1.5, config.ProjectileTrail)

	// Голова снаряда — треугольник вдоль направления полёта
	dir := p.Direction
	perp := component.Position{X: -dir.Y, Y: dir.X}
	tip := p.Pos.Add(dir.Scale(config.ProjectileHeadLen))
	left := p.Pos.Add(perp.Scale(config.ProjectileHeadLen / 2.5))
	right := p.Pos.Sub(perp.Scale(config.ProjectileHeadLen / 2.5))

	tx, ty := vp.pt(tip)
	lx, ly := vp.pt(left)
	rx, ry := vp.pt(right)
	dst.FillPolygon([]render.Point{{X: tx, Y: ty}, {X: lx, Y: ly}, {X: rx, Y: ry}}, config.ProjectileColor)
}

func (s *RenderSystem) drawInterceptor(dst render.Surface, vp viewport, in *component.Interceptor) {
	px, py := vp.pt(in.Pos)
	switch in.State {
	case component.Flying:
		ox, oy := vp.pt(in.Origin)
		dst.StrokeLine(ox, oy, px, py, 1.5, config.InterceptorTrail)
		dst.FillCircle(px, py, vp.r(config.InterceptorDotR), config.InterceptorColor)
		s.drawCrosshair(dst, vp, in.Target)
	case component.Exploding:
		if in.Radius > 0 {
			dst.FillRadialGradient(px, py, vp.r(in.Radius), s.explosion)
		}
	}
}

func (s *RenderSystem) drawCrosshair(dst render.Surface, vp viewport, at component.Position) {
	d := config.CrosshairSize
	x0, y0 := vp.pt(at.Add(component.Position{X: -d, Y: -d}))
	x1, y1 := vp.pt(at.Add(component.Position{X: d, Y: d}))
	x2, y2 := vp.pt(at.Add(component.Position{X: -d, Y: d}))
	x3, y3 := vp.pt(at.Add(component.Position{X: d, Y: -d}))
	dst.StrokeLine(x0, y0, x1, y1, 1, config.CrosshairColor)
	dst.StrokeLine(x2, y2, x3, y3, 1, config.CrosshairColor)
}
