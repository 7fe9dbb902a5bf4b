// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	// Логическое пространство мира, вся игровая логика работает в этих единицах
	WorldWidth  = 800
	WorldHeight = 600
	GroundY     = 550.0 // y-координата наземных целей

	// Размер окна по умолчанию
	ScreenWidth  = 1200
	ScreenHeight = 900

	MaxFrameDelta = 250 * time.Millisecond
	FrameInterval = 16 * time.Millisecond // ~60 FPS для терминального хоста

	CityShields       = 3
	BatteryAmmo       = 10
	CenterBatteryIdx  = 1
	CityWidth         = 36.0
	CityHeight        = 18.0
	BatteryWidth      = 44.0
	BatteryHeight     = 20.0
	ShieldArcRadius   = 30.0
	ShieldArcWidth    = 3.0
	StarCount         = 120
	CrosshairSize     = 6.0
	ProjectileHeadLen = 7.0
	InterceptorDotR   = 3.0

	BackgroundImagePath = "assets/background.png"
	FontSize            = 14
	TitleFontSize       = 32

	ClickCooldown = 100 // мс, как у кнопок в интерфейсе
)

// Фиксированные позиции по x. Множества не пересекаются, цели выбираются из их объединения.
var (
	CityPositions    = []float64{150, 230, 310, 490, 570, 650}
	BatteryPositions = []float64{50, 400, 750}
)

var (
	BackgroundColor  = color.RGBA{8, 10, 28, 255}
	GroundColor      = color.RGBA{60, 45, 30, 255}
	StarColor        = color.RGBA{200, 200, 230, 255}
	ProjectileColor  = color.RGBA{255, 70, 70, 255}
	ProjectileTrail  = color.RGBA{255, 70, 70, 110}
	InterceptorColor = color.RGBA{120, 220, 255, 255}
	InterceptorTrail = color.RGBA{120, 220, 255, 90}
	CrosshairColor   = color.RGBA{240, 240, 240, 200}
	CityColor        = color.RGBA{70, 130, 180, 255}
	RubbleColor      = color.RGBA{70, 60, 55, 255}
	ShieldColor      = color.RGBA{90, 200, 255, 200}
	BatteryColor     = color.RGBA{50, 205, 50, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	OverlayColor     = color.RGBA{0, 0, 0, 150}
	PausedColor      = color.RGBA{70, 130, 180, 220}
	LostColor        = color.RGBA{220, 60, 60, 220}
	WonColor         = color.RGBA{255, 215, 0, 255}
	RoundEndColor    = color.RGBA{50, 205, 50, 220}

	// Градиент взрыва: от центра к краю
	ExplosionStops = []color.RGBA{
		{255, 255, 255, 255},
		{255, 220, 90, 230},
		{255, 120, 40, 160},
		{200, 40, 20, 0},
	}
)
