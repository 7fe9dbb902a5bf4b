// internal/entity/ecs.go
package entity

import (
	"sort"

	"github.com/Millie-beep/MillieStarDefender/internal/component"
	"github.com/Millie-beep/MillieStarDefender/internal/config"
	"github.com/Millie-beep/MillieStarDefender/internal/types"
)

// Layout — начальная расстановка городов и установок
type Layout struct {
	CityXs        []float64
	BatteryXs     []float64
	CenterBattery int // индекс центральной установки, -1 если её нет
	Shields       int
	Ammo          int
}

// DefaultLayout собирает расстановку из констант и параметров
func DefaultLayout(t config.Tuning) Layout {
	return Layout{
		CityXs:        config.CityPositions,
		BatteryXs:     config.BatteryPositions,
		CenterBattery: config.CenterBatteryIdx,
		Shields:       t.CityShields,
		Ammo:          t.BatteryAmmo,
	}
}

// ECS — модель мира: живые снаряды и перехватчики, фиксированные города и установки.
// Политики здесь нет, только запросы и примитивы изменения.
type ECS struct {
	NextID       types.EntityID
	Width        float64
	Height       float64
	GroundY      float64
	Projectiles  map[types.EntityID]*component.Projectile
	Interceptors map[types.EntityID]*component.Interceptor
	Cities       []*component.City
	Batteries    []*component.Battery
	Progress     component.Progress
}

func NewECS(layout Layout) *ECS {
	ecs := &ECS{
		NextID:       1,
		Width:        config.WorldWidth,
		Height:       config.WorldHeight,
		GroundY:      config.GroundY,
		Projectiles:  make(map[types.EntityID]*component.Projectile),
		Interceptors: make(map[types.EntityID]*component.Interceptor),
		Progress:     component.Progress{Level: 1, Round: 1},
	}
	for _, x := range layout.CityXs {
		ecs.Cities = append(ecs.Cities, &component.City{
			ID:         ecs.NewEntity(),
			X:          x,
			Active:     true,
			Shields:    layout.Shields,
			MaxShields: layout.Shields,
		})
	}
	for i, x := range layout.BatteryXs {
		ecs.Batteries = append(ecs.Batteries, &component.Battery{
			ID:      ecs.NewEntity(),
			X:       x,
			Ammo:    layout.Ammo,
			MaxAmmo: layout.Ammo,
			Active:  true,
			Center:  i == layout.CenterBattery,
		})
	}
	return ecs
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// --- Запросы ---

func (ecs *ECS) ActiveCities() []*component.City {
	var out []*component.City
	for _, c := range ecs.Cities {
		if c.Active {
			out = append(out, c)
		}
	}
	return out
}

func (ecs *ECS) ActiveBatteries() []*component.Battery {
	var out []*component.Battery
	for _, b := range ecs.Batteries {
		if b.Active {
			out = append(out, b)
		}
	}
	return out
}

// ArmedBatteries — активные установки с патронами
func (ecs *ECS) ArmedBatteries() []*component.Battery {
	var out []*component.Battery
	for _, b := range ecs.Batteries {
		if b.Armed() {
			out = append(out, b)
		}
	}
	return out
}

// RemainingAmmo — патроны, которые ещё можно выпустить.
// Боезапас уничтоженной установки не считается.
func (ecs *ECS) RemainingAmmo() int {
	total := 0
	for _, b := range ecs.Batteries {
		if b.Active {
			total += b.Ammo
		}
	}
	return total
}

// ActiveShields — сумма щитов живых городов
func (ecs *ECS) ActiveShields() int {
	total := 0
	for _, c := range ecs.Cities {
		if c.Active {
			total += c.Shields
		}
	}
	return total
}

// LiveProjectiles — число снарядов, ещё не уничтоженных
func (ecs *ECS) LiveProjectiles() int {
	n := 0
	for _, p := range ecs.Projectiles {
		if !p.Destroyed {
			n++
		}
	}
	return n
}

// GroundTarget — кандидат на цель снаряда
type GroundTarget struct {
	Ref component.TargetRef
	X   float64
}

// GroundTargets — все активные города и установки в фиксированном порядке
func (ecs *ECS) GroundTargets() []GroundTarget {
	var out []GroundTarget
	for _, c := range ecs.Cities {
		if c.Active {
			out = append(out, GroundTarget{Ref: component.TargetRef{Kind: component.TargetCity, ID: c.ID}, X: c.X})
		}
	}
	for _, b := range ecs.Batteries {
		if b.Active {
			out = append(out, GroundTarget{Ref: component.TargetRef{Kind: component.TargetBattery, ID: b.ID}, X: b.X})
		}
	}
	return out
}

func (ecs *ECS) City(id types.EntityID) *component.City {
	for _, c := range ecs.Cities {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (ecs *ECS) Battery(id types.EntityID) *component.Battery {
	for _, b := range ecs.Batteries {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// --- Примитивы изменения ---

// SpawnProjectile создаёт снаряд, летящий из origin в target
func (ecs *ECS) SpawnProjectile(origin, target component.Position, ref component.TargetRef, speed float64) *component.Projectile {
	p := &component.Projectile{
		ID:        ecs.NewEntity(),
		Origin:    origin,
		Pos:       origin,
		Target:    target,
		TargetRef: ref,
		Direction: target.Sub(origin).Unit(),
		Speed:     speed,
	}
	ecs.Projectiles[p.ID] = p
	return p
}

// SpawnInterceptor создаёт перехватчик в фазе полёта
func (ecs *ECS) SpawnInterceptor(origin, target component.Position, speed, maxRadius float64) *component.Interceptor {
	in := &component.Interceptor{
		ID:        ecs.NewEntity(),
		Origin:    origin,
		Pos:       origin,
		Target:    target,
		Speed:     speed,
		State:     component.Flying,
		MaxRadius: maxRadius,
	}
	ecs.Interceptors[in.ID] = in
	return in
}

// SpawnExplosion создаёт перехватчик сразу во взрыве полного радиуса, без полёта.
// age задаёт, сколько тиков роста уже прошло.
func (ecs *ECS) SpawnExplosion(at component.Position, maxRadius float64, age int) *component.Interceptor {
	in := &component.Interceptor{
		ID:        ecs.NewEntity(),
		Origin:    at,
		Pos:       at,
		Target:    at,
		State:     component.Exploding,
		Radius:    maxRadius,
		MaxRadius: maxRadius,
		Age:       age,
	}
	ecs.Interceptors[in.ID] = in
	return in
}

// MarkDestroyed помечает снаряд уничтоженным. true только при первом переходе.
func (ecs *ECS) MarkDestroyed(id types.EntityID) bool {
	p, ok := ecs.Projectiles[id]
	if !ok || p.Destroyed {
		return false
	}
	p.Destroyed = true
	return true
}

// DamageCity снимает один щит с активного города.
// Возвращает true, если город только что стал неактивным.
func (ecs *ECS) DamageCity(id types.EntityID) bool {
	c := ecs.City(id)
	if c == nil || !c.Active {
		return false
	}
	c.Shields--
	if c.Shields <= 0 {
		c.Shields = 0
		c.Active = false
		return true
	}
	return false
}

// DestroyBattery выводит установку из строя. true, если она была активна.
func (ecs *ECS) DestroyBattery(id types.EntityID) bool {
	b := ecs.Battery(id)
	if b == nil || !b.Active {
		return false
	}
	b.Active = false
	return true
}

func (ecs *ECS) RemoveProjectile(id types.EntityID) {
	delete(ecs.Projectiles, id)
}

func (ecs *ECS) RemoveInterceptor(id types.EntityID) {
	delete(ecs.Interceptors, id)
}

func (ecs *ECS) ClearProjectiles() {
	for id := range ecs.Projectiles {
		delete(ecs.Projectiles, id)
	}
}

func (ecs *ECS) ClearInterceptors() {
	for id := range ecs.Interceptors {
		delete(ecs.Interceptors, id)
	}
}

// RefillBatteries восстанавливает боезапас и активность всех установок
func (ecs *ECS) RefillBatteries() {
	for _, b := range ecs.Batteries {
		b.Ammo = b.MaxAmmo
		b.Active = true
	}
}

// RestoreCities возвращает все города с полными щитами
func (ecs *ECS) RestoreCities() {
	for _, c := range ecs.Cities {
		c.Shields = c.MaxShields
		c.Active = true
	}
}

// --- Снимок для отрисовки ---

// Snapshot — неизменяемая копия мира для рендера
type Snapshot struct {
	Width, Height float64
	GroundY       float64
	Projectiles   []component.Projectile
	Interceptors  []component.Interceptor
	Cities        []component.City
	Batteries     []component.Battery
	Progress      component.Progress
}

// Snapshot копирует состояние мира. Порядок сущностей стабилен (по ID).
func (ecs *ECS) Snapshot() Snapshot {
	snap := Snapshot{
		Width:        ecs.Width,
		Height:       ecs.Height,
		GroundY:      ecs.GroundY,
		Projectiles:  make([]component.Projectile, 0, len(ecs.Projectiles)),
		Interceptors: make([]component.Interceptor, 0, len(ecs.Interceptors)),
		Cities:       make([]component.City, 0, len(ecs.Cities)),
		Batteries:    make([]component.Battery, 0, len(ecs.Batteries)),
		Progress:     ecs.Progress,
	}
	for _, p := range ecs.Projectiles {
		snap.Projectiles = append(snap.Projectiles, *p)
	}
	for _, in := range ecs.Interceptors {
		snap.Interceptors = append(snap.Interceptors, *in)
	}
	sort.Slice(snap.Projectiles, func(i, j int) bool { return snap.Projectiles[i].ID < snap.Projectiles[j].ID })
	sort.Slice(snap.Interceptors, func(i, j int) bool { return snap.Interceptors[i].ID < snap.Interceptors[j].ID })
	for _, c := range ecs.Cities {
		snap.Cities = append(snap.Cities, *c)
	}
	for _, b := range ecs.Batteries {
		snap.Batteries = append(snap.Batteries, *b)
	}
	return snap
}
