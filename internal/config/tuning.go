// internal/config/tuning.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/invopop/jsonschema"
)

// Tuning — игровые параметры, которые можно переопределить JSON-файлом.
// Поля, отсутствующие в файле, сохраняют значения по умолчанию.
type Tuning struct {
	BaseSpawnIntervalMs int `json:"baseSpawnIntervalMs" jsonschema:"title=Base spawn interval,description=Spawn interval in milliseconds before level and round reductions"`
	MinSpawnIntervalMs  int `json:"minSpawnIntervalMs" jsonschema:"title=Minimum spawn interval,description=Floor of the spawn interval in milliseconds"`
	LevelSpawnStepMs    int `json:"levelSpawnStepMs" jsonschema:"description=Spawn interval reduction per level in milliseconds"`
	RoundSpawnStepMs    int `json:"roundSpawnStepMs" jsonschema:"description=Spawn interval reduction per round in milliseconds"`

	BaseProjectileSpeed float64 `json:"baseProjectileSpeed" jsonschema:"description=Projectile speed in world units per tick at level 0 round 0"`
	LevelSpeedFactor    float64 `json:"levelSpeedFactor" jsonschema:"description=Projectile speed added per level"`
	RoundSpeedFactor    float64 `json:"roundSpeedFactor" jsonschema:"description=Projectile speed added per round"`
	InterceptorSpeed    float64 `json:"interceptorSpeed" jsonschema:"description=Interceptor speed in world units per tick"`

	ExplosionIncrement float64 `json:"explosionIncrement" jsonschema:"description=Radius change per tick while an explosion grows or shrinks"`
	ExplosionGrowTicks int     `json:"explosionGrowTicks" jsonschema:"description=Number of ticks an explosion keeps growing"`
	ExplosionMaxRadius float64 `json:"explosionMaxRadius" jsonschema:"description=Upper bound of the explosion radius"`
	DirectHitRadius    float64 `json:"directHitRadius" jsonschema:"description=Tap distance that destroys a projectile outright"`
	CenterFireOffset   float64 `json:"centerFireOffset" jsonschema:"description=Lateral offset of the side interceptors fired by the center battery"`

	KillScore        int `json:"killScore" jsonschema:"description=Score credited per destroyed projectile"`
	WinScorePerLevel int `json:"winScorePerLevel" jsonschema:"description=Cumulative score goal per level"`
	CityBonus        int `json:"cityBonus" jsonschema:"description=Round bonus per surviving city"`
	ShieldBonus      int `json:"shieldBonus" jsonschema:"description=Round bonus per remaining shield"`
	MaxLevel         int `json:"maxLevel" jsonschema:"description=Reaching the goal of this level wins the game; 0 means endless"`

	CityShields int   `json:"cityShields" jsonschema:"description=Shields of every city after a full reset"`
	BatteryAmmo int   `json:"batteryAmmo" jsonschema:"description=Ammo of every battery at the start of a round"`
	Seed        int64 `json:"seed,omitempty" jsonschema:"description=PRNG seed; 0 seeds from the clock"`
}

// DefaultTuning возвращает параметры по умолчанию
func DefaultTuning() Tuning {
	return Tuning{
		BaseSpawnIntervalMs: 2000,
		MinSpawnIntervalMs:  300,
		LevelSpawnStepMs:    150,
		RoundSpawnStepMs:    100,

		BaseProjectileSpeed: 0.8,
		LevelSpeedFactor:    0.25,
		RoundSpeedFactor:    0.1,
		InterceptorSpeed:    8,

		ExplosionIncrement: 2,
		ExplosionGrowTicks: 30,
		ExplosionMaxRadius: 60,
		DirectHitRadius:    30,
		CenterFireOffset:   30,

		KillScore:        20,
		WinScorePerLevel: 500,
		CityBonus:        50,
		ShieldBonus:      20,
		MaxLevel:         10,

		CityShields: CityShields,
		BatteryAmmo: BatteryAmmo,
	}
}

// SpawnInterval — интервал между снарядами, убывает с уровнем и раундом до минимума
func (t Tuning) SpawnInterval(level, round int) time.Duration {
	ms := t.BaseSpawnIntervalMs - level*t.LevelSpawnStepMs - round*t.RoundSpawnStepMs
	if ms < t.MinSpawnIntervalMs {
		ms = t.MinSpawnIntervalMs
	}
	return time.Duration(ms) * time.Millisecond
}

// ProjectileSpeed — скорость снаряда, растёт с уровнем и раундом
func (t Tuning) ProjectileSpeed(level, round int) float64 {
	return t.BaseProjectileSpeed + float64(level)*t.LevelSpeedFactor + float64(round)*t.RoundSpeedFactor
}

// LevelGoal — накопленный счёт, необходимый для завершения уровня
func (t Tuning) LevelGoal(level int) int {
	return level * t.WinScorePerLevel
}

// floor — нижняя граница числового параметра по его JSON-имени
type floor struct {
	field     string
	min       float64
	exclusive bool
	value     func(Tuning) float64
}

var tuningFloors = []floor{
	{"baseSpawnIntervalMs", 1, false, func(t Tuning) float64 { return float64(t.BaseSpawnIntervalMs) }},
	{"minSpawnIntervalMs", 1, false, func(t Tuning) float64 { return float64(t.MinSpawnIntervalMs) }},
	{"levelSpawnStepMs", 0, false, func(t Tuning) float64 { return float64(t.LevelSpawnStepMs) }},
	{"roundSpawnStepMs", 0, false, func(t Tuning) float64 { return float64(t.RoundSpawnStepMs) }},
	{"baseProjectileSpeed", 0, true, func(t Tuning) float64 { return t.BaseProjectileSpeed }},
	{"levelSpeedFactor", 0, false, func(t Tuning) float64 { return t.LevelSpeedFactor }},
	{"roundSpeedFactor", 0, false, func(t Tuning) float64 { return t.RoundSpeedFactor }},
	{"interceptorSpeed", 0, true, func(t Tuning) float64 { return t.InterceptorSpeed }},
	{"explosionIncrement", 0, true, func(t Tuning) float64 { return t.ExplosionIncrement }},
	{"explosionGrowTicks", 1, false, func(t Tuning) float64 { return float64(t.ExplosionGrowTicks) }},
	{"explosionMaxRadius", 0, true, func(t Tuning) float64 { return t.ExplosionMaxRadius }},
	{"directHitRadius", 0, false, func(t Tuning) float64 { return t.DirectHitRadius }},
	{"centerFireOffset", 0, false, func(t Tuning) float64 { return t.CenterFireOffset }},
	{"killScore", 0, false, func(t Tuning) float64 { return float64(t.KillScore) }},
	{"winScorePerLevel", 1, false, func(t Tuning) float64 { return float64(t.WinScorePerLevel) }},
	{"cityBonus", 0, false, func(t Tuning) float64 { return float64(t.CityBonus) }},
	{"shieldBonus", 0, false, func(t Tuning) float64 { return float64(t.ShieldBonus) }},
	{"maxLevel", 0, false, func(t Tuning) float64 { return float64(t.MaxLevel) }},
	{"cityShields", 1, false, func(t Tuning) float64 { return float64(t.CityShields) }},
	{"batteryAmmo", 0, false, func(t Tuning) float64 { return float64(t.BatteryAmmo) }},
}

// Validate проверяет параметры и собирает все ошибки разом
func (t Tuning) Validate() error {
	var errs []error
	for _, f := range tuningFloors {
		v := f.value(t)
		switch {
		case f.exclusive && v <= f.min:
			errs = append(errs, fmt.Errorf("%s must be greater than %v, got %v", f.field, f.min, v))
		case !f.exclusive && v < f.min:
			errs = append(errs, fmt.Errorf("%s must be at least %v, got %v", f.field, f.min, v))
		}
	}
	return errors.Join(errs...)
}

// JSONSchemaExtend дописывает в схему нижние границы, которые проверяет Validate.
// Теги jsonschema хранят minimum как int и теряют нулевые и дробные границы.
func (Tuning) JSONSchemaExtend(s *jsonschema.Schema) {
	if s.Properties == nil {
		return
	}
	for _, f := range tuningFloors {
		raw, ok := s.Properties.Get(f.field)
		if !ok {
			continue
		}
		prop, ok := raw.(*jsonschema.Schema)
		if !ok {
			continue
		}
		if prop.Extras == nil {
			prop.Extras = map[string]interface{}{}
		}
		if f.exclusive {
			prop.Extras["exclusiveMinimum"] = f.min
		} else {
			prop.Extras["minimum"] = f.min
		}
	}
}

// LoadTuning читает файл параметров поверх значений по умолчанию.
// Пустой путь означает значения по умолчанию.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	if path == "" {
		return t, nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("failed to read tuning file: %w", err)
	}
	if err := json.Unmarshal(file, &t); err != nil {
		return t, fmt.Errorf("failed to unmarshal tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("invalid tuning in %s: %w", path, err)
	}

	log.Printf("Loaded tuning from %s", path)
	return t, nil
}
