// internal/event/types.go
package event

const (
	LevelComplete       EventType = "LevelComplete"       // Достигнута цель уровня
	RoundComplete       EventType = "RoundComplete"       // Раунд завершён, патроны кончились
	ScoreChanged        EventType = "ScoreChanged"        // Изменился счёт
	PhaseChanged        EventType = "PhaseChanged"        // Сменилась фаза сессии
	ProjectileDestroyed EventType = "ProjectileDestroyed" // Снаряд сбит игроком
	ProjectileImpact    EventType = "ProjectileImpact"    // Снаряд достиг земли
	CityDestroyed       EventType = "CityDestroyed"       // Город потерял последний щит
	BatteryDestroyed    EventType = "BatteryDestroyed"    // Установка уничтожена
)

// PhaseChange — данные события PhaseChanged
type PhaseChange struct {
	From, To string
}

// RoundResult — данные событий LevelComplete и RoundComplete
type RoundResult struct {
	Level int
	Round int
	Score int
	Bonus int
}
