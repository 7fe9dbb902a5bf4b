// internal/component/movement.go
package component

import "math"

// Position — компонент позиции, также используется как точка и вектор
type Position struct {
	X, Y float64
}

// Sub возвращает разность p - o
func (p Position) Sub(o Position) Position {
	return Position{X: p.X - o.X, Y: p.Y - o.Y}
}

// Add возвращает сумму p + o
func (p Position) Add(o Position) Position {
	return Position{X: p.X + o.X, Y: p.Y + o.Y}
}

// Scale умножает вектор на число
func (p Position) Scale(k float64) Position {
	return Position{X: p.X * k, Y: p.Y * k}
}

// Len — длина вектора
func (p Position) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// DistanceTo — расстояние между точками
func (p Position) DistanceTo(o Position) float64 {
	return p.Sub(o).Len()
}

// Unit возвращает единичный вектор. Для нулевого вектора возвращается нулевой.
func (p Position) Unit() Position {
	l := p.Len()
	if l == 0 {
		return Position{}
	}
	return Position{X: p.X / l, Y: p.Y / l}
}
