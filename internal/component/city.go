// internal/component/city.go
package component

import "github.com/Millie-beep/MillieStarDefender/internal/types"

// City — защищаемое сооружение со щитами
type City struct {
	ID         types.EntityID
	X          float64
	Active     bool
	Shields    int
	MaxShields int
}

// ShieldFraction — доля оставшихся щитов, от 0 до 1
func (c *City) ShieldFraction() float64 {
	if c.MaxShields <= 0 {
		return 0
	}
	return float64(c.Shields) / float64(c.MaxShields)
}
