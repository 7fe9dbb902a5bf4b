// internal/component/battery.go
package component

import "github.com/Millie-beep/MillieStarDefender/internal/types"

// Battery — пусковая установка с ограниченным боезапасом
type Battery struct {
	ID      types.EntityID
	X       float64
	Ammo    int
	MaxAmmo int
	Active  bool
	Center  bool // центральная установка стреляет тройным залпом
}

// Armed — активна и есть боезапас
func (b *Battery) Armed() bool {
	return b.Active && b.Ammo > 0
}
