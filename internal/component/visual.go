// internal/component/visual.go
package component

// Star — неподвижная звезда декоративного фона, в мировых координатах
type Star struct {
	X, Y   float64
	Radius float32
	Alpha  uint8
}
