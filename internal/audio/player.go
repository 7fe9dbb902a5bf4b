package audio

import (
	"fmt"
	"log"

	"github.com/Millie-beep/MillieStarDefender/internal/event"
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

// Player проигрывает фанфару при завершении уровня
type Player struct {
	fanfare *ebaudio.Player
}

// NewPlayer синтезирует фанфару заранее и готовит её к воспроизведению
func NewPlayer() (*Player, error) {
	stream, err := NewFanfare(SampleRate)
	if err != nil {
		return nil, fmt.Errorf("failed to build fanfare: %w", err)
	}
	pcm := EncodePCM(stream)

	ctx := ebaudio.CurrentContext()
	if ctx == nil {
		ctx = ebaudio.NewContext(int(SampleRate))
	}
	return &Player{fanfare: ctx.NewPlayerFromBytes(pcm)}, nil
}

// OnEvent реализует интерфейс event.Listener.
func (p *Player) OnEvent(e event.Event) {
	if e.Type != event.LevelComplete {
		return
	}
	if err := p.fanfare.Rewind(); err != nil {
		log.Printf("fanfare rewind failed: %v", err)
		return
	}
	p.fanfare.Play()
}
