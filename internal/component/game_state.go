// internal/component/game_state.go
package component

// Phase — фаза игровой сессии
type Phase int

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhasePaused
	PhaseWon
	PhaseLost
	PhaseRoundEnd
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "START"
	case PhasePlaying:
		return "PLAYING"
	case PhasePaused:
		return "PAUSED"
	case PhaseWon:
		return "WON"
	case PhaseLost:
		return "LOST"
	case PhaseRoundEnd:
		return "ROUND_END"
	default:
		return "UNKNOWN"
	}
}

// RoundEndReason — почему закончился раунд
type RoundEndReason int

const (
	RoundEndNone RoundEndReason = iota
	RoundEndLevelGoal
	RoundEndAmmoExhausted
)

func (r RoundEndReason) String() string {
	switch r {
	case RoundEndLevelGoal:
		return "LEVEL_GOAL"
	case RoundEndAmmoExhausted:
		return "AMMO_EXHAUSTED"
	default:
		return "NONE"
	}
}

// Progress — счёт и счётчики уровня/раунда
type Progress struct {
	Score int
	Level int
	Round int
}
