package app

import (
	"errors"
	"testing"

	"github.com/Millie-beep/MillieStarDefender/internal/component"
)

func TestSessionTransitions(t *testing.T) {
	tests := []struct {
		name    string
		path    []Trigger
		want    component.Phase
		wantErr bool
	}{
		{name: "start", path: []Trigger{TriggerStart}, want: component.PhasePlaying},
		{name: "pause and resume", path: []Trigger{TriggerStart, TriggerPause, TriggerResume}, want: component.PhasePlaying},
		{name: "lose", path: []Trigger{TriggerStart, TriggerLose}, want: component.PhaseLost},
		{name: "win", path: []Trigger{TriggerStart, TriggerWin}, want: component.PhaseWon},
		{name: "round end", path: []Trigger{TriggerStart, TriggerCompleteRound}, want: component.PhaseRoundEnd},
		{name: "next round", path: []Trigger{TriggerStart, TriggerCompleteRound, TriggerNextRound}, want: component.PhasePlaying},
		{name: "next level", path: []Trigger{TriggerStart, TriggerCompleteRound, TriggerNextLevel}, want: component.PhasePlaying},
		{name: "replay", path: []Trigger{TriggerStart, TriggerCompleteRound, TriggerReplayLevel}, want: component.PhasePlaying},
		{name: "reset from lost", path: []Trigger{TriggerStart, TriggerLose, TriggerReset}, want: component.PhaseStart},
		{name: "reset from start", path: []Trigger{TriggerReset}, want: component.PhaseStart},
		{name: "pause in start", path: []Trigger{TriggerPause}, want: component.PhaseStart, wantErr: true},
		{name: "resume while playing", path: []Trigger{TriggerStart, TriggerResume}, want: component.PhasePlaying, wantErr: true},
		{name: "lose while paused", path: []Trigger{TriggerStart, TriggerPause, TriggerLose}, want: component.PhasePaused, wantErr: true},
		{name: "next round while playing", path: []Trigger{TriggerStart, TriggerNextRound}, want: component.PhasePlaying, wantErr: true},
		{name: "start twice", path: []Trigger{TriggerStart, TriggerStart}, want: component.PhasePlaying, wantErr: true},
		{name: "start after won", path: []Trigger{TriggerStart, TriggerWin, TriggerStart}, want: component.PhaseWon, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession()
			var err error
			for _, trig := range tt.path {
				_, err = s.Fire(trig)
			}
			if (err != nil) != tt.wantErr {
				t.Fatalf("last error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrIllegalTransition) {
				t.Errorf("error %v is not ErrIllegalTransition", err)
			}
			if s.Phase() != tt.want {
				t.Errorf("phase = %v, want %v", s.Phase(), tt.want)
			}
		})
	}
}

func TestSessionCan(t *testing.T) {
	s := NewSession()
	if !s.Can(TriggerStart) || s.Can(TriggerPause) {
		t.Error("START must allow only Start")
	}
	if !s.Can(TriggerReset) {
		t.Error("Reset must always be allowed")
	}
}

func TestSessionClearsReasonOutsideRoundEnd(t *testing.T) {
	s := NewSession()
	s.Fire(TriggerStart)
	s.Fire(TriggerCompleteRound)
	s.reason = component.RoundEndAmmoExhausted
	s.lastBonus = 100

	s.Fire(TriggerNextRound)
	if s.reason != component.RoundEndNone || s.lastBonus != 0 {
		t.Errorf("reason %v and bonus %d not cleared", s.reason, s.lastBonus)
	}
}

func TestSessionRejectsNextRoundAfterLevelGoal(t *testing.T) {
	s := NewSession()
	s.Fire(TriggerStart)
	s.Fire(TriggerCompleteRound)
	s.reason = component.RoundEndLevelGoal

	if s.Can(TriggerNextRound) {
		t.Error("NextRound allowed after level goal")
	}
	if _, err := s.Fire(TriggerNextRound); !errors.Is(err, ErrIllegalTransition) {
		t.Fatalf("NextRound after level goal: %v", err)
	}
	if s.Phase() != component.PhaseRoundEnd || s.reason != component.RoundEndLevelGoal {
		t.Errorf("state changed: phase %v reason %v", s.Phase(), s.reason)
	}
	if phase, err := s.Fire(TriggerNextLevel); err != nil || phase != component.PhasePlaying {
		t.Errorf("NextLevel = %v, %v", phase, err)
	}
}
