package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const SampleRate = beep.SampleRate(44100)

// Ноты фанфары: до-мажорное арпеджио, затем аккорд
var (
	fanfareNotes = []float64{523.25, 659.25, 783.99}
	fanfareChord = []float64{523.25, 659.25, 783.99, 1046.50}
)

const (
	noteDuration  = 110 * time.Millisecond
	chordDuration = 600 * time.Millisecond
	noteRelease   = 60 * time.Millisecond
	chordRelease  = 400 * time.Millisecond
	fanfareVolume = 0.35
)

// release плавно гасит хвост звука, чтобы не было щелчка
type release struct {
	streamer     beep.Streamer
	position     int
	total        int
	releaseStart int
}

func newRelease(s beep.Streamer, duration, fade time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	start := total - rate.N(fade)
	if start < 0 {
		start = 0
	}
	return &release{streamer: s, total: total, releaseStart: start}
}

func (r *release) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = r.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if r.position >= r.total {
			return i, false
		}
		if r.position >= r.releaseStart {
			vol := float64(r.total-r.position) / float64(r.total-r.releaseStart)
			samples[i][0] *= vol
			samples[i][1] *= vol
		}
		r.position++
	}
	return n, ok
}

func (r *release) Err() error { return r.streamer.Err() }

func tone(freq float64, duration, fade time.Duration, rate beep.SampleRate) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, err
	}
	return newRelease(beep.Take(rate.N(duration), sine), duration, fade, rate), nil
}

func volume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// NewFanfare собирает звук завершения уровня
func NewFanfare(rate beep.SampleRate) (beep.Streamer, error) {
	var parts []beep.Streamer
	for _, f := range fanfareNotes {
		n, err := tone(f, noteDuration, noteRelease, rate)
		if err != nil {
			return nil, err
		}
		parts = append(parts, n)
	}

	var chord []beep.Streamer
	for _, f := range fanfareChord {
		n, err := tone(f, chordDuration, chordRelease, rate)
		if err != nil {
			return nil, err
		}
		chord = append(chord, volume(n, 1.0/float64(len(fanfareChord))))
	}
	parts = append(parts, beep.Mix(chord...))

	return volume(beep.Seq(parts...), fanfareVolume), nil
}
