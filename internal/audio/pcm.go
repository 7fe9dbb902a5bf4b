package audio

import (
	"encoding/binary"
	"math"

	"github.com/gopxl/beep"
)

const pcmChunk = 512

// EncodePCM вычитывает поток целиком в 16-битный little-endian стерео PCM.
// Этот формат ожидает аудио-контекст ebiten.
func EncodePCM(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, pcmChunk)
	var frame [4]byte
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint16(frame[0:], uint16(toInt16(buf[i][0])))
			binary.LittleEndian.PutUint16(frame[2:], uint16(toInt16(buf[i][1])))
			out = append(out, frame[:]...)
		}
		if !ok || n == 0 {
			return out
		}
	}
}

func toInt16(v float64) int16 {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return int16(math.Round(v * math.MaxInt16))
}
