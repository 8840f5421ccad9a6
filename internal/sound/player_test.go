package sound

import (
	"math"
	"testing"

	"pulsodoro/internal/core/timekeeper"
)

func TestChimeLengthPerState(t *testing.T) {
	sampleRate := defaultSampleRate
	note := sampleRate.N(noteLength)
	gap := sampleRate.N(noteGap)

	tests := []struct {
		state timekeeper.State
		want  int
	}{
		{timekeeper.StateFocus, 2*note + gap},
		{timekeeper.StateShortBreak, 2*note + gap},
		{timekeeper.StateLongBreak, 4*note + 2*gap},
		{timekeeper.StateIdle, 2 * note},
	}

	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			got, peak := drain(t, Chime(sampleRate, tt.state))
			if got != tt.want {
				t.Errorf("samples = %d, want %d", got, tt.want)
			}
			if peak == 0 || peak > amplitude+1e-9 {
				t.Errorf("peak = %f, want in (0, %f]", peak, amplitude)
			}
		})
	}
}

func TestChimesDifferBetweenFocusAndBreak(t *testing.T) {
	focus := chimeNotes(timekeeper.StateFocus)
	shortBreak := chimeNotes(timekeeper.StateShortBreak)
	if focus[0].frequency >= focus[1].frequency {
		t.Error("focus chime should rise")
	}
	if shortBreak[0].frequency <= shortBreak[1].frequency {
		t.Error("break chime should fall")
	}
}

func drain(t *testing.T, streamer interface {
	Stream([][2]float64) (int, bool)
}) (int, float64) {
	t.Helper()
	buffer := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for i := 0; i < 10000; i++ {
		n, ok := streamer.Stream(buffer)
		for _, sample := range buffer[:n] {
			peak = math.Max(peak, math.Abs(sample[0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never finished")
	return 0, 0
}
