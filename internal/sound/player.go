package sound

import (
	"fmt"
	"math"
	"sync"
	"time"

	"pulsodoro/internal/core/timekeeper"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const (
	defaultSampleRate = beep.SampleRate(44100)
	noteLength        = 180 * time.Millisecond
	noteGap           = 40 * time.Millisecond
	amplitude         = 0.35
)

type note struct {
	frequency float64
	length    time.Duration
}

// Player plays a short synthesized chime on interval changes.
type Player struct {
	sampleRate beep.SampleRate
	once       sync.Once
	initErr    error
}

// NewPlayer returns a player. The speaker is opened lazily on first use.
func NewPlayer() *Player {
	return &Player{sampleRate: defaultSampleRate}
}

// Play queues the chime for state on the speaker.
func (player *Player) Play(state timekeeper.State) error {
	player.once.Do(func() {
		player.initErr = speaker.Init(player.sampleRate, player.sampleRate.N(time.Second/10))
	})
	if player.initErr != nil {
		return fmt.Errorf("init speaker: %w", player.initErr)
	}
	speaker.Play(Chime(player.sampleRate, state))
	return nil
}

// Chime builds the finite tone sequence for state.
func Chime(sampleRate beep.SampleRate, state timekeeper.State) beep.Streamer {
	notes := chimeNotes(state)
	streamers := make([]beep.Streamer, 0, len(notes)*2)
	for index, current := range notes {
		if index > 0 {
			streamers = append(streamers, beep.Silence(sampleRate.N(noteGap)))
		}
		streamers = append(streamers, tone(sampleRate, current.frequency, sampleRate.N(current.length)))
	}
	return beep.Seq(streamers...)
}

func chimeNotes(state timekeeper.State) []note {
	const (
		c4 = 261.63
		c5 = 523.25
		e5 = 659.25
		g5 = 783.99
	)
	switch state {
	case timekeeper.StateFocus:
		return []note{{c5, noteLength}, {g5, noteLength}}
	case timekeeper.StateShortBreak:
		return []note{{g5, noteLength}, {c5, noteLength}}
	case timekeeper.StateLongBreak:
		return []note{{g5, noteLength}, {e5, noteLength}, {c5, 2 * noteLength}}
	default:
		return []note{{c4, 2 * noteLength}}
	}
}

// tone is a sine wave with a linear fade-out, total samples long.
func tone(sampleRate beep.SampleRate, frequency float64, total int) beep.Streamer {
	position := 0
	step := 2 * math.Pi * frequency / float64(sampleRate)
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if position >= total {
			return 0, false
		}
		filled := 0
		for filled < len(samples) && position < total {
			envelope := 1 - float64(position)/float64(total)
			value := amplitude * envelope * math.Sin(step*float64(position))
			samples[filled][0] = value
			samples[filled][1] = value
			filled++
			position++
		}
		return filled, true
	})
}
