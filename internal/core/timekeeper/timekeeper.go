package timekeeper

import (
	"context"
	"sync"
	"time"

	"pulsodoro/internal/core/model"
)

// Config contains runtime options for TimeKeeper.
type Config struct {
	TickInterval time.Duration
}

// TimeKeeper is the focus/break interval state machine.
type TimeKeeper struct {
	// emitMu spans a command's mutation and its event sends so observers see
	// events in the order the state changed. Taken before mu.
	emitMu sync.Mutex

	mu        sync.Mutex
	durations model.Durations
	status    Status
	options   Config
	looping   bool

	subscribersMu sync.Mutex
	events        []chan Event
}

// New creates an idle TimeKeeper with the provided durations.
func New(durations model.Durations, options Config) *TimeKeeper {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}

	keeper := &TimeKeeper{
		durations: model.DefaultDurations(),
		options:   options,
	}
	keeper.applyDurationsLocked(durations)
	keeper.resetLocked()
	return keeper
}

// Subscribe registers a new observer channel.
func (keeper *TimeKeeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.subscribersMu.Lock()
	keeper.events = append(keeper.events, ch)
	keeper.subscribersMu.Unlock()
	return ch
}

// Run ticks the timer every TickInterval until ctx is cancelled, then closes observers.
func (keeper *TimeKeeper) Run(ctx context.Context) {
	keeper.mu.Lock()
	if keeper.looping {
		keeper.mu.Unlock()
		return
	}
	keeper.looping = true
	keeper.mu.Unlock()

	ticker := time.NewTicker(keeper.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			keeper.mu.Lock()
			keeper.looping = false
			keeper.mu.Unlock()
			keeper.closeSubscribers()
			return
		case <-ticker.C:
			keeper.Tick()
		}
	}
}

// Start begins a focus interval when idle and resumes counting otherwise.
func (keeper *TimeKeeper) Start() {
	keeper.emitMu.Lock()
	defer keeper.emitMu.Unlock()

	keeper.mu.Lock()
	entered := false
	if keeper.status.State == StateIdle {
		keeper.status.State = StateFocus
		keeper.status.RemainingSeconds = model.Seconds(keeper.durations.Focus)
		entered = true
	}
	keeper.status.IsRunning = true
	snapshot := keeper.status
	keeper.mu.Unlock()

	if entered {
		keeper.emitTransition(snapshot)
	}
	keeper.emitStatus(snapshot)
}

// Pause freezes the countdown without leaving the current interval.
func (keeper *TimeKeeper) Pause() {
	keeper.emitMu.Lock()
	defer keeper.emitMu.Unlock()

	keeper.mu.Lock()
	keeper.status.IsRunning = false
	snapshot := keeper.status
	keeper.mu.Unlock()

	keeper.emitStatus(snapshot)
}

// Reset discards the current interval and returns to idle.
func (keeper *TimeKeeper) Reset() {
	keeper.emitMu.Lock()
	defer keeper.emitMu.Unlock()

	keeper.mu.Lock()
	previous := keeper.status.State
	keeper.resetLocked()
	snapshot := keeper.status
	keeper.mu.Unlock()

	if previous != StateIdle {
		keeper.emitTransition(snapshot)
	}
	keeper.emitStatus(snapshot)
}

// Tick advances the countdown by one second.
// It returns the entered state when the tick realized a transition.
func (keeper *TimeKeeper) Tick() (State, bool) {
	keeper.emitMu.Lock()
	defer keeper.emitMu.Unlock()

	keeper.mu.Lock()
	if !keeper.status.IsRunning {
		snapshot := keeper.status
		keeper.mu.Unlock()
		keeper.emitStatus(snapshot)
		return "", false
	}

	var (
		next    State
		changed bool
	)
	if keeper.status.RemainingSeconds > 0 {
		keeper.status.RemainingSeconds--
	} else {
		next, changed = keeper.advanceLocked()
	}
	snapshot := keeper.status
	keeper.mu.Unlock()

	if changed {
		keeper.emitTransition(snapshot)
	}
	keeper.emitStatus(snapshot)
	return next, changed
}

// Skip ends the current interval immediately. It does nothing when idle.
func (keeper *TimeKeeper) Skip() (State, bool) {
	keeper.emitMu.Lock()
	defer keeper.emitMu.Unlock()

	keeper.mu.Lock()
	next, changed := keeper.advanceLocked()
	snapshot := keeper.status
	keeper.mu.Unlock()

	if changed {
		keeper.emitTransition(snapshot)
	}
	keeper.emitStatus(snapshot)
	return next, changed
}

// SetDurations replaces the configured interval lengths.
// Non-positive values keep the previous length. A running interval keeps its
// remaining time until the next transition.
func (keeper *TimeKeeper) SetDurations(durations model.Durations) {
	keeper.emitMu.Lock()
	defer keeper.emitMu.Unlock()

	keeper.mu.Lock()
	keeper.applyDurationsLocked(durations)
	if keeper.status.State == StateIdle {
		keeper.status.RemainingSeconds = model.Seconds(keeper.durations.Focus)
	}
	snapshot := keeper.status
	keeper.mu.Unlock()

	keeper.emitStatus(snapshot)
}

// Durations returns the configured interval lengths.
func (keeper *TimeKeeper) Durations() model.Durations {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.durations
}

// Status returns a snapshot of the timer.
func (keeper *TimeKeeper) Status() Status {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.status
}

func (keeper *TimeKeeper) advanceLocked() (State, bool) {
	var next State
	switch keeper.status.State {
	case StateFocus:
		if keeper.status.Cycle >= model.CyclesBeforeLongBreak {
			next = StateLongBreak
		} else {
			next = StateShortBreak
		}
	case StateShortBreak:
		keeper.status.Cycle++
		next = StateFocus
	case StateLongBreak:
		keeper.status.Cycle = 1
		next = StateFocus
	default:
		return "", false
	}

	keeper.status.State = next
	keeper.status.RemainingSeconds = model.Seconds(keeper.durationForLocked(next))
	return next, true
}

func (keeper *TimeKeeper) durationForLocked(state State) time.Duration {
	switch state {
	case StateShortBreak:
		return keeper.durations.ShortBreak
	case StateLongBreak:
		return keeper.durations.LongBreak
	case StateFocus:
		return keeper.durations.Focus
	default:
		return 0
	}
}

func (keeper *TimeKeeper) applyDurationsLocked(durations model.Durations) {
	if durations.Focus >= time.Second {
		keeper.durations.Focus = durations.Focus
	}
	if durations.ShortBreak >= time.Second {
		keeper.durations.ShortBreak = durations.ShortBreak
	}
	if durations.LongBreak >= time.Second {
		keeper.durations.LongBreak = durations.LongBreak
	}
}

func (keeper *TimeKeeper) resetLocked() {
	keeper.status = Status{
		State:            StateIdle,
		RemainingSeconds: model.Seconds(keeper.durations.Focus),
		Cycle:            1,
		IsRunning:        false,
	}
}

func (keeper *TimeKeeper) emitTransition(snapshot Status) {
	keeper.emit(Event{
		Type:    EventTransition,
		Status:  snapshot,
		Entered: snapshot.State,
		Message: snapshot.State.Message(),
		At:      time.Now(),
	})
}

func (keeper *TimeKeeper) emitStatus(snapshot Status) {
	keeper.emit(Event{
		Type:   EventStatus,
		Status: snapshot,
		At:     time.Now(),
	})
}

func (keeper *TimeKeeper) emit(event Event) {
	keeper.subscribersMu.Lock()
	defer keeper.subscribersMu.Unlock()
	for _, ch := range keeper.events {
		select {
		case ch <- event:
		default:
		}
	}
}

func (keeper *TimeKeeper) closeSubscribers() {
	keeper.subscribersMu.Lock()
	events := keeper.events
	keeper.events = nil
	keeper.subscribersMu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}
