package session

import (
	"errors"
	"sync"
	"testing"
	"time"

	"pulsodoro/internal/core/model"
	"pulsodoro/internal/core/timekeeper"
	"pulsodoro/internal/platform"
	"pulsodoro/internal/wallpaper"
)

type recorder struct {
	mu            sync.Mutex
	saved         []model.Settings
	saveErr       error
	applied       []timekeeper.State
	applyErr      error
	restores      int
	played        []timekeeper.State
	notifications []string
	autostart     []bool
}

func (rec *recorder) Save(settings model.Settings) error {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.saved = append(rec.saved, settings)
	return rec.saveErr
}

func (rec *recorder) ApplyState(state timekeeper.State, backgrounds wallpaper.Backgrounds) error {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.applied = append(rec.applied, state)
	return rec.applyErr
}

func (rec *recorder) Restore() error {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.restores++
	return nil
}

func (rec *recorder) Play(state timekeeper.State) error {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.played = append(rec.played, state)
	return nil
}

func (rec *recorder) Notify(title, message string) {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.notifications = append(rec.notifications, message)
}

func (rec *recorder) SetAutostart(enabled bool) error {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.autostart = append(rec.autostart, enabled)
	return nil
}

func newTestSession(settings model.Settings) (*Session, *recorder, *timekeeper.TimeKeeper) {
	rec := &recorder{}
	keeper := timekeeper.New(model.DefaultDurations(), timekeeper.Config{})
	session := New(keeper, settings, Options{
		Store:     rec,
		Wallpaper: rec,
		Player:    rec,
		Notifier:  rec,
		Autostart: rec,
	})
	return session, rec, keeper
}

// watch runs Watch until the keeper stops producing events for a while.
func watch(t *testing.T, session *Session, events <-chan timekeeper.Event, actions func()) []timekeeper.Event {
	t.Helper()
	var got []timekeeper.Event
	forwarded := make(chan timekeeper.Event, 64)
	go session.Watch(events, func(event timekeeper.Event) { forwarded <- event })

	actions()

	for {
		select {
		case event := <-forwarded:
			got = append(got, event)
		case <-time.After(100 * time.Millisecond):
			return got
		}
	}
}

func TestNewAppliesSettingsDurations(t *testing.T) {
	settings := model.DefaultSettings()
	settings.FocusMinutes = 50
	_, _, keeper := newTestSession(settings)

	if got := keeper.Status().RemainingSeconds; got != 50*60 {
		t.Fatalf("remaining = %d, want %d", got, 50*60)
	}
}

func TestCommandsReturnStatus(t *testing.T) {
	session, _, _ := newTestSession(model.DefaultSettings())

	if got := session.Start(); got.State != timekeeper.StateFocus || !got.IsRunning {
		t.Fatalf("Start() = %+v", got)
	}
	if got := session.Pause(); got.IsRunning {
		t.Fatalf("Pause() = %+v", got)
	}
	if got := session.Toggle(); !got.IsRunning {
		t.Fatalf("Toggle() from paused = %+v", got)
	}
	if got := session.Skip(); got.State != timekeeper.StateShortBreak {
		t.Fatalf("Skip() = %+v", got)
	}
	if got := session.Reset(); got.State != timekeeper.StateIdle || got.Cycle != 1 {
		t.Fatalf("Reset() = %+v", got)
	}
}

func TestTransitionsTriggerReactions(t *testing.T) {
	settings := model.DefaultSettings()
	settings.ChangeWallpaper = true
	settings.FocusBackground = "/img/focus.png"
	session, rec, keeper := newTestSession(settings)
	events := keeper.Subscribe(64)

	got := watch(t, session, events, func() {
		session.Start()
		session.Skip()
		session.Reset()
	})

	transitions := 0
	for _, event := range got {
		if event.Type == timekeeper.EventTransition {
			transitions++
		}
	}
	if transitions != 3 {
		t.Fatalf("forwarded transitions = %d, want 3", transitions)
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	wantApplied := []timekeeper.State{timekeeper.StateFocus, timekeeper.StateShortBreak}
	if len(rec.applied) != len(wantApplied) || rec.applied[0] != wantApplied[0] || rec.applied[1] != wantApplied[1] {
		t.Errorf("applied = %v, want %v", rec.applied, wantApplied)
	}
	if rec.restores != 1 {
		t.Errorf("restores = %d, want 1", rec.restores)
	}
	wantPlayed := []timekeeper.State{timekeeper.StateFocus, timekeeper.StateShortBreak, timekeeper.StateIdle}
	if len(rec.played) != len(wantPlayed) {
		t.Fatalf("played = %v, want %v", rec.played, wantPlayed)
	}
	wantMessages := []string{
		"Focus time! Let's get to work.",
		"Short break! Take a breather.",
		"Timer stopped.",
	}
	for i, message := range wantMessages {
		if rec.notifications[i] != message {
			t.Errorf("notification %d = %q, want %q", i, rec.notifications[i], message)
		}
	}
}

func TestSoundAndWallpaperRespectToggles(t *testing.T) {
	settings := model.DefaultSettings()
	settings.SoundEnabled = false
	settings.ChangeWallpaper = false
	session, rec, keeper := newTestSession(settings)
	events := keeper.Subscribe(64)

	watch(t, session, events, func() {
		session.Start()
		session.Skip()
	})

	rec.mu.Lock()
	defer rec.mu.Unlock()
	if len(rec.played) != 0 {
		t.Errorf("played = %v, want none", rec.played)
	}
	if len(rec.applied) != 0 {
		t.Errorf("applied = %v, want none", rec.applied)
	}
	if len(rec.notifications) != 2 {
		t.Errorf("notifications = %v, want 2", rec.notifications)
	}
}

func TestUnsupportedWallpaperDoesNotStopReactions(t *testing.T) {
	settings := model.DefaultSettings()
	settings.ChangeWallpaper = true
	session, rec, keeper := newTestSession(settings)
	rec.applyErr = platform.ErrWallpaperUnsupported
	events := keeper.Subscribe(64)

	watch(t, session, events, func() {
		session.Start()
		session.Skip()
	})

	rec.mu.Lock()
	defer rec.mu.Unlock()
	if len(rec.applied) != 2 || len(rec.notifications) != 2 {
		t.Fatalf("applied = %v, notifications = %v", rec.applied, rec.notifications)
	}
}

func TestSetDurationsPersists(t *testing.T) {
	session, rec, keeper := newTestSession(model.DefaultSettings())

	status, err := session.SetDurations(45, 10, 20)
	if err != nil {
		t.Fatalf("SetDurations: %v", err)
	}
	if status.RemainingSeconds != 45*60 {
		t.Errorf("remaining = %d, want %d", status.RemainingSeconds, 45*60)
	}
	if got := keeper.Durations(); got != model.DurationsFromMinutes(45, 10, 20) {
		t.Errorf("durations = %+v", got)
	}
	if len(rec.saved) != 1 || rec.saved[0].FocusMinutes != 45 || rec.saved[0].LongBreakMinutes != 20 {
		t.Fatalf("saved = %+v", rec.saved)
	}
}

func TestSetDurationsRejectsNonPositive(t *testing.T) {
	session, rec, _ := newTestSession(model.DefaultSettings())
	if _, err := session.SetDurations(0, 5, 15); err == nil {
		t.Fatal("expected error")
	}
	if len(rec.saved) != 0 {
		t.Fatalf("saved = %+v, want nothing", rec.saved)
	}
}

func TestUpdateSettingsAppliesEvenWhenSaveFails(t *testing.T) {
	session, rec, _ := newTestSession(model.DefaultSettings())
	rec.saveErr = errors.New("disk full")

	settings := session.Settings()
	settings.CustomMediaID = "lofi"
	_, err := session.UpdateSettings(settings)
	if !errors.Is(err, rec.saveErr) {
		t.Fatalf("err = %v, want wrapped save error", err)
	}
	if session.Settings().CustomMediaID != "lofi" {
		t.Fatal("settings not applied after failed save")
	}
}

func TestUpdateSettingsTogglesAutostartAndWallpaper(t *testing.T) {
	start := model.DefaultSettings()
	start.ChangeWallpaper = true
	session, rec, _ := newTestSession(start)

	settings := session.Settings()
	settings.LaunchAtLogin = true
	settings.ChangeWallpaper = false
	if _, err := session.UpdateSettings(settings); err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}
	if _, err := session.UpdateSettings(settings); err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	if len(rec.autostart) != 1 || !rec.autostart[0] {
		t.Errorf("autostart calls = %v, want [true]", rec.autostart)
	}
	if rec.restores != 1 {
		t.Errorf("restores = %d, want 1", rec.restores)
	}
}

func TestShutdownWithoutWallpaper(t *testing.T) {
	keeper := timekeeper.New(model.DefaultDurations(), timekeeper.Config{})
	session := New(keeper, model.DefaultSettings(), Options{})
	session.Shutdown()
	if _, err := session.UpdateSettings(model.DefaultSettings()); err != nil {
		t.Fatalf("UpdateSettings without store: %v", err)
	}
}
