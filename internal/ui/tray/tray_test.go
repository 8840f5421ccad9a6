package tray

import (
	"testing"

	"pulsodoro/internal/core/timekeeper"

	"fyne.io/fyne/v2"
)

func TestStatusLine(t *testing.T) {
	tests := []struct {
		name   string
		status timekeeper.Status
		want   string
	}{
		{
			name:   "idle",
			status: timekeeper.Status{State: timekeeper.StateIdle, RemainingSeconds: 1500, Cycle: 1},
			want:   "Ready",
		},
		{
			name:   "running focus",
			status: timekeeper.Status{State: timekeeper.StateFocus, RemainingSeconds: 1499, Cycle: 2, IsRunning: true},
			want:   "Focus 24:59  (2/4)",
		},
		{
			name:   "paused break",
			status: timekeeper.Status{State: timekeeper.StateShortBreak, RemainingSeconds: 65, Cycle: 3},
			want:   "Short Break 01:05  (3/4) paused",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusLine(tt.status); got != tt.want {
				t.Fatalf("statusLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToggleLabel(t *testing.T) {
	if got := toggleLabel(timekeeper.Status{State: timekeeper.StateIdle}); got != "Start" {
		t.Errorf("idle = %q", got)
	}
	if got := toggleLabel(timekeeper.Status{State: timekeeper.StateFocus, IsRunning: true}); got != "Pause" {
		t.Errorf("running = %q", got)
	}
	if got := toggleLabel(timekeeper.Status{State: timekeeper.StateLongBreak}); got != "Resume" {
		t.Errorf("paused = %q", got)
	}
}

func TestIconFor(t *testing.T) {
	want := map[timekeeper.State]string{
		timekeeper.StateIdle:       "idle.svg",
		timekeeper.StateFocus:      "focus.svg",
		timekeeper.StateShortBreak: "break.svg",
		timekeeper.StateLongBreak:  "break.svg",
	}
	for state, name := range want {
		if got := iconFor(state); got != name {
			t.Errorf("iconFor(%s) = %q, want %q", state, got, name)
		}
	}
}

func TestManagerWithoutApp(t *testing.T) {
	called := 0
	manager := New(nil, Callbacks{OnSkip: func() { called++ }})
	if manager.toggleItem.Label != "Start" || !manager.skipItem.Disabled {
		t.Fatalf("initial menu: toggle=%q skipDisabled=%v", manager.toggleItem.Label, manager.skipItem.Disabled)
	}

	manager.SetStatus(timekeeper.Status{State: timekeeper.StateFocus, RemainingSeconds: 10, Cycle: 1, IsRunning: true})
	if manager.toggleItem.Label != "Pause" || manager.skipItem.Disabled {
		t.Fatalf("focus menu: toggle=%q skipDisabled=%v", manager.toggleItem.Label, manager.skipItem.Disabled)
	}

	manager.skipItem.Action()
	if called != 1 {
		t.Fatalf("skip callback called %d times", called)
	}
}

func TestPlayMusicItem(t *testing.T) {
	played := 0
	manager := New(nil, Callbacks{OnMusic: func() { played++ }})

	var music *fyne.MenuItem
	for _, item := range manager.menu.Items {
		if item.Label == "Play Music" {
			music = item
		}
	}
	if music == nil {
		t.Fatal("menu has no Play Music item")
	}
	music.Action()
	if played != 1 {
		t.Fatalf("music callback called %d times", played)
	}
}
