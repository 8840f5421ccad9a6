package media

import (
	"errors"
	"slices"
	"testing"
)

func TestURL(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want string
	}{
		{name: "bare id", id: "jfKfPfyJRdk", want: "https://www.youtube.com/watch?v=jfKfPfyJRdk"},
		{name: "padded id", id: "  abc_DEF-12 ", want: "https://www.youtube.com/watch?v=abc_DEF-12"},
		{name: "full url", id: "https://music.example.com/station?id=7", want: "https://music.example.com/station?id=7"},
		{name: "plain http", id: "http://radio.example.org/live", want: "http://radio.example.org/live"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := URL(tt.id)
			if err != nil {
				t.Fatalf("URL(%q): %v", tt.id, err)
			}
			if got.String() != tt.want {
				t.Fatalf("URL(%q) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}

func TestURLRejectsInvalidMedia(t *testing.T) {
	for _, id := range []string{"not an id", "file:///etc/passwd", "javascript://alert(1)", "https://", "id?x=1"} {
		if _, err := URL(id); !errors.Is(err, ErrInvalidMedia) {
			t.Errorf("URL(%q) err = %v, want ErrInvalidMedia", id, err)
		}
	}
}

func TestEmptyIDPicksLofiStream(t *testing.T) {
	for i := 0; i < 20; i++ {
		got, err := URL("")
		if err != nil {
			t.Fatalf("URL(\"\"): %v", err)
		}
		if got.Host != "www.youtube.com" || !slices.Contains(LofiStreams, got.Query().Get("v")) {
			t.Fatalf("URL(\"\") = %q, want a lofi stream", got)
		}
	}
}
