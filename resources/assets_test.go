package resources

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestIconsAreEmbedded(t *testing.T) {
	for _, name := range []string{"idle.svg", "focus.svg", "break.svg", "logo.svg"} {
		resource, err := Icon(name)
		if err != nil {
			t.Fatalf("Icon(%s): %v", name, err)
		}
		if len(resource.Content()) == 0 {
			t.Errorf("Icon(%s) is empty", name)
		}
	}
}

func TestIconMissing(t *testing.T) {
	if _, err := Icon("nope.svg"); err == nil {
		t.Fatal("expected error for missing icon")
	}
}

func TestLoadImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "focus.png")
	if err := os.WriteFile(path, []byte("\x89PNG fake"), 0o644); err != nil {
		t.Fatalf("write image: %v", err)
	}

	first, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if first.Name() != "focus.png" {
		t.Errorf("name = %q", first.Name())
	}

	if err := os.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	second, err := LoadImage(path)
	if err != nil {
		t.Fatalf("cached LoadImage: %v", err)
	}
	if second != first {
		t.Error("expected cached resource")
	}
}

func TestLoadImageErrors(t *testing.T) {
	if resource, err := LoadImage(""); resource != nil || err != nil {
		t.Fatalf("LoadImage(\"\") = %v, %v", resource, err)
	}

	if _, err := LoadImage(filepath.Join(t.TempDir(), "wall.bmp")); !errors.Is(err, ErrUnsupportedImage) {
		t.Fatalf("bmp err = %v, want ErrUnsupportedImage", err)
	}

	if _, err := LoadImage(filepath.Join(t.TempDir(), "missing.jpg")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
