package platform

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// ErrWallpaperUnsupported indicates wallpaper control is not available on this system.
var ErrWallpaperUnsupported = errors.New("wallpaper control unsupported")

// WallpaperSetter reads and replaces the desktop wallpaper.
type WallpaperSetter interface {
	Current() (string, error)
	Set(path string) error
}

// NewWallpaperSetter returns a platform-specific wallpaper setter.
func NewWallpaperSetter() WallpaperSetter {
	return newWallpaperSetter()
}

// desktopWallpaper adapts the desktop environment's wallpaper calls.
type desktopWallpaper struct {
	get func() (string, error)
	set func(path string) error
}

// Current returns the wallpaper as a file path.
func (setter *desktopWallpaper) Current() (string, error) {
	current, err := setter.get()
	if err != nil {
		return "", desktopError("get wallpaper", err)
	}
	return uriToPath(strings.TrimSpace(current)), nil
}

// Set applies the image at path, resolved to an absolute path first.
func (setter *desktopWallpaper) Set(path string) error {
	absolute, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve wallpaper path: %w", err)
	}
	if err := setter.set(absolute); err != nil {
		return desktopError("set wallpaper", err)
	}
	return nil
}

func desktopError(action string, err error) error {
	if isUnsupported(err) {
		return fmt.Errorf("%w: %v", ErrWallpaperUnsupported, err)
	}
	return fmt.Errorf("%s: %w", action, err)
}

// uriToPath strips the file:// form some desktops report.
func uriToPath(uri string) string {
	if !strings.HasPrefix(uri, "file://") {
		return uri
	}
	parsed, err := url.Parse(uri)
	if err != nil {
		return strings.TrimPrefix(uri, "file://")
	}
	return parsed.Path
}

type unsupportedWallpaperSetter struct{}

func (unsupportedWallpaperSetter) Current() (string, error) {
	return "", ErrWallpaperUnsupported
}

func (unsupportedWallpaperSetter) Set(string) error {
	return ErrWallpaperUnsupported
}
