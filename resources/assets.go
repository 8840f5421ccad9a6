package resources

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
)

const iconDir = "icons/"

// ErrUnsupportedImage indicates a background image format fyne cannot decode.
var ErrUnsupportedImage = errors.New("unsupported image format")

//go:embed icons/*.svg
var iconFS embed.FS

var iconCache sync.Map
var imageCache sync.Map

var supportedImageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".svg":  true,
}

// Icon returns a Fyne resource for the given icon file.
func Icon(fileName string) (fyne.Resource, error) {
	path := iconDir + fileName
	if cached, ok := iconCache.Load(path); ok {
		return cached.(fyne.Resource), nil
	}

	data, err := iconFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load resource %s: %w", path, err)
	}

	resource := fyne.NewStaticResource(fileName, data)
	iconCache.Store(path, resource)
	return resource, nil
}

// MustIcon returns a Fyne resource or panics on error.
func MustIcon(fileName string) fyne.Resource {
	resource, err := Icon(fileName)
	if err != nil {
		panic(err)
	}
	return resource
}

// LoadImage reads a user-selected background image from disk.
// Results are cached by path; an empty path yields a nil resource.
func LoadImage(path string) (fyne.Resource, error) {
	if path == "" {
		return nil, nil
	}
	if cached, ok := imageCache.Load(path); ok {
		return cached.(fyne.Resource), nil
	}

	extension := strings.ToLower(filepath.Ext(path))
	if !supportedImageExtensions[extension] {
		return nil, fmt.Errorf("load image %s: %w", path, ErrUnsupportedImage)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	resource := fyne.NewStaticResource(filepath.Base(path), data)
	imageCache.Store(path, resource)
	return resource, nil
}
