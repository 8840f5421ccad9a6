//go:build !linux && !darwin && !windows

package platform

func newWallpaperSetter() WallpaperSetter {
	return unsupportedWallpaperSetter{}
}

func isUnsupported(error) bool {
	return false
}
