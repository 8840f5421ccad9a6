//go:build linux || darwin || windows

package platform

import deskwall "github.com/reujab/wallpaper"

func newWallpaperSetter() WallpaperSetter {
	return &desktopWallpaper{get: deskwall.Get, set: deskwall.SetFromFile}
}
