//go:build linux

package platform

import (
	"errors"

	deskwall "github.com/reujab/wallpaper"
)

func isUnsupported(err error) bool {
	return errors.Is(err, deskwall.ErrUnsupportedDE)
}
