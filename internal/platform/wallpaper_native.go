//go:build darwin || windows

package platform

func isUnsupported(error) bool {
	return false
}
