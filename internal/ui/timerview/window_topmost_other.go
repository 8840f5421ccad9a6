//go:build !windows

package timerview

// Only Windows exposes a topmost flag through the native window handle.
func (view *Window) applyTopmost(enabled bool) {}
