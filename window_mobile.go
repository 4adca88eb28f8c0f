//go:build ios || android

package main

import "gioui.org/app"

// SetFullscreen hides the status bar while a toast covers it.
func (n nativeWindow) SetFullscreen(on bool) {
	if on {
		n.Option(app.Fullscreen.Option())
	} else {
		n.Option(app.Windowed.Option())
	}
}
