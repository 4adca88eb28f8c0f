package main

import (
	"image/color"

	"gioui.org/app"
	"git.sr.ht/~whereswaldon/sprig-toast/surface"
)

// nativeWindow adapts a Gio window to the toast surface.
type nativeWindow struct {
	*app.Window
}

var _ surface.Platform = nativeWindow{}

func (n nativeWindow) SetStatusColor(c color.NRGBA) {
	n.Option(app.StatusColor(c))
}
