//go:build !(ios || android)

package main

// SetFullscreen does nothing on desktop, where toasts never cover a status
// bar.
func (n nativeWindow) SetFullscreen(on bool) {}
