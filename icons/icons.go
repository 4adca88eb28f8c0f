// Package icons provides stock glyphs for the leading slot of a toast.
package icons

import (
	"gioui.org/widget"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

var InfoIcon *widget.Icon = func() *widget.Icon {
	icon, _ := widget.NewIcon(icons.ActionInfo)
	return icon
}()

var SuccessIcon *widget.Icon = func() *widget.Icon {
	icon, _ := widget.NewIcon(icons.ActionCheckCircle)
	return icon
}()

var WarningIcon *widget.Icon = func() *widget.Icon {
	icon, _ := widget.NewIcon(icons.AlertWarning)
	return icon
}()

var ErrorIcon *widget.Icon = func() *widget.Icon {
	icon, _ := widget.NewIcon(icons.AlertError)
	return icon
}()

var LinkIcon *widget.Icon = func() *widget.Icon {
	icon, _ := widget.NewIcon(icons.ContentLink)
	return icon
}()

var CloseIcon *widget.Icon = func() *widget.Icon {
	icon, _ := widget.NewIcon(icons.NavigationClose)
	return icon
}()
