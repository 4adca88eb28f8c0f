package theme

import (
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
)

// IconButton applies defaults before rendering a `material.IconButtonStyle` to reduce noise.
// The main paramaters for each button are the state and icon.
// Color, size and inset are often the same.
// This wrapper reduces noise by defaulting those things.
type IconButton struct {
	Theme       *Theme
	Button      *widget.Clickable
	Icon        *widget.Icon
	Size        unit.Dp
	Inset       layout.Inset
	Description string
}

const DefaultIconButtonWidthDp = 20

func (btn IconButton) Layout(gtx C) D {
	if btn.Size == 0 {
		btn.Size = DefaultIconButtonWidthDp
	}
	if btn.Inset == (layout.Inset{}) {
		btn.Inset = layout.UniformInset(4)
	}
	return material.IconButtonStyle{
		Background:  btn.Theme.Palette.ContrastBg,
		Color:       btn.Theme.Palette.ContrastFg,
		Icon:        btn.Icon,
		Size:        btn.Size,
		Inset:       btn.Inset,
		Button:      btn.Button,
		Description: btn.Description,
	}.Layout(gtx)
}
