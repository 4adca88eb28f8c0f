package theme

import (
	"image"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	sprigwidget "git.sr.ht/~whereswaldon/sprig-toast/widget"
)

// ToastStyle renders a toast banner: a full-width colored background
// holding an optional image or icon followed by the text.
type ToastStyle struct {
	*Theme
	State *sprigwidget.Toast
	// Side is the horizontal padding of the content.
	Side unit.Dp
	// ImageSize bounds the leading image or icon.
	ImageSize unit.Dp
}

func Toast(th *Theme, state *sprigwidget.Toast) ToastStyle {
	return ToastStyle{
		Theme:     th,
		State:     state,
		Side:      unit.Dp(16),
		ImageSize: unit.Dp(20),
	}
}

func (t ToastStyle) Layout(gtx C) D {
	return t.State.Layout(gtx, func(gtx C) D {
		return layout.Stack{}.Layout(gtx,
			layout.Expanded(func(gtx C) D {
				size := gtx.Constraints.Min
				paint.FillShape(gtx.Ops, t.State.Background(), clip.Rect(image.Rectangle{Max: size}).Op())
				return D{Size: size}
			}),
			layout.Stacked(func(gtx C) D {
				gtx.Constraints.Min.X = gtx.Constraints.Max.X
				top, bottom := t.State.Insets()
				return layout.Inset{
					Top:    top,
					Bottom: bottom,
					Left:   t.Side,
					Right:  t.Side,
				}.Layout(gtx, t.layoutContent)
			}),
		)
	})
}

func (t ToastStyle) layoutContent(gtx C) D {
	content := t.State.Content()
	label := material.Label(t.Theme.Theme, content.Font.Size, content.Text)
	label.Color = content.TextColor
	label.Font = content.Font.Font
	label.Alignment = content.Alignment

	leading := t.leading()
	if leading == nil {
		gtx.Constraints.Min.X = gtx.Constraints.Max.X
		return label.Layout(gtx)
	}
	return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			return layout.Inset{Right: unit.Dp(8)}.Layout(gtx, leading)
		}),
		layout.Flexed(1, func(gtx C) D {
			gtx.Constraints.Min.X = gtx.Constraints.Max.X
			return label.Layout(gtx)
		}),
	)
}

// leading returns the widget drawn before the text, or nil.
func (t ToastStyle) leading() layout.Widget {
	content := t.State.Content()
	if img, ok := t.State.Image(); ok {
		return func(gtx C) D {
			size := gtx.Dp(t.ImageSize)
			gtx.Constraints = layout.Exact(image.Pt(size, size))
			return widget.Image{Src: img, Fit: widget.Contain}.Layout(gtx)
		}
	}
	if content.Icon != nil {
		return func(gtx C) D {
			size := gtx.Dp(t.ImageSize)
			gtx.Constraints = layout.Exact(image.Pt(size, size))
			return content.Icon.Layout(gtx, content.TextColor)
		}
	}
	return nil
}
