package widget

import (
	"image"
	"image/color"

	"gioui.org/gesture"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"git.sr.ht/~whereswaldon/sprig-toast/core"
	"git.sr.ht/~whereswaldon/sprig-toast/toast"
)

// Toast holds the state of the toast banner: what it shows, its content
// insets, and the tap gesture. Its position is owned by a
// core.ToastPresenter.
type Toast struct {
	content     toast.Content
	image       paint.ImageOp
	hasImage    bool
	top, bottom unit.Dp
	height      unit.Dp

	click   gesture.Click
	pressed bool
	onTap   func()
}

var _ core.ToastView = &Toast{}

// Configure replaces the displayed content.
func (t *Toast) Configure(c toast.Content) {
	t.content = c
	t.hasImage = c.Image != nil
	if t.hasImage {
		t.image = paint.NewImageOp(c.Image)
	} else {
		t.image = paint.ImageOp{}
	}
}

func (t *Toast) Content() toast.Content {
	return t.content
}

// Image returns the prepared image operation, if the content has an image.
func (t *Toast) Image() (paint.ImageOp, bool) {
	return t.image, t.hasImage
}

func (t *Toast) Background() color.NRGBA {
	return t.content.Background
}

func (t *Toast) SetInsets(top, bottom unit.Dp) {
	t.top, t.bottom = top, bottom
}

// Insets returns the space above and below the content.
func (t *Toast) Insets() (top, bottom unit.Dp) {
	return t.top, t.bottom
}

// Height returns the height of the most recent layout.
func (t *Toast) Height() unit.Dp {
	return t.height
}

func (t *Toast) OnTap(f func()) {
	t.onTap = f
}

// Pressed reports whether a pointer is currently held on the toast.
func (t *Toast) Pressed() bool {
	return t.pressed
}

func (t *Toast) update(gtx layout.Context) {
	for _, event := range t.click.Events(gtx) {
		switch event.Type {
		case gesture.TypePress:
			t.pressed = true
		case gesture.TypeCancel:
			t.pressed = false
		case gesture.TypeClick:
			t.pressed = false
			if t.content.Interactive && t.onTap != nil {
				t.onTap()
			}
		}
	}
}

// Layout processes taps from the previous frame, lays out w as the
// toast's visual content, and records the resulting height.
func (t *Toast) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	t.update(gtx)
	dims := w(gtx)
	if t.content.Interactive {
		defer clip.Rect(image.Rectangle{Max: dims.Size}).Push(gtx.Ops).Pop()
		t.click.Add(gtx.Ops)
	}
	if gtx.Metric.PxPerDp > 0 {
		t.height = unit.Dp(float32(dims.Size.Y) / gtx.Metric.PxPerDp)
	}
	return dims
}
