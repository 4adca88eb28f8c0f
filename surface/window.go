// Package surface hosts the toast view on top of a Gio window and maps
// status bar changes onto the native window.
package surface

import (
	"image"
	"image/color"
	"log"

	"gioui.org/layout"
	"gioui.org/op"
	"git.sr.ht/~whereswaldon/sprig-toast/core"
	"git.sr.ht/~whereswaldon/sprig-toast/toast"
	sprigwidget "git.sr.ht/~whereswaldon/sprig-toast/widget"
	sprigTheme "git.sr.ht/~whereswaldon/sprig-toast/widget/theme"
	"github.com/lucasb-eyer/go-colorful"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// Platform is the native window behind a Window.
type Platform interface {
	// Invalidate requests a new frame.
	Invalidate()
	// SetStatusColor paints the system status bar. The platform picks
	// light or dark status bar content from the color's luminance.
	SetStatusColor(color.NRGBA)
	// SetFullscreen hides or shows the system status bar.
	SetFullscreen(bool)
}

// Window is a core.Surface that draws the toast over the application's
// content.
type Window struct {
	Theme *sprigTheme.Theme

	platform    Platform
	view        *sprigwidget.Toast
	constraints []*core.Constraint
	level       core.WindowLevel
	statusBar   toast.StatusBarStyle
	appColor    color.NRGBA
}

var _ core.Surface = &Window{}

// New constructs a Window on platform. appColor is the status bar color
// the application uses when no toast is shown.
func New(th *sprigTheme.Theme, platform Platform, appColor color.NRGBA) *Window {
	return &Window{
		Theme:     th,
		platform:  platform,
		appColor:  appColor,
		statusBar: toast.StatusBarDefault,
	}
}

// Attach adds the toast view. Only *widget.Toast views can be drawn.
func (w *Window) Attach(v core.ToastView) {
	view, ok := v.(*sprigwidget.Toast)
	if !ok {
		log.Printf("cannot draw toast view of type %T", v)
		return
	}
	w.view = view
}

func (w *Window) AddConstraint(c *core.Constraint) {
	w.constraints = append(w.constraints, c)
}

func (w *Window) RemoveConstraint(c *core.Constraint) {
	for i, existing := range w.constraints {
		if existing == c {
			w.constraints = append(w.constraints[:i], w.constraints[i+1:]...)
			return
		}
	}
}

// constraint returns the most recently added constraint on a.
func (w *Window) constraint(a core.Attribute) *core.Constraint {
	for i := len(w.constraints) - 1; i >= 0; i-- {
		if w.constraints[i].Attribute == a {
			return w.constraints[i]
		}
	}
	return nil
}

func (w *Window) Layout() {
	w.platform.Invalidate()
}

func (w *Window) WindowLevel() core.WindowLevel {
	return w.level
}

func (w *Window) SetWindowLevel(level core.WindowLevel) {
	if level == w.level {
		return
	}
	w.level = level
	w.platform.SetFullscreen(level == core.LevelAboveStatusBar)
}

func (w *Window) StatusBarStyle() toast.StatusBarStyle {
	return w.statusBar
}

func (w *Window) SetStatusBarStyle(style toast.StatusBarStyle) {
	w.statusBar = style
	w.platform.SetStatusColor(w.StatusColor())
}

// StatusColor returns the status bar color for the current style. The
// light and dark content styles blend the bar into the toast background,
// adjusted so that the platform picks the requested content contrast.
func (w *Window) StatusColor() color.NRGBA {
	base := w.appColor
	if w.view != nil {
		base = w.view.Background()
	}
	switch w.statusBar {
	case toast.StatusBarLightContent:
		return clampLightness(base, 0, 0.45)
	case toast.StatusBarDarkContent:
		return clampLightness(base, 0.7, 1)
	default:
		return w.appColor
	}
}

func clampLightness(c color.NRGBA, min, max float64) color.NRGBA {
	col, ok := colorful.MakeColor(c)
	if !ok {
		return c
	}
	h, chroma, l := col.Hcl()
	switch {
	case l < min:
		l = min
	case l > max:
		l = max
	default:
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
	}
	r, g, b := colorful.Hcl(h, chroma, l).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// Layout draws content and then the toast at its constrained position.
func (w *Window) Layout(gtx C, content layout.Widget) D {
	dims := content(gtx)
	w.layoutToast(gtx)
	return dims
}

func (w *Window) layoutToast(gtx C) {
	top := w.constraint(core.Top)
	if w.view == nil || top == nil {
		return
	}
	if top.Animating(gtx.Now) {
		op.InvalidateOp{}.Add(gtx.Ops)
	}
	offset := gtx.Dp(top.Value(gtx.Now))

	vgtx := gtx
	vgtx.Constraints.Min = image.Pt(gtx.Constraints.Max.X, 0)
	if height := w.constraint(core.Height); height != nil {
		px := gtx.Dp(height.Constant)
		if px > vgtx.Constraints.Max.Y {
			px = vgtx.Constraints.Max.Y
		}
		vgtx.Constraints.Min.Y = px
		if height.Relation == core.Equal {
			vgtx.Constraints.Max.Y = px
		}
	}

	// Always measure so the presenter knows how far to hide the view.
	macro := op.Record(gtx.Ops)
	dims := sprigTheme.Toast(w.Theme, w.view).Layout(vgtx)
	call := macro.Stop()
	if offset+dims.Size.Y <= 0 {
		return
	}
	defer op.Offset(image.Pt(0, offset)).Push(gtx.Ops).Pop()
	call.Add(gtx.Ops)
}
