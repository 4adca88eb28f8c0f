package core

import (
	"time"

	"gioui.org/unit"
	"git.sr.ht/~whereswaldon/sprig-toast/anim"
	"git.sr.ht/~whereswaldon/sprig-toast/toast"
)

// Attribute names the edge or dimension of the toast view that a
// Constraint governs.
type Attribute uint8

const (
	// Top is the offset of the view's top edge from the top of the surface.
	Top Attribute = iota
	// Height is the height of the view.
	Height
)

// Relation describes how a Constraint's constant bounds its attribute.
type Relation uint8

const (
	Equal Relation = iota
	GreaterOrEqual
)

// Constraint is a layout rule for the toast view, expressed in Dp.
// Changes to Constant may be animated, in which case Value interpolates
// from the previous value along an ease-out curve.
type Constraint struct {
	Attribute
	Relation
	Constant unit.Dp

	from unit.Dp
	anim anim.Normal
}

// Set changes the constant immediately, abandoning any running animation.
func (c *Constraint) Set(v unit.Dp) {
	c.Constant = v
	c.from = v
	c.anim.SetDuration(0)
}

// Animate moves the constant to v over d starting at now.
func (c *Constraint) Animate(v unit.Dp, now time.Time, d time.Duration) {
	c.from = c.Value(now)
	c.Constant = v
	c.anim.SetDuration(d)
	c.anim.Start(now)
}

// Animating reports whether Value is still moving towards Constant.
func (c *Constraint) Animating(now time.Time) bool {
	return c.anim.Animating(now)
}

// Value returns the effective constant at the given instant.
func (c *Constraint) Value(now time.Time) unit.Dp {
	if !c.anim.Animating(now) {
		return c.Constant
	}
	progress := anim.EaseOut(c.anim.ProgressAt(now))
	return unit.Dp(anim.Lerp(float32(c.from), float32(c.Constant), progress))
}

// WindowLevel is the layer of the host surface relative to the system
// status bar.
type WindowLevel uint8

const (
	LevelNormal WindowLevel = iota
	LevelAboveStatusBar
)

// Surface is the top-level screen area that hosts the toast view.
type Surface interface {
	// Attach adds the view as a child of the surface.
	Attach(ToastView)
	AddConstraint(*Constraint)
	RemoveConstraint(*Constraint)
	// Layout requests a layout pass.
	Layout()
	WindowLevel() WindowLevel
	SetWindowLevel(WindowLevel)
	StatusBarStyle() toast.StatusBarStyle
	SetStatusBarStyle(toast.StatusBarStyle)
}

// SurfaceProvider returns the current top-level surface, or nil if none
// is available.
type SurfaceProvider func() Surface

// StaticSurface returns a SurfaceProvider that always yields s.
func StaticSurface(s Surface) SurfaceProvider {
	return func() Surface {
		return s
	}
}

// ToastView renders toast content. Its position and visibility are owned
// by the ToastPresenter.
type ToastView interface {
	// Configure replaces the visible content synchronously.
	Configure(toast.Content)
	SetInsets(top, bottom unit.Dp)
	// Height returns the most recently measured height, or zero if the
	// view has never been laid out.
	Height() unit.Dp
	// OnTap registers the single receiver of tap events.
	OnTap(func())
}
