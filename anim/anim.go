/*
Package anim provides simple animation primitives
*/
package anim

import (
	"time"

	"gioui.org/layout"
	"gioui.org/op"
)

// Normal holds state for an animation between two states that
// is not invertible.
type Normal struct {
	time.Duration
	StartTime time.Time
}

// Progress returns the current progress through the animation
// as a value in the range [0,1]. It requests another frame while
// the animation is still running.
func (n *Normal) Progress(gtx layout.Context) float32 {
	if n.Animating(gtx.Now) {
		op.InvalidateOp{}.Add(gtx.Ops)
	}
	return n.ProgressAt(gtx.Now)
}

// ProgressAt returns the progress through the animation at the given
// instant as a value in the range [0,1]. An animation with no duration
// is always complete.
func (n *Normal) ProgressAt(now time.Time) float32 {
	if n.Duration <= 0 {
		return 1
	}
	progressDur := now.Sub(n.StartTime)
	if progressDur <= 0 {
		return 0
	}
	if progressDur >= n.Duration {
		return 1
	}
	return float32(progressDur) / float32(n.Duration)
}

func (n *Normal) Start(now time.Time) {
	n.StartTime = now
}

func (n *Normal) SetDuration(d time.Duration) {
	n.Duration = d
}

// Animating reports whether the animation is still running at now.
func (n *Normal) Animating(now time.Time) bool {
	if n.Duration <= 0 {
		return false
	}
	return now.Before(n.StartTime.Add(n.Duration))
}

// EaseOut maps linear progress onto a quadratic deceleration curve.
func EaseOut(progress float32) float32 {
	if progress <= 0 {
		return 0
	}
	if progress >= 1 {
		return 1
	}
	return 1 - (1-progress)*(1-progress)
}

// Lerp interpolates between from and to by progress.
func Lerp(from, to, progress float32) float32 {
	return from + (to-from)*progress
}
