package core

import (
	"log"
	"time"

	"gioui.org/unit"
	"git.sr.ht/~whereswaldon/sprig-toast/queue"
	"git.sr.ht/~whereswaldon/sprig-toast/toast"
)

// ToastState is the position of the presenter in its show/hide cycle.
type ToastState uint8

const (
	Hidden ToastState = iota
	Presenting
	Shown
	Dismissing
)

func (s ToastState) String() string {
	switch s {
	case Presenting:
		return "presenting"
	case Shown:
		return "shown"
	case Dismissing:
		return "dismissing"
	default:
		return "hidden"
	}
}

// ToastPresenter shows at most one toast at a time at the top of the
// host surface. All methods must be called from the UI goroutine.
type ToastPresenter interface {
	// Present dismisses the current toast, waits for that to finish, and
	// then shows cfg.
	Present(cfg *toast.Config, animated bool)
	// Dismiss hides the current toast and then invokes completion, which
	// may be nil.
	Dismiss(animated bool, completion func())
	State() ToastState
	// Current returns the config being shown, or nil.
	Current() *toast.Config
}

// Scheduler runs delayed work on the UI goroutine.
type Scheduler interface {
	Now() time.Time
	After(time.Duration, func()) *queue.Task
}

var _ Scheduler = &queue.Queue{}

// ToastAnimationDuration is the length of the show and hide transitions.
const ToastAnimationDuration = 300 * time.Millisecond

type styleMetrics struct {
	top, bottom unit.Dp
	relation    Relation
	height      unit.Dp
}

var toastStyles = map[toast.Style]styleMetrics{
	toast.NavigationBarStyle: {top: 25, bottom: 16, relation: GreaterOrEqual, height: 64},
	toast.StatusBarBanner:    {top: 0, bottom: 0, relation: Equal, height: 20},
}

// ToastPresenterOption customizes a ToastPresenter.
type ToastPresenterOption func(*toastPresenter)

// WithTapFeedback invokes f whenever a tap is accepted, before the
// toast's listener is notified.
func WithTapFeedback(f func()) ToastPresenterOption {
	return func(p *toastPresenter) {
		p.tapFeedback = f
	}
}

type toastPresenter struct {
	surfaces SurfaceProvider
	sched    Scheduler
	view     ToastView
	surface  Surface

	top, height *Constraint

	state    ToastState
	current  *toast.Config
	listener toast.Listener
	hideTask *queue.Task
	// a toast reports at most one tap
	tapReported bool

	// status bar state captured before any toast was shown
	appStatusBar toast.StatusBarStyle
	appLevel     WindowLevel

	// operations waiting for the running transition to finish
	busy     bool
	draining bool
	pending  []func()

	tapFeedback func()
}

var _ ToastPresenter = &toastPresenter{}

// NewToastPresenter constructs a presenter that owns view and attaches it
// to the surface returned by surfaces. If no surface is available yet,
// attachment happens on the first Present.
func NewToastPresenter(surfaces SurfaceProvider, sched Scheduler, view ToastView, opts ...ToastPresenterOption) ToastPresenter {
	p := &toastPresenter{
		surfaces: surfaces,
		sched:    sched,
		view:     view,
	}
	for _, opt := range opts {
		opt(p)
	}
	view.OnTap(p.tapped)
	if p.activeSurface() == nil {
		log.Printf("no surface available; toast view not attached yet")
	}
	return p
}

// activeSurface returns the attached surface if the provider still
// reports one, attaching the view on first use.
func (p *toastPresenter) activeSurface() Surface {
	if p.surfaces == nil {
		return nil
	}
	s := p.surfaces()
	if s == nil {
		return nil
	}
	if p.surface == nil {
		p.attach(s)
	}
	return p.surface
}

func (p *toastPresenter) attach(s Surface) {
	p.surface = s
	p.appStatusBar = s.StatusBarStyle()
	p.appLevel = s.WindowLevel()
	s.Attach(p.view)
	p.configureStyle()
	p.top = &Constraint{Attribute: Top, Relation: Equal}
	p.top.Set(p.hiddenOffset())
	s.AddConstraint(p.top)
}

func (p *toastPresenter) style() toast.Style {
	if p.current == nil {
		return toast.Default().Style
	}
	return p.current.Style
}

// configureStyle applies the insets and height rule of the current style.
func (p *toastPresenter) configureStyle() {
	if p.height != nil {
		p.surface.RemoveConstraint(p.height)
	}
	m, ok := toastStyles[p.style()]
	if !ok {
		m = toastStyles[toast.NavigationBarStyle]
	}
	p.view.SetInsets(m.top, m.bottom)
	p.height = &Constraint{Attribute: Height, Relation: m.relation, Constant: m.height}
	p.surface.AddConstraint(p.height)
}

// hiddenOffset places the view entirely above the surface.
func (p *toastPresenter) hiddenOffset() unit.Dp {
	h := p.view.Height()
	if p.height != nil && p.height.Constant > h {
		h = p.height.Constant
	}
	return -h
}

func (p *toastPresenter) configureStatusBar(showing bool) {
	if !showing {
		p.surface.SetWindowLevel(p.appLevel)
		p.surface.SetStatusBarStyle(p.appStatusBar)
		return
	}
	if p.current.Style == toast.StatusBarBanner || p.current.AboveStatusBar {
		p.surface.SetWindowLevel(LevelAboveStatusBar)
	} else {
		p.surface.SetStatusBarStyle(p.current.StatusBarStyle)
	}
}

func transitionDuration(animated bool) time.Duration {
	if animated {
		return ToastAnimationDuration
	}
	return 0
}

// run executes op now, or after the transition in flight and every
// operation queued before it complete.
func (p *toastPresenter) run(op func()) {
	if p.busy || p.draining {
		p.pending = append(p.pending, op)
		return
	}
	op()
}

// finish marks the running transition complete, invokes its completion
// and resumes queued operations.
func (p *toastPresenter) finish(completion func()) {
	p.busy = false
	p.draining = true
	defer func() { p.draining = false }()
	if completion != nil {
		completion()
	}
	for !p.busy && len(p.pending) > 0 {
		next := p.pending[0]
		p.pending = p.pending[1:]
		next()
	}
}

func (p *toastPresenter) Present(cfg *toast.Config, animated bool) {
	if cfg == nil {
		return
	}
	p.run(func() {
		if p.activeSurface() == nil {
			log.Printf("no surface available; dropping toast %s", cfg.ID)
			return
		}
		p.dismiss(animated, func() {
			p.show(cfg, animated)
		})
	})
}

func (p *toastPresenter) show(cfg *toast.Config, animated bool) {
	s := p.activeSurface()
	if s == nil {
		log.Printf("surface went away; dropping toast %s", cfg.ID)
		return
	}
	p.current = cfg
	p.listener = cfg.Listener
	p.tapReported = false
	p.configureStyle()
	p.view.Configure(cfg.Content())
	p.top.Set(p.hiddenOffset())
	s.Layout()

	p.busy = true
	p.state = Presenting
	d := transitionDuration(animated)
	p.top.Animate(0, p.sched.Now(), d)
	p.configureStatusBar(true)
	s.Layout()
	p.sched.After(d, func() {
		p.state = Shown
		if wait, ok := cfg.AutoDismiss(); ok {
			p.hideTask = p.sched.After(wait, func() {
				p.hideTask = nil
				p.Dismiss(animated, nil)
			})
		}
		p.finish(nil)
	})
}

func (p *toastPresenter) Dismiss(animated bool, completion func()) {
	p.run(func() {
		p.dismiss(animated, completion)
	})
}

func (p *toastPresenter) dismiss(animated bool, completion func()) {
	p.hideTask.Cancel()
	p.hideTask = nil
	if p.state == Hidden {
		// nothing on screen, including before the first present
		if completion != nil {
			completion()
		}
		return
	}

	s := p.activeSurface()
	if s == nil {
		if completion != nil {
			completion()
		}
		return
	}
	p.busy = true
	p.state = Dismissing
	d := transitionDuration(animated)
	p.top.Animate(p.hiddenOffset(), p.sched.Now(), d)
	s.Layout()
	p.sched.After(d, func() {
		p.configureStatusBar(false)
		p.state = Hidden
		p.current = nil
		p.listener = nil
		s.Layout()
		p.finish(completion)
	})
}

// tapped handles a tap on the view. A toast reports at most one tap.
func (p *toastPresenter) tapped() {
	if p.state != Shown || p.current == nil || !p.current.Interactive || p.tapReported {
		return
	}
	p.tapReported = true
	cfg, listener := p.current, p.listener
	if p.tapFeedback != nil {
		p.tapFeedback()
	}
	p.Dismiss(true, nil)
	if listener != nil {
		listener.ToastTapped(cfg)
	}
}

func (p *toastPresenter) State() ToastState {
	return p.state
}

func (p *toastPresenter) Current() *toast.Config {
	return p.current
}
