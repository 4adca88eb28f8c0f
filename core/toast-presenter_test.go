package core

import (
	"testing"
	"time"

	"gioui.org/unit"
	"git.sr.ht/~whereswaldon/sprig-toast/queue"
	"git.sr.ht/~whereswaldon/sprig-toast/toast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSurface struct {
	attached    ToastView
	constraints []*Constraint
	layouts     int
	level       WindowLevel
	statusBar   toast.StatusBarStyle
}

func (f *fakeSurface) Attach(v ToastView) { f.attached = v }
func (f *fakeSurface) Layout() { f.layouts++ }
func (f *fakeSurface) WindowLevel() WindowLevel { return f.level }
func (f *fakeSurface) SetWindowLevel(l WindowLevel) { f.level = l }
func (f *fakeSurface) StatusBarStyle() toast.StatusBarStyle { return f.statusBar }
func (f *fakeSurface) SetStatusBarStyle(s toast.StatusBarStyle) {
	f.statusBar = s
}

func (f *fakeSurface) AddConstraint(c *Constraint) {
	f.constraints = append(f.constraints, c)
}

func (f *fakeSurface) RemoveConstraint(c *Constraint) {
	for i, existing := range f.constraints {
		if existing == c {
			f.constraints = append(f.constraints[:i], f.constraints[i+1:]...)
			return
		}
	}
}

func (f *fakeSurface) constraint(a Attribute) *Constraint {
	var found *Constraint
	for _, c := range f.constraints {
		if c.Attribute == a {
			if found != nil {
				panic("duplicate constraint")
			}
			found = c
		}
	}
	return found
}

type fakeView struct {
	content     toast.Content
	configured  int
	top, bottom unit.Dp
	height      unit.Dp
	tap         func()
}

func (f *fakeView) Configure(c toast.Content) {
	f.content = c
	f.configured++
}
func (f *fakeView) SetInsets(top, bottom unit.Dp) { f.top, f.bottom = top, bottom }
func (f *fakeView) Height() unit.Dp { return f.height }
func (f *fakeView) OnTap(fn func()) { f.tap = fn }

var epoch = time.Unix(1_000_000, 0)

type harness struct {
	t         *testing.T
	q         *queue.Queue
	surface   *fakeSurface
	view      *fakeView
	presenter ToastPresenter
}

func newHarness(t *testing.T, opts ...ToastPresenterOption) *harness {
	return newHarnessOn(t, &fakeSurface{statusBar: toast.StatusBarDefault}, opts...)
}

// newHarnessOn builds a harness whose surface starts in the given state.
func newHarnessOn(t *testing.T, surface *fakeSurface, opts ...ToastPresenterOption) *harness {
	h := &harness{
		t:       t,
		q:       queue.New(epoch, nil),
		surface: surface,
		view:    &fakeView{height: 80},
	}
	h.presenter = NewToastPresenter(StaticSurface(h.surface), h.q, h.view, opts...)
	return h
}

// advance moves the queue clock forward by d.
func (h *harness) advance(d time.Duration) {
	h.q.Advance(h.q.Now().Add(d))
}

func (h *harness) top() unit.Dp {
	return h.surface.constraint(Top).Value(h.q.Now())
}

func TestAttachesViewOnce(t *testing.T) {
	h := newHarness(t)
	assert.Same(t, h.view, h.surface.attached)
	require.NotNil(t, h.surface.constraint(Top))
	require.NotNil(t, h.surface.constraint(Height))
	assert.Equal(t, unit.Dp(-80), h.top())
	assert.NotNil(t, h.view.tap)
}

func TestFirstDismissCompletesWithoutAnimation(t *testing.T) {
	h := newHarness(t)
	layouts := h.surface.layouts
	called := 0
	h.presenter.Dismiss(true, func() { called++ })

	assert.Equal(t, 1, called)
	assert.Equal(t, Hidden, h.presenter.State())
	assert.Equal(t, 0, h.q.Len())
	assert.Equal(t, layouts, h.surface.layouts)
}

func TestDismissWithoutSurfaceStillCompletes(t *testing.T) {
	q := queue.New(epoch, nil)
	p := NewToastPresenter(func() Surface { return nil }, q, &fakeView{})
	called := 0
	p.Dismiss(false, func() { called++ })
	p.Dismiss(true, func() { called++ })
	assert.Equal(t, 2, called)
}

func TestPresentWithoutSurfaceIsNoop(t *testing.T) {
	q := queue.New(epoch, nil)
	view := &fakeView{}
	p := NewToastPresenter(func() Surface { return nil }, q, view)
	p.Present(toast.New(toast.WithText("nowhere")), true)
	q.Advance(epoch.Add(time.Hour))

	assert.Equal(t, Hidden, p.State())
	assert.Nil(t, p.Current())
	assert.Equal(t, 0, view.configured)
}

func TestPresentAttachesLateSurface(t *testing.T) {
	q := queue.New(epoch, nil)
	view := &fakeView{height: 70}
	var surface Surface
	p := NewToastPresenter(func() Surface { return surface }, q, view)

	fs := &fakeSurface{}
	surface = fs
	cfg := toast.New(toast.WithPersistence())
	p.Present(cfg, false)
	q.Advance(epoch)

	assert.Same(t, view, fs.attached)
	assert.Equal(t, Shown, p.State())
	assert.Same(t, cfg, p.Current())
}

func TestPresentAutoDismisses(t *testing.T) {
	h := newHarness(t)
	cfg := toast.New(toast.WithText("hello"), toast.WithDuration(time.Second))
	h.presenter.Present(cfg, true)

	assert.Equal(t, Presenting, h.presenter.State())
	assert.Same(t, cfg, h.presenter.Current())
	assert.Equal(t, "hello", h.view.content.Text)
	assert.Equal(t, toast.StatusBarLightContent, h.surface.statusBar)
	assert.Equal(t, LevelNormal, h.surface.level)

	h.advance(150 * time.Millisecond)
	assert.Less(t, float32(h.top()), float32(0))
	assert.Greater(t, float32(h.top()), float32(-80))

	h.advance(150 * time.Millisecond)
	assert.Equal(t, Shown, h.presenter.State())
	assert.Equal(t, unit.Dp(0), h.top())

	h.advance(999 * time.Millisecond)
	assert.Equal(t, Shown, h.presenter.State())

	h.advance(time.Millisecond)
	assert.Equal(t, Dismissing, h.presenter.State())
	assert.Equal(t, toast.StatusBarLightContent, h.surface.statusBar)

	h.advance(ToastAnimationDuration)
	assert.Equal(t, Hidden, h.presenter.State())
	assert.Nil(t, h.presenter.Current())
	assert.Equal(t, toast.StatusBarDefault, h.surface.statusBar)
	assert.Equal(t, LevelNormal, h.surface.level)
	assert.Equal(t, unit.Dp(-80), h.top())
}

func TestUnanimatedPresentCompletesInOneAdvance(t *testing.T) {
	h := newHarness(t)
	h.presenter.Present(toast.New(toast.WithDuration(time.Second)), false)
	h.advance(0)
	assert.Equal(t, Shown, h.presenter.State())

	h.advance(time.Second)
	assert.Equal(t, Hidden, h.presenter.State())
}

func TestPersistentToastStaysUntilDismissed(t *testing.T) {
	h := newHarness(t)
	h.presenter.Present(toast.New(toast.WithPersistence()), true)
	h.advance(time.Hour)
	assert.Equal(t, Shown, h.presenter.State())
	assert.Equal(t, 0, h.q.Len())

	done := false
	h.presenter.Dismiss(true, func() { done = true })
	assert.Equal(t, Dismissing, h.presenter.State())
	assert.False(t, done)

	h.advance(ToastAnimationDuration)
	assert.True(t, done)
	assert.Equal(t, Hidden, h.presenter.State())
}

func TestPresentReplacesCurrentToast(t *testing.T) {
	h := newHarness(t)
	aTapped := false
	a := toast.New(
		toast.WithText("a"),
		toast.WithDuration(50*time.Millisecond),
		toast.WithListener(toast.ListenerFunc(func(*toast.Config) { aTapped = true })),
	)
	b := toast.New(toast.WithText("b"), toast.WithPersistence())

	h.presenter.Present(a, true)
	h.presenter.Present(b, true)
	assert.Same(t, a, h.presenter.Current())

	for i := 0; i < 100; i++ {
		h.advance(50 * time.Millisecond)
	}
	assert.Equal(t, Shown, h.presenter.State())
	assert.Same(t, b, h.presenter.Current())
	assert.Equal(t, "b", h.view.content.Text)
	assert.False(t, aTapped)
	assert.Equal(t, 0, h.q.Len())
}

func TestDismissCompletionPrecedesNextPresent(t *testing.T) {
	h := newHarness(t)
	var events []string
	h.presenter.Present(toast.New(toast.WithPersistence()), true)
	h.advance(ToastAnimationDuration)

	h.presenter.Dismiss(true, func() {
		events = append(events, "dismissed:"+h.presenter.State().String())
	})
	h.presenter.Present(toast.New(toast.WithText("next"), toast.WithPersistence()), true)
	assert.Empty(t, events)

	h.advance(ToastAnimationDuration)
	require.Equal(t, []string{"dismissed:hidden"}, events)

	h.advance(ToastAnimationDuration)
	h.advance(ToastAnimationDuration)
	assert.Equal(t, Shown, h.presenter.State())
	assert.Equal(t, "next", h.presenter.Current().Text)
}

func TestPresentAfterCycleSkipsDismissal(t *testing.T) {
	h := newHarness(t)
	h.presenter.Present(toast.New(toast.WithDuration(time.Second)), true)
	h.advance(ToastAnimationDuration)
	h.advance(time.Second)
	h.advance(ToastAnimationDuration)
	require.Equal(t, Hidden, h.presenter.State())

	next := toast.New(toast.WithText("again"), toast.WithPersistence())
	h.presenter.Present(next, true)
	assert.Equal(t, Presenting, h.presenter.State())
	assert.Same(t, next, h.presenter.Current())
	assert.Equal(t, toast.StatusBarLightContent, h.surface.statusBar)

	h.advance(ToastAnimationDuration)
	assert.Equal(t, Shown, h.presenter.State())
	assert.Equal(t, unit.Dp(0), h.top())
}

func TestDismissWhileHiddenCompletesImmediately(t *testing.T) {
	h := newHarness(t)
	h.presenter.Present(toast.New(toast.WithDuration(time.Second)), false)
	h.advance(0)
	h.advance(time.Second)
	require.Equal(t, Hidden, h.presenter.State())

	called := 0
	h.presenter.Dismiss(true, func() { called++ })
	assert.Equal(t, 1, called)
	assert.Equal(t, Hidden, h.presenter.State())
	assert.Equal(t, 0, h.q.Len())
}

func TestDismissRestoresCapturedStatusBar(t *testing.T) {
	h := newHarnessOn(t, &fakeSurface{
		statusBar: toast.StatusBarDarkContent,
		level:     LevelAboveStatusBar,
	})
	h.presenter.Present(toast.New(toast.WithPersistence()), true)
	assert.Equal(t, toast.StatusBarLightContent, h.surface.statusBar)

	h.advance(ToastAnimationDuration)
	h.presenter.Dismiss(true, nil)
	h.advance(ToastAnimationDuration)
	assert.Equal(t, Hidden, h.presenter.State())
	assert.Equal(t, toast.StatusBarDarkContent, h.surface.statusBar)
	assert.Equal(t, LevelAboveStatusBar, h.surface.level)
}

func TestCallsFromCompletionKeepCallOrder(t *testing.T) {
	h := newHarness(t)
	h.presenter.Present(toast.New(toast.WithPersistence()), true)
	h.advance(ToastAnimationDuration)

	x := toast.New(toast.WithText("x"), toast.WithPersistence())
	y := toast.New(toast.WithText("y"), toast.WithPersistence())
	h.presenter.Dismiss(true, func() {
		h.presenter.Present(x, true)
	})
	h.presenter.Present(y, true)

	h.advance(ToastAnimationDuration)
	assert.Same(t, y, h.presenter.Current())
	assert.Equal(t, Presenting, h.presenter.State())

	h.advance(ToastAnimationDuration)
	h.advance(ToastAnimationDuration)
	h.advance(ToastAnimationDuration)
	assert.Same(t, x, h.presenter.Current())
	assert.Equal(t, Shown, h.presenter.State())
}

func TestDismissCancelsTimer(t *testing.T) {
	h := newHarness(t)
	h.presenter.Present(toast.New(toast.WithDuration(time.Second)), false)
	h.advance(0)
	h.presenter.Dismiss(false, nil)
	h.advance(0)
	assert.Equal(t, Hidden, h.presenter.State())

	h.presenter.Present(toast.New(toast.WithPersistence()), false)
	h.advance(0)
	h.advance(time.Minute)
	assert.Equal(t, Shown, h.presenter.State())
}

func TestTapNotifiesListenerOnce(t *testing.T) {
	feedback := 0
	h := newHarness(t, WithTapFeedback(func() { feedback++ }))
	var tapped []*toast.Config
	cfg := toast.New(
		toast.WithPersistence(),
		toast.WithListener(toast.ListenerFunc(func(c *toast.Config) { tapped = append(tapped, c) })),
	)

	h.presenter.Present(cfg, true)
	h.view.tap()
	assert.Empty(t, tapped, "taps while presenting are ignored")

	h.advance(ToastAnimationDuration)
	h.view.tap()
	h.view.tap()
	require.Len(t, tapped, 1)
	assert.Equal(t, cfg.ID, tapped[0].ID)
	assert.Equal(t, 1, feedback)
	assert.Equal(t, Dismissing, h.presenter.State())

	h.advance(ToastAnimationDuration)
	h.view.tap()
	assert.Len(t, tapped, 1)
	assert.Equal(t, Hidden, h.presenter.State())
}

func TestTapIgnoredWhenNotInteractive(t *testing.T) {
	h := newHarness(t)
	tapped := false
	h.presenter.Present(toast.New(
		toast.WithPersistence(),
		toast.WithInteraction(false),
		toast.WithListener(toast.ListenerFunc(func(*toast.Config) { tapped = true })),
	), false)
	h.advance(0)
	h.view.tap()
	assert.False(t, tapped)
	assert.Equal(t, Shown, h.presenter.State())
	assert.False(t, h.view.content.Interactive)
}

func TestStatusBarStyleLayout(t *testing.T) {
	h := newHarness(t)
	h.presenter.Present(toast.New(toast.WithStyle(toast.StatusBarBanner)), false)

	height := h.surface.constraint(Height)
	assert.Equal(t, Equal, height.Relation)
	assert.Equal(t, unit.Dp(20), height.Constant)
	assert.Equal(t, unit.Dp(0), h.view.top)
	assert.Equal(t, unit.Dp(0), h.view.bottom)
	assert.Equal(t, LevelAboveStatusBar, h.surface.level)
	assert.Equal(t, toast.StatusBarDefault, h.surface.statusBar)

	h.advance(0)
	h.presenter.Dismiss(false, nil)
	h.advance(0)
	assert.Equal(t, LevelNormal, h.surface.level)
}

func TestNavigationBarStyleLayout(t *testing.T) {
	h := newHarness(t)
	h.presenter.Present(toast.New(toast.WithStyle(toast.StatusBarBanner)), false)
	h.advance(0)
	h.presenter.Present(toast.New(toast.WithStyle(toast.NavigationBarStyle)), false)
	h.advance(0)

	height := h.surface.constraint(Height)
	assert.Equal(t, GreaterOrEqual, height.Relation)
	assert.Equal(t, unit.Dp(64), height.Constant)
	assert.Equal(t, unit.Dp(25), h.view.top)
	assert.Equal(t, unit.Dp(16), h.view.bottom)
	assert.Equal(t, LevelNormal, h.surface.level)
	assert.Equal(t, toast.StatusBarLightContent, h.surface.statusBar)
}

func TestAboveStatusBarRaisesLevel(t *testing.T) {
	h := newHarness(t)
	h.presenter.Present(toast.New(
		toast.WithAboveStatusBar(true),
		toast.WithStatusBarStyle(toast.StatusBarDarkContent),
	), false)

	assert.Equal(t, LevelAboveStatusBar, h.surface.level)
	assert.Equal(t, toast.StatusBarDefault, h.surface.statusBar)
}

func TestConstraintAnimation(t *testing.T) {
	c := Constraint{Attribute: Top}
	c.Set(-64)
	c.Animate(0, epoch, ToastAnimationDuration)
	assert.True(t, c.Animating(epoch))
	assert.Equal(t, unit.Dp(-64), c.Value(epoch))
	assert.Equal(t, unit.Dp(-16), c.Value(epoch.Add(150*time.Millisecond)))
	assert.Equal(t, unit.Dp(0), c.Value(epoch.Add(ToastAnimationDuration)))

	// retargeting mid-flight starts from the current position
	c.Set(-64)
	c.Animate(0, epoch, ToastAnimationDuration)
	c.Animate(-64, epoch.Add(150*time.Millisecond), ToastAnimationDuration)
	assert.Equal(t, unit.Dp(-16), c.Value(epoch.Add(150*time.Millisecond)))
	assert.Equal(t, unit.Dp(-64), c.Value(epoch.Add(time.Second)))

	c.Set(10)
	assert.False(t, c.Animating(epoch.Add(150*time.Millisecond)))
	assert.Equal(t, unit.Dp(10), c.Value(epoch))
}
