package core

import (
	"fmt"

	"git.sr.ht/~whereswaldon/sprig-toast/queue"
)

// App bundles core application services into a single convenience type.
type App interface {
	Toasts() ToastPresenter
	Settings() SettingsService
	Haptic() HapticService
	Queue() *queue.Queue
}

// app bundles services together.
type app struct {
	toasts   ToastPresenter
	settings SettingsService
	haptic   HapticService
	queue    *queue.Queue
}

var _ App = &app{}

// NewApp constructs an App or fails with an error. The toast view is
// attached to surface and all timed work runs on q. haptics may be nil.
func NewApp(haptics HapticService, q *queue.Queue, surface Surface, view ToastView, settingsPath string) (application App, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("failed constructing app: %w", err)
		}
	}()
	a := &app{queue: q, haptic: haptics}
	// Settings must be initialized first, as the toast defaults are
	// derived from it
	if a.settings, err = newSettingsService(settingsPath); err != nil {
		return nil, err
	}
	if a.haptic == nil {
		a.haptic = NewHapticService(nil)
	}
	a.toasts = NewToastPresenter(StaticSurface(surface), q, view,
		WithTapFeedback(a.haptic.Buzz))
	return a, nil
}

// Toasts returns the app's toast presenter.
func (a *app) Toasts() ToastPresenter {
	return a.toasts
}

// Settings returns the app's settings service implementation.
func (a *app) Settings() SettingsService {
	return a.settings
}

// Haptic returns the app's haptic service implementation.
func (a *app) Haptic() HapticService {
	return a.haptic
}

// Queue returns the event queue that drives toast timing.
func (a *app) Queue() *queue.Queue {
	return a.queue
}
