// Package toast describes the appearance and behavior of a single toast
// banner. A Config is built once per presentation from a set of Options,
// with every unspecified field taken from the process-wide default at the
// moment of construction.
package toast

import (
	"image"
	"image/color"
	"time"

	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"github.com/google/uuid"
)

// Style selects the overall shape of the banner.
type Style uint8

const (
	// NavigationBarStyle is a tall banner below a visible status bar.
	NavigationBarStyle Style = iota
	// StatusBarBanner is a thin banner that replaces the status bar.
	StatusBarBanner
)

func (s Style) String() string {
	switch s {
	case StatusBarBanner:
		return "status-bar"
	default:
		return "navigation-bar"
	}
}

// StatusBarStyle describes the contrast of the system status bar content.
type StatusBarStyle uint8

const (
	// StatusBarDefault uses dark status bar content.
	StatusBarDefault StatusBarStyle = iota
	// StatusBarLightContent uses light status bar content, for dark backgrounds.
	StatusBarLightContent
	// StatusBarDarkContent forces dark status bar content, for light backgrounds.
	StatusBarDarkContent
)

// Persistent is the Duration of a toast that is never dismissed automatically.
const Persistent time.Duration = -1

// Font is the face and size used for a toast's text.
type Font struct {
	text.Font
	Size unit.Sp
}

// Listener is notified when the user taps a presented toast.
type Listener interface {
	ToastTapped(*Config)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(*Config)

// ToastTapped calls f(c).
func (f ListenerFunc) ToastTapped(c *Config) {
	f(c)
}

// Config is the read-only description of one toast.
type Config struct {
	// ID identifies this config. It is reported back to listeners.
	ID             uuid.UUID
	Text           string
	Alignment      text.Alignment
	Image          image.Image
	Icon           *widget.Icon
	Background     color.NRGBA
	TextColor      color.NRGBA
	Font           Font
	Duration       time.Duration
	StatusBarStyle StatusBarStyle
	// AboveStatusBar raises the banner over the status bar even in
	// NavigationBarStyle.
	AboveStatusBar bool
	Interactive    bool
	Listener       Listener
	Style          Style
}

// AutoDismiss returns how long the toast stays on screen, and false if it
// stays until dismissed explicitly.
func (c *Config) AutoDismiss() (time.Duration, bool) {
	if c.Duration < 0 {
		return 0, false
	}
	return c.Duration, true
}

var defaultConfig = Config{
	Text:           "",
	Alignment:      text.Middle,
	Background:     color.NRGBA{R: 255, A: 255},
	TextColor:      color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	Font:           Font{Size: unit.Sp(14)},
	Duration:       2 * time.Second,
	StatusBarStyle: StatusBarLightContent,
	AboveStatusBar: false,
	Interactive:    true,
	Style:          NavigationBarStyle,
}

// Default returns a copy of the process-wide default configuration.
func Default() Config {
	return defaultConfig
}

// SetDefault replaces the process-wide default configuration. Configs that
// were already constructed keep their values. The default must only be
// changed from the UI goroutine.
func SetDefault(c Config) {
	c.ID = uuid.Nil
	defaultConfig = c
}

// New builds a Config by applying opts over a snapshot of the current
// default configuration.
func New(opts ...Option) *Config {
	c := defaultConfig
	c.ID = uuid.New()
	for _, opt := range opts {
		opt(&c)
	}
	return &c
}

// Content is the part of a Config that a view renders.
type Content struct {
	Text        string
	TextColor   color.NRGBA
	Font        Font
	Alignment   text.Alignment
	Image       image.Image
	Icon        *widget.Icon
	Background  color.NRGBA
	Interactive bool
}

// Content extracts the renderable fields of c.
func (c *Config) Content() Content {
	return Content{
		Text:        c.Text,
		TextColor:   c.TextColor,
		Font:        c.Font,
		Alignment:   c.Alignment,
		Image:       c.Image,
		Icon:        c.Icon,
		Background:  c.Background,
		Interactive: c.Interactive,
	}
}
