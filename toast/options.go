package toast

import (
	"image"
	"image/color"
	"time"

	"gioui.org/text"
	"gioui.org/widget"
)

// Option overrides one field of a Config under construction.
type Option func(*Config)

func WithText(s string) Option {
	return func(c *Config) { c.Text = s }
}

func WithAlignment(a text.Alignment) Option {
	return func(c *Config) { c.Alignment = a }
}

// WithImage sets a bitmap shown before the text. A nil image keeps the
// default.
func WithImage(img image.Image) Option {
	return func(c *Config) {
		if img != nil {
			c.Image = img
		}
	}
}

// WithIcon sets a vector glyph shown before the text, drawn in the text
// color. A nil icon keeps the default.
func WithIcon(icon *widget.Icon) Option {
	return func(c *Config) {
		if icon != nil {
			c.Icon = icon
		}
	}
}

func WithBackground(col color.NRGBA) Option {
	return func(c *Config) { c.Background = col }
}

func WithTextColor(col color.NRGBA) Option {
	return func(c *Config) { c.TextColor = col }
}

func WithFont(f Font) Option {
	return func(c *Config) { c.Font = f }
}

// WithDuration sets how long the toast stays on screen. A zero duration
// means "unset" and resolves to the default duration rather than
// dismissing immediately.
func WithDuration(d time.Duration) Option {
	return func(c *Config) {
		if d != 0 {
			c.Duration = d
		}
	}
}

// WithPersistence keeps the toast on screen until it is dismissed
// explicitly or replaced.
func WithPersistence() Option {
	return func(c *Config) { c.Duration = Persistent }
}

func WithStatusBarStyle(s StatusBarStyle) Option {
	return func(c *Config) { c.StatusBarStyle = s }
}

func WithAboveStatusBar(above bool) Option {
	return func(c *Config) { c.AboveStatusBar = above }
}

// WithInteraction controls whether the toast reacts to taps.
func WithInteraction(enabled bool) Option {
	return func(c *Config) { c.Interactive = enabled }
}

// WithListener sets the receiver of tap notifications. A nil listener
// keeps the default.
func WithListener(l Listener) Option {
	return func(c *Config) {
		if l != nil {
			c.Listener = l
		}
	}
}

func WithStyle(s Style) Option {
	return func(c *Config) { c.Style = s }
}
