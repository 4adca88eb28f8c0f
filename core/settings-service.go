package core

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"log"
	"os"
	"strings"
	"time"

	"gioui.org/text"
	"gioui.org/unit"
	"git.sr.ht/~whereswaldon/sprig-toast/toast"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// SettingsService loads toast defaults from a TOML settings file and
// keeps the process-wide default configuration in sync with it.
type SettingsService interface {
	// Path returns the settings file location, which may not exist.
	Path() string
	// Settings returns the most recently loaded settings.
	Settings() Settings
	// Reload re-reads the settings file and applies it.
	Reload() error
	// Watch reloads the settings whenever the file changes. Reloads are
	// handed to post so that they run on the UI goroutine.
	Watch(post func(func())) error
}

// Settings is the on-disk settings document.
type Settings struct {
	Toast ToastSettings `koanf:"toast"`
}

// ToastSettings overrides fields of the built-in toast defaults. Empty
// strings and nil pointers leave the built-in value in place.
type ToastSettings struct {
	Text string `koanf:"text"`
	// "start", "center" or "end"
	Alignment string `koanf:"alignment"`
	// hex colors such as "#c62828"
	Background string  `koanf:"background"`
	TextColor  string  `koanf:"text_color"`
	FontSize   float32 `koanf:"font_size"`
	Bold       *bool   `koanf:"bold"`
	// a time.ParseDuration string, or "never"
	Duration string `koanf:"duration"`
	// "default", "light" or "dark"
	StatusBar      string `koanf:"status_bar"`
	AboveStatusBar *bool  `koanf:"above_status_bar"`
	Interactive    *bool  `koanf:"interactive"`
	// "navigation" or "status"
	Style string `koanf:"style"`
}

type settingsService struct {
	path     string
	base     toast.Config
	settings Settings
}

var _ SettingsService = &settingsService{}

func newSettingsService(path string) (SettingsService, error) {
	s := &settingsService{
		path: path,
		base: toast.Default(),
	}
	if err := s.Reload(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		log.Printf("no loadable settings file found; defaults will be used: %v", err)
	}
	return s, nil
}

func (s *settingsService) Path() string {
	return s.path
}

func (s *settingsService) Settings() Settings {
	return s.settings
}

func (s *settingsService) Reload() error {
	settings, err := loadSettings(s.path)
	if err != nil {
		return err
	}
	cfg, err := settings.Toast.Apply(s.base)
	if err != nil {
		return fmt.Errorf("invalid settings in %s: %w", s.path, err)
	}
	s.settings = settings
	toast.SetDefault(cfg)
	return nil
}

func (s *settingsService) Watch(post func(func())) error {
	if s.path == "" {
		return nil
	}
	err := file.Provider(s.path).Watch(func(event interface{}, err error) {
		if err != nil {
			log.Printf("settings watch failed: %v", err)
			return
		}
		post(func() {
			if err := s.Reload(); err != nil {
				log.Printf("failed reloading settings: %v", err)
			}
		})
	})
	if err != nil {
		return fmt.Errorf("failed watching %s: %w", s.path, err)
	}
	return nil
}

func loadSettings(path string) (Settings, error) {
	var settings Settings
	if path == "" {
		return settings, nil
	}
	if _, err := os.Stat(path); err != nil {
		return settings, fmt.Errorf("failed to load settings: %w", err)
	}
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return settings, fmt.Errorf("couldn't parse toml settings: %w", err)
	}
	if err := k.Unmarshal("", &settings); err != nil {
		return settings, fmt.Errorf("couldn't decode settings: %w", err)
	}
	return settings, nil
}

// Apply returns base with every configured field overridden.
func (t ToastSettings) Apply(base toast.Config) (toast.Config, error) {
	c := base
	if t.Text != "" {
		c.Text = t.Text
	}
	if t.Alignment != "" {
		a, err := parseAlignment(t.Alignment)
		if err != nil {
			return c, err
		}
		c.Alignment = a
	}
	if t.Background != "" {
		col, err := ParseColor(t.Background)
		if err != nil {
			return c, fmt.Errorf("background: %w", err)
		}
		c.Background = col
	}
	if t.TextColor != "" {
		col, err := ParseColor(t.TextColor)
		if err != nil {
			return c, fmt.Errorf("text_color: %w", err)
		}
		c.TextColor = col
	}
	if t.FontSize > 0 {
		c.Font.Size = unit.Sp(t.FontSize)
	}
	if t.Bold != nil {
		if *t.Bold {
			c.Font.Weight = text.Bold
		} else {
			c.Font.Weight = text.Normal
		}
	}
	if t.Duration != "" {
		d, err := parseDuration(t.Duration)
		if err != nil {
			return c, err
		}
		if d != 0 {
			c.Duration = d
		}
	}
	if t.StatusBar != "" {
		sb, err := parseStatusBar(t.StatusBar)
		if err != nil {
			return c, err
		}
		c.StatusBarStyle = sb
	}
	if t.AboveStatusBar != nil {
		c.AboveStatusBar = *t.AboveStatusBar
	}
	if t.Interactive != nil {
		c.Interactive = *t.Interactive
	}
	if t.Style != "" {
		st, err := parseStyle(t.Style)
		if err != nil {
			return c, err
		}
		c.Style = st
	}
	return c, nil
}

// ParseColor parses a "#rrggbb" or "#rgb" color.
func ParseColor(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

func parseAlignment(s string) (text.Alignment, error) {
	switch strings.ToLower(s) {
	case "start", "leading", "left":
		return text.Start, nil
	case "center", "middle":
		return text.Middle, nil
	case "end", "trailing", "right":
		return text.End, nil
	}
	return text.Middle, fmt.Errorf("unknown alignment %q", s)
}

func parseDuration(s string) (time.Duration, error) {
	switch strings.ToLower(s) {
	case "never", "persistent":
		return toast.Persistent, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", s, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration %q", s)
	}
	return d, nil
}

func parseStatusBar(s string) (toast.StatusBarStyle, error) {
	switch strings.ToLower(s) {
	case "default":
		return toast.StatusBarDefault, nil
	case "light", "light-content":
		return toast.StatusBarLightContent, nil
	case "dark", "dark-content":
		return toast.StatusBarDarkContent, nil
	}
	return toast.StatusBarDefault, fmt.Errorf("unknown status bar style %q", s)
}

func parseStyle(s string) (toast.Style, error) {
	switch strings.ToLower(s) {
	case "navigation", "navigation-bar":
		return toast.NavigationBarStyle, nil
	case "status", "status-bar":
		return toast.StatusBarBanner, nil
	}
	return toast.NavigationBarStyle, fmt.Errorf("unknown toast style %q", s)
}
