package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"gioui.org/app"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/haptic"
	"git.sr.ht/~whereswaldon/sprig-toast/core"
	"git.sr.ht/~whereswaldon/sprig-toast/icons"
	"git.sr.ht/~whereswaldon/sprig-toast/queue"
	"git.sr.ht/~whereswaldon/sprig-toast/surface"
	"git.sr.ht/~whereswaldon/sprig-toast/toast"
	sprigwidget "git.sr.ht/~whereswaldon/sprig-toast/widget"
	sprigTheme "git.sr.ht/~whereswaldon/sprig-toast/widget/theme"
	"github.com/inkeliz/giohyperlink"
	"github.com/pkg/profile"
)

// Version is set at build time by the magefile.
var Version = "git"

type (
	C = layout.Context
	D = layout.Dimensions
)

func main() {
	log.SetFlags(log.Flags() | log.Lshortfile)
	dataDir, err := app.DataDir()
	if err != nil {
		log.Printf("failed finding application data dir: %v", err)
	}
	settingsPath := filepath.Join(dataDir, "sprig-toast", "settings.toml")
	profiling := flag.Bool("profile", false, "log profiling data")
	flag.StringVar(&settingsPath, "config", settingsPath, "toast settings file")
	flag.Parse()

	log.Printf("sprig-toast %s", Version)
	if *profiling {
		defer profile.Start().Stop()
	}

	go func() {
		w := app.NewWindow(app.Title("Sprig Toast"))
		if err := eventLoop(w, settingsPath); err != nil {
			log.Fatalf("exiting due to error: %v", err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func eventLoop(w *app.Window, settingsPath string) error {
	theme := sprigTheme.New()
	q := queue.New(time.Now(), w.Invalidate)
	surf := surface.New(theme, nativeWindow{w}, theme.Primary.Dark)
	view := new(sprigwidget.Toast)

	application, err := core.NewApp(core.NewHapticService(haptic.NewBuzzer(w)), q, surf, view, settingsPath)
	if err != nil {
		return err
	}
	if err := application.Settings().Watch(q.Post); err != nil {
		log.Printf("settings will not reload automatically: %v", err)
	}

	demo := newDemo(theme, application.Toasts())
	var ops op.Ops
	for {
		e := <-w.Events()
		giohyperlink.ListenEvents(e)
		switch event := e.(type) {
		case system.DestroyEvent:
			return event.Err
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, event)
			q.Advance(gtx.Now)
			surf.Layout(gtx, func(gtx C) D {
				paint.Fill(gtx.Ops, theme.Background.Default)
				return layout.Inset{
					Top:    event.Insets.Top,
					Bottom: event.Insets.Bottom,
					Left:   event.Insets.Left,
					Right:  event.Insets.Right,
				}.Layout(gtx, demo.Layout)
			})
			if next, ok := q.Next(); ok {
				op.InvalidateOp{At: next}.Add(gtx.Ops)
			}
			event.Frame(gtx.Ops)
		default:
			ProcessPlatformEvent(application, e)
		}
	}
}

// demo is a page of buttons that present each kind of toast.
type demo struct {
	th      *sprigTheme.Theme
	toasts  core.ToastPresenter
	buttons []demoButton
	dismiss widget.Clickable
	list    layout.List
}

type demoButton struct {
	label  string
	action func()
	widget.Clickable
}

func newDemo(th *sprigTheme.Theme, toasts core.ToastPresenter) *demo {
	d := &demo{
		th:     th,
		toasts: toasts,
		list:   layout.List{Axis: layout.Vertical},
	}
	d.buttons = []demoButton{
		{label: "Navigation bar toast", action: func() {
			toasts.Present(toast.New(
				toast.WithText("Message sent"),
				toast.WithIcon(icons.SuccessIcon),
				toast.WithBackground(th.Primary.Default),
			), true)
		}},
		{label: "Status bar toast", action: func() {
			toasts.Present(toast.New(
				toast.WithText("Reconnecting…"),
				toast.WithStyle(toast.StatusBarBanner),
				toast.WithFont(toast.Font{Size: unit.Sp(12)}),
			), true)
		}},
		{label: "Persistent toast", action: func() {
			toasts.Present(toast.New(
				toast.WithText("Tap to dismiss"),
				toast.WithIcon(icons.InfoIcon),
				toast.WithPersistence(),
				toast.WithListener(toast.ListenerFunc(func(c *toast.Config) {
					log.Printf("toast %s tapped", c.ID)
				})),
			), true)
		}},
		{label: "Above status bar", action: func() {
			toasts.Present(toast.New(
				toast.WithText("Connection lost"),
				toast.WithIcon(icons.WarningIcon),
				toast.WithAboveStatusBar(true),
				toast.WithDuration(4*time.Second),
			), true)
		}},
		{label: "Link toast", action: func() {
			toasts.Present(toast.New(
				toast.WithText("Learn more about Arbor"),
				toast.WithIcon(icons.LinkIcon),
				toast.WithBackground(th.Secondary.Dark),
				toast.WithListener(toast.OpenLink("https://arbor.chat")),
				toast.WithDuration(5*time.Second),
			), true)
		}},
		{label: "Show instantly", action: func() {
			toasts.Present(toast.New(toast.WithText("No animation")), false)
		}},
	}
	return d
}

func (d *demo) Layout(gtx C) D {
	for i := range d.buttons {
		if d.buttons[i].Clicked() {
			d.buttons[i].action()
		}
	}
	if d.dismiss.Clicked() {
		d.toasts.Dismiss(true, func() {
			log.Printf("toast dismissed")
		})
	}
	return d.list.Layout(gtx, len(d.buttons)+1, func(gtx C, i int) D {
		return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx C) D {
			if i == len(d.buttons) {
				return layout.E.Layout(gtx, sprigTheme.IconButton{
					Theme:       d.th,
					Button:      &d.dismiss,
					Icon:        icons.CloseIcon,
					Size:        unit.Dp(32),
					Description: "Dismiss",
				}.Layout)
			}
			gtx.Constraints.Min.X = gtx.Constraints.Max.X
			return material.Button(d.th.Theme, &d.buttons[i].Clickable, d.buttons[i].label).Layout(gtx)
		})
	})
}
