package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/aquakit/aquakit/appearance"
	"github.com/aquakit/aquakit/config"
	"github.com/aquakit/aquakit/objectstore"
	"github.com/aquakit/aquakit/windows"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, os.Kill)
	defer cancel()

	a := app.NewWithID("org.aquakit.demo")
	appearance.Register(appearance.NewSettingsProvider(a, nil))

	cfg, err := config.New()
	if err != nil {
		showFatal(a, err)
		return
	}

	if len(cfg.Settings.Stores) == 0 {
		showFatal(a, errors.New("no object store configured, pass -endpoint/-accesskey/-secretkey/-bucket"))
		return
	}

	svc, err := objectstore.New(cfg.Settings.Stores[0])
	if err != nil {
		showFatal(a, err)
		return
	}

	browser := windows.NewBrowser(a, svc, cfg)
	browser.Show(ctx)
	a.Run()
}

func showFatal(a fyne.App, err error) {
	w := a.NewWindow(config.Name)
	w.SetContent(widget.NewLabel(fyne.CurrentApp().Metadata().Version))
	w.Resize(fyne.NewSize(600, 400))
	d := dialog.NewError(err, w)
	d.SetOnClosed(func() {
		a.Quit()
	})
	d.Show()
	w.ShowAndRun()
}
