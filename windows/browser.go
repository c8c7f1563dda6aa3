package windows

import (
	"bufio"
	"context"
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/gabriel-vasile/mimetype"

	"github.com/aquakit/aquakit/appearance"
	"github.com/aquakit/aquakit/config"
	"github.com/aquakit/aquakit/insettable"
	"github.com/aquakit/aquakit/objectstore"
	"github.com/aquakit/aquakit/segmented"
)

const (
	batchSize = 500

	browserTableID = "browser"
	tableMargin    = 16
)

// Browser is the demo window: an inset-margin table of objects with a
// segmented toolbar controlling the column resize policy.
type Browser struct {
	app    fyne.App
	window fyne.Window
	svc    *objectstore.Service
	cfg    *config.Config

	currentObjects      []objectstore.Object
	allObjects          []objectstore.Object
	selectedIndex       int
	searchTerm          string
	searchDebounceTimer *time.Timer

	table       *insettable.Table
	model       *insettable.Model
	itemsLabel  *canvas.Text
	searchInput *widget.Entry
	progressBar *widget.ProgressBar
	stopBtn     *widget.Button
}

func NewBrowser(a fyne.App, svc *objectstore.Service, cfg *config.Config) *Browser {
	window := a.NewWindow("aquakit demo")
	window.CenterOnScreen()
	window.SetMaster()

	return &Browser{
		app:           a,
		window:        window,
		svc:           svc,
		cfg:           cfg,
		selectedIndex: -1,
	}
}

func (b *Browser) Show(ctx context.Context) {
	b.setupGUI(ctx)
	b.loadObjects(ctx)

	b.window.SetOnClosed(func() {
		b.saveColumnWidths()
	})
	b.window.Show()
}

func (b *Browser) setupGUI(ctx context.Context) {
	b.itemsLabel = b.createItemsLabel()
	b.table = b.createObjectTable()
	b.searchInput = b.createSearchInput()
	b.progressBar = b.createProgressBar()
	b.stopBtn = b.createStopButton()

	bottomContainer := b.createBottomContainer()
	topContainer := b.createTopContainer(ctx)

	content := container.NewBorder(topContainer, container.NewPadded(bottomContainer), nil, nil, b.table)
	b.window.SetContent(content)
	b.window.Resize(fyne.NewSize(800, 440))
}

func (b *Browser) createItemsLabel() *canvas.Text {
	label := canvas.NewText("", color.Black)
	if c, found := appearance.SystemColor("secondaryLabel"); found {
		label.Color = c
	}
	return label
}

func (b *Browser) updateItemsLabel() {
	b.itemsLabel.Text = fmt.Sprintf("Total Items: %d", len(b.currentObjects))
	b.itemsLabel.Refresh()
}

func (b *Browser) createObjectTable() *insettable.Table {
	b.model = insettable.NewModel(
		insettable.NewColumn("Name", 120, 370),
		insettable.NewColumn("Size", 60, 90),
		insettable.NewColumn("Last Modified", 120, 200),
	)
	b.model.Column(1).MaxWidth = 140

	if widths := b.cfg.ColumnWidths(browserTableID); len(widths) == b.model.Count() {
		for i, w := range widths {
			b.model.Column(i).Preferred = w
		}
	}

	table := insettable.NewTable(b.model,
		func() int {
			return len(b.currentObjects)
		},
		func(row, col int) string {
			obj := b.currentObjects[row]
			switch col {
			case 0:
				return obj.Key
			case 1:
				return fmt.Sprintf("%d kB", obj.Size/1024)
			case 2:
				return obj.LastModified
			}
			return ""
		},
	)
	table.OnSelected = func(row int) {
		b.selectedIndex = row
	}
	table.SetMargins(tableMargin, tableMargin/2)

	return table
}

func (b *Browser) saveColumnWidths() {
	widths := make([]int, b.model.Count())
	for i := range widths {
		widths[i] = b.model.Column(i).Width
	}
	b.cfg.SetColumnWidths(browserTableID, widths)
	if err := b.cfg.Save(); err != nil {
		fmt.Println("Error saving settings: ", err)
	}
}

func (b *Browser) createSearchInput() *widget.Entry {
	searchInput := widget.NewEntry()
	searchInput.SetPlaceHolder("Search...")
	searchInput.OnChanged = func(s string) {
		b.searchTerm = s
		if b.searchDebounceTimer != nil {
			b.searchDebounceTimer.Stop()
		}
		b.searchDebounceTimer = time.AfterFunc(300*time.Millisecond, func() {
			fyne.Do(b.updateObjectList)
		})
	}
	return searchInput
}

func (b *Browser) createProgressBar() *widget.ProgressBar {
	progressBar := widget.NewProgressBar()
	progressBar.Hide()
	return progressBar
}

func (b *Browser) createStopButton() *widget.Button {
	stopBtn := widget.NewButton("Stop", func() {})
	stopBtn.Hide()
	return stopBtn
}

func (b *Browser) createBottomContainer() *fyne.Container {
	return container.NewHBox(
		b.itemsLabel,
		layout.NewSpacer(),
		b.stopBtn,
		container.NewGridWrap(fyne.NewSize(400, b.progressBar.MinSize().Height), b.progressBar),
	)
}

// createResizeModeControl builds the exclusive segmented control selecting
// how column resizes are absorbed.
func (b *Browser) createResizeModeControl() *segmented.Control {
	modes := []struct {
		label string
		mode  insettable.AutoResize
	}{
		{"Subsequent", insettable.AutoResizeSubsequentColumns},
		{"Next", insettable.AutoResizeNextColumn},
		{"Last", insettable.AutoResizeLastColumn},
		{"All", insettable.AutoResizeAllColumns},
		{"Off", insettable.AutoResizeOff},
	}

	builder := segmented.NewBuilder(segmented.StyleRoundRect, true, segmented.SizeSmall, 4)
	for _, m := range modes {
		if err := builder.AddToggle(m.label); err != nil {
			fmt.Println("Error building resize control: ", err)
		}
	}

	control, err := builder.Build()
	if err != nil {
		fmt.Println("Error building resize control: ", err)
		return nil
	}
	control.OnSelected = func(index int) {
		b.table.SetAutoResize(modes[index].mode)
	}
	return control
}

// createActionControl builds the push-button segmented control with the
// browser actions.
func (b *Browser) createActionControl(ctx context.Context) *segmented.Control {
	builder := segmented.NewBuilder(segmented.StyleTextured, false, segmented.SizeRegular, 4)

	actions := []struct {
		label string
		fn    func()
	}{
		{"Refresh", func() { b.loadObjects(ctx) }},
		{"Upload", func() { b.handleUpload(ctx) }},
		{"Delete", func() { b.handleDelete(ctx) }},
	}
	for _, a := range actions {
		if err := builder.Add(a.label, a.fn); err != nil {
			fmt.Println("Error building action control: ", err)
		}
	}

	control, err := builder.Build()
	if err != nil {
		fmt.Println("Error building action control: ", err)
		return nil
	}
	return control
}

func (b *Browser) createTopContainer(ctx context.Context) *fyne.Container {
	exitBtn := widget.NewButton("Exit", func() {
		b.app.Quit()
	})
	exitBtn.Importance = widget.HighImportance

	btnBar := container.NewHBox(
		b.createActionControl(ctx),
		widget.NewLabel("Resize:"),
		b.createResizeModeControl(),
		layout.NewSpacer(),
		exitBtn,
	)

	searchBar := container.New(layout.NewStackLayout(), b.searchInput)
	return container.NewVBox(btnBar, container.NewPadded(searchBar))
}

func (b *Browser) filterObjects() []objectstore.Object {
	if b.searchTerm == "" {
		return b.allObjects
	}

	var filtered []objectstore.Object
	for _, obj := range b.allObjects {
		if strings.Contains(strings.ToLower(obj.Key), strings.ToLower(b.searchTerm)) {
			filtered = append(filtered, obj)
		}
	}
	return filtered
}

func (b *Browser) updateObjectList() {
	b.currentObjects = b.filterObjects()
	b.table.Refresh()
	b.updateItemsLabel()
}

func (b *Browser) loadObjects(ctx context.Context) {
	b.progressBar.Show()
	b.stopBtn.Show()
	b.progressBar.SetValue(0)
	b.searchInput.SetText("")

	go func() {
		defer fyne.Do(func() {
			b.progressBar.Hide()
			b.stopBtn.Hide()
		})

		all := []objectstore.Object{}
		var lastKey string

		for {
			batch, err := b.svc.ListBatch(ctx, lastKey, batchSize)
			if err != nil {
				fyne.Do(func() {
					dialog.ShowError(err, b.window)
				})
				return
			}

			loaded := len(all)
			all = append(all, batch...)

			fyne.Do(func() {
				b.allObjects = all
				b.selectedIndex = -1
				b.progressBar.SetValue(loadProgress(loaded, len(all)))
				b.updateObjectList()
			})

			if len(batch) < batchSize {
				break
			}
			lastKey = batch[len(batch)-1].Key
		}
	}()
}

// loadProgress maps batch progress onto the bar. The object count is not
// known up front, so the bar shows the share of objects that were already
// listed before the latest batch: zero for the first batch, then climbing
// toward one as batches accumulate.
func loadProgress(loaded, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(loaded) / float64(total)
}

func (b *Browser) handleDelete(ctx context.Context) {
	if b.selectedIndex < 0 || b.selectedIndex >= len(b.currentObjects) {
		dialog.ShowInformation("Info", "No object selected", b.window)
		return
	}
	obj := b.currentObjects[b.selectedIndex]
	confirm := dialog.NewConfirm(
		"Delete Object?",
		fmt.Sprintf("Do you really want to delete '%s'?", obj.Key),
		func(yes bool) {
			if yes {
				err := b.svc.Remove(ctx, obj.Key)
				if err != nil {
					dialog.ShowError(err, b.window)
				} else {
					b.loadObjects(ctx)
				}
			}
		}, b.window)
	confirm.Show()
}

func (b *Browser) handleUpload(ctx context.Context) {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		b.uploadFile(ctx, reader)
	}, b.window)
	fd.Show()
}

func (b *Browser) uploadFile(ctx context.Context, reader fyne.URIReadCloser) {
	name := reader.URI().Name()

	fileInfo, err := os.Stat(reader.URI().Path())
	if err != nil {
		dialog.ShowError(err, b.window)
		return
	}
	totalSize := fileInfo.Size()

	bufreader := bufio.NewReader(reader)
	detectBytes, err := bufreader.Peek(1024)
	if err != nil && err != io.EOF {
		fmt.Println("Error reading file: ", err)
		return
	}
	mt := mimetype.Detect(detectBytes)

	b.progressBar.Show()
	b.progressBar.SetValue(0)

	go func() {
		defer reader.Close()

		err := b.svc.Put(ctx, name, bufreader, totalSize, mt.String())
		if err != nil {
			fyne.Do(func() {
				dialog.ShowError(err, b.window)
			})
			return
		}

		fyne.Do(func() {
			b.progressBar.Hide()
			dialog.ShowInformation("OK", fmt.Sprintf("Uploaded file %s!", name), b.window)
			b.loadObjects(ctx)
		})
	}()
}
