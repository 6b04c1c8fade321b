package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/mariner-browser/mariner/internal/bookmarks"
)

// BookmarkDialog is the bookmark manager window. Every Show re-reads the
// bookmark file, so edits made outside the app are visible immediately.
type BookmarkDialog struct {
	window  fyne.Window
	loc     *Localization
	store   *bookmarks.Store
	log     *zap.Logger
	openTab func(url, label string)

	dlg      dialog.Dialog
	list     *widget.List
	entries  []bookmarks.Bookmark
	selected int
}

// NewBookmarkDialog creates the bookmark manager bound to the given store.
// openTab is called when the user opens a bookmark.
func NewBookmarkDialog(window fyne.Window, loc *Localization, store *bookmarks.Store, log *zap.Logger, openTab func(url, label string)) *BookmarkDialog {
	d := &BookmarkDialog{
		window:   window,
		loc:      loc,
		store:    store,
		log:      log,
		openTab:  openTab,
		selected: -1,
	}
	d.buildDialog()
	return d
}

func (d *BookmarkDialog) buildDialog() {
	d.list = widget.NewList(
		func() int {
			return len(d.entries)
		},
		func() fyne.CanvasObject {
			name := widget.NewLabel("")
			name.TextStyle = fyne.TextStyle{Bold: true}
			name.Truncation = fyne.TextTruncateEllipsis
			url := widget.NewLabel("")
			url.Truncation = fyne.TextTruncateEllipsis
			return container.NewVBox(name, url)
		},
		func(i widget.ListItemID, o fyne.CanvasObject) {
			if i < 0 || i >= len(d.entries) {
				return
			}
			box := o.(*fyne.Container)
			box.Objects[0].(*widget.Label).SetText(d.entries[i].Name)
			box.Objects[1].(*widget.Label).SetText(d.entries[i].URL)
		},
	)
	d.list.OnSelected = func(i widget.ListItemID) {
		d.selected = i
	}
	d.list.OnUnselected = func(widget.ListItemID) {
		d.selected = -1
	}

	openBtn := widget.NewButton(d.loc.GetText(KeyOpen), d.onOpen)
	deleteBtn := widget.NewButton(d.loc.GetText(KeyDelete), d.onDelete)
	buttons := container.NewHBox(openBtn, deleteBtn)

	content := container.NewBorder(nil, buttons, nil, nil, d.list)
	wrap := container.NewGridWrap(fyne.NewSize(DialogMinWidth, DialogMinHeight), content)

	d.dlg = dialog.NewCustom(d.loc.GetText(KeyBookmarks), d.loc.GetText(KeyClose), wrap, d.window)
}

// Show reloads the bookmark list from disk and displays the manager.
func (d *BookmarkDialog) Show() {
	d.reload()
	d.dlg.Show()
}

func (d *BookmarkDialog) reload() {
	entries, err := d.store.List()
	if err != nil {
		d.log.Warn("failed to load bookmarks", zap.Error(err))
		dialog.ShowError(err, d.window)
		return
	}
	d.entries = entries
	d.selected = -1
	d.list.UnselectAll()
	d.list.Refresh()
}

func (d *BookmarkDialog) onOpen() {
	if d.selected < 0 || d.selected >= len(d.entries) {
		return
	}
	b := d.entries[d.selected]
	d.dlg.Hide()
	d.openTab(b.URL, b.Name)
}

func (d *BookmarkDialog) onDelete() {
	if d.selected < 0 || d.selected >= len(d.entries) {
		return
	}
	b := d.entries[d.selected]
	dialog.ShowConfirm(d.loc.GetText(KeyDeleteBookmark), d.loc.GetText(KeyDeleteConfirm), func(confirmed bool) {
		if !confirmed {
			return
		}
		if err := d.store.Delete(b.URL); err != nil {
			d.log.Warn("failed to delete bookmark", zap.String("url", b.URL), zap.Error(err))
			dialog.ShowError(err, d.window)
			return
		}
		d.reload()
	}, d.window)
}
