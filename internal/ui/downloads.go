package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/mariner-browser/mariner/internal/download"
	"github.com/mariner-browser/mariner/internal/model"
	"github.com/mariner-browser/mariner/internal/platform"
)

// DownloadRow displays one download: name, progress, status line, and the
// cancel/open actions appropriate for its state.
type DownloadRow struct {
	widget.BaseWidget

	loc     *Localization
	manager download.Manager
	log     *zap.Logger

	download *model.Download

	nameLabel   *widget.Label
	statusLabel *widget.Label
	progress    *widget.ProgressBar
	cancelBtn   *widget.Button
	openBtn     *widget.Button
	content     fyne.CanvasObject
}

// NewDownloadRow creates a row for the given download.
func NewDownloadRow(loc *Localization, manager download.Manager, log *zap.Logger, d *model.Download) *DownloadRow {
	r := &DownloadRow{
		loc:     loc,
		manager: manager,
		log:     log,
	}

	r.nameLabel = widget.NewLabel("")
	r.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	r.nameLabel.Truncation = fyne.TextTruncateEllipsis

	r.statusLabel = widget.NewLabel("")
	r.statusLabel.Truncation = fyne.TextTruncateEllipsis

	r.progress = widget.NewProgressBar()

	r.cancelBtn = widget.NewButtonWithIcon("", theme.CancelIcon(), r.onCancel)
	r.openBtn = widget.NewButtonWithIcon("", theme.FolderOpenIcon(), r.onOpen)

	buttons := container.NewVBox(r.cancelBtn, r.openBtn)
	info := container.NewVBox(r.nameLabel, r.progress, r.statusLabel)
	r.content = container.NewBorder(nil, nil, nil, buttons, info)

	r.ExtendBaseWidget(r)
	r.SetDownload(d)
	return r
}

// CreateRenderer implements fyne.Widget.
func (r *DownloadRow) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(r.content)
}

// SetDownload applies the download's current state to the row.
func (r *DownloadRow) SetDownload(d *model.Download) {
	r.download = d
	r.nameLabel.SetText(d.DisplayName())
	r.statusLabel.SetText(r.statusText(d))

	if pct := d.Percent(); pct >= 0 {
		r.progress.SetValue(float64(pct) / 100)
		r.progress.Show()
	} else if d.Status == model.DownloadAccepted {
		// Unknown total size, show an empty bar as a placeholder.
		r.progress.SetValue(0)
		r.progress.Show()
	} else {
		r.progress.Hide()
	}

	if d.Status.IsActive() {
		r.cancelBtn.Show()
	} else {
		r.cancelBtn.Hide()
	}
	if d.Status == model.DownloadCompleted {
		r.openBtn.Show()
	} else {
		r.openBtn.Hide()
	}
}

func (r *DownloadRow) statusText(d *model.Download) string {
	switch d.Status {
	case model.DownloadPending:
		return r.loc.GetText(KeyStatusPending)
	case model.DownloadAccepted:
		if d.Total > 0 {
			return fmt.Sprintf("%s %s / %s", r.loc.GetText(KeyStatusActive), formatBytes(d.Received), formatBytes(d.Total))
		}
		return fmt.Sprintf("%s %s", r.loc.GetText(KeyStatusActive), formatBytes(d.Received))
	case model.DownloadCompleted:
		return fmt.Sprintf("%s, %s", r.loc.GetText(KeyStatusDone), formatBytes(d.Received))
	case model.DownloadCancelled:
		return r.loc.GetText(KeyStatusCancelled)
	case model.DownloadFailed:
		return fmt.Sprintf(r.loc.GetText(KeyStatusFailed), d.LastError)
	}
	return d.Status.String()
}

func (r *DownloadRow) onCancel() {
	if r.download == nil {
		return
	}
	if err := r.manager.Cancel(r.download.ID); err != nil {
		r.log.Warn("failed to cancel download", zap.String("id", r.download.ID), zap.Error(err))
	}
}

func (r *DownloadRow) onOpen() {
	if r.download == nil || r.download.TargetPath == "" {
		return
	}
	if err := platform.OpenFile(r.download.TargetPath); err != nil {
		r.log.Warn("failed to open downloaded file", zap.String("path", r.download.TargetPath), zap.Error(err))
	}
}

// formatBytes renders a byte count in a compact human unit.
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGT"[exp])
}

// DownloadsDialog lists every download of the session, newest state first
// refreshed live while it is visible.
type DownloadsDialog struct {
	window  fyne.Window
	loc     *Localization
	manager download.Manager
	log     *zap.Logger

	dlg     dialog.Dialog
	rows    *fyne.Container
	rowByID map[string]*DownloadRow
	empty   *widget.Label
	visible bool
}

// NewDownloadsDialog creates the downloads panel bound to the manager.
func NewDownloadsDialog(window fyne.Window, loc *Localization, manager download.Manager, log *zap.Logger) *DownloadsDialog {
	d := &DownloadsDialog{
		window:  window,
		loc:     loc,
		manager: manager,
		log:     log,
		rowByID: make(map[string]*DownloadRow),
	}

	d.empty = widget.NewLabel(loc.GetText(KeyNoDownloads))
	d.rows = container.NewVBox(d.empty)

	scroll := container.NewVScroll(d.rows)
	wrap := container.NewGridWrap(fyne.NewSize(DialogMinWidth, DialogMinHeight), scroll)

	d.dlg = dialog.NewCustom(loc.GetText(KeyDownloads), loc.GetText(KeyClose), wrap, window)
	d.dlg.SetOnClosed(func() {
		d.visible = false
	})
	return d
}

// Show rebuilds the list from the manager and displays the panel.
func (d *DownloadsDialog) Show() {
	d.rebuild()
	d.visible = true
	d.dlg.Show()
}

// RefreshIfVisible re-renders the rows when the panel is on screen. Called
// from download progress and completion callbacks.
func (d *DownloadsDialog) RefreshIfVisible() {
	if !d.visible {
		return
	}
	d.rebuild()
}

func (d *DownloadsDialog) rebuild() {
	downloads := d.manager.All()

	d.rows.Objects = d.rows.Objects[:0]
	if len(downloads) == 0 {
		d.rows.Add(d.empty)
		d.rows.Refresh()
		return
	}

	for _, dl := range downloads {
		row, exists := d.rowByID[dl.ID]
		if !exists {
			row = NewDownloadRow(d.loc, d.manager, d.log, dl)
			d.rowByID[dl.ID] = row
		} else {
			row.SetDownload(dl)
		}
		d.rows.Add(row)
	}
	d.rows.Refresh()
}
