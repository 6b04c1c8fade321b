package ui

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/mariner-browser/mariner/internal/bookmarks"
	"github.com/mariner-browser/mariner/internal/config"
	"github.com/mariner-browser/mariner/internal/download"
	"github.com/mariner-browser/mariner/internal/engine"
	"github.com/mariner-browser/mariner/internal/history"
	"github.com/mariner-browser/mariner/internal/model"
	"github.com/mariner-browser/mariner/internal/navigate"
	"github.com/mariner-browser/mariner/internal/platform"
)

// RootUI represents the main browser window: toolbar, URL bar, tab bar bound
// to the session model, status bar, and the dialogs hanging off them.
type RootUI struct {
	window fyne.Window
	app    fyne.App
	log    *zap.Logger

	settings  *config.Settings
	loc       *Localization
	session   *model.Session
	store     *bookmarks.Store
	visits    *history.Store // nil when the history database is unavailable
	downloads download.Manager

	urlEntry    *widget.Entry
	tabBar      *container.DocTabs
	statusLabel *widget.Label
	progressBar *widget.ProgressBar

	views   map[string]*TabView
	items   map[string]*container.TabItem
	itemIDs map[*container.TabItem]string

	// guards against feedback loops when the UI mutates itself
	suppressURLEvents bool
	suppressSelect    bool

	suggestTimer *time.Timer
	suggestPopup *widget.PopUpMenu

	bookmarkDlg *BookmarkDialog
	downloadDlg *DownloadsDialog
}

// NewRootUI creates and initializes the main window content. The history
// store may be nil; the URL bar simply offers no suggestions then.
func NewRootUI(window fyne.Window, app fyne.App, downloadSvc download.Manager, store *bookmarks.Store, visits *history.Store, log *zap.Logger) *RootUI {
	settings := config.NewSettings(app)

	loc := NewLocalization()
	loc.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:    window,
		app:       app,
		log:       log,
		settings:  settings,
		loc:       loc,
		session:   model.NewSession(),
		store:     store,
		visits:    visits,
		downloads: downloadSvc,
		views:     make(map[string]*TabView),
		items:     make(map[string]*container.TabItem),
		itemIDs:   make(map[*container.TabItem]string),
	}

	window.SetTitle(loc.GetText(KeyAppTitle))

	ui.wireDownloads()
	ui.setupUI()
	ui.openTab(settings.GetHomeURL(), "Homepage")
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.loc.GetText(KeyEnterURL))
	ui.urlEntry.OnSubmitted = ui.onURLSubmitted
	ui.urlEntry.OnChanged = ui.onURLEdited

	backBtn := widget.NewButtonWithIcon("", theme.NavigateBackIcon(), func() {
		if e := ui.currentEngine(); e != nil {
			e.Back()
		}
	})
	forwardBtn := widget.NewButtonWithIcon("", theme.NavigateNextIcon(), func() {
		if e := ui.currentEngine(); e != nil {
			e.Forward()
		}
	})
	reloadBtn := widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), func() {
		if e := ui.currentEngine(); e != nil {
			e.Reload()
		}
	})
	stopBtn := widget.NewButtonWithIcon("", theme.MediaStopIcon(), func() {
		if e := ui.currentEngine(); e != nil {
			e.Stop()
		}
	})
	homeBtn := widget.NewButtonWithIcon("", theme.HomeIcon(), ui.onNavigateHome)
	newTabBtn := widget.NewButtonWithIcon("", theme.ContentAddIcon(), func() {
		ui.openTab(ui.settings.GetHomeURL(), ui.loc.GetText(KeyNewTab))
	})

	searchBtn := widget.NewButtonWithIcon("", theme.SearchIcon(), ui.onSearchClicked)
	addBookmarkBtn := widget.NewButton(IconAddBookmark, ui.onAddBookmark)
	bookmarksBtn := widget.NewButton(IconBookmarks, ui.onShowBookmarks)
	downloadsBtn := widget.NewButton(IconDownloads, ui.onShowDownloads)
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance
	aboutBtn := widget.NewButton(IconAbout, ui.onShowAbout)
	aboutBtn.Importance = widget.LowImportance

	navBox := container.NewHBox(backBtn, forwardBtn, reloadBtn, stopBtn, homeBtn, widget.NewSeparator(), newTabBtn)
	actionBox := container.NewHBox(searchBtn, addBookmarkBtn, bookmarksBtn, downloadsBtn, settingsBtn, aboutBtn)
	topPanel := container.NewBorder(nil, nil, navBox, actionBox, ui.urlEntry)

	ui.tabBar = container.NewDocTabs()
	ui.tabBar.OnSelected = ui.onTabSelected
	ui.tabBar.CloseIntercept = ui.onTabCloseRequested
	ui.tabBar.CreateTab = ui.onCreateTab

	ui.statusLabel = widget.NewLabel(ui.loc.GetText(KeyReady))
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis
	ui.progressBar = widget.NewProgressBar()
	ui.progressBar.Hide()
	progressWrap := container.NewGridWrap(
		fyne.NewSize(ProgressBarWidth, ui.progressBar.MinSize().Height),
		ui.progressBar,
	)
	statusBar := container.NewBorder(nil, nil, nil, progressWrap, ui.statusLabel)

	content := container.NewBorder(topPanel, statusBar, nil, nil, ui.tabBar)
	ui.window.SetContent(content)
}

// wireDownloads connects the download service callbacks to the UI. Service
// callbacks arrive on transfer goroutines, so everything hops onto the event
// loop first.
func (ui *RootUI) wireDownloads() {
	ui.downloads.SetPathPrompt(ui.promptSavePath)
	ui.downloads.SetUpdateCallback(func(d *model.Download) {
		fyne.Do(func() {
			if ui.downloadDlg != nil {
				ui.downloadDlg.RefreshIfVisible()
			}
		})
	})
	ui.downloads.SetDoneCallback(func(d *model.Download) {
		fyne.Do(func() { ui.onDownloadDone(d) })
	})
}

// promptSavePath asks the user where to store a requested download.
func (ui *RootUI) promptSavePath(d *model.Download, respond func(string)) {
	fd := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			respond("")
			return
		}
		savePath := wc.URI().Path()
		wc.Close()
		respond(savePath)
		ui.setStatus(fmt.Sprintf(ui.loc.GetText(KeyDownloading), d.DisplayName()))
	}, ui.window)
	fd.SetFileName(d.DisplayName())
	fd.Show()
}

// onDownloadDone surfaces the single notification every terminal download
// produces.
func (ui *RootUI) onDownloadDone(d *model.Download) {
	if ui.downloadDlg != nil {
		ui.downloadDlg.RefreshIfVisible()
	}

	switch d.Status {
	case model.DownloadCompleted:
		ui.setStatus(fmt.Sprintf(ui.loc.GetText(KeyDownloadComplete), d.DisplayName()))
		msg := fmt.Sprintf(ui.loc.GetText(KeyOpenFileQuestion), d.DisplayName(), d.TargetPath)
		dialog.ShowConfirm(ui.loc.GetText(KeyDownloads), msg, func(open bool) {
			if !open {
				return
			}
			if err := platform.OpenFile(d.TargetPath); err != nil {
				ui.log.Warn("failed to open downloaded file", zap.String("path", d.TargetPath), zap.Error(err))
			}
		}, ui.window)
	case model.DownloadCancelled:
		ui.setStatus(fmt.Sprintf(ui.loc.GetText(KeyDownloadCancelled), d.DisplayName()))
	case model.DownloadFailed:
		ui.log.Warn("download failed", zap.String("url", d.URL), zap.String("error", d.LastError))
		ui.setStatus(fmt.Sprintf(ui.loc.GetText(KeyDownloadFailed), d.DisplayName()))
	}
}

// buildTab creates the session entry, view, and engine for a new tab and
// returns the tab-bar item for it.
func (ui *RootUI) buildTab(url, label string) *container.TabItem {
	id := ui.session.Open(url, label)

	view := NewTabView(id)
	eng := engine.NewPreview(ui.engineHandlers(id, view), engine.Options{
		UserAgent: ui.settings.GetUserAgent(),
		Dispatch:  fyne.Do,
	})
	view.engine = eng

	item := container.NewTabItem(label, view.Content())
	ui.views[id] = view
	ui.items[id] = item
	ui.itemIDs[item] = id

	if url != "" {
		eng.Navigate(url)
	}
	return item
}

// openTab appends a new tab and makes it current.
func (ui *RootUI) openTab(url, label string) {
	item := ui.buildTab(url, label)
	ui.tabBar.Append(item)
	ui.tabBar.Select(item)
	ui.refreshChrome()
}

// OpenTab opens a URL in a new tab, used by the bookmark manager.
func (ui *RootUI) OpenTab(url, label string) {
	ui.openTab(url, label)
}

// onCreateTab backs the tab bar's "+" affordance with a default tab.
func (ui *RootUI) onCreateTab() *container.TabItem {
	return ui.buildTab(ui.settings.GetHomeURL(), ui.loc.GetText(KeyNewTab))
}

// engineHandlers routes engine events for one tab into the session model and
// the chrome. Events carry the tab ID they were bound to at creation, so a
// late event for a closed tab falls through the model's stale-ID guards.
func (ui *RootUI) engineHandlers(tabID string, view *TabView) engine.Handlers {
	return engine.Handlers{
		URLChanged: func(u string) {
			ui.session.SetURL(tabID, u)
			if ui.isCurrent(tabID) {
				ui.setURLText(u)
			}
		},
		Progress: func(pct int) {
			ui.session.SetProgress(tabID, pct)
			if ui.isCurrent(tabID) {
				ui.refreshProgress()
			}
		},
		TitleChanged: func(title string) {
			ui.session.SetTitle(tabID, title)
			ui.refreshTabLabel(tabID)
		},
		IconChanged: func(iconURL string) {
			go ui.loadTabIcon(tabID, iconURL)
		},
		PageRendered: func(page *engine.Page) {
			view.ShowPage(page)
		},
		LoadFinished: func(ok bool) {
			ui.session.SetLoading(tabID, false)
			tab := ui.session.Get(tabID)
			if tab == nil {
				return // tab closed before the load finished
			}
			if ok {
				ui.recordVisit(tab.URL, tab.Title)
			} else {
				view.ShowMessage(ui.loc.GetText(KeyLoadFailed))
			}
			if ui.isCurrent(tabID) {
				ui.refreshProgress()
			}
		},
		DownloadRequested: func(u, name string) {
			ui.downloads.Request(u, name)
		},
	}
}

// loadTabIcon fetches the favicon and applies it to the tab label.
func (ui *RootUI) loadTabIcon(tabID, iconURL string) {
	resp, err := http.Get(iconURL)
	if err != nil {
		return
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(io.LimitReader(resp.Body, 256<<10))
	if err != nil || len(data) == 0 {
		return
	}

	fyne.Do(func() {
		item, exists := ui.items[tabID]
		if !exists {
			return
		}
		item.Icon = fyne.NewStaticResource(path.Base(iconURL), data)
		ui.tabBar.Refresh()
	})
}

// onTabSelected keeps the session's current tab in sync with the tab bar.
func (ui *RootUI) onTabSelected(item *container.TabItem) {
	if ui.suppressSelect {
		return
	}
	id, exists := ui.itemIDs[item]
	if !exists {
		return
	}
	ui.session.SetCurrent(id)
	ui.refreshChrome()
}

// onTabCloseRequested closes a tab unless it is the last one; the sole
// remaining tab is never closable.
func (ui *RootUI) onTabCloseRequested(item *container.TabItem) {
	if ui.session.Len() <= 1 {
		return
	}
	id, exists := ui.itemIDs[item]
	if !exists {
		return
	}

	if view := ui.views[id]; view != nil && view.engine != nil {
		view.engine.Stop()
	}

	ui.session.Close(id)
	delete(ui.views, id)
	delete(ui.items, id)
	delete(ui.itemIDs, item)

	ui.suppressSelect = true
	ui.tabBar.Remove(item)
	ui.suppressSelect = false

	// The session already picked the successor; mirror it in the tab bar.
	if cur := ui.session.Current(); cur != nil {
		if curItem, exists := ui.items[cur.ID]; exists {
			ui.tabBar.Select(curItem)
		}
	}
	ui.refreshChrome()
}

// onURLSubmitted resolves URL-bar input and navigates or searches.
func (ui *RootUI) onURLSubmitted(text string) {
	ui.hideSuggestions()

	e := ui.currentEngine()
	if e == nil {
		return
	}

	dest := navigate.Resolve(text)
	switch dest.Kind {
	case navigate.DestinationNone:
		return
	case navigate.DestinationURL:
		e.Navigate(dest.Value)
	case navigate.DestinationSearch:
		e.Navigate(navigate.SearchURL(ui.settings.GetSearchTemplate(), dest.Value))
	}
}

// onSearchClicked always treats the URL-bar text as a search query.
func (ui *RootUI) onSearchClicked() {
	query := strings.TrimSpace(ui.urlEntry.Text)
	if query == "" {
		return
	}
	if e := ui.currentEngine(); e != nil {
		ui.hideSuggestions()
		e.Navigate(navigate.SearchURL(ui.settings.GetSearchTemplate(), query))
	}
}

// onNavigateHome points the current tab at the configured home page.
func (ui *RootUI) onNavigateHome() {
	if e := ui.currentEngine(); e != nil {
		e.Navigate(ui.settings.GetHomeURL())
	}
}

// onURLEdited schedules history suggestions while the user types.
func (ui *RootUI) onURLEdited(text string) {
	if ui.suppressURLEvents {
		return
	}
	if ui.suggestTimer != nil {
		ui.suggestTimer.Stop()
	}
	if ui.visits == nil || len(strings.TrimSpace(text)) < SuggestMinLength {
		ui.hideSuggestions()
		return
	}

	query := text
	ui.suggestTimer = time.AfterFunc(SuggestDebounce, func() {
		fyne.Do(func() { ui.showSuggestions(query) })
	})
}

// showSuggestions pops a history-backed completion menu under the URL bar.
func (ui *RootUI) showSuggestions(query string) {
	if query != ui.urlEntry.Text {
		return // user typed past the debounce window
	}

	results, err := ui.visits.Search(strings.TrimSpace(query), SuggestLimit)
	if err != nil {
		ui.log.Warn("history search failed", zap.Error(err))
		return
	}
	if len(results) == 0 {
		ui.hideSuggestions()
		return
	}

	menuItems := make([]*fyne.MenuItem, 0, len(results))
	for _, v := range results {
		v := v
		label := v.URL
		if v.Title != "" {
			label = v.Title + "  ·  " + v.URL
		}
		menuItems = append(menuItems, fyne.NewMenuItem(label, func() {
			ui.setURLText(v.URL)
			ui.onURLSubmitted(v.URL)
		}))
	}

	ui.hideSuggestions()
	ui.suggestPopup = widget.NewPopUpMenu(fyne.NewMenu("", menuItems...), ui.window.Canvas())
	pos := fyne.CurrentApp().Driver().AbsolutePositionForObject(ui.urlEntry)
	ui.suggestPopup.ShowAtPosition(pos.Add(fyne.NewPos(0, ui.urlEntry.Size().Height)))
}

func (ui *RootUI) hideSuggestions() {
	if ui.suggestPopup != nil {
		ui.suggestPopup.Hide()
		ui.suggestPopup = nil
	}
}

// onAddBookmark bookmarks the current page after asking for a name.
func (ui *RootUI) onAddBookmark() {
	cur := ui.session.Current()
	if cur == nil || cur.URL == "" || cur.URL == "about:blank" {
		dialog.ShowInformation(ui.loc.GetText(KeyAddBookmark), ui.loc.GetText(KeyCannotBookmark), ui.window)
		return
	}
	url := cur.URL

	nameEntry := widget.NewEntry()
	nameEntry.SetText(cur.DisplayTitle())

	items := []*widget.FormItem{
		widget.NewFormItem(ui.loc.GetText(KeyBookmarkName), nameEntry),
	}
	dialog.ShowForm(ui.loc.GetText(KeyAddBookmark), ui.loc.GetText(KeySave), ui.loc.GetText(KeyCancel), items, func(confirmed bool) {
		if !confirmed {
			return
		}
		name := strings.TrimSpace(nameEntry.Text)
		if name == "" {
			return
		}
		err := ui.store.Add(name, url)
		switch {
		case errors.Is(err, bookmarks.ErrAlreadyExists):
			dialog.ShowInformation(ui.loc.GetText(KeyAddBookmark), ui.loc.GetText(KeyBookmarkExists), ui.window)
		case err != nil:
			// Store failures are a warning, not a crash; the app stays up.
			ui.log.Warn("failed to add bookmark", zap.Error(err))
			dialog.ShowError(err, ui.window)
		}
	}, ui.window)
}

// onShowBookmarks displays the bookmark manager, reloading from disk.
func (ui *RootUI) onShowBookmarks() {
	if ui.bookmarkDlg == nil {
		ui.bookmarkDlg = NewBookmarkDialog(ui.window, ui.loc, ui.store, ui.log, ui.OpenTab)
	}
	ui.bookmarkDlg.Show()
}

// onShowDownloads displays the downloads panel.
func (ui *RootUI) onShowDownloads() {
	if ui.downloadDlg == nil {
		ui.downloadDlg = NewDownloadsDialog(ui.window, ui.loc, ui.downloads, ui.log)
	}
	ui.downloadDlg.Show()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.loc, func() {
		ui.loc.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.setStatus(ui.loc.GetText(KeySettingsSaved))
	})
}

// onShowAbout shows the about dialog
func (ui *RootUI) onShowAbout() {
	ShowAboutDialog(ui.window, ui.loc)
}

// refreshUITexts updates static UI texts after a language change.
func (ui *RootUI) refreshUITexts() {
	ui.urlEntry.SetPlaceHolder(ui.loc.GetText(KeyEnterURL))
	ui.refreshChrome()
}

// refreshChrome syncs the URL bar, window title, and status bar with the
// current tab.
func (ui *RootUI) refreshChrome() {
	cur := ui.session.Current()
	if cur == nil {
		ui.setURLText("")
		ui.window.SetTitle(ui.loc.GetText(KeyAppTitle))
		ui.setStatus(ui.loc.GetText(KeyNoTabs))
		ui.progressBar.Hide()
		return
	}
	ui.setURLText(cur.URL)
	ui.window.SetTitle(fmt.Sprintf(WindowTitleFormat, ui.loc.GetText(KeyAppTitle), cur.DisplayTitle()))
	ui.refreshProgress()
}

// refreshProgress syncs the status bar with the current tab's load state.
func (ui *RootUI) refreshProgress() {
	cur := ui.session.Current()
	if cur == nil || !cur.Loading {
		ui.progressBar.Hide()
		if cur != nil && cur.URL != "" {
			ui.setStatus(cur.URL)
		} else {
			ui.setStatus(ui.loc.GetText(KeyReady))
		}
		return
	}
	ui.progressBar.SetValue(float64(cur.Progress) / 100)
	ui.progressBar.Show()
	ui.setStatus(fmt.Sprintf(ui.loc.GetText(KeyLoading), cur.Progress))
}

// refreshTabLabel applies the tab's display title to the tab bar and window.
func (ui *RootUI) refreshTabLabel(id string) {
	tab := ui.session.Get(id)
	item, exists := ui.items[id]
	if tab == nil || !exists {
		return
	}
	item.Text = tab.DisplayTitle()
	ui.tabBar.Refresh()
	if ui.isCurrent(id) {
		ui.window.SetTitle(fmt.Sprintf(WindowTitleFormat, ui.loc.GetText(KeyAppTitle), tab.DisplayTitle()))
	}
}

func (ui *RootUI) isCurrent(id string) bool {
	cur := ui.session.Current()
	return cur != nil && cur.ID == id
}

// currentEngine returns the engine behind the current tab, or nil.
func (ui *RootUI) currentEngine() engine.Engine {
	cur := ui.session.Current()
	if cur == nil {
		return nil
	}
	if view := ui.views[cur.ID]; view != nil {
		return view.engine
	}
	return nil
}

// setURLText updates the URL bar without retriggering suggestions.
func (ui *RootUI) setURLText(text string) {
	ui.suppressURLEvents = true
	ui.urlEntry.SetText(text)
	ui.suppressURLEvents = false
}

// recordVisit stores a completed navigation in the history database.
func (ui *RootUI) recordVisit(url, title string) {
	if ui.visits == nil {
		return
	}
	if err := ui.visits.RecordVisit(url, title); err != nil {
		ui.log.Warn("failed to record visit", zap.String("url", url), zap.Error(err))
	}
}

// setStatus displays a message in the status bar.
func (ui *RootUI) setStatus(message string) {
	ui.statusLabel.SetText(message)
}
