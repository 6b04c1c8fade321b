package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/mariner-browser/mariner/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings *config.Settings
	loc      *Localization
	window   fyne.Window
	dialog   *dialog.ConfirmDialog
	onSaved  func()

	// UI components
	homeURLEntry        *widget.Entry
	searchTemplateEntry *widget.Entry
	userAgentEntry      *widget.Entry
	downloadDirEntry    *widget.Entry
	languageSelect      *widget.Select
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// values have been persisted.
func NewSettingsDialog(window fyne.Window, settings *config.Settings, loc *Localization, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		loc:      loc,
		window:   window,
		onSaved:  onSaved,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog builds the dialog and displays it immediately.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, loc *Localization, onSaved func()) {
	NewSettingsDialog(window, settings, loc, onSaved).Show()
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.homeURLEntry = widget.NewEntry()
	sd.homeURLEntry.SetPlaceHolder(config.DefaultHomeURL)

	sd.searchTemplateEntry = widget.NewEntry()
	sd.searchTemplateEntry.SetPlaceHolder(config.DefaultSearchTemplate)

	sd.userAgentEntry = widget.NewEntry()

	sd.downloadDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(sd.loc.GetText(KeyBrowse), sd.onBrowseDirectory)
	downloadDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.downloadDirEntry)

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(sd.loc.GetText(KeyHomeURL)),
		sd.homeURLEntry,

		widget.NewLabel(sd.loc.GetText(KeySearchTemplate)),
		sd.searchTemplateEntry,

		widget.NewLabel(sd.loc.GetText(KeyUserAgent)),
		sd.userAgentEntry,

		widget.NewLabel(sd.loc.GetText(KeyDownloadDirectory)),
		downloadDirRow,

		widget.NewSeparator(),

		widget.NewLabel(sd.loc.GetText(KeyLanguage)),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.loc.GetText(KeySettings),
		sd.loc.GetText(KeySave),
		sd.loc.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(500, 420))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.homeURLEntry.SetText(sd.settings.GetHomeURL())
	sd.searchTemplateEntry.SetText(sd.settings.GetSearchTemplate())
	sd.userAgentEntry.SetText(sd.settings.GetUserAgent())
	sd.downloadDirEntry.SetText(sd.settings.GetDownloadDirectory())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.downloadDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.homeURLEntry.Text != "" {
		sd.settings.SetHomeURL(sd.homeURLEntry.Text)
	}

	// Empty values fall back to the built-in defaults inside the setters.
	sd.settings.SetSearchTemplate(sd.searchTemplateEntry.Text)
	sd.settings.SetUserAgent(sd.userAgentEntry.Text)

	if sd.downloadDirEntry.Text != "" {
		sd.settings.SetDownloadDirectory(sd.downloadDirEntry.Text)
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(sd.loc.GetText(KeySettings), sd.loc.GetText(KeySettingsSaved), sd.window)
}
