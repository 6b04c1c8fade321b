package ui

import (
	"fmt"
	"runtime"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

const appVersion = "1.0.0"

// ShowAboutDialog displays application version and environment information.
func ShowAboutDialog(window fyne.Window, loc *Localization) {
	info := fmt.Sprintf(
		"%s %s\n\n%s\n%s/%s\n\n%s",
		loc.GetText(KeyAppTitle),
		appVersion,
		runtime.Version(),
		runtime.GOOS,
		runtime.GOARCH,
		time.Now().Format("2006-01-02 15:04"),
	)
	dialog.ShowInformation(loc.GetText(KeyAbout), info, window)
}
