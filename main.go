package main

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/mariner-browser/mariner/internal/bookmarks"
	"github.com/mariner-browser/mariner/internal/config"
	"github.com/mariner-browser/mariner/internal/download"
	"github.com/mariner-browser/mariner/internal/history"
	"github.com/mariner-browser/mariner/internal/logging"
	"github.com/mariner-browser/mariner/internal/platform"
	"github.com/mariner-browser/mariner/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.mariner-browser.mariner"
	AppName = "Mariner"

	WindowWidth  = 1024
	WindowHeight = 768
)

func main() {
	log, err := logging.New(version == "dev")
	if err != nil {
		fmt.Printf("failed to init logger: %v\n", err)
		return
	}
	defer log.Sync()

	log.Info("starting", zap.String("app", AppName), zap.String("version", version))

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewDarkTheme())

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	settings := config.NewSettings(myApp)

	dataDir := settings.GetDataDirectory()
	if err := platform.CreateDirectoryIfNotExists(dataDir); err != nil {
		log.Warn("failed to ensure data dir", zap.String("dir", dataDir), zap.Error(err))
	}

	bookmarkStore := bookmarks.NewStore(filepath.Join(dataDir, bookmarks.DefaultFileName))

	// History is a convenience; the browser works without it.
	visits, err := history.NewStore(filepath.Join(dataDir, history.DefaultFileName))
	if err != nil {
		log.Warn("history unavailable", zap.Error(err))
		visits = nil
	} else {
		defer visits.Close()
	}

	downloadSvc := download.NewService(nil, settings.GetUserAgent())

	ui.NewRootUI(myWindow, myApp, downloadSvc, bookmarkStore, visits, log)

	myWindow.ShowAndRun()
}
