package config

import (
	"fyne.io/fyne/v2"

	"github.com/mariner-browser/mariner/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyHomeURL        = "home_url"
	KeySearchTemplate = "search_template"
	KeyUserAgent      = "user_agent"
	KeyDataDir        = "data_directory"
	KeyDownloadDir    = "download_directory"
	KeyLanguage       = "app_language"
)

// Default values
const (
	// DefaultHomeURL is the home and new-tab destination.
	DefaultHomeURL = "https://duckduckgo.com/"

	// DefaultSearchTemplate takes one percent-encoded query parameter.
	DefaultSearchTemplate = "https://duckduckgo.com/?q=%s"

	// DefaultUserAgent identifies as a mainstream browser so sites do not
	// serve degraded pages to an unrecognized client.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/108.0.0.0 Safari/537.36 Mariner/1.0"

	DefaultLanguage = "system"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetHomeURL returns the home / new-tab destination
func (s *Settings) GetHomeURL() string {
	url := s.app.Preferences().String(KeyHomeURL)
	if url == "" {
		s.SetHomeURL(DefaultHomeURL)
		return DefaultHomeURL
	}
	return url
}

// SetHomeURL sets the home / new-tab destination
func (s *Settings) SetHomeURL(url string) {
	s.app.Preferences().SetString(KeyHomeURL, url)
}

// GetSearchTemplate returns the search-engine URL pattern
func (s *Settings) GetSearchTemplate() string {
	template := s.app.Preferences().String(KeySearchTemplate)
	if template == "" {
		s.SetSearchTemplate(DefaultSearchTemplate)
		return DefaultSearchTemplate
	}
	return template
}

// SetSearchTemplate sets the search-engine URL pattern
func (s *Settings) SetSearchTemplate(template string) {
	if template == "" {
		template = DefaultSearchTemplate
	}
	s.app.Preferences().SetString(KeySearchTemplate, template)
}

// GetUserAgent returns the user-agent string sent with outgoing requests
func (s *Settings) GetUserAgent() string {
	ua := s.app.Preferences().String(KeyUserAgent)
	if ua == "" {
		s.SetUserAgent(DefaultUserAgent)
		return DefaultUserAgent
	}
	return ua
}

// SetUserAgent sets the user-agent string
func (s *Settings) SetUserAgent(ua string) {
	if ua == "" {
		ua = DefaultUserAgent
	}
	s.app.Preferences().SetString(KeyUserAgent, ua)
}

// GetDataDirectory returns the directory holding bookmarks and history
func (s *Settings) GetDataDirectory() string {
	dir := s.app.Preferences().String(KeyDataDir)
	if dir == "" {
		defaultDir, err := platform.DefaultDataDir()
		if err != nil {
			defaultDir = "/tmp/mariner"
		}
		s.SetDataDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDataDirectory sets the application data directory
func (s *Settings) SetDataDirectory(dir string) {
	s.app.Preferences().SetString(KeyDataDir, dir)
}

// GetDownloadDirectory returns the default directory offered for downloads
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = "/tmp/downloads"
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
	}
}
