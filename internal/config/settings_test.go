package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestHomeURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetHomeURL(); got != DefaultHomeURL {
		t.Errorf("Expected default home URL %s, got %s", DefaultHomeURL, got)
	}

	settings.SetHomeURL("https://example.com/")
	if got := settings.GetHomeURL(); got != "https://example.com/" {
		t.Errorf("Expected custom home URL, got %s", got)
	}
}

func TestSearchTemplate(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetSearchTemplate(); got != DefaultSearchTemplate {
		t.Errorf("Expected default search template %s, got %s", DefaultSearchTemplate, got)
	}

	custom := "https://search.test/?q=%s"
	settings.SetSearchTemplate(custom)
	if got := settings.GetSearchTemplate(); got != custom {
		t.Errorf("Expected template %s, got %s", custom, got)
	}

	// Empty template defaults back
	settings.SetSearchTemplate("")
	if got := settings.GetSearchTemplate(); got != DefaultSearchTemplate {
		t.Errorf("Empty template should default to %s, got %s", DefaultSearchTemplate, got)
	}
}

func TestUserAgent(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetUserAgent(); got != DefaultUserAgent {
		t.Errorf("Expected default user agent, got %s", got)
	}

	settings.SetUserAgent("custom-agent/2.0")
	if got := settings.GetUserAgent(); got != "custom-agent/2.0" {
		t.Errorf("Expected custom user agent, got %s", got)
	}

	settings.SetUserAgent("")
	if got := settings.GetUserAgent(); got != DefaultUserAgent {
		t.Errorf("Empty user agent should default back, got %s", got)
	}
}

func TestDataDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if dir := settings.GetDataDirectory(); dir == "" {
		t.Error("Data directory should not be empty")
	}

	settings.SetDataDirectory("/custom/data")
	if got := settings.GetDataDirectory(); got != "/custom/data" {
		t.Errorf("Expected data directory /custom/data, got %s", got)
	}
}

func TestDownloadDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if dir := settings.GetDownloadDirectory(); dir == "" {
		t.Error("Download directory should not be empty")
	}

	settings.SetDownloadDirectory("/custom/downloads")
	if got := settings.GetDownloadDirectory(); got != "/custom/downloads" {
		t.Errorf("Expected download directory /custom/downloads, got %s", got)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetLanguage(); got != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, got)
	}

	settings.SetLanguage("en")
	if got := settings.GetLanguage(); got != "en" {
		t.Errorf("Expected language 'en', got %s", got)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()
	for _, lang := range []string{"system", "en", "ru"} {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}
}
