package ui

import "testing"

func TestLocalizationFallbacks(t *testing.T) {
	tests := []struct {
		name     string
		language string
		key      string
		expected string
	}{
		{"english text", "en", KeyReady, "Ready"},
		{"russian text", "ru", KeyReady, "Готово"},
		{"system maps to english", "system", KeyNewTab, "New Tab"},
		{"unknown language keeps current", "de", KeyReady, "Ready"},
		{"unknown key returns key", "en", "no_such_key", "no_such_key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLocalization()
			l.SetLanguage(tt.language)
			if got := l.GetText(tt.key); got != tt.expected {
				t.Errorf("GetText(%q) = %q, want %q", tt.key, got, tt.expected)
			}
		})
	}
}

func TestLocalizationLanguageSwitch(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("ru")
	if l.GetCurrentLanguage() != "ru" {
		t.Fatalf("expected current language ru, got %s", l.GetCurrentLanguage())
	}

	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("unknown language should not change current, got %s", l.GetCurrentLanguage())
	}
}

func TestLocalizationCoversAllKeysInBothLanguages(t *testing.T) {
	l := NewLocalization()
	en := l.texts["en"]
	ru := l.texts["ru"]

	for key := range en {
		if _, ok := ru[key]; !ok {
			t.Errorf("key %q missing from ru translations", key)
		}
	}
	for key := range ru {
		if _, ok := en[key]; !ok {
			t.Errorf("key %q missing from en translations", key)
		}
	}
}
