package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyNewTab            = "new_tab"
	KeyBack              = "back"
	KeyForward           = "forward"
	KeyReload            = "reload"
	KeyStop              = "stop"
	KeyHome              = "home"
	KeySearch            = "search"
	KeyEnterURL          = "enter_url"
	KeyReady             = "ready"
	KeyLoading           = "loading"
	KeyNoTabs            = "no_tabs"
	KeyAddBookmark       = "add_bookmark"
	KeyBookmarkName      = "bookmark_name"
	KeyBookmarks         = "bookmarks"
	KeyBookmarkExists    = "bookmark_exists"
	KeyCannotBookmark    = "cannot_bookmark"
	KeyDeleteBookmark    = "delete_bookmark"
	KeyDeleteConfirm     = "delete_confirm"
	KeyOpen              = "open"
	KeyDelete            = "delete"
	KeyClose             = "close"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeyDownloads         = "downloads"
	KeyDownloading       = "downloading"
	KeyDownloadComplete  = "download_complete"
	KeyDownloadCancelled = "download_cancelled"
	KeyDownloadFailed    = "download_failed"
	KeyOpenFileQuestion  = "open_file_question"
	KeyNoDownloads       = "no_downloads"
	KeyStatusPending     = "status_pending"
	KeyStatusActive      = "status_active"
	KeyStatusDone        = "status_done"
	KeyStatusCancelled   = "status_cancelled"
	KeyStatusFailed      = "status_failed"
	KeySettings          = "settings"
	KeySettingsSaved     = "settings_saved"
	KeyHomeURL           = "home_url"
	KeySearchTemplate    = "search_template"
	KeyUserAgent         = "user_agent"
	KeyDownloadDirectory = "download_directory"
	KeyLanguage          = "language"
	KeyAbout             = "about"
	KeyLoadFailed        = "load_failed"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetCurrentLanguage returns the active language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Mariner",
		KeyNewTab:            "New Tab",
		KeyBack:              "Back",
		KeyForward:           "Forward",
		KeyReload:            "Reload",
		KeyStop:              "Stop",
		KeyHome:              "Home",
		KeySearch:            "Search",
		KeyEnterURL:          "Enter address or search",
		KeyReady:             "Ready",
		KeyLoading:           "Loading... %d%%",
		KeyNoTabs:            "No tabs open. Open a new tab.",
		KeyAddBookmark:       "Add Bookmark",
		KeyBookmarkName:      "Enter a name for this bookmark:",
		KeyBookmarks:         "Bookmarks",
		KeyBookmarkExists:    "This URL is already bookmarked.",
		KeyCannotBookmark:    "Cannot add a bookmark for a blank or invalid page.",
		KeyDeleteBookmark:    "Delete Bookmark",
		KeyDeleteConfirm:     "Are you sure you want to delete this bookmark?",
		KeyOpen:              "Open",
		KeyDelete:            "Delete",
		KeyClose:             "Close",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeyDownloads:         "Downloads",
		KeyDownloading:       "Downloading: %s",
		KeyDownloadComplete:  "Download complete: %s",
		KeyDownloadCancelled: "Download cancelled: %s",
		KeyDownloadFailed:    "Download failed: %s",
		KeyOpenFileQuestion:  "'%s' downloaded to:\n%s\n\nDo you want to open it?",
		KeyNoDownloads:       "No downloads yet",
		KeyStatusPending:     "Waiting for save location...",
		KeyStatusActive:      "Downloading",
		KeyStatusDone:        "Completed",
		KeyStatusCancelled:   "Cancelled",
		KeyStatusFailed:      "Failed: %s",
		KeySettings:          "Settings",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyHomeURL:           "Home page:",
		KeySearchTemplate:    "Search engine template:",
		KeyUserAgent:         "User agent:",
		KeyDownloadDirectory: "Download directory:",
		KeyLanguage:          "Language",
		KeyAbout:             "About",
		KeyLoadFailed:        "Failed to load page",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Mariner",
		KeyNewTab:            "Новая вкладка",
		KeyBack:              "Назад",
		KeyForward:           "Вперёд",
		KeyReload:            "Обновить",
		KeyStop:              "Стоп",
		KeyHome:              "Домой",
		KeySearch:            "Поиск",
		KeyEnterURL:          "Введите адрес или запрос",
		KeyReady:             "Готово",
		KeyLoading:           "Загрузка... %d%%",
		KeyNoTabs:            "Нет открытых вкладок.",
		KeyAddBookmark:       "Добавить закладку",
		KeyBookmarkName:      "Введите имя закладки:",
		KeyBookmarks:         "Закладки",
		KeyBookmarkExists:    "Этот адрес уже в закладках.",
		KeyCannotBookmark:    "Нельзя добавить закладку для пустой страницы.",
		KeyDeleteBookmark:    "Удалить закладку",
		KeyDeleteConfirm:     "Удалить эту закладку?",
		KeyOpen:              "Открыть",
		KeyDelete:            "Удалить",
		KeyClose:             "Закрыть",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeyDownloads:         "Загрузки",
		KeyDownloading:       "Загрузка: %s",
		KeyDownloadComplete:  "Загрузка завершена: %s",
		KeyDownloadCancelled: "Загрузка отменена: %s",
		KeyDownloadFailed:    "Ошибка загрузки: %s",
		KeyOpenFileQuestion:  "'%s' сохранён в:\n%s\n\nОткрыть файл?",
		KeyNoDownloads:       "Пока нет загрузок",
		KeyStatusPending:     "Ожидание выбора места...",
		KeyStatusActive:      "Загрузка",
		KeyStatusDone:        "Завершено",
		KeyStatusCancelled:   "Отменено",
		KeyStatusFailed:      "Ошибка: %s",
		KeySettings:          "Настройки",
		KeySettingsSaved:     "Настройки сохранены!",
		KeyHomeURL:           "Домашняя страница:",
		KeySearchTemplate:    "Шаблон поисковой системы:",
		KeyUserAgent:         "User agent:",
		KeyDownloadDirectory: "Папка загрузок:",
		KeyLanguage:          "Язык",
		KeyAbout:             "О программе",
		KeyLoadFailed:        "Не удалось загрузить страницу",
	}
}

// GetAvailableLanguages returns display names by language code
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
	}
}
