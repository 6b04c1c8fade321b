// Package engine defines the contract between the browser shell and the
// embedded page-rendering component, and ships a lightweight preview
// implementation. The shell consumes the Engine interface only; a real
// web-engine binding can be dropped in without touching the session model.
package engine

// Page is the rendered result of a navigation, ready for display.
type Page struct {
	URL     string
	Title   string
	Text    string // extracted readable text of the document
	IconURL string // absolute favicon URL, empty if none advertised
}

// Handlers receive engine events. Every callback is optional. Callbacks are
// delivered one at a time through the engine's dispatch function, so a
// dispatch that hops onto the UI event loop serializes all mutation there.
//
// Events may arrive after the originating tab was closed; consumers must
// tolerate stale IDs.
type Handlers struct {
	URLChanged        func(url string)
	Progress          func(pct int)
	TitleChanged      func(title string)
	IconChanged       func(iconURL string)
	PageRendered      func(page *Page)
	LoadFinished      func(ok bool)
	DownloadRequested func(url, suggestedName string)
}

// Engine is the embedded rendering component behind one tab. Navigation is
// asynchronous: calls return immediately and results surface through
// Handlers.
type Engine interface {
	Navigate(rawURL string)
	Back()
	Forward()
	Reload()
	Stop()
	CurrentURL() string
}

// Dispatch delivers an engine callback. The app passes fyne.Do so callbacks
// land on the UI event loop; tests pass a direct invocation.
type Dispatch func(func())
