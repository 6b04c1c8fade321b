package ui

// Package ui contains the Fyne-based desktop shell of the browser. It wires
// engine events into the tab/session model, renders tabs, the URL bar, the
// status bar, and the bookmark/download/settings dialogs. All UI strings are
// localized via Localization.
