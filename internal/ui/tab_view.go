package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/mariner-browser/mariner/internal/engine"
)

// TabView is the content area of one tab: the engine's rendered page. The
// engine reference is assigned right after construction, once the event
// handlers (which need the view) exist.
type TabView struct {
	id     string
	engine engine.Engine

	heading *widget.Label
	body    *widget.Label
	scroll  *container.Scroll
	root    fyne.CanvasObject
}

// NewTabView creates the content area for the tab with the given session ID.
func NewTabView(id string) *TabView {
	v := &TabView{id: id}

	v.heading = widget.NewLabel("")
	v.heading.TextStyle = fyne.TextStyle{Bold: true}
	v.heading.Wrapping = fyne.TextWrapWord

	v.body = widget.NewLabel("")
	v.body.Wrapping = fyne.TextWrapWord

	v.scroll = container.NewScroll(container.NewVBox(v.heading, widget.NewSeparator(), v.body))
	v.root = v.scroll
	return v
}

// Content returns the displayable widget tree of this tab.
func (v *TabView) Content() fyne.CanvasObject {
	return v.root
}

// ShowPage renders an engine page into the view.
func (v *TabView) ShowPage(page *engine.Page) {
	title := page.Title
	if title == "" {
		title = page.URL
	}
	v.heading.SetText(title)
	v.body.SetText(page.Text)
	v.scroll.ScrollToTop()
}

// ShowMessage replaces the page content with a status message, used for
// blank tabs and load failures.
func (v *TabView) ShowMessage(msg string) {
	v.heading.SetText("")
	v.body.SetText(msg)
}
