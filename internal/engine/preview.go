package engine

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/url"
	"path"
	"strings"
	"sync"
	"time"
)

// Preview limits and defaults
const (
	DefaultFetchTimeout = 30 * time.Second
	DefaultMaxBodyBytes = 4 << 20 // pages beyond this are truncated, not failed
)

// Options configures a Preview engine.
type Options struct {
	UserAgent    string
	Client       *http.Client // nil uses a client with DefaultFetchTimeout
	Dispatch     Dispatch     // nil dispatches inline
	MaxBodyBytes int64
}

// Preview is a text-mode rendering engine: it fetches a page over HTTP,
// extracts the title, favicon, and readable text, and reports everything the
// shell needs through Handlers. Content it cannot render is surfaced as a
// download request. One Preview backs exactly one tab.
type Preview struct {
	client   *http.Client
	ua       string
	dispatch Dispatch
	handlers Handlers
	maxBody  int64

	mu     sync.Mutex
	cancel context.CancelFunc
	stack  []string // visited URLs for back/forward
	pos    int      // index of the current entry, -1 while blank
	gen    uint64   // navigation generation, guards late fetch results
}

// NewPreview creates a preview engine delivering events to the given
// handlers.
func NewPreview(handlers Handlers, opts Options) *Preview {
	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: DefaultFetchTimeout}
	}
	dispatch := opts.Dispatch
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}
	maxBody := opts.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}
	return &Preview{
		client:   client,
		ua:       opts.UserAgent,
		dispatch: dispatch,
		handlers: handlers,
		maxBody:  maxBody,
		pos:      -1,
	}
}

// Navigate loads the URL in place of any navigation in progress. Forward
// history past the current position is discarded.
func (p *Preview) Navigate(rawURL string) {
	p.mu.Lock()
	p.stack = append(p.stack[:p.pos+1], rawURL)
	p.pos = len(p.stack) - 1
	p.mu.Unlock()

	p.startFetch(rawURL)
}

// Back navigates one step back in this tab's history, if any.
func (p *Preview) Back() {
	p.mu.Lock()
	if p.pos <= 0 {
		p.mu.Unlock()
		return
	}
	p.pos--
	target := p.stack[p.pos]
	p.mu.Unlock()

	p.startFetch(target)
}

// Forward navigates one step forward in this tab's history, if any.
func (p *Preview) Forward() {
	p.mu.Lock()
	if p.pos < 0 || p.pos >= len(p.stack)-1 {
		p.mu.Unlock()
		return
	}
	p.pos++
	target := p.stack[p.pos]
	p.mu.Unlock()

	p.startFetch(target)
}

// Reload fetches the current URL again.
func (p *Preview) Reload() {
	if target := p.CurrentURL(); target != "" {
		p.startFetch(target)
	}
}

// Stop interrupts a navigation in progress. The tab leaves its loading state
// without an error being reported.
func (p *Preview) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// CurrentURL returns the URL of the current history entry, or "" while blank.
func (p *Preview) CurrentURL() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pos < 0 {
		return ""
	}
	return p.stack[p.pos]
}

// startFetch cancels any in-flight navigation and fetches the target in the
// background.
func (p *Preview) startFetch(target string) {
	ctx, cancel := context.WithCancel(context.Background())

	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
	}
	p.cancel = cancel
	p.gen++
	gen := p.gen
	p.mu.Unlock()

	go p.fetch(ctx, gen, target)
}

func (p *Preview) fetch(ctx context.Context, gen uint64, target string) {
	p.emit(gen, func(h Handlers) {
		if h.URLChanged != nil {
			h.URLChanged(target)
		}
		if h.Progress != nil {
			h.Progress(0)
		}
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		p.finish(gen, false)
		return
	}
	if p.ua != "" {
		req.Header.Set("User-Agent", p.ua)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || ctx.Err() != nil {
			// Stopped by the user: clear the loading state, report nothing.
			p.emit(gen, func(h Handlers) {
				if h.Progress != nil {
					h.Progress(100)
				}
			})
			return
		}
		p.finish(gen, false)
		return
	}
	defer resp.Body.Close()

	p.emit(gen, func(h Handlers) {
		if h.Progress != nil {
			h.Progress(30)
		}
	})

	if !renderable(resp.Header.Get("Content-Type")) {
		name := suggestedFilename(resp, target)
		p.emit(gen, func(h Handlers) {
			if h.DownloadRequested != nil {
				h.DownloadRequested(target, name)
			}
		})
		p.finish(gen, true)
		return
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, p.maxBody))
	if err != nil {
		if errors.Is(err, context.Canceled) || ctx.Err() != nil {
			p.emit(gen, func(h Handlers) {
				if h.Progress != nil {
					h.Progress(100)
				}
			})
			return
		}
		p.finish(gen, false)
		return
	}

	p.emit(gen, func(h Handlers) {
		if h.Progress != nil {
			h.Progress(70)
		}
	})

	// resp.Request.URL reflects any redirects the client followed.
	finalURL := target
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	page := parsePage(finalURL, strings.NewReader(string(body)))

	p.emit(gen, func(h Handlers) {
		if finalURL != target && h.URLChanged != nil {
			h.URLChanged(finalURL)
		}
		if h.TitleChanged != nil {
			h.TitleChanged(page.Title)
		}
		if page.IconURL != "" && h.IconChanged != nil {
			h.IconChanged(page.IconURL)
		}
		if h.PageRendered != nil {
			h.PageRendered(page)
		}
	})
	p.finish(gen, true)
}

// finish reports terminal progress and load completion for one navigation.
func (p *Preview) finish(gen uint64, ok bool) {
	p.emit(gen, func(h Handlers) {
		if h.Progress != nil {
			h.Progress(100)
		}
		if h.LoadFinished != nil {
			h.LoadFinished(ok)
		}
	})
}

// emit delivers events through the dispatch function unless a newer
// navigation superseded this one.
func (p *Preview) emit(gen uint64, fn func(Handlers)) {
	p.mu.Lock()
	stale := gen != p.gen
	p.mu.Unlock()
	if stale {
		return
	}
	p.dispatch(func() { fn(p.handlers) })
}

// renderable reports whether the preview can display the content type
// inline. Everything else becomes a download request.
func renderable(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		// Servers that send no content type usually serve markup.
		return contentType == ""
	}
	return strings.HasPrefix(mt, "text/") || mt == "application/xhtml+xml"
}

// suggestedFilename picks a download filename from the Content-Disposition
// header or the URL path.
func suggestedFilename(resp *http.Response, rawURL string) string {
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil {
			if name := params["filename"]; name != "" {
				return path.Base(name)
			}
		}
	}
	if u, err := url.Parse(rawURL); err == nil {
		if base := path.Base(u.Path); base != "." && base != "/" {
			return base
		}
	}
	return "download"
}
