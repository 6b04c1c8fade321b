package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mariner-browser/mariner/internal/model"
)

// progressNotifyInterval throttles per-chunk UI updates during a transfer.
const progressNotifyInterval = 100 * time.Millisecond

// Service handles download requests from the rendering engine.
type Service struct {
	mu        sync.RWMutex
	downloads map[string]*model.Download
	order     []string
	cancels   map[string]context.CancelFunc

	client    *http.Client
	userAgent string

	onUpdate   func(*model.Download) // progress and state changes
	onDone     func(*model.Download) // exactly once per terminal state
	promptPath PathPrompt
}

// NewService creates a download service. A nil client uses a default one
// without a timeout; transfer duration is bounded by the user, not a clock.
func NewService(client *http.Client, userAgent string) *Service {
	if client == nil {
		client = &http.Client{}
	}
	return &Service{
		downloads: make(map[string]*model.Download),
		cancels:   make(map[string]context.CancelFunc),
		client:    client,
		userAgent: userAgent,
	}
}

// SetUpdateCallback sets the callback for download progress updates.
func (s *Service) SetUpdateCallback(callback func(*model.Download)) {
	s.onUpdate = callback
}

// SetDoneCallback sets the callback fired once per terminal download.
func (s *Service) SetDoneCallback(callback func(*model.Download)) {
	s.onDone = callback
}

// SetPathPrompt sets the save-location prompt. Without one, every request is
// cancelled immediately.
func (s *Service) SetPathPrompt(prompt PathPrompt) {
	s.promptPath = prompt
}

// Request registers a pending download and asks the user for a save path.
// An empty response cancels; a path accepts and starts the transfer.
func (s *Service) Request(url, suggestedName string) *model.Download {
	d := &model.Download{
		ID:            uuid.NewString(),
		URL:           url,
		SuggestedName: suggestedName,
		Status:        model.DownloadPending,
		Total:         -1,
		StartedAt:     time.Now(),
	}

	s.mu.Lock()
	s.downloads[d.ID] = d
	s.order = append(s.order, d.ID)
	s.mu.Unlock()
	s.notifyUpdate(d)

	if s.promptPath == nil {
		s.finish(d.ID, model.DownloadCancelled, nil)
		return d
	}

	var once sync.Once
	s.promptPath(d, func(path string) {
		once.Do(func() {
			if path == "" {
				s.finish(d.ID, model.DownloadCancelled, nil)
				return
			}
			s.accept(d.ID, path)
		})
	})
	return d
}

// Cancel aborts a download. Pending downloads are cancelled directly; an
// accepted transfer is interrupted and winds down as Cancelled.
func (s *Service) Cancel(id string) error {
	s.mu.Lock()
	d, exists := s.downloads[id]
	if !exists {
		s.mu.Unlock()
		return fmt.Errorf("download not found: %s", id)
	}
	if d.Status.IsTerminal() {
		s.mu.Unlock()
		return nil
	}
	pending := d.Status == model.DownloadPending
	cancel := s.cancels[id]
	s.mu.Unlock()

	if pending {
		s.finish(id, model.DownloadCancelled, nil)
		return nil
	}
	if cancel != nil {
		cancel()
	}
	return nil
}

// Get returns a download by ID.
func (s *Service) Get(id string) (*model.Download, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, exists := s.downloads[id]
	return d, exists
}

// All returns every download in request order.
func (s *Service) All() []*model.Download {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Download, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.downloads[id])
	}
	return out
}

// accept records the chosen path and starts the transfer.
func (s *Service) accept(id, path string) {
	s.mu.Lock()
	d, exists := s.downloads[id]
	if !exists || d.Status != model.DownloadPending {
		s.mu.Unlock()
		return
	}
	d.TargetPath = path
	d.Status = model.DownloadAccepted

	ctx, cancel := context.WithCancel(context.Background())
	s.cancels[id] = cancel
	s.mu.Unlock()

	s.notifyUpdate(d)
	go s.run(ctx, id)
}

// run performs the HTTP transfer for an accepted download.
func (s *Service) run(ctx context.Context, id string) {
	s.mu.RLock()
	d := s.downloads[id]
	url, target := d.URL, d.TargetPath
	s.mu.RUnlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		s.finish(id, model.DownloadFailed, err)
		return
	}
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.finish(id, s.terminalFor(ctx), err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.finish(id, model.DownloadFailed, fmt.Errorf("server returned %s", resp.Status))
		return
	}

	s.mu.Lock()
	d.Total = resp.ContentLength
	s.mu.Unlock()
	s.notifyUpdate(d)

	out, err := os.Create(target)
	if err != nil {
		s.finish(id, model.DownloadFailed, err)
		return
	}

	err = s.copyWithProgress(out, resp.Body, d)
	closeErr := out.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(target) // partial files are not kept
		s.finish(id, s.terminalFor(ctx), err)
		return
	}

	s.finish(id, model.DownloadCompleted, nil)
}

// copyWithProgress streams body to out, updating the download's byte counter
// and notifying the UI at a bounded rate.
func (s *Service) copyWithProgress(out io.Writer, body io.Reader, d *model.Download) error {
	buf := make([]byte, 32*1024)
	lastNotify := time.Time{}

	for {
		n, err := body.Read(buf)
		if n > 0 {
			if _, werr := out.Write(buf[:n]); werr != nil {
				return werr
			}
			s.mu.Lock()
			d.Received += int64(n)
			s.mu.Unlock()

			if time.Since(lastNotify) >= progressNotifyInterval {
				lastNotify = time.Now()
				s.notifyUpdate(d)
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// terminalFor maps an aborted context to Cancelled and everything else to
// Failed.
func (s *Service) terminalFor(ctx context.Context) model.DownloadStatus {
	if ctx.Err() != nil {
		return model.DownloadCancelled
	}
	return model.DownloadFailed
}

// finish moves a download to a terminal state. The first terminal transition
// wins; any later one is ignored, which keeps the one-notification guarantee.
func (s *Service) finish(id string, status model.DownloadStatus, cause error) {
	s.mu.Lock()
	d, exists := s.downloads[id]
	if !exists || d.Status.IsTerminal() {
		s.mu.Unlock()
		return
	}
	d.Status = status
	d.FinishedAt = time.Now()
	if cause != nil && status == model.DownloadFailed {
		d.LastError = cause.Error()
	}
	if cancel, ok := s.cancels[id]; ok {
		delete(s.cancels, id)
		defer cancel()
	}
	s.mu.Unlock()

	s.notifyUpdate(d)
	if s.onDone != nil {
		s.onDone(d)
	}
}

// notifyUpdate calls the update callback if set.
func (s *Service) notifyUpdate(d *model.Download) {
	if s.onUpdate != nil {
		s.onUpdate(d)
	}
}
