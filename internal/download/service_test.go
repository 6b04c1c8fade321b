package download

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mariner-browser/mariner/internal/model"
)

// autoAccept responds to every prompt with a path inside dir.
func autoAccept(dir string) PathPrompt {
	return func(d *model.Download, respond func(string)) {
		respond(filepath.Join(dir, d.DisplayName()))
	}
}

func waitDone(t *testing.T, done chan *model.Download) *model.Download {
	t.Helper()
	select {
	case d := <-done:
		return d
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for terminal download state")
		return nil
	}
}

func assertNoMoreDone(t *testing.T, done chan *model.Download) {
	t.Helper()
	select {
	case d := <-done:
		t.Errorf("terminal state reported more than once: %s", d.Status)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestService_CompletedDownload(t *testing.T) {
	payload := []byte("file contents for the download test")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Write(payload)
	}))
	defer srv.Close()

	dir := t.TempDir()
	done := make(chan *model.Download, 4)

	s := NewService(nil, "mariner-test")
	s.SetPathPrompt(autoAccept(dir))
	s.SetDoneCallback(func(d *model.Download) { done <- d })

	d := s.Request(srv.URL+"/data.bin", "data.bin")

	got := waitDone(t, done)
	if got.Status != model.DownloadCompleted {
		t.Fatalf("status = %s, expected Completed (err: %s)", got.Status, got.LastError)
	}
	if got.ID != d.ID {
		t.Errorf("done callback carried a different download")
	}

	written, err := os.ReadFile(filepath.Join(dir, "data.bin"))
	if err != nil {
		t.Fatalf("downloaded file missing: %v", err)
	}
	if string(written) != string(payload) {
		t.Errorf("downloaded content mismatch")
	}
	if got.Received != int64(len(payload)) {
		t.Errorf("Received = %d, expected %d", got.Received, len(payload))
	}

	assertNoMoreDone(t, done)
}

func TestService_DeclinedPromptCancels(t *testing.T) {
	done := make(chan *model.Download, 4)

	s := NewService(nil, "")
	s.SetPathPrompt(func(d *model.Download, respond func(string)) {
		respond("") // user dismissed the save dialog
	})
	s.SetDoneCallback(func(d *model.Download) { done <- d })

	s.Request("https://irrelevant.test/file", "file")

	got := waitDone(t, done)
	if got.Status != model.DownloadCancelled {
		t.Errorf("status = %s, expected Cancelled", got.Status)
	}
	if got.LastError != "" {
		t.Errorf("a user-declined download is not an error, got %q", got.LastError)
	}

	assertNoMoreDone(t, done)
}

func TestService_NoPromptCancels(t *testing.T) {
	done := make(chan *model.Download, 4)

	s := NewService(nil, "")
	s.SetDoneCallback(func(d *model.Download) { done <- d })

	s.Request("https://irrelevant.test/file", "file")

	if got := waitDone(t, done); got.Status != model.DownloadCancelled {
		t.Errorf("status = %s, expected Cancelled", got.Status)
	}
}

func TestService_TruncatedTransferFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Length", "1000")
		w.Write([]byte("short"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	done := make(chan *model.Download, 4)

	s := NewService(nil, "")
	s.SetPathPrompt(autoAccept(dir))
	s.SetDoneCallback(func(d *model.Download) { done <- d })

	s.Request(srv.URL+"/broken.bin", "broken.bin")

	got := waitDone(t, done)
	if got.Status != model.DownloadFailed {
		t.Fatalf("status = %s, expected Failed", got.Status)
	}
	if got.LastError == "" {
		t.Error("failed download should carry an error message")
	}
	if _, err := os.Stat(filepath.Join(dir, "broken.bin")); !os.IsNotExist(err) {
		t.Error("partial file should have been removed")
	}

	assertNoMoreDone(t, done)
}

func TestService_BadStatusFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		http.NotFound(w, req)
	}))
	defer srv.Close()

	dir := t.TempDir()
	done := make(chan *model.Download, 4)

	s := NewService(nil, "")
	s.SetPathPrompt(autoAccept(dir))
	s.SetDoneCallback(func(d *model.Download) { done <- d })

	s.Request(srv.URL+"/missing.bin", "missing.bin")

	if got := waitDone(t, done); got.Status != model.DownloadFailed {
		t.Errorf("status = %s, expected Failed", got.Status)
	}
}

func TestService_CancelActiveTransfer(t *testing.T) {
	started := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Length", "1000000")
		w.Write([]byte("begin"))
		if f, ok := w.(http.Flusher); ok {
			f.Flush()
		}
		close(started)
		<-req.Context().Done()
	}))
	defer srv.Close()

	dir := t.TempDir()
	done := make(chan *model.Download, 4)

	s := NewService(nil, "")
	s.SetPathPrompt(autoAccept(dir))
	s.SetDoneCallback(func(d *model.Download) { done <- d })

	d := s.Request(srv.URL+"/big.bin", "big.bin")

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("transfer never started")
	}

	if err := s.Cancel(d.ID); err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}

	got := waitDone(t, done)
	if got.Status != model.DownloadCancelled {
		t.Fatalf("status = %s, expected Cancelled", got.Status)
	}
	if _, err := os.Stat(filepath.Join(dir, "big.bin")); !os.IsNotExist(err) {
		t.Error("cancelled transfer should not leave a partial file")
	}

	assertNoMoreDone(t, done)
}

func TestService_AllKeepsRequestOrder(t *testing.T) {
	s := NewService(nil, "")
	// No prompt: requests are cancelled immediately, which is fine here.
	first := s.Request("https://a.test/1", "one")
	second := s.Request("https://b.test/2", "two")

	all := s.All()
	if len(all) != 2 || all[0].ID != first.ID || all[1].ID != second.ID {
		t.Errorf("All() should keep request order")
	}
}
