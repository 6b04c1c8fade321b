package download

import (
	"github.com/mariner-browser/mariner/internal/model"
)

// PathPrompt asks the user where to save a pending download. Implementations
// call respond exactly once, with an empty path when the user declines. The
// response may arrive later; it does not have to be synchronous.
type PathPrompt func(d *model.Download, respond func(path string))

// Manager defines the interface for the download service.
type Manager interface {
	SetUpdateCallback(func(*model.Download))
	SetDoneCallback(func(*model.Download))
	SetPathPrompt(PathPrompt)
	Request(url, suggestedName string) *model.Download
	Cancel(id string) error
	Get(id string) (*model.Download, bool)
	All() []*model.Download
}
