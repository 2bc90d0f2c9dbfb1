// Package fonts manages the Fira Math font required by the quill typst
// package for rendering gate symbols.
//
// The font is downloaded on first use and cached on disk, so subsequent
// renders work offline. The cache directory is passed to the typst binary
// via --font-path.
package fonts

import (
	"context"
	"os"
	"path/filepath"

	qerrors "github.com/qcdraw/qcdraw/pkg/errors"
	"github.com/qcdraw/qcdraw/pkg/httputil"
)

// DefaultURL is the CTAN mirror serving the Fira Math OpenType file.
const DefaultURL = "https://mirror.clientvps.com/CTAN/fonts/firamath/FiraMath-Regular.otf"

const fontFilename = "FiraMath-Regular.otf"

// Manager downloads and caches the Fira Math font.
type Manager struct {
	// Dir is the directory holding the cached font file.
	Dir string

	// URL is the download location. Defaults to [DefaultURL].
	URL string
}

// NewManager creates a font manager caching into dir.
// If dir is empty, a per-user default under the OS cache directory is used.
func NewManager(dir string) *Manager {
	if dir == "" {
		if base, err := os.UserCacheDir(); err == nil {
			dir = filepath.Join(base, "qcdraw", "fonts")
		} else {
			dir = filepath.Join(".qcdraw", "fonts")
		}
	}
	return &Manager{Dir: dir, URL: DefaultURL}
}

// Ensure makes sure the font file exists locally, downloading it if
// necessary, and returns the directory to pass to typst via --font-path.
func (m *Manager) Ensure(ctx context.Context) (string, error) {
	path := filepath.Join(m.Dir, fontFilename)
	if _, err := os.Stat(path); err == nil {
		return m.Dir, nil
	}

	url := m.URL
	if url == "" {
		url = DefaultURL
	}

	data, err := httputil.Get(ctx, url)
	if err != nil {
		return "", qerrors.Wrap(qerrors.ErrCodeNetwork, err, "couldn't download the font file")
	}

	if err := os.MkdirAll(m.Dir, 0755); err != nil {
		return "", qerrors.Wrap(qerrors.ErrCodeInternal, err, "couldn't create font cache directory")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", qerrors.Wrap(qerrors.ErrCodeInternal, err, "couldn't write the font file")
	}
	return m.Dir, nil
}
