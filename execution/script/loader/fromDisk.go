package loader

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/tmorri/go-scopeval/internal/helpers"
)

// FromDisk loads expression source from a file path.
type FromDisk struct {
	path      string
	sourceURL *url.URL
}

// NewFromDisk creates a loader for the file at path. The path must be
// absolute; a file:// prefix is accepted.
func NewFromDisk(path string) (*FromDisk, error) {
	path = strings.TrimPrefix(path, "file://")
	if path == "" {
		return nil, fmt.Errorf("%w: path is empty", ErrSourceNotAvailable)
	}
	if !filepath.IsAbs(path) {
		return nil, fmt.Errorf("%w: relative paths are not supported", ErrSourceNotAvailable)
	}
	path = filepath.Clean(path)

	u, err := url.Parse("file://" + path)
	if err != nil {
		return nil, fmt.Errorf("unable to parse URL: %w", err)
	}

	return &FromDisk{
		path:      path,
		sourceURL: u,
	}, nil
}

func (l *FromDisk) String() string {
	reader, err := l.GetReader()
	if err != nil {
		return fmt.Sprintf("loader.FromDisk{Path: %s}", l.path)
	}
	defer reader.Close()

	chksum, err := helpers.SHA256Reader(reader)
	if err != nil {
		return fmt.Sprintf("loader.FromDisk{Path: %s}", l.path)
	}
	return fmt.Sprintf("loader.FromDisk{Path: %s, SHA256: %s}", l.path, chksum[:8])
}

func (l *FromDisk) GetReader() (io.ReadCloser, error) {
	return os.Open(l.path)
}

// GetSourceURL returns the file URL of the source.
func (l *FromDisk) GetSourceURL() *url.URL {
	return l.sourceURL
}
