package loader

import (
	"bytes"
	"fmt"
	"io"
	"net/url"
	"unicode"

	"github.com/tmorri/go-scopeval/internal/helpers"
)

// FromBytes loads expression source from a byte slice.
type FromBytes struct {
	content   []byte
	sourceURL *url.URL
}

// NewFromBytes creates a loader over the given source bytes.
func NewFromBytes(content []byte) (*FromBytes, error) {
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: content is empty", ErrSourceNotAvailable)
	}
	if isOnlyWhitespace(content) {
		return nil, fmt.Errorf("%w: content contains only whitespace", ErrSourceNotAvailable)
	}

	u, err := url.Parse("bytes://inline/" + helpers.SHA256Bytes(content)[:8])
	if err != nil {
		return nil, fmt.Errorf("failed to create source URL: %w", err)
	}

	return &FromBytes{
		content:   content,
		sourceURL: u,
	}, nil
}

func (l *FromBytes) String() string {
	return fmt.Sprintf("loader.FromBytes{Bytes: %d}", len(l.content))
}

func (l *FromBytes) GetReader() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(l.content)), nil
}

// GetSourceURL returns the synthetic URL identifying the inline source.
func (l *FromBytes) GetSourceURL() *url.URL {
	return l.sourceURL
}

func isOnlyWhitespace(content []byte) bool {
	for _, b := range content {
		if !unicode.IsSpace(rune(b)) {
			return false
		}
	}
	return true
}
