// Package loader supplies expression source text to the compiler from
// strings, byte slices, or files on disk.
package loader

import (
	"io"
	"net/url"
)

// Loader provides a reader over expression source and a URL naming where
// the source came from.
type Loader interface {
	GetReader() (io.ReadCloser, error)
	GetSourceURL() *url.URL
}
