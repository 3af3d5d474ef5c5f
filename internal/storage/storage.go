// Package storage holds check-in and avatar images behind an opaque
// reference: callers store bytes, keep the reference, and resolve it to
// a displayable URL on demand.
package storage

import "io"

type FileStore interface {
	Save(originalName string, reader io.Reader) (string, error)
	ResolveURL(ref string) string
}
