package service

import "io"

// FileStore persists uploaded files (profile pictures, license PDFs) and
// returns the path handlers store on the owning record.
type FileStore interface {
	Save(subdir, originalName string, r io.Reader) (string, error)
	Remove(path string) error
}
