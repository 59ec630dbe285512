package session

import (
	"os"
	"path/filepath"
)

// Slot is the single durable key the active session survives process
// restarts in. A missing slot reads as (nil, nil); only real I/O
// trouble surfaces as an error, and the directory downgrades even that
// to "no active user".
type Slot interface {
	Read() ([]byte, error)
	Write(data []byte) error
	Erase() error
}

// FileSlot keeps the snapshot in one JSON file on disk.
type FileSlot struct {
	path string
}

func NewFileSlot(path string) *FileSlot {
	return &FileSlot{path: path}
}

func (s *FileSlot) Read() ([]byte, error) {
	b, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *FileSlot) Write(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

func (s *FileSlot) Erase() error {
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
