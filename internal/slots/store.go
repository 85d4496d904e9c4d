package slots

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Store is the persistence collaborator: named blobs in one directory.
type Store interface {
	Exists(name string) (bool, error)
	Read(name string) ([]byte, error)
	Write(name string, data []byte) error
	Remove(name string) error
	Path(name string) string
}

const fileMode os.FileMode = 0o644

// FileStore keeps blobs as files under dir on an afero filesystem.
type FileStore struct {
	fs  afero.Fs
	dir string
}

// NewFileStore returns a FileStore rooted at dir. A nil fs uses the OS filesystem.
func NewFileStore(fs afero.Fs, dir string) *FileStore {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if dir == "" {
		dir = "."
	}
	return &FileStore{fs: fs, dir: dir}
}

func (s *FileStore) Path(name string) string {
	return filepath.Join(s.dir, name)
}

func (s *FileStore) Exists(name string) (bool, error) {
	return afero.Exists(s.fs, s.Path(name))
}

func (s *FileStore) Read(name string) ([]byte, error) {
	return afero.ReadFile(s.fs, s.Path(name))
}

func (s *FileStore) Write(name string, data []byte) error {
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	return afero.WriteFile(s.fs, s.Path(name), data, fileMode)
}

func (s *FileStore) Remove(name string) error {
	return s.fs.Remove(s.Path(name))
}
