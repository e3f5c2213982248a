package bundle

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/klauspost/compress/zip"
)

// archiveModTime is stamped on every archive entry so identical bundles
// produce identical archives.
var archiveModTime = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// Zip packages b in file order.
func Zip(b *Bundle) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, f := range b.Files {
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     f.Path,
			Method:   zip.Deflate,
			Modified: archiveModTime,
		})
		if err != nil {
			return nil, fmt.Errorf("zip %s: %w", f.Path, err)
		}
		if _, err := w.Write(f.Data); err != nil {
			return nil, fmt.Errorf("zip %s: %w", f.Path, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finish zip: %w", err)
	}
	return buf.Bytes(), nil
}

// ArchiveSink receives a finished archive and returns where it went.
type ArchiveSink interface {
	WriteArchive(ctx context.Context, name string, data []byte) (string, error)
}

// FSArchiveSink writes archives into a billy filesystem. An existing
// archive of the same name is replaced atomically.
type FSArchiveSink struct {
	FS billy.Filesystem
}

// NewOSArchiveSink writes archives into dir on disk.
func NewOSArchiveSink(dir string) *FSArchiveSink {
	return &FSArchiveSink{FS: osfs.New(dir)}
}

func (s *FSArchiveSink) WriteArchive(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := WriteAtomic(s.FS, name, data); err != nil {
		return "", err
	}
	return s.FS.Join(s.FS.Root(), name), nil
}

// DirectoryProvider yields the filesystem folder delivery writes into.
// It may block, for example on a user picking a directory.
type DirectoryProvider interface {
	Directory(ctx context.Context) (billy.Filesystem, error)
}

// StaticDirectory always provides the same filesystem.
type StaticDirectory struct {
	FS billy.Filesystem
}

func (d StaticDirectory) Directory(ctx context.Context) (billy.Filesystem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if d.FS == nil {
		return nil, ErrFolderUnavailable
	}
	return d.FS, nil
}

// OSDirectory provides a directory on disk, creating it when missing.
type OSDirectory string

func (d OSDirectory) Directory(ctx context.Context) (billy.Filesystem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if d == "" {
		return nil, ErrFolderUnavailable
	}
	if err := os.MkdirAll(string(d), 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFolderUnavailable, err)
	}
	return osfs.New(string(d)), nil
}

// WriteFolder writes b into fs. A filesystem without write capability is
// refused before anything is written. When a write fails, the folder is
// put back the way it was on a best-effort basis: files this call created
// are removed and files it overwrote get their previous contents back.
// Directories it created are left in place.
func WriteFolder(fs billy.Filesystem, b *Bundle) error {
	if !billy.CapabilityCheck(fs, billy.WriteCapability) {
		return fmt.Errorf("%w: %s is not writable", ErrFolderUnavailable, fs.Root())
	}
	type change struct {
		path string
		prev []byte // nil when the file did not exist
	}
	var changes []change
	rollback := func() {
		for i := len(changes) - 1; i >= 0; i-- {
			c := changes[i]
			if c.prev == nil {
				_ = fs.Remove(c.path)
			} else {
				_ = WriteAtomic(fs, c.path, c.prev)
			}
		}
	}
	for _, f := range b.Files {
		if dir := path.Dir(f.Path); dir != "." {
			if err := fs.MkdirAll(dir, 0o755); err != nil {
				rollback()
				return &IOError{Op: "mkdir", Path: dir, Err: err}
			}
		}
		prev, err := util.ReadFile(fs, f.Path)
		switch {
		case err == nil:
			if prev == nil {
				prev = []byte{}
			}
			// Existing files are replaced atomically so a failure never
			// leaves them half written.
			if err := WriteAtomic(fs, f.Path, f.Data); err != nil {
				rollback()
				return &IOError{Op: "write", Path: f.Path, Err: err}
			}
		case errors.Is(err, os.ErrNotExist):
			if err := util.WriteFile(fs, f.Path, f.Data, 0o644); err != nil {
				_ = fs.Remove(f.Path) // best-effort cleanup of the partial file
				rollback()
				return &IOError{Op: "write", Path: f.Path, Err: err}
			}
		default:
			rollback()
			return &IOError{Op: "read", Path: f.Path, Err: err}
		}
		changes = append(changes, change{path: f.Path, prev: prev})
	}
	return nil
}
