package bundle

import (
	"fmt"
	"path"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// WriteAtomic replaces name in fs with data. The content is written to a
// temporary file in the same directory first, then renamed over name.
// The previous file's permissions carry over when fs supports Chmod.
func WriteAtomic(fs billy.Filesystem, name string, data []byte) error {
	dir := path.Dir(name)
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	tmp, err := util.TempFile(fs, dir, ".faceplate-")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = fs.Remove(tmpName)
		return fmt.Errorf("write temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = fs.Remove(tmpName)
		return fmt.Errorf("close temp: %w", err)
	}

	if ch, ok := fs.(billy.Change); ok {
		if info, err := fs.Stat(name); err == nil {
			_ = ch.Chmod(tmpName, info.Mode())
		} else {
			_ = ch.Chmod(tmpName, 0o644)
		}
	}

	if err := fs.Rename(tmpName, name); err != nil {
		_ = fs.Remove(tmpName)
		return fmt.Errorf("rename temp to %s: %w", name, err)
	}
	return nil
}
