package texture

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/uidriver"
)

// IDForPath derives a texture id from a file path under root: the
// slash-separated relative path without its extension, so
// "<root>/ui/button.png" becomes "ui/button".
func IDForPath(root, path string) (string, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", err
	}
	if rel == "." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || rel == ".." {
		return "", fmt.Errorf("texture: %q is not under %q", path, root)
	}
	rel = strings.TrimSuffix(rel, filepath.Ext(rel))
	return filepath.ToSlash(rel), nil
}

// LoadFile decodes a single texture file into store under id.
func LoadFile(store *MemoryStore, id, path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the configured texture directory
	if err != nil {
		return fmt.Errorf("texture: read %q: %w", path, err)
	}
	img, err := Decode(data)
	if err != nil {
		return fmt.Errorf("texture %q: %w", id, err)
	}
	store.Put(id, img)
	uidriver.Logger().Info("texture loaded", "id", id, "width", img.Rect.Dx(), "height", img.Rect.Dy())
	return nil
}

// LoadDir walks root recursively and loads every image file into store.
// Files that are not images are skipped; files that look like images but
// fail to decode are logged and skipped. It returns the number of textures
// loaded.
func LoadDir(store *MemoryStore, root string) (int, error) {
	n := 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		id, err := IDForPath(root, path)
		if err != nil {
			return err
		}
		if err := LoadFile(store, id, path); err != nil {
			if errors.Is(err, ErrUnsupportedFormat) {
				uidriver.Logger().Debug("texture: skipping non-image file", "path", path)
				return nil
			}
			uidriver.Logger().Warn("texture: skipping undecodable file", "path", path, "err", err)
			return nil
		}
		n++
		return nil
	})
	if err != nil {
		return n, fmt.Errorf("texture: load %q: %w", root, err)
	}
	return n, nil
}
