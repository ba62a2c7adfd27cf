package fs

import (
	"errors"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"doccomment/internal/domain"
)

type Walker struct {
	includes  []string
	excludes  []string
	recursive bool
}

func NewWalker(includes, excludes []string, recursive bool) *Walker {
	if len(includes) == 0 {
		includes = []string{"**/*.js"}
	}
	return &Walker{
		includes:  includes,
		excludes:  excludes,
		recursive: recursive,
	}
}

// Walk returns the matching units below root sorted by ID. Without recursion
// only files directly inside root are considered.
func (w *Walker) Walk(root string) ([]domain.Unit, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	if err := CheckDir(root); err != nil {
		return nil, err
	}

	var units []domain.Unit

	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		if info.IsDir() {
			if path == root {
				return nil
			}
			if !w.recursive || w.shouldExclude(relPath+"/") {
				return filepath.SkipDir
			}
			return nil
		}

		if !info.Mode().IsRegular() {
			return nil
		}

		if w.shouldInclude(relPath) && !w.shouldExclude(relPath) {
			units = append(units, domain.Unit{
				ID:      relPath,
				Path:    path,
				ModTime: info.ModTime(),
				Size:    info.Size(),
			})
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(units, func(i, j int) bool { return units[i].ID < units[j].ID })
	return units, nil
}

func (w *Walker) shouldInclude(path string) bool {
	for _, pattern := range w.includes {
		matched, err := doublestar.Match(pattern, path)
		if err == nil && matched {
			return true
		}
	}
	return false
}

func (w *Walker) shouldExclude(path string) bool {
	for _, pattern := range w.excludes {
		matched, err := doublestar.Match(pattern, path)
		if err == nil && matched {
			return true
		}
	}
	return false
}

// CheckDir returns a *domain.StructuralError unless dir is an existing directory.
func CheckDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) || errors.Is(err, os.ErrPermission) {
			return &domain.StructuralError{Path: dir, Err: domain.ErrNotExist}
		}
		return &domain.StructuralError{Path: dir, Err: err}
	}
	if !info.IsDir() {
		return &domain.StructuralError{Path: dir, Err: domain.ErrNotDir}
	}
	return nil
}

func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Reader reads units from the local file system.
type Reader struct{}

func (Reader) ReadFile(path string) (string, error) {
	return ReadFile(path)
}
