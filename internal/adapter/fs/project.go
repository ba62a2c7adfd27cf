package fs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"doccomment/internal/domain"
)

const manifestName = "package.json"

// FindManifest walks up from dir to the nearest package.json. The search
// stops at the first directory holding a .git entry or at the file system
// root.
func FindManifest(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for {
		if err := CheckDir(dir); err != nil {
			return "", err
		}

		candidate := filepath.Join(dir, manifestName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return "", domain.ErrNoProject
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", domain.ErrNoProject
		}
		dir = parent
	}
}

// LoadProject reads name and version from the manifest nearest to dir.
func LoadProject(dir string) (domain.Project, error) {
	path, err := FindManifest(dir)
	if err != nil {
		return domain.Project{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Project{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var project domain.Project
	if err := json.Unmarshal(data, &project); err != nil {
		return domain.Project{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return project, nil
}
