package usecase

import (
	"errors"
	"fmt"

	"doccomment/config"
	"doccomment/internal/adapter/fs"
	"doccomment/internal/domain"
)

// ResolveProject returns the name and version the documentation is
// published under. Values set in cfg win; missing ones are read from the
// package.json nearest to sourceDir.
func ResolveProject(cfg *config.Config, sourceDir string) (domain.Project, error) {
	project := domain.Project{Name: cfg.Project.Name, Version: cfg.Project.Version}
	if project.Name != "" && project.Version != "" {
		return project, nil
	}

	manifest, err := fs.LoadProject(sourceDir)
	if err != nil {
		if errors.Is(err, domain.ErrNoProject) {
			return project, fmt.Errorf("failed to resolve project name and version: %w", err)
		}
		return project, err
	}

	if project.Name == "" {
		project.Name = manifest.Name
	}
	if project.Version == "" {
		project.Version = manifest.Version
	}
	return project, nil
}
