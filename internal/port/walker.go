package port

import "doccomment/internal/domain"

// SourceWalker lists the source units below a root directory.
type SourceWalker interface {
	Walk(root string) ([]domain.Unit, error)
}

type FileReader interface {
	ReadFile(path string) (string, error)
}
