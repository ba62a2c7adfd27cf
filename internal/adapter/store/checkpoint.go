package store

import (
	"encoding/json"
	"fmt"
	"os"

	"doccomment/internal/domain"
)

// WriteCheckpoint stores an intermediary document (*domain.ExtractedDocs or
// *domain.BuiltDocs) as indented JSON and returns the encoded size.
func WriteCheckpoint(path string, docs any) (int, error) {
	switch docs.(type) {
	case *domain.ExtractedDocs, *domain.BuiltDocs:
	default:
		return 0, fmt.Errorf("unsupported checkpoint type %T", docs)
	}

	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("failed to encode checkpoint: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return 0, fmt.Errorf("failed to write checkpoint: %w", err)
	}
	return len(data), nil
}

// ReadExtracted loads an extract-only checkpoint.
func ReadExtracted(path string) (*domain.ExtractedDocs, error) {
	var docs domain.ExtractedDocs
	if err := readCheckpoint(path, &docs); err != nil {
		return nil, err
	}
	return &docs, nil
}

// ReadBuilt loads a parsed checkpoint.
func ReadBuilt(path string) (*domain.BuiltDocs, error) {
	var docs domain.BuiltDocs
	if err := readCheckpoint(path, &docs); err != nil {
		return nil, err
	}
	return &docs, nil
}

func readCheckpoint(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read checkpoint: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode checkpoint %s: %w", path, err)
	}
	return nil
}
