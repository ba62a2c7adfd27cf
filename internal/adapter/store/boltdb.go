package store

import (
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"doccomment/internal/domain"
)

var (
	bucketUnits = []byte("units")
	bucketMeta  = []byte("meta")
)

// BoltStore caches compressed nodes per unit, keyed by content hash.
type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketUnits, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

type unitEntry struct {
	Hash string            `json:"hash"`
	Node domain.ModuleNode `json:"node"`
}

// GetUnit returns the cached node for id when it was stored with hash.
func (s *BoltStore) GetUnit(id, hash string) (domain.ModuleNode, bool, error) {
	var (
		node  domain.ModuleNode
		found bool
	)
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketUnits).Get([]byte(id))
		if data == nil {
			return nil
		}
		var entry unitEntry
		if err := json.Unmarshal(data, &entry); err != nil {
			return err
		}
		if entry.Hash != hash {
			return nil
		}
		node = entry.Node
		found = true
		return nil
	})
	return node, found, err
}

func (s *BoltStore) PutUnit(id, hash string, node domain.ModuleNode) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(unitEntry{Hash: hash, Node: node})
		if err != nil {
			return err
		}
		return tx.Bucket(bucketUnits).Put([]byte(id), data)
	})
}

// ListUnits returns the IDs of all cached units.
func (s *BoltStore) ListUnits() ([]string, error) {
	var ids []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketUnits).ForEach(func(k, _ []byte) error {
			ids = append(ids, string(k))
			return nil
		})
	})
	return ids, err
}

// PruneUnits deletes every cached unit not present in keep and returns how
// many were removed.
func (s *BoltStore) PruneUnits(keep map[string]bool) (int, error) {
	removed := 0
	err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketUnits)

		var stale [][]byte
		if err := b.ForEach(func(k, _ []byte) error {
			if !keep[string(k)] {
				stale = append(stale, append([]byte(nil), k...))
			}
			return nil
		}); err != nil {
			return err
		}

		for _, k := range stale {
			if err := b.Delete(k); err != nil {
				return err
			}
		}
		removed = len(stale)
		return nil
	})
	return removed, err
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
