// Package archive persists generated documents in a bbolt database so a
// result can be fetched again by ID.
package archive

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/dgallion1/mdlorem/internal/lorem"
	"github.com/google/uuid"
	"go.etcd.io/bbolt"
)

var (
	// Bucket names
	documentsBucket   = []byte("documents")
	fingerprintBucket = []byte("by_fingerprint")
)

// ErrNotFound is returned for unknown document IDs.
var ErrNotFound = errors.New("document not found")

// Record is one archived generation.
type Record struct {
	ID          string       `json:"id"`
	Fingerprint string       `json:"fingerprint"`
	Config      lorem.Config `json:"config"`
	Markdown    string       `json:"markdown"`
	CreatedAt   time.Time    `json:"created_at"`
}

// Summary is a Record without its body, for listings.
type Summary struct {
	ID          string    `json:"id"`
	Fingerprint string    `json:"fingerprint"`
	Seed        string    `json:"seed"`
	Language    string    `json:"language"`
	Blocks      int       `json:"blocks"`
	Bytes       int       `json:"bytes"`
	CreatedAt   time.Time `json:"created_at"`
}

// Fingerprint identifies a config. Generation is deterministic, so equal
// fingerprints mean equal documents for a given corpus table.
func Fingerprint(cfg lorem.Config) string {
	b, _ := json.Marshal(cfg)
	return fmt.Sprintf("%016x", xxhash.Sum64(b))
}

// Store manages archived documents using bbolt
type Store struct {
	db   *bbolt.DB
	path string
}

// Open creates or opens the archive at dbPath.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bbolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(documentsBucket); err != nil {
			return err
		}
		if _, err := tx.CreateBucketIfNotExists(fingerprintBucket); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create buckets: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Put archives markdown generated from cfg. If the same config was archived
// before, the existing record is returned with duplicate set.
func (s *Store) Put(cfg lorem.Config, markdown string) (rec Record, duplicate bool, err error) {
	fp := Fingerprint(cfg)

	err = s.db.Update(func(tx *bbolt.Tx) error {
		docs := tx.Bucket(documentsBucket)
		index := tx.Bucket(fingerprintBucket)

		if id := index.Get([]byte(fp)); id != nil {
			if v := docs.Get(id); v != nil {
				duplicate = true
				return json.Unmarshal(v, &rec)
			}
		}

		rec = Record{
			ID:          uuid.NewString(),
			Fingerprint: fp,
			Config:      cfg,
			Markdown:    markdown,
			CreatedAt:   time.Now().UTC(),
		}
		data, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		if err := docs.Put([]byte(rec.ID), data); err != nil {
			return err
		}
		return index.Put([]byte(fp), []byte(rec.ID))
	})
	if err != nil {
		return Record{}, false, fmt.Errorf("archive document: %w", err)
	}
	return rec, duplicate, nil
}

// Get loads a record by ID.
func (s *Store) Get(id string) (Record, error) {
	var rec Record
	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(documentsBucket).Get([]byte(id))
		if v == nil {
			return ErrNotFound
		}
		return json.Unmarshal(v, &rec)
	})
	if err != nil {
		return Record{}, err
	}
	return rec, nil
}

// List returns summaries of every record, newest first.
func (s *Store) List() ([]Summary, error) {
	var out []Summary
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(documentsBucket).ForEach(func(_, v []byte) error {
			var rec Record
			if err := json.Unmarshal(v, &rec); err != nil {
				return err
			}
			out = append(out, Summary{
				ID:          rec.ID,
				Fingerprint: rec.Fingerprint,
				Seed:        rec.Config.Seed,
				Language:    rec.Config.Language,
				Blocks:      rec.Config.Blocks,
				Bytes:       len(rec.Markdown),
				CreatedAt:   rec.CreatedAt,
			})
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Delete removes a record and its fingerprint entry.
func (s *Store) Delete(id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		docs := tx.Bucket(documentsBucket)
		v := docs.Get([]byte(id))
		if v == nil {
			return ErrNotFound
		}
		var rec Record
		if err := json.Unmarshal(v, &rec); err != nil {
			return err
		}
		if err := tx.Bucket(fingerprintBucket).Delete([]byte(rec.Fingerprint)); err != nil {
			return err
		}
		return docs.Delete([]byte(id))
	})
}
