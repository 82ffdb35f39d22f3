// Package credential persists the provider API key and resolves it once per process.
//
// The key is stored in plaintext as {"apiKey": "..."} in a single JSON file.
package credential

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/samber/mo"
	"github.com/tmdb-cli/tmdb/filesystem"
	"github.com/tmdb-cli/tmdb/log"
)

var (
	// ErrMalformedStore indicates a credential file whose content is not a JSON object.
	ErrMalformedStore = errors.New("malformed credential file")
	// ErrEmptyCredential indicates an empty answer to the API key prompt.
	ErrEmptyCredential = errors.New("API key must not be empty")
)

// Credential is the opaque API key.
type Credential string

func (c Credential) String() string {
	return string(c)
}

type document struct {
	APIKey string `json:"apiKey"`
}

// Store reads and writes the credential file.
type Store struct {
	path string
}

// NewStore returns a store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the location of the credential file.
func (s *Store) Path() string {
	return s.path
}

// Load reads the stored credential. A missing file, or one without an apiKey, yields None.
func (s *Store) Load() (mo.Option[Credential], error) {
	fs := filesystem.API()

	exists, err := fs.Exists(s.path)
	if err != nil {
		return mo.None[Credential](), fmt.Errorf("stat %s: %w", s.path, err)
	}
	if !exists {
		return mo.None[Credential](), nil
	}

	data, err := fs.ReadFile(s.path)
	if err != nil {
		return mo.None[Credential](), fmt.Errorf("read %s: %w", s.path, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return mo.None[Credential](), fmt.Errorf("%w %s: %v", ErrMalformedStore, s.path, err)
	}

	if doc.APIKey == "" {
		log.Warnf("%s has no apiKey, treating it as absent", s.path)
		return mo.None[Credential](), nil
	}
	return mo.Some(Credential(doc.APIKey)), nil
}

// Save overwrites the credential file with the given key.
func (s *Store) Save(c Credential) error {
	data, err := json.MarshalIndent(document{APIKey: string(c)}, "", "  ")
	if err != nil {
		return err
	}

	fs := filesystem.API()
	if err := fs.MkdirAll(filepath.Dir(s.path), os.ModePerm); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(s.path), err)
	}

	if err := fs.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}
