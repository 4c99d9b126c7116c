package assets

import (
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// Asset is a single embedded file.
type Asset struct {
	// Path is the lookup key, relative to the root of the source tree.
	Path string
	// Data is the file content. Callers must not modify it.
	Data []byte
	// MIME is the content type inferred from the extension.
	MIME string
}

// Store is an immutable mapping from path to Asset.
type Store struct {
	assets map[string]Asset
	paths  []string
}

// New walks fsys once and loads every regular file into a Store.
func New(fsys fs.FS) (*Store, error) {
	files := make(map[string][]byte)

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("failed to read asset %q: %w", p, err)
		}
		files[p] = data
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load assets: %w", err)
	}

	return FromFiles(files), nil
}

// FromFiles builds a Store from literal file contents keyed by path.
func FromFiles(files map[string][]byte) *Store {
	s := &Store{
		assets: make(map[string]Asset, len(files)),
		paths:  make([]string, 0, len(files)),
	}

	for p, data := range files {
		s.assets[p] = Asset{Path: p, Data: data, MIME: MIMEType(p)}
		s.paths = append(s.paths, p)
	}
	sort.Strings(s.paths)

	return s
}

// Lookup returns the asset stored under exactly p.
func (s *Store) Lookup(p string) (Asset, bool) {
	a, ok := s.assets[p]
	return a, ok
}

// Paths returns all keys in lexical order.
func (s *Store) Paths() []string {
	out := make([]string, len(s.paths))
	copy(out, s.paths)
	return out
}

// Len returns the number of assets.
func (s *Store) Len() int {
	return len(s.assets)
}

// MIMEType infers a content type from the extension of p.
func MIMEType(p string) string {
	ext := path.Ext(p)
	if ext == "" {
		return fiber.MIMEOctetStream
	}

	if m := utils.GetMIME(ext); m != "" {
		return m
	}
	return fiber.MIMEOctetStream
}
