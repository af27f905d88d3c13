package favorites

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"rackbrowser/internal/domain"
	"rackbrowser/internal/eventbus"
)

const documentKey = "favorites"

// Document is the favorites part of the settings file:
//
//	{"favorites": [{"plugin": "Fundamental", "model": "VCO"}]}
type Document struct {
	Favorites []domain.ModuleRef `json:"favorites"`
}

// Document returns the store contents as a settings document
func (s *Store) Document() Document {
	return Document{Favorites: s.Serialize()}
}

// ParseDocument decodes the favorites entries of a settings document.
// A document without the key has no favorites.
func ParseDocument(data []byte) (Document, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Document{}, fmt.Errorf("failed to parse settings: %w", err)
	}
	var doc Document
	if fav, ok := raw[documentKey]; ok && string(fav) != "null" {
		if err := json.Unmarshal(fav, &doc.Favorites); err != nil {
			return Document{}, fmt.Errorf("failed to parse favorites: %w", err)
		}
	}
	return doc, nil
}

// LoadFile merges the favorites stored at path into the store. A missing
// file is not an error. Returns how many favorites were added.
func (s *Store) LoadFile(path string, r Resolver) (int, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug("favorites: no settings file", "path", path)
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read settings file: %w", err)
	}

	doc, err := ParseDocument(data)
	if err != nil {
		return 0, err
	}
	added, skipped := s.Deserialize(doc.Favorites, r)

	log.Info("favorites: loaded", "path", path, "added", added, "skipped", skipped)
	if s.bus != nil {
		s.bus.Publish(eventbus.FavoritesLoadedEvent{Path: path, Resolved: added, Skipped: skipped})
	}
	return added, nil
}

// SaveFile writes the favorites into the settings document at path.
// Other top-level keys already in the file are kept as they are.
func (s *Store) SaveFile(path string) error {
	raw := make(map[string]json.RawMessage)

	existing, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(existing, &raw); err != nil {
			return fmt.Errorf("refusing to overwrite unreadable settings file: %w", err)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("failed to read settings file: %w", err)
	}

	doc := s.Document()
	if doc.Favorites == nil {
		doc.Favorites = []domain.ModuleRef{}
	}
	fav, err := json.Marshal(doc.Favorites)
	if err != nil {
		return fmt.Errorf("failed to marshal favorites: %w", err)
	}
	raw[documentKey] = fav

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := writeFileAtomic(path, data); err != nil {
		return err
	}

	log.Debug("favorites: saved", "path", path, "count", len(doc.Favorites))
	if s.bus != nil {
		s.bus.Publish(eventbus.FavoritesSavedEvent{Path: path, Count: len(doc.Favorites)})
	}
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".settings-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace settings file: %w", err)
	}
	return nil
}
