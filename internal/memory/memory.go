// Package memory persists answers the remote assistant has already given, so
// a repeated unresolved question is served from disk instead of the network.
// Local rule-engine answers are never stored; they are cheap to recompute.
package memory

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/askell/medshelf/internal/appdirs"
)

const storeFileName = "answers.json"
const maxEntries = 200

type Entry struct {
	Query      string `json:"query"`
	Answer     string `json:"answer"`
	Uses       int    `json:"uses"`
	UpdatedAt  string `json:"updated_at"`
	LastUsedAt string `json:"last_used_at,omitempty"`
}

type Store struct {
	Entries []Entry `json:"entries"`
}

func Load() (Store, string, error) {
	path, err := appdirs.StateFilePath(storeFileName)
	if err != nil {
		return Store{}, "", err
	}
	payload, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Store{}, path, nil
	}
	if err != nil {
		return Store{}, "", fmt.Errorf("could not read answer memory: %w", err)
	}
	var store Store
	if err := json.Unmarshal(payload, &store); err != nil {
		return Store{}, "", fmt.Errorf("could not parse answer memory: %w", err)
	}
	store.normalize()
	return store, path, nil
}

func Save(path string, store Store) error {
	store.normalize()
	payload, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode answer memory: %w", err)
	}
	if _, err := appdirs.EnsureStateDir(); err != nil {
		return err
	}
	dir := filepath.Dir(path)
	tempFile, err := os.CreateTemp(dir, ".medshelf-answers-*.json")
	if err != nil {
		return fmt.Errorf("could not create temp memory file: %w", err)
	}
	tempPath := tempFile.Name()
	cleanup := func() {
		_ = os.Remove(tempPath)
	}
	if _, err := tempFile.Write(payload); err != nil {
		_ = tempFile.Close()
		cleanup()
		return fmt.Errorf("could not write temp memory file: %w", err)
	}
	if err := tempFile.Chmod(0o600); err != nil {
		_ = tempFile.Close()
		cleanup()
		return fmt.Errorf("could not secure temp memory file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		cleanup()
		return fmt.Errorf("could not close temp memory file: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		cleanup()
		return fmt.Errorf("could not atomically replace memory file: %w", err)
	}
	if err := os.Chmod(path, 0o600); err != nil {
		return fmt.Errorf("could not secure memory file: %w", err)
	}
	return nil
}

// Lookup returns a remembered answer for an equivalent query and records the
// use.
func (s *Store) Lookup(query string) (string, bool) {
	key := normalizeQuery(query)
	if key == "" {
		return "", false
	}
	for i := range s.Entries {
		if normalizeQuery(s.Entries[i].Query) == key {
			s.Entries[i].Uses++
			s.Entries[i].LastUsedAt = now()
			return s.Entries[i].Answer, true
		}
	}
	return "", false
}

// Remember stores or refreshes the answer for a query.
func (s *Store) Remember(query, answer string) {
	query = strings.TrimSpace(query)
	answer = strings.TrimSpace(answer)
	if query == "" || answer == "" {
		return
	}
	key := normalizeQuery(query)
	for i := range s.Entries {
		if normalizeQuery(s.Entries[i].Query) == key {
			s.Entries[i].Answer = answer
			s.Entries[i].UpdatedAt = now()
			return
		}
	}
	s.Entries = append(s.Entries, Entry{
		Query:     query,
		Answer:    answer,
		UpdatedAt: now(),
	})
	s.normalize()
}

// Forget drops the entry for a query, reporting whether one existed.
func (s *Store) Forget(query string) bool {
	key := normalizeQuery(query)
	if key == "" {
		return false
	}
	kept := make([]Entry, 0, len(s.Entries))
	removed := false
	for _, entry := range s.Entries {
		if normalizeQuery(entry.Query) == key {
			removed = true
			continue
		}
		kept = append(kept, entry)
	}
	s.Entries = kept
	return removed
}

func (s *Store) normalize() {
	if s == nil {
		return
	}
	entries := make([]Entry, 0, len(s.Entries))
	seen := map[string]struct{}{}
	for _, entry := range s.Entries {
		entry.Query = strings.TrimSpace(entry.Query)
		entry.Answer = strings.TrimSpace(entry.Answer)
		if entry.Query == "" || entry.Answer == "" {
			continue
		}
		if entry.Uses < 0 {
			entry.Uses = 0
		}
		key := normalizeQuery(entry.Query)
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Uses == entries[j].Uses {
			return entries[i].UpdatedAt > entries[j].UpdatedAt
		}
		return entries[i].Uses > entries[j].Uses
	})
	if len(entries) > maxEntries {
		entries = entries[:maxEntries]
	}
	s.Entries = entries
}

func normalizeQuery(query string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(query))), " ")
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
