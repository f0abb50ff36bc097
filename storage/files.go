// Package storage keeps the editable catalog documents as flat
// per-language JSON files and snapshots the previous content into a
// backup area before every overwrite.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

var (
	ErrNotFound    = errors.New("file not found")
	ErrInvalidName = errors.New("invalid name")
	ErrInvalidLang = errors.New("missing or invalid lang")
)

var allowedNames = map[string]bool{
	"pricelist": true,
	"groupinfo": true,
	"labor":     true,
}

var allowedLangs = map[string]bool{
	"de": true,
	"en": true,
}

// ValidName reports whether name is one of the three editable documents.
func ValidName(name string) bool {
	return allowedNames[name]
}

// ValidLang reports whether lang is a supported catalog language.
func ValidLang(lang string) bool {
	return allowedLangs[lang]
}

// Store resolves (name, lang) pairs to files under DataDir and writes
// timestamped copies to BackupDir before overwriting.
type Store struct {
	DataDir   string
	BackupDir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewStore(dataDir, backupDir string) *Store {
	return &Store{
		DataDir:   dataDir,
		BackupDir: backupDir,
		locks:     make(map[string]*sync.Mutex),
	}
}

// Resolve maps (name, lang) to the exact file path, strictly: both parts
// are validated, there is no implicit language default.
func (s *Store) Resolve(name, lang string) (string, error) {
	if !ValidName(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if !ValidLang(lang) {
		return "", fmt.Errorf("%w: %q, use lang=de|en", ErrInvalidLang, lang)
	}
	return filepath.Join(s.DataDir, fmt.Sprintf("%s.%s.json", name, lang)), nil
}

// Read returns the raw stored bytes of the document. It never mutates or
// re-validates the content; stale documents stay readable for recovery.
func (s *Store) Read(name, lang string) ([]byte, error) {
	fp, err := s.Resolve(name, lang)
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(fp)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, filepath.Base(fp))
		}
		return nil, err
	}
	return raw, nil
}

// Write replaces the document with the pretty-printed body. The previous
// file content, if any, is copied to the backup area first (best effort,
// a backup failure never blocks the write). The replace itself is a
// write-to-temp-then-rename so readers never observe a half-written file.
// Writes to the same (name, lang) are serialized; different files proceed
// independently. Returns the basename of the written file.
func (s *Store) Write(name, lang string, body any) (string, error) {
	fp, err := s.Resolve(name, lang)
	if err != nil {
		return "", err
	}

	pretty, err := json.MarshalIndent(body, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal body: %w", err)
	}
	pretty = append(pretty, '\n')

	lock := s.lockFor(name + "." + lang)
	lock.Lock()
	defer lock.Unlock()

	if prev, err := os.ReadFile(fp); err == nil {
		s.backup(name, prev)
	} else if !os.IsNotExist(err) {
		log.Printf("[admin] read for backup of %s failed: %v", filepath.Base(fp), err)
	}

	if err := os.MkdirAll(filepath.Dir(fp), 0o755); err != nil {
		return "", err
	}
	tmp, err := os.CreateTemp(filepath.Dir(fp), "."+name+"-*.tmp")
	if err != nil {
		return "", err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(pretty); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", err
	}
	if err := os.Rename(tmpName, fp); err != nil {
		os.Remove(tmpName)
		return "", err
	}
	return filepath.Base(fp), nil
}

// backup writes the previous bytes to BackupDir under a colon-free
// timestamped name. Failures are logged, never raised: backups are
// archival only and are never read back programmatically.
func (s *Store) backup(name string, prev []byte) {
	if err := os.MkdirAll(s.BackupDir, 0o755); err != nil {
		log.Printf("[backup] create dir %s failed: %v", s.BackupDir, err)
		return
	}
	stamp := strings.ReplaceAll(time.Now().UTC().Format("2006-01-02T15:04:05.000000000Z"), ":", "-")
	bp := filepath.Join(s.BackupDir, fmt.Sprintf("%s-%s.json", name, stamp))
	if err := os.WriteFile(bp, prev, 0o644); err != nil {
		log.Printf("[backup] write %s failed: %v", filepath.Base(bp), err)
		return
	}
	log.Printf("[backup] wrote %s (%d bytes)", filepath.Base(bp), len(prev))
}

// PruneBackups deletes backup files older than maxAge and returns how
// many were removed.
func (s *Store) PruneBackups(maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(s.BackupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}
	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(s.BackupDir, e.Name())); err != nil {
				log.Printf("[backup] prune %s failed: %v", e.Name(), err)
				continue
			}
			removed++
		}
	}
	return removed, nil
}

func (s *Store) lockFor(key string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l, ok := s.locks[key]; ok {
		return l
	}
	l := &sync.Mutex{}
	s.locks[key] = l
	return l
}
