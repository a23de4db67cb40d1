package coverletters

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"jobhunt-backend/internal/shared/util"
)

// Artifact names inside a session directory. The rendered document name is
// derived per session from the user and company.
const (
	JobDescriptionArtifact = "job_description.txt"
	CoverLetterArtifact    = "cover_letter.txt"
)

const sessionTimestampLayout = "20060102_150405"

var (
	// ErrSessionNotFound is returned when no session directory matches a key.
	ErrSessionNotFound = errors.New("session not found")
	// ErrArtifactNotFound is returned when a session lacks the named artifact.
	ErrArtifactNotFound = errors.New("artifact not found")
)

// Session identifies one generation request's storage location.
type Session struct {
	Key     string
	Dir     string
	Company string
	Title   string
}

// SessionStore allocates per-generation directories under a base location and
// persists artifacts into them. It assumes a single writer per session; the
// second-resolution timestamp means two generations for the same company and
// title within one second share a directory and overwrite, an accepted
// limitation rather than a guarded case.
type SessionStore struct {
	baseDir string
}

// NewSessionStore constructs a SessionStore rooted at baseDir.
func NewSessionStore(baseDir string) *SessionStore {
	return &SessionStore{baseDir: baseDir}
}

// Begin computes the session key from the sanitized company, sanitized title,
// and a second-resolution timestamp, then creates the session directory,
// creating the base location itself if absent.
func (s *SessionStore) Begin(company, title string, now time.Time) (Session, error) {
	key := util.Slugify(company) + "_" + util.Slugify(title) + "_" + now.Format(sessionTimestampLayout)
	dir := filepath.Join(s.baseDir, key)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Session{}, fmt.Errorf("create session dir: %w", err)
	}
	return Session{
		Key:     key,
		Dir:     dir,
		Company: company,
		Title:   title,
	}, nil
}

// Persist writes one named artifact into the session directory, overwriting
// any previous content. Each write is independent; there is no transaction
// spanning a session's artifacts.
func (s *SessionStore) Persist(session Session, name string, data []byte) (string, error) {
	path := filepath.Join(session.Dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("persist %s: %w", name, err)
	}
	return path, nil
}

// List returns all session keys under the base location, newest first by the
// trailing timestamp (reverse lexical order, since the timestamp sorts).
func (s *SessionStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}

	keys := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			keys = append(keys, entry.Name())
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	return keys, nil
}

// Artifacts returns the artifact file names present in a session.
func (s *SessionStore) Artifacts(key string) ([]string, error) {
	dir, err := s.resolve(key)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Artifact reads one named artifact back out of a session.
func (s *SessionStore) Artifact(key, name string) ([]byte, error) {
	dir, err := s.resolve(key)
	if err != nil {
		return nil, err
	}
	if strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		return nil, fmt.Errorf("invalid artifact name")
	}
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrArtifactNotFound
		}
		return nil, err
	}
	return data, nil
}

func (s *SessionStore) resolve(key string) (string, error) {
	clean := filepath.Clean(key)
	if clean != key || strings.ContainsAny(key, "/\\") || strings.Contains(key, "..") || key == "" {
		return "", ErrSessionNotFound
	}
	dir := filepath.Join(s.baseDir, clean)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return "", ErrSessionNotFound
	}
	return dir, nil
}
