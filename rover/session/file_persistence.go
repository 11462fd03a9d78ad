package session

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/wricardo/mcp-training/marsrover/rover/service"
)

const (
	jsonExt = ".json"
	zstdExt = ".json.zst"
)

// FilePersistence implements SessionPersistence with one file per session
type FilePersistence struct {
	sessionsDir   string
	configManager service.ConfigManager
	compress      bool
}

// NewFilePersistence creates a file-based session store writing plain JSON
func NewFilePersistence(sessionsDir string, configManager service.ConfigManager) (*FilePersistence, error) {
	if err := os.MkdirAll(sessionsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create sessions directory: %w", err)
	}

	return &FilePersistence{
		sessionsDir:   sessionsDir,
		configManager: configManager,
	}, nil
}

// NewCompressedFilePersistence creates a file-based session store writing
// zstd-compressed JSON
func NewCompressedFilePersistence(sessionsDir string, configManager service.ConfigManager) (*FilePersistence, error) {
	fp, err := NewFilePersistence(sessionsDir, configManager)
	if err != nil {
		return nil, err
	}
	fp.compress = true
	return fp, nil
}

// Save persists a session, replacing any copy in the other format
func (fp *FilePersistence) Save(sess *service.Session) error {
	jsonData, err := encodeSession(sess)
	if err != nil {
		return err
	}

	if fp.compress {
		if err := writeCompressed(fp.path(sess.ID, zstdExt), jsonData); err != nil {
			return err
		}
		_ = os.Remove(fp.path(sess.ID, jsonExt))
		return nil
	}

	if err := os.WriteFile(fp.path(sess.ID, jsonExt), jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	_ = os.Remove(fp.path(sess.ID, zstdExt))
	return nil
}

func writeCompressed(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	defer f.Close()

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	if _, err := enc.Write(data); err != nil {
		_ = enc.Close()
		return fmt.Errorf("failed to compress session: %w", err)
	}
	return enc.Close()
}

func readCompressed(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	return io.ReadAll(dec)
}

// Load retrieves a session from either the plain or the compressed file
func (fp *FilePersistence) Load(id string) (*service.Session, error) {
	var jsonData []byte
	var err error

	switch {
	case fileExists(fp.path(id, zstdExt)):
		jsonData, err = readCompressed(fp.path(id, zstdExt))
	case fileExists(fp.path(id, jsonExt)):
		jsonData, err = os.ReadFile(fp.path(id, jsonExt))
	default:
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	return decodeSession(jsonData, fp.configManager)
}

// Delete removes a session file
func (fp *FilePersistence) Delete(id string) error {
	if !fp.Exists(id) {
		return ErrSessionNotFound
	}

	for _, ext := range []string{jsonExt, zstdExt} {
		if err := os.Remove(fp.path(id, ext)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove session file: %w", err)
		}
	}
	return nil
}

// ListAll returns all persisted session IDs
func (fp *FilePersistence) ListAll() ([]string, error) {
	entries, err := os.ReadDir(fp.sessionsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read sessions directory: %w", err)
	}

	seen := make(map[string]bool)
	var sessionIDs []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		var id string
		name := entry.Name()
		switch {
		case strings.HasSuffix(name, zstdExt):
			id = strings.TrimSuffix(name, zstdExt)
		case strings.HasSuffix(name, jsonExt):
			id = strings.TrimSuffix(name, jsonExt)
		default:
			continue
		}
		if !seen[id] {
			seen[id] = true
			sessionIDs = append(sessionIDs, id)
		}
	}

	return sessionIDs, nil
}

// Exists checks if a session file exists in either format
func (fp *FilePersistence) Exists(id string) bool {
	return fileExists(fp.path(id, jsonExt)) || fileExists(fp.path(id, zstdExt))
}

func (fp *FilePersistence) path(id, ext string) string {
	return filepath.Join(fp.sessionsDir, id+ext)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
