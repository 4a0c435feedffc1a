package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

const (
	appDir     = ".vecontacts"
	fileSuffix = ".json"
)

var validKey = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// Backend is a flat key-value store holding opaque blobs. It is the local
// equivalent of a browser storage area: one key per slot, whole-value writes.
type Backend interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, data []byte) error
	Delete(key string) error
	Close() error
}

// DefaultDataDir returns ~/.vecontacts.
func DefaultDataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, appDir), nil
}

// FileBackend stores each key as <dataDir>/<key>.json.
type FileBackend struct {
	dataDir string
}

func NewFileBackend(dataDir string) (*FileBackend, error) {
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return &FileBackend{dataDir: dataDir}, nil
}

func (b *FileBackend) Get(key string) ([]byte, bool, error) {
	filePath, err := b.path(key)
	if err != nil {
		return nil, false, err
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read %s: %w", key, err)
	}

	return data, true, nil
}

// Set replaces the value atomically via a temp file and rename.
func (b *FileBackend) Set(key string, data []byte) error {
	filePath, err := b.path(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(b.dataDir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close %s: %w", key, err)
	}
	if err := os.Chmod(tmpPath, 0600); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to chmod %s: %w", key, err)
	}
	if err := os.Rename(tmpPath, filePath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s: %w", key, err)
	}

	return nil
}

func (b *FileBackend) Delete(key string) error {
	filePath, err := b.path(key)
	if err != nil {
		return err
	}

	if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

func (b *FileBackend) Close() error {
	return nil
}

func (b *FileBackend) DataDir() string {
	return b.dataDir
}

func (b *FileBackend) path(key string) (string, error) {
	if !validKey.MatchString(key) {
		return "", fmt.Errorf("invalid storage key: %q", key)
	}
	return filepath.Join(b.dataDir, key+fileSuffix), nil
}
