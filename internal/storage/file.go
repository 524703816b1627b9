package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// FileStore keeps one JSON file per key under a data directory.
type FileStore struct {
	dir    string
	logger *log.Logger
}

// NewFileStore creates the data directory if needed.
func NewFileStore(dir string, logger *log.Logger) (*FileStore, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{dir: dir, logger: logger}, nil
}

// Dir returns the data directory the store writes to.
func (f *FileStore) Dir() string {
	return f.dir
}

func (f *FileStore) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *FileStore) Load(key string, v any) error {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNoSnapshot
		}
		f.logger.Printf("storage: load key=%s error=%v", key, err)
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		f.logger.Printf("storage: load key=%s malformed snapshot: %v", key, err)
		return fmt.Errorf("decode snapshot %s: %w", key, err)
	}
	return nil
}

func (f *FileStore) Save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode snapshot %s: %w", key, err)
	}
	if err := os.WriteFile(f.path(key), data, 0o644); err != nil {
		f.logger.Printf("storage: save key=%s error=%v", key, err)
		return err
	}
	f.logger.Printf("storage: save key=%s bytes=%d", key, len(data))
	return nil
}
