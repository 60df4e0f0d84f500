package kvstore

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
)

// FileStore persists one JSON file per key under a directory. Keys are
// sanitized for use as filenames; the original key travels inside the file so
// GetAllKeys can report it back unmangled.
type FileStore struct {
	dir string
}

var _ Store = (*FileStore)(nil)

type fileRecord struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// NewFileStore creates (if needed) and opens a file-backed store rooted at dir.
// An empty dir defaults to ~/.trustudsel_cache.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(home, ".trustudsel_cache")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (f *FileStore) GetItem(_ context.Context, key string) (string, bool, error) {
	b, err := os.ReadFile(f.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	var rec fileRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return "", false, err
	}
	return rec.Value, true, nil
}

func (f *FileStore) SetItem(_ context.Context, key, value string) error {
	b, err := json.Marshal(fileRecord{Key: key, Value: value})
	if err != nil {
		return err
	}

	// Write to a temporary file first, then rename (atomic operation)
	path := f.path(key)
	tmp := path + fmt.Sprintf(".tmp.%d", rand.Int())
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func (f *FileStore) RemoveItem(_ context.Context, key string) error {
	err := os.Remove(f.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func (f *FileStore) MultiRemove(ctx context.Context, keys []string) error {
	for _, k := range keys {
		if err := f.RemoveItem(ctx, k); err != nil {
			return err
		}
	}
	return nil
}

func (f *FileStore) GetAllKeys(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return nil, err
	}
	var keys []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		b, err := os.ReadFile(filepath.Join(f.dir, e.Name()))
		if err != nil {
			continue
		}
		var rec fileRecord
		if err := json.Unmarshal(b, &rec); err != nil {
			continue
		}
		keys = append(keys, rec.Key)
	}
	return keys, nil
}

func (f *FileStore) path(key string) string {
	return filepath.Join(f.dir, sanitizeKey(key)+".json")
}

// sanitizeKey makes a key safe for use as a filename.
func sanitizeKey(key string) string {
	// For very long keys, use a hash to avoid filesystem limits
	if len(key) > 200 {
		return fmt.Sprintf("hash_%x", md5.Sum([]byte(key)))
	}

	unsafe := []string{"/", "\\", ":", "?", "&", "=", "#", "<", ">", "|", "*", "\"", " "}
	result := key
	for _, char := range unsafe {
		result = strings.ReplaceAll(result, char, "_")
	}
	return result
}
