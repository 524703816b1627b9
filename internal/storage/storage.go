package storage

import "errors"

// ErrNoSnapshot indicates no snapshot has ever been written for a key.
var ErrNoSnapshot = errors.New("no snapshot")

// Store persists JSON snapshots under logical keys. Every Save overwrites the
// whole value for its key, so the last writer wins; there is no versioning
// and no merge across concurrent processes.
type Store interface {
	Load(key string, v any) error
	Save(key string, v any) error
}
