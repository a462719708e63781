package app

import (
	"fmt"
	"strings"

	"github.com/saadjs/nutrilog/internal/db"
	"github.com/saadjs/nutrilog/internal/kv"
	"github.com/saadjs/nutrilog/internal/kv/bolt"
)

// OpenStore opens the kv backend, creating the parent directory of path
// for the file backed ones.
func OpenStore(backend Backend, path string) (kv.Store, error) {
	if backend == BackendMemory {
		return kv.NewMemory(), nil
	}
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("store path is required for the %s backend", backend)
	}
	if err := EnsureDir(path); err != nil {
		return nil, err
	}
	switch backend {
	case BackendSQLite:
		store, err := db.OpenKV(path)
		if err != nil {
			return nil, err
		}
		return store, nil
	case BackendBolt:
		store, err := bolt.Open(path)
		if err != nil {
			return nil, err
		}
		return store, nil
	}
	return nil, fmt.Errorf("invalid backend %q", backend)
}
