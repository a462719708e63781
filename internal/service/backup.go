package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/saadjs/nutrilog/internal/kv"
)

type BackupInfo struct {
	Path      string    `json:"path"`
	Checksum  string    `json:"checksum"`
	CreatedAt time.Time `json:"created_at"`
	Keys      int       `json:"keys"`
	SizeBytes int64     `json:"size_bytes"`
}

type backupFile struct {
	CreatedAt time.Time                  `json:"created_at"`
	Values    map[string]json.RawMessage `json:"values"`
	Raw       map[string][]byte          `json:"raw,omitempty"`
}

// CreateBackup writes every key of the store to outPath together with a
// .sha256 checksum file. Values that are not valid JSON are kept as raw
// bytes so a backup never loses data.
func (s *Service) CreateBackup(ctx context.Context, outPath string) (BackupInfo, error) {
	if strings.TrimSpace(outPath) == "" {
		return BackupInfo{}, fmt.Errorf("backup output path is required")
	}
	values, err := s.snapshotValues(ctx)
	if err != nil {
		return BackupInfo{}, err
	}
	file := backupFile{CreatedAt: s.now(), Values: map[string]json.RawMessage{}, Raw: map[string][]byte{}}
	for key, value := range values {
		if json.Valid(value) {
			file.Values[key] = json.RawMessage(value)
		} else {
			file.Raw[key] = value
		}
	}
	payload, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return BackupInfo{}, fmt.Errorf("encode backup: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return BackupInfo{}, fmt.Errorf("create backup directory: %w", err)
	}
	if err := os.WriteFile(outPath, payload, 0o600); err != nil {
		return BackupInfo{}, fmt.Errorf("write backup: %w", err)
	}
	checksum := checksumHex(payload)
	if err := os.WriteFile(outPath+".sha256", []byte(checksum+"\n"), 0o644); err != nil {
		return BackupInfo{}, fmt.Errorf("write checksum file: %w", err)
	}
	return BackupInfo{Path: outPath, Checksum: checksum, CreatedAt: file.CreatedAt, Keys: len(values), SizeBytes: int64(len(payload))}, nil
}

// RestoreBackup verifies the checksum (when present) and replaces the whole
// store with the backup's contents.
func (s *Service) RestoreBackup(ctx context.Context, backupPath string) (BackupInfo, error) {
	payload, err := os.ReadFile(backupPath)
	if err != nil {
		return BackupInfo{}, fmt.Errorf("read backup: %w", err)
	}
	checksum := checksumHex(payload)
	expected, err := os.ReadFile(backupPath + ".sha256")
	switch {
	case err == nil:
		if strings.TrimSpace(string(expected)) != checksum {
			return BackupInfo{}, fmt.Errorf("backup checksum mismatch")
		}
	case !errors.Is(err, os.ErrNotExist):
		return BackupInfo{}, fmt.Errorf("read checksum file: %w", err)
	}

	var file backupFile
	if err := json.Unmarshal(payload, &file); err != nil {
		return BackupInfo{}, fmt.Errorf("decode backup: %w", err)
	}
	values := make(map[string][]byte, len(file.Values)+len(file.Raw))
	for key, value := range file.Values {
		values[key] = value
	}
	for key, value := range file.Raw {
		values[key] = value
	}
	if err := s.restoreValues(ctx, values); err != nil {
		return BackupInfo{}, err
	}
	return BackupInfo{
		Path:      backupPath,
		Checksum:  checksum,
		CreatedAt: file.CreatedAt,
		Keys:      len(file.Values) + len(file.Raw),
		SizeBytes: int64(len(payload)),
	}, nil
}

var errNotListable = errors.New("store backend cannot list keys")

// snapshotValues reads every key of the store.
func (s *Service) snapshotValues(ctx context.Context) (map[string][]byte, error) {
	lister, ok := s.logs.KV().(kv.Lister)
	if !ok {
		return nil, errNotListable
	}
	keys, err := lister.Keys(ctx)
	if err != nil {
		return nil, err
	}
	values := make(map[string][]byte, len(keys))
	for _, key := range keys {
		value, err := s.logs.KV().Get(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("read %q: %w", key, err)
		}
		values[key] = value
	}
	return values, nil
}

// restoreValues replaces the whole store with values.
func (s *Service) restoreValues(ctx context.Context, values map[string][]byte) error {
	if err := s.logs.Reset(ctx); err != nil {
		return err
	}
	for key, value := range values {
		if err := s.logs.KV().Set(ctx, key, value); err != nil {
			return fmt.Errorf("restore %q: %w", key, err)
		}
	}
	// Drop views that were read between Reset and the writes above.
	s.logs.Meals.Reset()
	s.logs.Workouts.Reset()
	s.logs.Sleep.Reset()
	s.logs.Moods.Reset()
	return nil
}

func checksumHex(payload []byte) string {
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}
