// Package jsonfile persists the hub as whole-document JSON files in a
// single directory, one file per storage key.
package jsonfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/Spaaern/pubcrawl-cli/internal/adapters/codec"
	"github.com/Spaaern/pubcrawl-cli/internal/domain"
	"github.com/Spaaern/pubcrawl-cli/internal/ports"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	hubPathKey = "hub.path"

	hubDirName = ".pubcrawl"
	hubFile    = "hub.json"

	legacyParticipantsFile = "participants.json"
	legacyCheckpointsFile  = "checkpoints.json"
	uiStateFile            = "uistate.json"

	hubFileMode = 0o600
	hubDirMode  = 0o700

	tempFilePattern = ".hub-*.json.tmp"
)

type Store struct {
	hubPath string
	mu      *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.HubStore = (*Store)(nil)

func NewStore(cfg *viper.Viper) (*Store, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	defaultPath := filepath.Join(homeDir, hubDirName, hubFile)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, hubDirName))
	cfg.SetDefault(hubPathKey, defaultPath)

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	hubPath := cfg.GetString(hubPathKey)
	if hubPath == "" {
		return nil, errors.New("hub path is empty")
	}
	hubPath, err = normalizeHubPath(hubPath)
	if err != nil {
		return nil, err
	}

	return &Store{hubPath: hubPath, mu: lockForPath(hubPath)}, nil
}

// Path reports the resolved hub file location.
func (s *Store) Path() string {
	return s.hubPath
}

// Load reads the hub document. A missing file is not an error; it
// yields an empty hub so first runs and legacy migration can proceed.
func (s *Store) Load(ctx context.Context) (*domain.Hub, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.hubPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.NewHub(), nil
		}
		return nil, fmt.Errorf("read hub file: %w", err)
	}

	hub, err := codec.DecodeHubDocument(data)
	if err != nil {
		return nil, fmt.Errorf("read hub file: %w", err)
	}

	return hub, nil
}

func (s *Store) Save(ctx context.Context, hub *domain.Hub) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := codec.EncodeHubDocument(hub)
	if err != nil {
		return err
	}

	return s.writeFile(s.hubPath, data)
}

func (s *Store) LoadLegacy(ctx context.Context) (ports.LegacyDocument, bool, error) {
	if err := ctx.Err(); err != nil {
		return ports.LegacyDocument{}, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var doc ports.LegacyDocument
	found := false

	if data, err := s.readOptional(s.keyPath(legacyParticipantsFile)); err != nil {
		return ports.LegacyDocument{}, false, err
	} else if data != nil {
		found = true
		doc.Participants, err = codec.DecodeLegacyParticipants(data)
		if err != nil {
			return ports.LegacyDocument{}, false, err
		}
	}

	if data, err := s.readOptional(s.keyPath(legacyCheckpointsFile)); err != nil {
		return ports.LegacyDocument{}, false, err
	} else if data != nil {
		found = true
		doc.Checkpoints, err = codec.DecodeLegacyCheckpoints(data)
		if err != nil {
			return ports.LegacyDocument{}, false, err
		}
	}

	return doc, found, nil
}

func (s *Store) DeleteLegacy(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, name := range []string{legacyParticipantsFile, legacyCheckpointsFile} {
		if err := os.Remove(s.keyPath(name)); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("delete legacy key %s: %w", name, err)
		}
	}

	return nil
}

func (s *Store) ClearUIState(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.keyPath(uiStateFile)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear ui state: %w", err)
	}

	return nil
}

func (s *Store) keyPath(name string) string {
	return filepath.Join(filepath.Dir(s.hubPath), name)
}

func (s *Store) readOptional(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}

	return data, nil
}

func (s *Store) writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), hubDirMode); err != nil {
		return fmt.Errorf("create hub directory: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp hub file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp hub file: %w", err)
	}

	if err := tempFile.Chmod(hubFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp hub file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp hub file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace hub file: %w", err)
	}

	cleanup = false

	if err := os.Chmod(path, hubFileMode); err != nil {
		return fmt.Errorf("chmod hub file: %w", err)
	}

	return nil
}

func normalizeHubPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve hub path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
