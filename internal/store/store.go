// Package store persists per-user hub state as whole-object JSON
// documents keyed by the opaque session id.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shrusti-bit/AI-Study-Hub/internal/models"
)

// Store loads and saves whole hub documents. Implementations must
// return an empty hub, not an error, when no document exists yet.
type Store interface {
	Load(userID string) (*models.HubData, error)
	Save(userID string, data *models.HubData) error
}

// FileStore keeps one <user_id>.json file per user under a data
// directory.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(userID string) string {
	// Session ids are UUIDs; reject anything that could escape the dir.
	name := strings.ReplaceAll(filepath.Base(userID), string(filepath.Separator), "_")
	return filepath.Join(s.dir, name+".json")
}

func (s *FileStore) Load(userID string) (*models.HubData, error) {
	b, err := os.ReadFile(s.path(userID))
	if err != nil {
		if os.IsNotExist(err) {
			return models.NewHubData(userID), nil
		}
		return nil, fmt.Errorf("failed to read hub data for %s: %w", userID, err)
	}

	data := models.NewHubData(userID)
	if err := json.Unmarshal(b, data); err != nil {
		return nil, fmt.Errorf("failed to parse hub data for %s: %w", userID, err)
	}
	return data, nil
}

func (s *FileStore) Save(userID string, data *models.HubData) error {
	data.UserID = userID
	data.LastUpdated = time.Now()

	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal hub data for %s: %w", userID, err)
	}

	if err := os.WriteFile(s.path(userID), b, 0o644); err != nil {
		return fmt.Errorf("failed to write hub data for %s: %w", userID, err)
	}
	return nil
}

// Backup writes a timestamped snapshot of every hub document under
// <dir>/backups and returns the snapshot path.
func (s *FileStore) Backup() (string, error) {
	backupDir := filepath.Join(s.dir, "backups")
	if err := os.MkdirAll(backupDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return "", fmt.Errorf("failed to list data directory: %w", err)
	}

	all := make(map[string]*models.HubData)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		userID := strings.TrimSuffix(entry.Name(), ".json")
		data, err := s.Load(userID)
		if err != nil {
			continue
		}
		all[userID] = data
	}

	b, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal backup: %w", err)
	}

	backupFile := filepath.Join(backupDir, "backup_"+time.Now().Format("20060102_150405")+".json")
	if err := os.WriteFile(backupFile, b, 0o644); err != nil {
		return "", fmt.Errorf("failed to write backup file: %w", err)
	}
	return backupFile, nil
}
