package utils

import (
	"caces/config"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// BackupDatabase copies the SQLite file into the backup directory and
// prunes old copies beyond the configured retention count.
func BackupDatabase() (string, error) {
	cfg := config.AppConfig

	if err := os.MkdirAll(cfg.BackupDir, 0o755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}

	stamp := time.Now().Format("20060102-150405")
	dest := filepath.Join(cfg.BackupDir, fmt.Sprintf("caces-%s.db", stamp))

	if err := copyFile(cfg.DBName, dest); err != nil {
		return "", fmt.Errorf("copy database: %w", err)
	}

	log.Printf("[BACKUP] Database copied to %s", dest)

	if err := pruneBackups(cfg.BackupDir, cfg.BackupKeep); err != nil {
		log.Printf("[BACKUP] Prune failed: %v", err)
	}
	return dest, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

// pruneBackups keeps the newest `keep` backup files and removes the rest.
func pruneBackups(dir string, keep int) error {
	if keep <= 0 {
		return nil
	}

	entries, err := filepath.Glob(filepath.Join(dir, "caces-*.db"))
	if err != nil {
		return err
	}
	if len(entries) <= keep {
		return nil
	}

	// Timestamped names sort chronologically
	sort.Strings(entries)
	for _, old := range entries[:len(entries)-keep] {
		if err := os.Remove(old); err != nil {
			log.Printf("[BACKUP] Could not remove %s: %v", old, err)
		}
	}
	return nil
}
