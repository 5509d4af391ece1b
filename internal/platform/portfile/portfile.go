// Package portfile publishes the listening port so local clients can find the server.
package portfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Document is the on-disk shape: {"port": N}.
type Document struct {
	Port int `json:"port"`
}

// Write stores port at path. The file is replaced atomically so readers
// never observe a partial document.
func Write(path string, port int) error {
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid port %d", port)
	}
	data, err := json.Marshal(Document{Port: port})
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp port file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write port file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close port file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod port file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("publish port file: %w", err)
	}
	return nil
}

// Read returns the port stored at path.
func Read(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return 0, fmt.Errorf("parse port file: %w", err)
	}
	if doc.Port <= 0 {
		return 0, fmt.Errorf("port file %s has no valid port", path)
	}
	return doc.Port, nil
}

// Remove deletes the file. A missing file is not an error.
func Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
