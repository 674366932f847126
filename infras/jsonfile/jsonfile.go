package jsonfile

import (
	"errors"
	"fmt"
	"hotelier/config"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

const (
	dirMode     = 0o755
	tempPattern = ".%s-*.tmp"
)

// Connection is the handle to the directory holding the record documents.
type Connection struct {
	Dir  string
	Mode fs.FileMode
}

func New(config *config.Config) *Connection {
	conn, err := Open(config.Store.Dir, fs.FileMode(config.Store.FileMode))
	if err != nil {
		log.Fatal().Err(err).Str("dir", config.Store.Dir).Msg("Failed to open store directory")
	}

	return conn
}

// Open creates dir when missing and returns a connection rooted at it.
func Open(dir string, mode fs.FileMode) (*Connection, error) {
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return nil, fmt.Errorf("create store directory %s: %w", dir, err)
	}

	if mode == 0 {
		mode = 0o644
	}

	log.Debug().Str("dir", dir).Msg("Opened store directory")

	return &Connection{
		Dir:  dir,
		Mode: mode,
	}, nil
}

// Path returns the location of the named document.
func (c *Connection) Path(name string) string {
	return filepath.Join(c.Dir, name)
}

// Read returns the content of the named document. A missing document is
// reported through exists=false with a nil error.
func (c *Connection) Read(name string) (data []byte, exists bool, err error) {
	data, err = os.ReadFile(c.Path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}

		return nil, false, fmt.Errorf("read document %s: %w", name, err)
	}

	return data, true, nil
}

// Write replaces the named document with data. The content is written to a
// temp file in the same directory, synced and renamed over the target, so
// readers see either the old or the new document.
func (c *Connection) Write(name string, data []byte) error {
	target := c.Path(name)

	tempFile, err := os.CreateTemp(c.Dir, fmt.Sprintf(tempPattern, name))
	if err != nil {
		return fmt.Errorf("create temp document for %s: %w", name, err)
	}
	tempPath := tempFile.Name()

	success := false
	defer func() {
		if !success {
			_ = os.Remove(tempPath)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("write document %s: %w", name, err)
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("sync document %s: %w", name, err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close document %s: %w", name, err)
	}

	if err := os.Chmod(tempPath, c.Mode); err != nil {
		return fmt.Errorf("chmod document %s: %w", name, err)
	}

	if err := os.Rename(tempPath, target); err != nil {
		return fmt.Errorf("rename document %s: %w", name, err)
	}

	success = true

	return nil
}

// Exists reports whether the named document is present.
func (c *Connection) Exists(name string) (bool, error) {
	_, err := os.Stat(c.Path(name))
	if err == nil {
		return true, nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	return false, fmt.Errorf("stat document %s: %w", name, err)
}
