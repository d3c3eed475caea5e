package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/hackernews/internal/filex"
)

const (
	appDirName    = "hackernews"
	tokenFileName = "token"
)

// Session persists the bearer token between CLI runs.
type Session struct {
	path string
}

func NewSession(path string) *Session {
	return &Session{path: path}
}

// DefaultTokenFile returns the token path under the user config directory,
// creating the application directory if needed.
func DefaultTokenFile() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	dir, err := filex.EnsureSubdDir(base, appDirName)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, tokenFileName), nil
}

// Load returns the saved token, or "" if there is none.
func (s *Session) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *Session) Save(token string) error {
	return filex.WritePrivateFile(s.path, []byte(token))
}

// Clear removes the saved token. A missing file is not an error.
func (s *Session) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
