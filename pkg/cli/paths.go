package cli

import (
	"os"
	"path/filepath"
)

const (
	// DefaultBaseDir is the per-user configuration directory, relative to home.
	DefaultBaseDir = ".config"

	// DefaultCredentialsFile is the credentials filename inside the app directory.
	DefaultCredentialsFile = "credentials.json"
)

// Paths provides access to the CLI's well-known file locations.
type Paths struct {
	// AppName is the application name
	AppName string

	// HomeDir is the user's home directory
	HomeDir string
}

// NewPaths creates a new Paths instance for the given app
func NewPaths(appName string) (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return &Paths{
		AppName: appName,
		HomeDir: home,
	}, nil
}

// BaseDir returns the configuration base directory (~/.config)
func (p *Paths) BaseDir() string {
	return filepath.Join(p.HomeDir, DefaultBaseDir)
}

// AppDir returns the app-specific directory (~/.config/<app>)
func (p *Paths) AppDir() string {
	return filepath.Join(p.BaseDir(), p.AppName)
}

// CredentialsFile returns the credentials path (~/.config/<app>/credentials.json)
func (p *Paths) CredentialsFile() string {
	return filepath.Join(p.AppDir(), DefaultCredentialsFile)
}
