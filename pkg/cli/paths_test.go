package cli

import (
	"path/filepath"
	"testing"
)

func TestNewPaths(t *testing.T) {
	paths, err := NewPaths("testapp")
	if err != nil {
		t.Fatalf("NewPaths error: %v", err)
	}

	if paths.AppName != "testapp" {
		t.Errorf("AppName = %q, want %q", paths.AppName, "testapp")
	}

	if paths.HomeDir == "" {
		t.Error("HomeDir should not be empty")
	}
}

func TestPaths_Layout(t *testing.T) {
	tmpDir := t.TempDir()
	paths := &Paths{AppName: "kling", HomeDir: tmpDir}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"BaseDir", paths.BaseDir(), filepath.Join(tmpDir, ".config")},
		{"AppDir", paths.AppDir(), filepath.Join(tmpDir, ".config", "kling")},
		{"CredentialsFile", paths.CredentialsFile(), filepath.Join(tmpDir, ".config", "kling", "credentials.json")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s() = %q, want %q", tt.name, tt.got, tt.want)
			}
		})
	}
}
