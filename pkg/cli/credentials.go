package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// Credentials holds the access key / secret key pair used to sign requests.
type Credentials struct {
	// AccessKey identifies the account; it becomes the token issuer.
	AccessKey string `json:"access_key" yaml:"access_key"`

	// SecretKey signs the tokens. It never leaves this process.
	SecretKey string `json:"secret_key" yaml:"secret_key"`
}

// ErrNoCredentials is returned when the credentials file does not exist.
var ErrNoCredentials = errors.New("credentials file not found")

// LoadCredentials reads credentials from path.
//
// The file is JSON unless its extension is .yaml or .yml. Both keys must be
// present and non-empty.
func LoadCredentials(path string) (*Credentials, error) {
	var creds Credentials
	if err := LoadRequest(path, &creds); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoCredentials, path)
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := creds.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &creds, nil
}

// Validate checks that both keys are set.
func (c *Credentials) Validate() error {
	var missing []string
	if strings.TrimSpace(c.AccessKey) == "" {
		missing = append(missing, "access_key")
	}
	if strings.TrimSpace(c.SecretKey) == "" {
		missing = append(missing, "secret_key")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing %s", strings.Join(missing, ", "))
	}
	return nil
}

// MaskAPIKey masks a key for display
func MaskAPIKey(key string) string {
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", len(key)-8) + key[len(key)-4:]
}
