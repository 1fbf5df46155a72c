// Package encoding provides binary-to-text encoding helpers.
package encoding

import (
	"encoding/base64"
	"fmt"
	"os"
)

// StdBase64Data is a byte slice that prints as standard base64.
type StdBase64Data []byte

// ReadFile reads a file into StdBase64Data. An empty file is an error.
func ReadFile(path string) (StdBase64Data, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%s: empty file", path)
	}
	return StdBase64Data(data), nil
}

// String returns the base64-encoded string representation, without any
// data: URI prefix.
func (b StdBase64Data) String() string {
	return base64.StdEncoding.EncodeToString(b)
}
