package datapackage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Marshal encodes the package as indented JSON with a trailing newline.
// HTML characters are kept as is.
func (p *Package) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(p); err != nil {
		return nil, fmt.Errorf("failed to encode data package: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile validates the package and writes it to path, replacing any
// existing file. Nothing is written when validation fails.
func WriteFile(path string, p *Package) error {
	data, err := p.Marshal()
	if err != nil {
		return err
	}
	if err := validateDocument(data); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write data package to %s: %w", path, err)
	}
	return nil
}
