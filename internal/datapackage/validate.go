package datapackage

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// schemaURL is the resource name the embedded schema is registered under.
const schemaURL = "file:///datapackage.schema.json"

//go:embed schema.json
var schemaJSON string

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	return jsonschema.CompileString(schemaURL, schemaJSON)
})

// ValidationError lists every violation found in a manifest.
type ValidationError struct {
	Problems []string
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return "data package does not match manifest schema:\n- " + strings.Join(e.Problems, "\n- ")
}

// Validate checks the encoded package against the embedded manifest schema.
func (p *Package) Validate() error {
	data, err := p.Marshal()
	if err != nil {
		return err
	}
	return validateDocument(data)
}

func validateDocument(data []byte) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("failed to compile manifest schema: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("failed to decode data package: %w", err)
	}

	err = schema.Validate(doc)
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) {
		return &ValidationError{Problems: flatten(validationErr)}
	}
	return err
}

// flatten collects the leaf causes of a validation error as
// "path: message" lines sorted by path.
func flatten(e *jsonschema.ValidationError) []string {
	var out []string
	var walk func(*jsonschema.ValidationError)
	walk = func(v *jsonschema.ValidationError) {
		if len(v.Causes) == 0 {
			path := strings.ReplaceAll(strings.TrimLeft(v.InstanceLocation, "/"), "/", ".")
			if path == "" {
				path = "(root)"
			}
			out = append(out, path+": "+v.Message)
			return
		}
		for _, c := range v.Causes {
			walk(c)
		}
	}
	walk(e)
	sort.Strings(out)
	return out
}
