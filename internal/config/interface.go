package config

import "context"

// Loader is the interface for a format-specific package definition loader.
type Loader interface {
	// Load reads the package definition from the given paths and translates
	// it into the format-agnostic model. Relative dataset paths are resolved
	// against the directory of the file that declares them.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
