package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adminde/household-data/internal/config"
	"github.com/adminde/household-data/internal/hcl_adapter"
	"github.com/adminde/household-data/internal/yaml_adapter"
)

// LoaderFor picks the package definition loader matching path. Directories
// are read as HCL.
func LoaderFor(path string) (config.Loader, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return hcl_adapter.NewLoader(), nil
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".hcl":
		return hcl_adapter.NewLoader(), nil
	case ".yaml", ".yml":
		return yaml_adapter.NewLoader(), nil
	default:
		return nil, fmt.Errorf("unsupported package definition format %q: use .hcl, .yaml or .yml", ext)
	}
}
